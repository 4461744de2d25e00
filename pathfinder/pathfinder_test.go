package pathfinder_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/mrtguide/mrtmap"
	"github.com/katalvlaran/mrtguide/pathfinder"
	"github.com/katalvlaran/mrtguide/reader"
	"github.com/katalvlaran/mrtguide/station"
	"github.com/katalvlaran/mrtguide/weights"
)

const dataPath = "testdata/stations.csv"

func open(t *testing.T, opts ...pathfinder.Option) *pathfinder.PathFinder {
	t.Helper()
	pf, err := pathfinder.Open(dataPath, opts...)
	require.NoError(t, err)
	return pf
}

func costs(routes []mrtmap.Route) []int64 {
	out := make([]int64, len(routes))
	for i, r := range routes {
		out[i] = r.Cost
	}
	return out
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := pathfinder.Open("testdata/nope.csv")
	assert.ErrorIs(t, err, reader.ErrNoSuchFile)
}

func TestNew_DuplicateCode(t *testing.T) {
	_, err := pathfinder.New([]reader.Record{{Code: "NS1", Name: "a"}, {Code: "NS1", Name: "b"}})
	assert.ErrorIs(t, err, mrtmap.ErrDuplicateCode)
}

func TestFindRoutes_InvalidInput(t *testing.T) {
	pf := open(t)

	_, err := pf.FindRoutes("", "CC1")
	assert.ErrorIs(t, err, mrtmap.ErrUnknownStation)

	_, err = pf.FindRoutes("CC1", "NO_EXISTING")
	assert.ErrorIs(t, err, mrtmap.ErrUnknownStation)

	_, err = pf.FindRoutes("CC1", "CC1", pathfinder.At("INVALID"))
	assert.ErrorIs(t, err, pathfinder.ErrMalformedTime)
	assert.Contains(t, err.Error(), "INVALID")
}

func TestFindRoutes_ByTime(t *testing.T) {
	pf := open(t)

	cases := []struct {
		name string
		opts []pathfinder.QueryOption
		want []int64
	}{
		{"no time", nil, []int64{1, 2}},
		{"weekday morning peak, single-digit hour", []pathfinder.QueryOption{pathfinder.At("2019-06-19T8:00")}, []int64{12, 50}},
		{"weekday midday", []pathfinder.QueryOption{pathfinder.At("2019-06-19T12:00")}, []int64{10, 36}},
		{"night", []pathfinder.QueryOption{pathfinder.At("2019-06-19T23:00")}, []int64{10, 36}},
		{"saturday evening", []pathfinder.QueryOption{pathfinder.At("2019-06-22T18:00")}, []int64{10, 36}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			routes, err := pf.FindRoutes("NS1", "NS2", tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, costs(routes))
		})
	}
}

func TestFindRoutes_Limit(t *testing.T) {
	pf := open(t)

	routes, err := pf.FindRoutes("test1", "test2", pathfinder.Limit(1))
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, []string{"NS1", "NS2"}, routes[0].Codes())

	routes, err = pf.FindRoutes("test1", "test2", pathfinder.Limit(0))
	require.NoError(t, err)
	assert.Empty(t, routes)

	routes, err = pf.FindRoutes("test1", "test2", pathfinder.At("2019-06-19T8:00"), pathfinder.Limit(2))
	require.NoError(t, err)
	assert.Len(t, routes, 2)

	assert.Panics(t, func() { _, _ = pf.FindRoutes("test1", "test2", pathfinder.Limit(-1)) })
}

func TestFindRoutes_SameStartAndEnd(t *testing.T) {
	routes, err := open(t).FindRoutes("test1", "test1")
	require.NoError(t, err)
	require.Len(t, routes, 2)
	for _, r := range routes {
		assert.Len(t, r.Stations, 1)
		assert.Zero(t, r.Cost)
	}
}

func TestWithOpenedBy(t *testing.T) {
	pf := open(t, pathfinder.WithOpenedBy(time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)))

	routes, err := pf.FindRoutes("NS1", "NS2")
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, []string{"NS1", "NS2"}, routes[0].Codes())

	_, err = pf.FindRoutes("NS1", "test4")
	assert.ErrorIs(t, err, mrtmap.ErrUnknownStation)

	_, ok := pf.Map().Station("CC1")
	assert.True(t, ok)
}

func TestWithLines(t *testing.T) {
	// Making TE busy at peak: TE1→TE2→TE3 now costs 12 per ride.
	pf := open(t, pathfinder.WithLines(weights.Lines{PeakBusy: []string{"TE"}}))

	routes, err := pf.FindRoutes("NS1", "NS2", pathfinder.At("2019-06-19T08:00"))
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 54}, costs(routes))
}

func TestWithCacheSize_Panics(t *testing.T) {
	assert.Panics(t, func() { _, _ = pathfinder.Open(dataPath, pathfinder.WithCacheSize(-1)) })
}

func TestCache_IsTransparent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cached := open(t, pathfinder.WithCacheSize(8), pathfinder.WithLogger(logger))
	plain := open(t)

	queries := [][]pathfinder.QueryOption{
		nil,
		{pathfinder.At("2019-06-19T8:00")},
		{pathfinder.Limit(1)},
	}
	for _, q := range queries {
		want, err := plain.FindRoutes("test1", "test2", q...)
		require.NoError(t, err)

		first, err := cached.FindRoutes("test1", "test2", q...)
		require.NoError(t, err)
		second, err := cached.FindRoutes("test1", "test2", q...)
		require.NoError(t, err)

		assert.Equal(t, want, first)
		assert.Equal(t, want, second)
	}
	assert.Equal(t, len(queries), strings.Count(buf.String(), "cache hit"))

	// Callers may scribble on results without corrupting the cache.
	got, err := cached.FindRoutes("test1", "test2")
	require.NoError(t, err)
	got[0].Stations[0] = station.MustNew("ZZ9", "scribble")
	got[0].Cost = -1

	again, err := cached.FindRoutes("test1", "test2")
	require.NoError(t, err)
	assert.Equal(t, "NS1", again[0].Stations[0].Code)
	assert.EqualValues(t, 1, again[0].Cost)
}

func TestCache_SharedAcrossSamePolicy(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	pf := open(t, pathfinder.WithCacheSize(8), pathfinder.WithLogger(logger))

	// Two midday times select the same policy and so share an entry.
	_, err := pf.FindRoutes("NS1", "NS2", pathfinder.At("2019-06-19T12:00"))
	require.NoError(t, err)
	_, err = pf.FindRoutes("NS1", "NS2", pathfinder.At("2019-06-19T13:30"))
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(buf.String(), "cache hit"))
	assert.Contains(t, buf.String(), "policy=normal")
}

func TestParseTime(t *testing.T) {
	got, err := pathfinder.ParseTime("2019-06-19T8:05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, 6, 19, 8, 5, 0, 0, time.UTC), got)

	for _, bad := range []string{"", "2019-06-19", "2019-06-19 08:00", "19-06-2019T08:00", "2019-06-19T25:00"} {
		_, err = pathfinder.ParseTime(bad)
		assert.ErrorIs(t, err, pathfinder.ErrMalformedTime, bad)
	}
}

func TestPolicy(t *testing.T) {
	pf := open(t)
	assert.Equal(t, weights.NameUniform, pf.Policy(nil).Name())
	at := time.Date(2019, 6, 19, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, weights.NameNight, pf.Policy(&at).Name())
}
