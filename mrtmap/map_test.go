package mrtmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mrtguide/mrtmap"
	"github.com/katalvlaran/mrtguide/reader"
	"github.com/katalvlaran/mrtguide/station"
)

// rows builds records from alternating code/name pairs.
func rows(pairs ...string) []reader.Record {
	out := make([]reader.Record, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, reader.Record{Code: pairs[i], Name: pairs[i+1], OpeningDate: "10 March 1990"})
	}
	return out
}

func mustMap(t *testing.T, pairs ...string) *mrtmap.Map {
	t.Helper()
	m, err := mrtmap.New(rows(pairs...))
	require.NoError(t, err)
	return m
}

func codes(stations []station.Station) []string {
	out := make([]string, len(stations))
	for i, s := range stations {
		out[i] = s.Code
	}
	return out
}

func TestNew_NeighborsFollowIndexNotInputOrder(t *testing.T) {
	m := mustMap(t,
		"NS3", "c",
		"NS1", "a",
		"NS10", "d",
		"NS2", "b",
	)
	assert.Equal(t, []string{"NS2"}, m.Neighbors("NS1"))
	assert.Equal(t, []string{"NS1", "NS3"}, m.Neighbors("NS2"))
	assert.Equal(t, []string{"NS10", "NS2"}, m.Neighbors("NS3"))
	assert.Equal(t, []string{"NS3"}, m.Neighbors("NS10"))
	assert.Equal(t, []string{"NS1", "NS2", "NS3", "NS10"}, codes(m.Line("NS")))
}

func TestNew_InterchangeIsAClique(t *testing.T) {
	m := mustMap(t,
		"NS1", "hub",
		"EW1", "hub",
		"CC1", "hub",
		"TE1", "other",
	)
	assert.Equal(t, []string{"EW1", "NS1"}, m.Transfers("CC1"))
	assert.Equal(t, []string{"CC1", "NS1"}, m.Transfers("EW1"))
	assert.Equal(t, []string{"CC1", "EW1"}, m.Transfers("NS1"))
	assert.Empty(t, m.Transfers("TE1"))

	st := m.Stats()
	assert.Equal(t, 4, st.Stations)
	assert.Equal(t, 4, st.Lines)
	assert.Equal(t, 1, st.Interchanges)
	assert.Equal(t, 3, st.Transfers)
	assert.Equal(t, 0, st.Rides)
}

func TestNew_AdjacencyIsSymmetric(t *testing.T) {
	m := mustMap(t,
		"NS1", "test1", "NS2", "test2", "NS3", "test3",
		"TE1", "test1", "TE2", "test3", "CC1", "test3",
	)
	for _, s := range m.Stations() {
		for _, other := range m.Neighbors(s.Code) {
			assert.Contains(t, m.Neighbors(other), s.Code)
		}
		for _, other := range m.Transfers(s.Code) {
			assert.Contains(t, m.Transfers(other), s.Code)
		}
	}
}

func TestNew_DuplicateCode(t *testing.T) {
	_, err := mrtmap.New(rows("NS1", "a", "NS1", "b"))
	assert.ErrorIs(t, err, mrtmap.ErrDuplicateCode)
}

func TestNew_InvalidCode(t *testing.T) {
	_, err := mrtmap.New(rows("NS1", "a", "NSX", "b"))
	assert.ErrorIs(t, err, station.ErrInvalidCode)
}

func TestNew_Empty(t *testing.T) {
	m, err := mrtmap.New(nil)
	require.NoError(t, err)
	assert.Empty(t, m.Stations())
	assert.Empty(t, m.Lines())
}

func TestResolve(t *testing.T) {
	m := mustMap(t, "NS1", "test1", "NS2", "test2", "TE1", "test1")

	got, err := m.Resolve("NS2")
	require.NoError(t, err)
	assert.Equal(t, []string{"NS2"}, codes(got))

	got, err = m.Resolve("test1")
	require.NoError(t, err)
	assert.Equal(t, []string{"NS1", "TE1"}, codes(got))

	_, err = m.Resolve("nowhere")
	assert.ErrorIs(t, err, mrtmap.ErrUnknownStation)
	_, err = m.Resolve("")
	assert.ErrorIs(t, err, mrtmap.ErrUnknownStation)
}

func TestResolve_EveryCodeResolvesToItself(t *testing.T) {
	m := mustMap(t, "NS1", "a", "NS2", "b", "EW1", "a", "EW2", "c", "CC7", "c")
	for _, s := range m.Stations() {
		got, err := m.Resolve(s.Code)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, s, got[0])
	}
}

func TestStationAndLines(t *testing.T) {
	m := mustMap(t, "NS1", "a", "EW1", "b", "CC1", "c")
	s, ok := m.Station("EW1")
	assert.True(t, ok)
	assert.Equal(t, "b", s.Name)
	_, ok = m.Station("EW2")
	assert.False(t, ok)
	assert.Equal(t, []string{"CC", "EW", "NS"}, m.Lines())
}
