package reader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mrtguide/reader"
)

const sample = `Station Code,Station Name,Opening Date
NS1,Jurong East,10 March 1990
NS2,Bukit Batok,10 March 1990
EW24,Jurong East,5 November 1988
TE1,Woodlands North,31 January 2020
`

func TestRead_Sample(t *testing.T) {
	records, err := reader.Read(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, reader.Record{Code: "NS1", Name: "Jurong East", OpeningDate: "10 March 1990"}, records[0])
	assert.Equal(t, "TE1", records[3].Code)
}

func TestRead_ColumnOrderAndCase(t *testing.T) {
	in := "\ufeffopening date , station name,STATION CODE\n1 May 2000, Somewhere ,CC1\n\n"
	records, err := reader.Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, reader.Record{Code: "CC1", Name: "Somewhere", OpeningDate: "1 May 2000"}, records[0])
}

func TestRead_OpeningColumnOptional(t *testing.T) {
	records, err := reader.Read(strings.NewReader("Station Code,Station Name\nNS1,A\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].OpeningDate)
}

func TestRead_MissingColumns(t *testing.T) {
	_, err := reader.Read(strings.NewReader("Station Name\nA\n"))
	assert.ErrorIs(t, err, reader.ErrMissingColumn)

	_, err = reader.Read(strings.NewReader("Station Code\nNS1\n"))
	assert.ErrorIs(t, err, reader.ErrMissingColumn)

	_, err = reader.Read(strings.NewReader(""))
	assert.ErrorIs(t, err, reader.ErrMissingColumn)
}

func TestRead_HeaderOnly(t *testing.T) {
	records, err := reader.Read(strings.NewReader("Station Code,Station Name\n"))
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stations.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	records, err := reader.Open(path)
	require.NoError(t, err)
	assert.Len(t, records, 4)

	_, err = reader.Open(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, reader.ErrNoSuchFile)
}

func TestOpenedBy(t *testing.T) {
	records, err := reader.Read(strings.NewReader(sample))
	require.NoError(t, err)

	kept, err := reader.OpenedBy(records, time.Date(1990, time.March, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	codes := make([]string, 0, len(kept))
	for _, r := range kept {
		codes = append(codes, r.Code)
	}
	assert.Equal(t, []string{"NS1", "NS2", "EW24"}, codes)

	kept, err = reader.OpenedBy(records, time.Date(1989, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, "EW24", kept[0].Code)
}

func TestOpenedBy_KeepsUndatedAndRejectsGarbage(t *testing.T) {
	now := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	kept, err := reader.OpenedBy([]reader.Record{{Code: "NS1", Name: "A"}}, now)
	require.NoError(t, err)
	assert.Len(t, kept, 1)

	_, err = reader.OpenedBy([]reader.Record{{Code: "NS1", Name: "A", OpeningDate: "soon"}}, now)
	assert.ErrorIs(t, err, reader.ErrBadOpeningDate)
}
