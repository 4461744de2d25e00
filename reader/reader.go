// Package reader loads station records from a delimited file.
//
// The expected input is a CSV file with a header row naming at least the
// "Station Code" and "Station Name" columns; an "Opening Date" column is
// optional. Column lookup is case-insensitive and tolerant of surrounding
// whitespace and a UTF-8 byte-order mark.
//
//	Station Code,Station Name,Opening Date
//	NS1,Jurong East,10 March 1990
//	EW24,Jurong East,5 November 1988
//
// Records are returned in file order and are not validated beyond column
// presence: code syntax is checked when the rail graph is built.
package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Column headers.
const (
	ColumnCode    = "Station Code"
	ColumnName    = "Station Name"
	ColumnOpening = "Opening Date"
)

// OpeningLayout is the time layout of the Opening Date column.
const OpeningLayout = "2 January 2006"

// Sentinel errors.
var (
	// ErrNoSuchFile indicates that the station file does not exist.
	ErrNoSuchFile = errors.New("reader: station file does not exist")

	// ErrMissingColumn indicates that a required header is absent.
	ErrMissingColumn = errors.New("reader: required column missing")

	// ErrBadOpeningDate indicates an Opening Date value that does not parse.
	ErrBadOpeningDate = errors.New("reader: malformed opening date")
)

// Record is one row of the station file.
type Record struct {
	Code        string
	Name        string
	OpeningDate string
}

// Opened parses OpeningDate. The zero time and a nil error are returned for
// an empty value.
func (r Record) Opened() (time.Time, error) {
	if r.OpeningDate == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(OpeningLayout, r.OpeningDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q", ErrBadOpeningDate, r.Code, r.OpeningDate)
	}

	return t, nil
}

// Open reads all records from the CSV file at path.
func Open(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoSuchFile, path)
		}
		return nil, fmt.Errorf("reader: open %s: %w", path, err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}

// Read decodes all records from r. An input with only a header yields an
// empty, non-nil slice.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty input", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("reader: header: %w", err)
	}
	idx := func(col string) int {
		for i, h := range head {
			h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
			if strings.EqualFold(h, col) {
				return i
			}
		}
		return -1
	}
	codeIdx, nameIdx, openIdx := idx(ColumnCode), idx(ColumnName), idx(ColumnOpening)
	if codeIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, ColumnCode)
	}
	if nameIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, ColumnName)
	}

	records := make([]Record, 0, 64)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reader: line %d: %w", line, err)
		}
		if isBlank(row) {
			continue
		}
		rec := Record{
			Code: field(row, codeIdx),
			Name: field(row, nameIdx),
		}
		if openIdx >= 0 {
			rec.OpeningDate = field(row, openIdx)
		}
		records = append(records, rec)
	}

	return records, nil
}

// OpenedBy keeps the records whose station had opened on or before t.
// Records without an opening date are kept.
func OpenedBy(records []Record, t time.Time) ([]Record, error) {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		opened, err := r.Opened()
		if err != nil {
			return nil, err
		}
		if opened.After(t) {
			continue
		}
		out = append(out, r)
	}

	return out, nil
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
