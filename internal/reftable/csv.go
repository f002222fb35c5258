// Package reftable loads the delimited reference tables (season/climate and
// product catalog) and caches the parsed rows for a fixed validity window.
package reftable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Row is one table record keyed by header name. Columns the caller does not
// recognize stay present so they pass through to the output unmodified.
type Row map[string]string

// Get returns the first non-empty value among the named columns. Legacy
// column names ("weight" for "weight_grams") resolve this way.
func (r Row) Get(names ...string) string {
	for _, n := range names {
		if v := strings.TrimSpace(r[n]); v != "" {
			return v
		}
	}
	return ""
}

// ErrNoHeader indicates the table body was empty or had no header row.
var ErrNoHeader = errors.New("reference table has no header row")

// ParseOption adjusts parsing behavior.
type ParseOption func(*csv.Reader)

// WithComma sets the field delimiter, for legacy semicolon exports.
func WithComma(c rune) ParseOption {
	return func(r *csv.Reader) { r.Comma = c }
}

// Parse reads a delimited table with a header row into Rows. Quoted fields
// may contain the delimiter; embedded quotes use the standard doubled-quote
// escaping. Records shorter than the header are padded with empty strings,
// longer ones are truncated to the header width.
func Parse(r io.Reader, opts ...ParseOption) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	for _, opt := range opts {
		opt(cr)
	}

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		row := make(Row, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
