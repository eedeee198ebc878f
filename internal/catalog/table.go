// Package catalog reads raw source tables before any normalization.
package catalog

import (
	"context"
	"strings"
)

// RawTable is a source table exactly as read: string cells keyed by the source's
// own column names. An empty cell means null.
type RawTable struct {
	Name    string
	Headers []string
	Rows    []map[string]string
}

// Reader loads one raw table.
type Reader interface {
	Read(ctx context.Context) (RawTable, error)
}

// HasColumn reports whether the table carries the named column.
func (t RawTable) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// nullMarkers are the spellings the upstream exports use for a missing value.
var nullMarkers = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {}, "-NaN": {}, "-nan": {},
	"1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {}, "NA": {}, "NULL": {}, "NaN": {},
	"None": {}, "n/a": {}, "nan": {}, "null": {},
}

// IsNull reports whether a raw cell should be read as a missing value.
func IsNull(v string) bool {
	if strings.TrimSpace(v) == "" {
		return true
	}
	_, ok := nullMarkers[v]
	return ok
}
