package catalog

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// CSVFile reads a delimited catalog export from disk.
type CSVFile struct {
	Path  string
	Comma rune // defaults to ','
}

func (f CSVFile) Read(ctx context.Context) (RawTable, error) {
	if err := ctx.Err(); err != nil {
		return RawTable{}, err
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return RawTable{}, fmt.Errorf("read catalog %s: %w", f.Path, err)
	}
	t, err := ParseCSV(bytes.NewReader(b), f.Comma)
	if err != nil {
		return RawTable{}, fmt.Errorf("parse catalog %s: %w", f.Path, err)
	}
	t.Name = f.Path
	return t, nil
}

// ParseCSV reads a header row followed by records. Short records are padded with
// nulls; null markers are folded to the empty string.
func ParseCSV(r io.Reader, comma rune) (RawTable, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return RawTable{}, err
	}
	b = bytes.TrimPrefix(b, []byte{0xEF, 0xBB, 0xBF})

	cr := csv.NewReader(bytes.NewReader(b))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	if comma != 0 {
		cr.Comma = comma
	}

	headers, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return RawTable{}, errors.New("empty file: missing header row")
	}
	if err != nil {
		return RawTable{}, err
	}

	var rows []map[string]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return RawTable{}, err
		}
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(rec) && !IsNull(rec[i]) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return RawTable{Headers: headers, Rows: rows}, nil
}
