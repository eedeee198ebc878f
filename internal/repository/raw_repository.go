package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"catalogcmp/internal/catalog"
)

// RawRepository reads a whole source catalog table as untyped text cells, the
// same shape a CSV file produces.
type RawRepository struct {
	DB    *sql.DB
	Table string // optionally schema-qualified
}

func (r *RawRepository) Read(ctx context.Context) (catalog.RawTable, error) {
	query := "SELECT * FROM " + quoteTable(r.Table)
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return catalog.RawTable{}, fmt.Errorf("query %s: %w", r.Table, err)
	}
	defer rows.Close()

	t, err := scanRaw(rows)
	if err != nil {
		return catalog.RawTable{}, fmt.Errorf("read %s: %w", r.Table, err)
	}
	t.Name = r.Table
	return t, nil
}

// quoteTable quotes each dot-separated part of a table name.
func quoteTable(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = pq.QuoteIdentifier(p)
	}
	return strings.Join(parts, ".")
}

type rowSet interface {
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// scanRaw turns every row into a column->text map. SQL NULL becomes "".
func scanRaw(rows rowSet) (catalog.RawTable, error) {
	cols, err := rows.Columns()
	if err != nil {
		return catalog.RawTable{}, err
	}
	t := catalog.RawTable{Headers: cols}

	cells := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range cells {
		dest[i] = &cells[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return catalog.RawTable{}, err
		}
		row := make(map[string]string, len(cols))
		for i, c := range cols {
			if cells[i].Valid {
				row[c] = cells[i].String
			} else {
				row[c] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, rows.Err()
}
