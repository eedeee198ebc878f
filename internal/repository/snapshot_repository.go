package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalogcmp/internal/model"
)

const snapshotTable = "product_snapshot"

var snapshotColumns = []string{
	"run_id", "fingerprint", "source", "product_id", "product_name", "brand_name",
	"price", "rating", "reviews", "suitable_type", "exported_at",
}

// SnapshotRepository exports the working table to Postgres for BI tools.
type SnapshotRepository struct {
	DB *pgxpool.Pool
}

func (r *SnapshotRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS product_snapshot (
			run_id        UUID NOT NULL,
			fingerprint   TEXT NOT NULL,
			source        TEXT NOT NULL,
			product_id    TEXT NOT NULL,
			product_name  TEXT,
			brand_name    TEXT,
			price         DOUBLE PRECISION NOT NULL,
			rating        DOUBLE PRECISION,
			reviews       BIGINT,
			suitable_type TEXT[],
			exported_at   TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("create %s: %w", snapshotTable, err)
	}
	return nil
}

// Save bulk-copies every record under runID and returns the number of rows written.
func (r *SnapshotRepository) Save(ctx context.Context, runID uuid.UUID, fingerprint string, t model.Table) (int64, error) {
	rows := snapshotRows(runID, fingerprint, time.Now().UTC(), t)
	n, err := r.DB.CopyFrom(ctx, pgx.Identifier{snapshotTable}, snapshotColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return n, fmt.Errorf("copy into %s: %w", snapshotTable, err)
	}
	return n, nil
}

// snapshotRows lays records out in snapshotColumns order. Null numbers stay nil.
func snapshotRows(runID uuid.UUID, fingerprint string, at time.Time, t model.Table) [][]any {
	out := make([][]any, 0, t.Len())
	for _, rec := range t.Records {
		out = append(out, []any{
			runID,
			fingerprint,
			string(rec.Source),
			rec.ProductID,
			rec.ProductName,
			rec.BrandName,
			rec.Price,
			rec.Rating,
			rec.Reviews,
			rec.SuitableType,
			at,
		})
	}
	return out
}
