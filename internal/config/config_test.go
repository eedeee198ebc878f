package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogcmp/internal/model"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"SOURCE_A_LABEL", "SOURCE_B_LABEL", "SOURCE_A_PATH", "HTTP_PORT", "CACHE_TTL", "OPENAI_MODEL"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	require.Len(t, cfg.Sources, 2)
	assert.Equal(t, "Credo", cfg.Label(model.SourceA))
	assert.Equal(t, "Sephora", cfg.Label(model.SourceB))
	assert.Equal(t, "data/credoproduct_info.csv", cfg.Sources[0].Path)
	assert.Equal(t, model.ColPrice, cfg.Sources[1].Columns["price_usd"])
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SOURCE_B_LABEL", "Ulta")
	t.Setenv("SOURCE_A_TABLE", "retail.credo")
	t.Setenv("CACHE_TTL", "90")
	cfg := Load()
	assert.Equal(t, "Ulta", cfg.Label(model.SourceB))
	assert.Equal(t, "retail.credo", cfg.Sources[0].Table)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
}

func TestGetDuration(t *testing.T) {
	t.Setenv("X_TTL", "2m")
	assert.Equal(t, 2*time.Minute, getDuration("X_TTL", time.Second))
	t.Setenv("X_TTL", "soon")
	assert.Equal(t, time.Second, getDuration("X_TTL", time.Second))
}

func TestApplySourcesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sources:
  - source: B
    label: Ulta
    columns:
      sku: product_id
      list_price: price
`), 0o644))

	cfg := &Config{Sources: []SourceConfig{
		{Source: model.SourceA, Label: "Credo", Columns: DefaultColumns(model.SourceA)},
		{Source: model.SourceB, Label: "Sephora", Path: "b.csv", Columns: DefaultColumns(model.SourceB)},
	}}
	require.NoError(t, cfg.ApplySourcesFile(path))

	assert.Equal(t, "Credo", cfg.Sources[0].Label)
	assert.Equal(t, "Ulta", cfg.Sources[1].Label)
	assert.Equal(t, "b.csv", cfg.Sources[1].Path)
	assert.Equal(t, map[string]string{"sku": model.ColProductID, "list_price": model.ColPrice}, cfg.Sources[1].Columns)
}

func TestApplySourcesFile_Errors(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{}

	err := cfg.ApplySourcesFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("sources:\n  - source: C\n"), 0o644))
	assert.ErrorContains(t, cfg.ApplySourcesFile(bad), "unknown source")
}
