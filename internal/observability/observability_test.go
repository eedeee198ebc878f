package observability

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LogConfig{Level: "warn", Format: "json", Output: &buf, ServiceName: "svc"})

	log.Info().Msg("hidden")
	log.Warn().Str("source", "A").Msg("shown")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "svc", entry["service"])
	assert.Equal(t, "A", entry["source"])
	assert.Equal(t, "shown", entry["message"])
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"debug":   "debug",
		"WARNING": "warn",
		"error":   "error",
		"off":     "disabled",
		"":        "info",
		"bogus":   "info",
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in).String(), in)
	}
}

func TestRegisterAndCount(t *testing.T) {
	reg := prometheus.NewRegistry()
	Register(reg)

	before := testutil.ToFloat64(RowsDropped.WithLabelValues("A"))
	RowsDropped.WithLabelValues("A").Add(3)
	assert.Equal(t, before+3, testutil.ToFloat64(RowsDropped.WithLabelValues("A")))

	n, err := testutil.GatherAndCount(reg, "catalog_rows_dropped_total")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1)
}
