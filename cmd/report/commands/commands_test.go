package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogcmp/internal/analytics"
	"catalogcmp/internal/model"
)

func setupCatalogs(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	a := filepath.Join(dir, "credo.csv")
	b := filepath.Join(dir, "sephora.csv")
	require.NoError(t, os.WriteFile(a, []byte(`id,name,brand_name,price,rating,review_count,suitable_type
c1,Balm,X,$10.00,4.5,12,"['dry skin', 'oily skin']"
c2,Oil,X,$30.00,3.5,4,['all skin']
c3,Serum,Y,n/a,4.0,3,
`), 0o644))
	require.NoError(t, os.WriteFile(b, []byte(`product_id,product_name,brand_name,price_usd,rating,reviews
s1,Cream,X,33,3.5,100
s2,Mask,Z,55.5,,
`), 0o644))
	t.Setenv("SOURCE_A_PATH", a)
	t.Setenv("SOURCE_B_PATH", b)
	t.Setenv("SOURCE_A_TABLE", "")
	t.Setenv("SOURCE_B_TABLE", "")
	t.Setenv("SOURCES_FILE", "")
	t.Setenv("LOG_LEVEL", "disabled")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestOverview_JSON(t *testing.T) {
	setupCatalogs(t)
	out, err := run(t, "overview", "--format", "json")
	require.NoError(t, err)

	var o analytics.Overview
	require.NoError(t, json.Unmarshal([]byte(out), &o))
	a, ok := o.For(model.SourceA)
	require.True(t, ok)
	assert.Equal(t, 2, a.Products)
	assert.Equal(t, 20.0, *a.AvgPrice)
	assert.Equal(t, 4, o.Combined.Products)
}

func TestOverview_Table(t *testing.T) {
	setupCatalogs(t)
	out, err := run(t, "overview")
	require.NoError(t, err)
	assert.Contains(t, out, "Credo")
	assert.Contains(t, out, "Sephora")
	assert.Contains(t, out, "Combined")
	assert.Contains(t, out, "$20.00")
}

func TestDistribution(t *testing.T) {
	setupCatalogs(t)
	out, err := run(t, "distribution", "price", "-f", "json")
	require.NoError(t, err)
	var rows []analytics.DistributionRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Len(t, rows, 10)

	_, err = run(t, "distribution", "colour")
	assert.Error(t, err)
}

func TestBrands(t *testing.T) {
	setupCatalogs(t)
	out, err := run(t, "brands")
	require.NoError(t, err)
	assert.Equal(t, "X\n", out)

	_, err = run(t, "brand", "Z")
	assert.ErrorIs(t, err, analytics.ErrBrandNotCommon)

	out, err = run(t, "brand", "X")
	require.NoError(t, err)
	assert.Contains(t, out, "Luxury")
}

func TestProducts(t *testing.T) {
	setupCatalogs(t)
	out, err := run(t, "products", "--skin", "dry skin", "--max-price", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "found 1 products")
	assert.Contains(t, out, "Recommend")

	_, err = run(t, "products", "--source", "C")
	assert.Error(t, err)
}

func TestBadFormat(t *testing.T) {
	setupCatalogs(t)
	_, err := run(t, "overview", "--format", "yaml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestMissingCatalogFails(t *testing.T) {
	setupCatalogs(t)
	t.Setenv("SOURCE_B_PATH", filepath.Join(t.TempDir(), "missing.csv"))
	_, err := run(t, "overview")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInsight_Disabled(t *testing.T) {
	setupCatalogs(t)
	t.Setenv("OPENAI_API_KEY", "")
	_, err := run(t, "insight")
	assert.Error(t, err)
}

func TestWriteTable(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, []string{"A", "LONGER"}, [][]string{{"1", "2"}}))
	assert.Equal(t, "A  LONGER\n-  ------\n1  2\n", buf.String())
}
