package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_Filters(t *testing.T) {
	tbl := Table{Records: []ProductRecord{
		{ProductID: "1", BrandName: "X", Source: SourceA},
		{ProductID: "2", BrandName: "x", Source: SourceA},
		{ProductID: "3", BrandName: "X", Source: SourceB},
	}}

	assert.Equal(t, 2, tbl.BySource(SourceA).Len())
	assert.Equal(t, 2, tbl.ByBrand("X").Len())
	assert.Equal(t, "3", tbl.BySource(SourceB).ByBrand("X").Records[0].ProductID)
	assert.Equal(t, 0, tbl.BySource("C").Len())
	assert.NotNil(t, tbl.BySource("C").Records)
}

func TestSource_Valid(t *testing.T) {
	assert.True(t, SourceA.Valid())
	assert.True(t, SourceB.Valid())
	assert.False(t, Source("a").Valid())
}
