package showcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogcmp/internal/model"
)

func galleryTable() model.Table {
	return model.Table{Records: []model.ProductRecord{
		{ProductID: "a1", Source: model.SourceA, Price: model.Float(20), SuitableType: []string{"dry skin", "oily skin"}},
		{ProductID: "a2", Source: model.SourceA, Price: model.Float(120), SuitableType: []string{"all skin"}},
		{ProductID: "a3", Source: model.SourceA, Price: model.Float(60), SuitableType: []string{"dry skin"}},
		{ProductID: "b1", Source: model.SourceB, Price: model.Float(30), SuitableType: []string{"dry skin"}},
	}}
}

func TestBuild_DefaultsToSourceAAndKeepsOrder(t *testing.T) {
	g := Build(galleryTable(), Query{SkinTypes: []string{"dry skin", "oily skin"}})

	assert.Equal(t, model.SourceA, g.Source)
	assert.Equal(t, 3, g.Found)
	require.Len(t, g.Products, 3)
	assert.Equal(t, "a1", g.Products[0].ProductID)
	assert.Equal(t, TierRecommend, g.Products[0].Tier)
	assert.Equal(t, TierMaybe, g.Products[1].Tier)
	assert.Equal(t, TierGoodMatch, g.Products[2].Tier)
	assert.Equal(t, []string{"all skin", "dry skin", "oily skin"}, g.Vocabulary)
}

func TestBuild_PriceRangeInclusive(t *testing.T) {
	g := Build(galleryTable(), Query{
		Source:   model.SourceA,
		MinPrice: model.Float(20),
		MaxPrice: model.Float(60),
	})
	require.Equal(t, 2, g.Found)
	assert.Equal(t, "a1", g.Products[0].ProductID)
	assert.Equal(t, "a3", g.Products[1].ProductID)
	for _, c := range g.Products {
		assert.Equal(t, TierMaybe, c.Tier)
	}
}

func TestBuild_EmptyResultIsNotNil(t *testing.T) {
	g := Build(galleryTable(), Query{Source: model.SourceB, MinPrice: model.Float(1000)})
	assert.Equal(t, 0, g.Found)
	assert.NotNil(t, g.Products)
}
