package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwrapList(t *testing.T) {
	assert.Equal(t, []string{"dry skin", "oily skin"}, UnwrapList("['dry skin', 'oily skin']"))
	assert.Equal(t, []string{"all skin"}, UnwrapList(`["all skin"]`))
	assert.Equal(t, []string{"water", "glycerin"}, UnwrapList("water, glycerin"))
	assert.Equal(t, []string{"a", "b"}, UnwrapList("[' a ', '', 'b' ,]"))
	assert.Nil(t, UnwrapList(""))
	assert.Nil(t, UnwrapList("[]"))
}
