package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSearchQueryWeights(t *testing.T) {
	q := BuildSearchQuery("god of", nil, true)

	assert.Contains(t, q, `"god of"^100`)
	assert.Contains(t, q, "(god AND of)^10")
	assert.Contains(t, q, "(god OR of)")
	assert.Contains(t, q, "(god* OR of*)")
	assert.Contains(t, q, "identifier:(god* OR of*)")
}

func TestBuildSearchQueryRestrictsToCollections(t *testing.T) {
	q := BuildSearchQuery("mario", []string{"colA", "colB"}, false)

	assert.Contains(t, q, `AND collection:("colA" OR "colB")`)
	assert.NotContains(t, q, "mediatype")
}

func TestBuildSearchQueryGlobalUsesMediatype(t *testing.T) {
	// 全站模式忽略可信集合
	q := BuildSearchQuery("mario", []string{"colA"}, true)
	assert.Contains(t, q, "AND mediatype:(software)")
	assert.NotContains(t, q, "colA")

	// 没有可信集合时也退回软件类目
	q = BuildSearchQuery("mario", nil, false)
	assert.Contains(t, q, "AND mediatype:(software)")
}

func TestBuildSearchQueryEmpty(t *testing.T) {
	assert.Equal(t, "", BuildSearchQuery("", nil, true))
	assert.Equal(t, "", BuildSearchQuery("   ", nil, false))
}
