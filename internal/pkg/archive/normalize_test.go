package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQueryStripsDiacritics(t *testing.T) {
	assert.Equal(t, "cronica de un heroe", NormalizeQuery("crónica de un héroe"))
	assert.Equal(t, "espanol", NormalizeQuery("español"))
}

func TestNormalizeQueryRemovesUnsafeChars(t *testing.T) {
	assert.Equal(t, "god of war", NormalizeQuery(`god:of/war!`))
	assert.Equal(t, "juego_2004.iso", NormalizeQuery("juego_2004.iso"))
}

func TestNormalizeQueryCollapsesSpaces(t *testing.T) {
	assert.Equal(t, "final fantasy x", NormalizeQuery("  final   fantasy\tx  "))
}

func TestNormalizeQueryEmpty(t *testing.T) {
	assert.Equal(t, "", NormalizeQuery(""))
	assert.Equal(t, "", NormalizeQuery("¡¿"))
}
