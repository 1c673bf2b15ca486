package igdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSearchTerm(t *testing.T) {
	assert.Equal(t, "final fantasy", sanitizeSearchTerm("final fantasy"))
	assert.Equal(t, "juego raro", sanitizeSearchTerm(`juego "raro"`))
	assert.Equal(t, "a; fields id;", sanitizeSearchTerm(`a"; fields id;"`))
	assert.Equal(t, "barra", sanitizeSearchTerm(`barra\`))
}

func TestImageURL(t *testing.T) {
	assert.Equal(t,
		"https://images.igdb.com/igdb/image/upload/t_cover_big/abc123.jpg",
		ImageURL("abc123", "cover_big"))
	assert.Equal(t, "", ImageURL("", "cover_big"))
}
