package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterFilesDropsUnknownExtensions(t *testing.T) {
	files := []File{
		{Name: "game(En).iso"},
		{Name: "game(Es).iso"},
		{Name: "readme.txt"},
		{Name: "cover.jpg"},
		{Name: "rom-pack.7z"},
	}

	kept := FilterFiles(files)
	names := make([]string, 0, len(kept))
	for _, f := range kept {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"game(En).iso", "game(Es).iso", "rom-pack.7z"}, names)
}

func TestFilterFilesCaseInsensitiveExtension(t *testing.T) {
	kept := FilterFiles([]File{{Name: "JUEGO.ISO"}, {Name: "notas.TXT"}})
	assert.Len(t, kept, 1)
	assert.Equal(t, "JUEGO.ISO", kept[0].Name)
}

func TestSortFilesByLocalePriorityFirst(t *testing.T) {
	files := []File{
		{Name: "game(En).iso"},
		{Name: "game(Es).iso"},
		{Name: "game(Jp).iso"},
	}

	SortFilesByLocale(files)
	assert.Equal(t, "game(Es).iso", files[0].Name)
	// 非优先组保持原有相对顺序
	assert.Equal(t, "game(En).iso", files[1].Name)
	assert.Equal(t, "game(Jp).iso", files[2].Name)
}

func TestSortFilesByLocaleStableWithinGroups(t *testing.T) {
	files := []File{
		{Name: "a (Europe).iso"},
		{Name: "b (Spain).iso"},
		{Name: "c (USA).iso"},
		{Name: "d (Japan).iso"},
	}

	SortFilesByLocale(files)
	assert.Equal(t, "a (Europe).iso", files[0].Name)
	assert.Equal(t, "b (Spain).iso", files[1].Name)
	assert.Equal(t, "c (USA).iso", files[2].Name)
	assert.Equal(t, "d (Japan).iso", files[3].Name)
}

func TestHasPriorityTermMarkers(t *testing.T) {
	assert.True(t, hasPriorityTerm("Juego [ES].iso"))
	assert.True(t, hasPriorityTerm("Game (Europe) (En,Es,It).iso"))
	assert.True(t, hasPriorityTerm("Pack MULTI5.7z"))
	assert.False(t, hasPriorityTerm("Game (USA).iso"))
}

func TestMatchesAllTerms(t *testing.T) {
	assert.True(t, MatchesAllTerms("Final Fantasy X (Es).iso", []string{"final", "fantasy"}))
	assert.True(t, MatchesAllTerms("FINAL-fantasy-x.iso", []string{"Final"}))
	assert.False(t, MatchesAllTerms("Final Fantasy X.iso", []string{"final", "vii"}))
	assert.False(t, MatchesAllTerms("cualquiera.iso", nil))
}
