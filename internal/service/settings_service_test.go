package service

import (
	"RomXD/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractArchiveIDFromDetailsURL(t *testing.T) {
	assert.Equal(t, "sony_psp_isos",
		ExtractArchiveID("https://archive.org/details/sony_psp_isos"))
	assert.Equal(t, "sony_psp_isos",
		ExtractArchiveID("http://archive.org/details/sony_psp_isos/extra/path"))
}

func TestExtractArchiveIDTrimsQueryAndFragment(t *testing.T) {
	assert.Equal(t, "colA",
		ExtractArchiveID("https://archive.org/details/colA?tab=collection"))
	assert.Equal(t, "colA",
		ExtractArchiveID("https://archive.org/details/colA#about"))
}

func TestExtractArchiveIDBareIdentifier(t *testing.T) {
	assert.Equal(t, "redump-psx-es", ExtractArchiveID("  redump-psx-es  "))
}

func TestAddTrustedCollectionIdempotent(t *testing.T) {
	repo := &stubSettingsRepo{settings: &model.Settings{TrustedCollections: []string{"colA"}}}
	svc := NewSettingsService(repo)

	settings, err := svc.AddTrustedCollection(context.Background(), "https://archive.org/details/colA")
	require.NoError(t, err)
	assert.Equal(t, []string{"colA"}, settings.TrustedCollections)

	settings, err = svc.AddTrustedCollection(context.Background(), "colB")
	require.NoError(t, err)
	assert.Equal(t, []string{"colA", "colB"}, settings.TrustedCollections)
}

func TestRemoveTrustedCollection(t *testing.T) {
	repo := &stubSettingsRepo{settings: &model.Settings{TrustedCollections: []string{"colA", "colB"}}}
	svc := NewSettingsService(repo)

	settings, err := svc.RemoveTrustedCollection(context.Background(), "colA")
	require.NoError(t, err)
	assert.Equal(t, []string{"colB"}, settings.TrustedCollections)

	// 不存在的标识注销是空操作
	settings, err = svc.RemoveTrustedCollection(context.Background(), "colX")
	require.NoError(t, err)
	assert.Equal(t, []string{"colB"}, settings.TrustedCollections)
}

func TestExtractArchiveIDRejectsInvalid(t *testing.T) {
	assert.Equal(t, "", ExtractArchiveID(""))
	assert.Equal(t, "", ExtractArchiveID("   "))
	// 带斜杠但不是归档站链接
	assert.Equal(t, "", ExtractArchiveID("https://example.com/details/colA"))
	assert.Equal(t, "", ExtractArchiveID("foo/bar"))
}
