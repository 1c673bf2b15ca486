package service

import (
	"RomXD/internal/api/config"
	"RomXD/internal/model"
	"RomXD/internal/pkg/archive"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSettingsRepo struct {
	settings *model.Settings
	err      error
}

func (s *stubSettingsRepo) Get(ctx context.Context) (*model.Settings, error) {
	return s.settings, s.err
}

func (s *stubSettingsRepo) Upsert(ctx context.Context, settings *model.Settings) error {
	s.settings = settings
	return nil
}

func newArchiveServiceForTest(t *testing.T, searchHandler, metadataHandler http.HandlerFunc, trusted []string) ArchiveService {
	t.Helper()

	searchSrv := httptest.NewServer(searchHandler)
	t.Cleanup(searchSrv.Close)
	metadataSrv := httptest.NewServer(metadataHandler)
	t.Cleanup(metadataSrv.Close)

	prev := config.Cfg
	config.Cfg = &config.Config{
		Archive: config.ArchiveConfig{
			SearchURL:   searchSrv.URL,
			MetadataURL: metadataSrv.URL,
			DownloadURL: "https://archive.org/download",
		},
	}
	t.Cleanup(func() { config.Cfg = prev })

	repo := &stubSettingsRepo{settings: &model.Settings{TrustedCollections: trusted}}
	return NewArchiveService(archive.NewClient(), repo)
}

func TestArchiveSearchDeepResultsBeforeStandard(t *testing.T) {
	search := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":{"docs":[
			{"identifier":"other-item","title":"Super Juego Pack","downloads":500,"collection":["software"]}
		]}}`))
	}
	metadata := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/colA", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"files":[
			{"name":"Super Juego (Es).iso","size":"1000","format":"ISO Image"},
			{"name":"Otro Titulo.iso","size":"2000","format":"ISO Image"},
			{"name":"notas.txt","size":"10","format":"Text"}
		]}`))
	}

	svc := newArchiveServiceForTest(t, search, metadata, []string{"colA"})
	items, err := svc.Search(context.Background(), "super juego", false)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// 文件级命中排在条目级命中之前
	assert.True(t, items[0].IsFileSearch)
	assert.Equal(t, "colA", items[0].Identifier)
	assert.Equal(t, "Super Juego (Es).iso", items[0].FileName)
	assert.False(t, items[1].IsFileSearch)
	assert.Equal(t, "other-item", items[1].Identifier)
}

func TestArchiveSearchDegradesWhenStandardFails(t *testing.T) {
	search := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	metadata := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"files":[{"name":"Mario (Es).iso","size":"1","format":"ISO Image"}]}`))
	}

	svc := newArchiveServiceForTest(t, search, metadata, []string{"colA"})
	items, err := svc.Search(context.Background(), "mario", false)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].IsFileSearch)
}

func TestArchiveSearchBothHalvesFail(t *testing.T) {
	failing := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	svc := newArchiveServiceForTest(t, failing, failing, []string{"colA"})
	_, err := svc.Search(context.Background(), "mario", false)
	assert.ErrorIs(t, err, ErrArchiveUnavailable)
}

func TestArchiveSearchEmptyQuery(t *testing.T) {
	svc := newArchiveServiceForTest(t,
		func(w http.ResponseWriter, r *http.Request) {},
		func(w http.ResponseWriter, r *http.Request) {}, nil)

	items, err := svc.Search(context.Background(), "  ¡¿  ", false)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestArchiveResolveLink(t *testing.T) {
	svc := newArchiveServiceForTest(t,
		func(w http.ResponseWriter, r *http.Request) {},
		func(w http.ResponseWriter, r *http.Request) {}, nil)

	link := svc.ResolveLink("colA", "game (Es).iso")
	assert.Equal(t, "https://archive.org/download/colA/game%20%28Es%29.iso", link)
}
