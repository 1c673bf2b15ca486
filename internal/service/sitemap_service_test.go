package service

import (
	"RomXD/internal/api/config"
	"RomXD/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type stubGameRepo struct {
	games []*model.Game
}

func (s *stubGameRepo) Create(ctx context.Context, game *model.Game) error { return nil }
func (s *stubGameRepo) GetByID(ctx context.Context, id string) (*model.Game, error) {
	for _, game := range s.games {
		if game.ID == id {
			return game, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}
func (s *stubGameRepo) GetBySlug(ctx context.Context, slug string) (*model.Game, error) {
	return nil, mongo.ErrNoDocuments
}
func (s *stubGameRepo) ExistsSlug(ctx context.Context, slug string) (bool, error) {
	return false, nil
}
func (s *stubGameRepo) List(ctx context.Context, platform, genre, gameType string, limit, offset int64) ([]*model.Game, error) {
	return s.games, nil
}
func (s *stubGameRepo) SearchByTitle(ctx context.Context, keyword string, limit int64) ([]*model.Game, error) {
	return nil, nil
}
func (s *stubGameRepo) Update(ctx context.Context, game *model.Game) error { return nil }
func (s *stubGameRepo) Delete(ctx context.Context, id string) error        { return nil }
func (s *stubGameRepo) CompareAndSetVote(ctx context.Context, id, prevRating string, prevCount int, newRating string, newCount int) (bool, error) {
	return true, nil
}
func (s *stubGameRepo) CompareAndSetDownloads(ctx context.Context, id, prev, next string) (bool, error) {
	return true, nil
}
func (s *stubGameRepo) Watch(ctx context.Context) (*mongo.ChangeStream, error) { return nil, nil }

func TestSitemapRebuild(t *testing.T) {
	prev := config.Cfg
	config.Cfg = &config.Config{Server: config.ServerConfig{BaseURL: "https://romxd.es/"}}
	t.Cleanup(func() { config.Cfg = prev })

	gameRepo := &stubGameRepo{games: []*model.Game{
		{ID: "g1", Slug: "final-fantasy-x"},
		{ID: "g2", Slug: "pes-2006"},
	}}
	settingsRepo := &stubSettingsRepo{settings: &model.Settings{
		MenuLinks: []model.MenuLink{
			{ID: "m1", Label: "Contacto", URL: "/contacto"},
			{ID: "m2", Label: "Discord", URL: "https://discord.gg/romxd"},
		},
	}}

	svc := NewSitemapService(gameRepo, settingsRepo)
	xml, err := svc.Rebuild(context.Background())
	require.NoError(t, err)

	assert.Contains(t, xml, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, xml, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, xml, "<loc>https://romxd.es/</loc>")
	assert.Contains(t, xml, "<loc>https://romxd.es/game/final-fantasy-x</loc>")
	assert.Contains(t, xml, "<loc>https://romxd.es/game/pes-2006</loc>")
	assert.Contains(t, xml, "<loc>https://romxd.es/contacto</loc>")
	// 站外导航链接不收录
	assert.NotContains(t, xml, "discord.gg")
	assert.Contains(t, xml, "<priority>1.0</priority>")
	assert.Contains(t, xml, "<priority>0.8</priority>")
}
