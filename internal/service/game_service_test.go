package service

import (
	"RomXD/internal/api/dto"
	"RomXD/internal/model"
	"RomXD/internal/pkg/es"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGameESRepo struct {
	docs    []*es.GameES
	err     error
	indexed *es.GameES
}

func (s *stubGameESRepo) SearchGames(ctx context.Context, queryText string, from, size int) ([]*es.GameES, error) {
	return s.docs, s.err
}

func (s *stubGameESRepo) SearchByFilter(ctx context.Context, platform, genre, gameType string, from, size int) ([]*es.GameES, error) {
	return s.docs, s.err
}

func (s *stubGameESRepo) IndexGame(ctx context.Context, game *es.GameES) error {
	s.indexed = game
	return nil
}

func (s *stubGameESRepo) DeleteGame(ctx context.Context, id string) error { return nil }

func TestListGamesFilteredViaIndex(t *testing.T) {
	gameRepo := &stubGameRepo{games: []*model.Game{
		{ID: "g1", Slug: "viejo", Platform: []string{"PSP"}},
		{ID: "g2", Slug: "nuevo", Platform: []string{"PSP"}},
	}}
	esRepo := &stubGameESRepo{docs: []*es.GameES{{ID: "g2"}, {ID: "g1"}}}
	svc := &gameServiceImpl{gameRepo: gameRepo, gameESRepo: esRepo}

	games, err := svc.ListGames(context.Background(), "PSP", "", "", 1, 20)
	require.NoError(t, err)
	require.Len(t, games, 2)
	// 顺序由索引决定，新条目排前
	assert.Equal(t, "g2", games[0].ID)
	assert.Equal(t, "g1", games[1].ID)
}

func TestListGamesFallsBackWhenIndexUnavailable(t *testing.T) {
	gameRepo := &stubGameRepo{games: []*model.Game{{ID: "g1", Slug: "a"}}}
	esRepo := &stubGameESRepo{err: errors.New("connection refused")}
	svc := &gameServiceImpl{gameRepo: gameRepo, gameESRepo: esRepo}

	games, err := svc.ListGames(context.Background(), "PSP", "", "", 1, 20)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "g1", games[0].ID)
}

func TestUpdateGameKeepsIndexCreationTime(t *testing.T) {
	gameRepo := &stubGameRepo{games: []*model.Game{
		{ID: "g1", Slug: "pes-2006", Title: "PES 2006", Type: model.GameTypeISO, CreatedAt: 1700000000000},
	}}
	esRepo := &stubGameESRepo{}
	svc := &gameServiceImpl{gameRepo: gameRepo, gameESRepo: esRepo}

	updated, err := svc.UpdateGame(context.Background(), "g1", &dto.GameBaseDTO{
		Slug:  "pes-2006",
		Title: "PES 2006 Edición",
		Type:  model.GameTypeISO,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000000), updated.CreatedAt)
	require.NotNil(t, esRepo.indexed)
	assert.Equal(t, int64(1700000000000), esRepo.indexed.CreatedAt)
}

func TestNextRatingRunningMean(t *testing.T) {
	rating, count := NextRating("4.0", 3, 2)
	assert.Equal(t, "3.5", rating)
	assert.Equal(t, 4, count)
}

func TestNextRatingFirstVote(t *testing.T) {
	rating, count := NextRating("0", 0, 5)
	assert.Equal(t, "5.0", rating)
	assert.Equal(t, 1, count)
}

func TestNextRatingGarbageCurrent(t *testing.T) {
	// 历史数据异常时按 0 分起算，不让投票接口崩掉
	rating, count := NextRating("n/a", 2, 3)
	assert.Equal(t, "1.0", rating)
	assert.Equal(t, 3, count)
}

func TestParseDisplayCount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"120", 120},
		{"1.2k", 1200},
		{"15K", 15000},
		{"3m", 3000000},
		{"1.5M", 1500000},
		{" 42 ", 42},
		{"", 0},
		{"abc", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseDisplayCount(c.in), "input %q", c.in)
	}
}
