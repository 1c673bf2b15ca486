package service

import (
	"RomXD/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMetricRepo struct {
	gotGameID string
	gotLimit  int64
	gotDate   string
}

func (s *stubMetricRepo) RecordEvent(ctx context.Context, gameID, date, eventType string) error {
	return nil
}

func (s *stubMetricRepo) ListByGame(ctx context.Context, gameID string, limit int64) ([]*model.GameDailyMetric, error) {
	s.gotGameID = gameID
	s.gotLimit = limit
	return []*model.GameDailyMetric{}, nil
}

func (s *stubMetricRepo) ListByDate(ctx context.Context, date string) ([]*model.GameDailyMetric, error) {
	s.gotDate = date
	return []*model.GameDailyMetric{}, nil
}

func TestGameMetricsClampsDays(t *testing.T) {
	repo := &stubMetricRepo{}
	svc := NewMetricService(repo)

	_, err := svc.GameMetrics(context.Background(), "g1", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(30), repo.gotLimit)

	_, err = svc.GameMetrics(context.Background(), "g1", 500)
	require.NoError(t, err)
	assert.Equal(t, int64(30), repo.gotLimit)

	_, err = svc.GameMetrics(context.Background(), "g1", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.gotLimit)
}

func TestGameMetricsRequiresGameID(t *testing.T) {
	svc := NewMetricService(&stubMetricRepo{})
	_, err := svc.GameMetrics(context.Background(), "", 7)
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestDailyBoardValidatesDate(t *testing.T) {
	repo := &stubMetricRepo{}
	svc := NewMetricService(repo)

	_, err := svc.DailyBoard(context.Background(), "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", repo.gotDate)

	_, err = svc.DailyBoard(context.Background(), "31/08/2026")
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestDailyBoardDefaultsToToday(t *testing.T) {
	repo := &stubMetricRepo{}
	svc := NewMetricService(repo)

	_, err := svc.DailyBoard(context.Background(), "")
	require.NoError(t, err)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, repo.gotDate)
}
