package service

import (
	"RomXD/internal/model"
	"RomXD/internal/repository"
	"context"
	"time"
)

type MetricService interface {
	GameMetrics(ctx context.Context, gameID string, days int) ([]*model.GameDailyMetric, error)
	DailyBoard(ctx context.Context, date string) ([]*model.GameDailyMetric, error)
}

type metricServiceImpl struct {
	metricRepo repository.MetricRepo
}

func NewMetricService(metricRepo repository.MetricRepo) MetricService {
	return &metricServiceImpl{metricRepo: metricRepo}
}

// GameMetrics 某游戏最近 N 天的互动统计
func (s *metricServiceImpl) GameMetrics(ctx context.Context, gameID string, days int) ([]*model.GameDailyMetric, error) {
	if gameID == "" {
		return nil, ErrParamInvalid
	}
	if days < 1 || days > 90 {
		days = 30
	}
	metrics, err := s.metricRepo.ListByGame(ctx, gameID, int64(days))
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return metrics, nil
}

// DailyBoard 某一天全部游戏的互动榜，缺省取当天
func (s *metricServiceImpl) DailyBoard(ctx context.Context, date string) ([]*model.GameDailyMetric, error) {
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrParamInvalid
	}
	metrics, err := s.metricRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return metrics, nil
}
