package repository

import (
	"RomXD/internal/model"
	"RomXD/internal/pkg/consts"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MetricRepo interface {
	RecordEvent(ctx context.Context, gameID, date, eventType string) error
	ListByGame(ctx context.Context, gameID string, limit int64) ([]*model.GameDailyMetric, error)
	ListByDate(ctx context.Context, date string) ([]*model.GameDailyMetric, error)
}

type metricRepoImpl struct {
	col *mongo.Collection
}

func NewMetricRepo(db *mongo.Database) MetricRepo {
	return &metricRepoImpl{
		col: db.Collection("game_daily_metrics"),
	}
}

// RecordEvent 按游戏与日期递增对应计数，文档不存在则创建
func (s *metricRepoImpl) RecordEvent(ctx context.Context, gameID, date, eventType string) error {
	var field string
	switch eventType {
	case consts.EventVote:
		field = "votes"
	case consts.EventDownload:
		field = "downloads"
	case consts.EventComment:
		field = "comments"
	default:
		return errors.New("未知的互动事件类型")
	}

	filter := bson.M{"game_id": gameID, "date": date}
	update := bson.M{"$inc": bson.M{field: 1}}
	opts := options.Update().SetUpsert(true)

	_, err := s.col.UpdateOne(ctx, filter, update, opts)
	return err
}

// ListByGame 获取某游戏最近的日统计，日期倒序
func (s *metricRepoImpl) ListByGame(ctx context.Context, gameID string, limit int64) ([]*model.GameDailyMetric, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.col.Find(ctx, bson.M{"game_id": gameID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var list []*model.GameDailyMetric
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListByDate 获取某一天全部游戏的统计
func (s *metricRepoImpl) ListByDate(ctx context.Context, date string) ([]*model.GameDailyMetric, error) {
	opts := options.Find().SetSort(bson.D{{Key: "downloads", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.M{"date": date}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var list []*model.GameDailyMetric
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}
