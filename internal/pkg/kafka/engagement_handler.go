package kafka

import (
	"RomXD/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
)

// EngagementHandler 消费互动事件流，落日维度统计
type EngagementHandler struct {
	metricRepo repository.MetricRepo
}

func NewEngagementHandler(metricRepo repository.MetricRepo) *EngagementHandler {
	return &EngagementHandler{metricRepo: metricRepo}
}

func (s *EngagementHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("engagement consumer setup")
	return nil
}

func (s *EngagementHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("engagement consumer cleanup")
	return nil
}

func (s *EngagementHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-engagement consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-engagement process batch error", "err", err)
		return err
	}
	return nil
}

func (s *EngagementHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	event, err := ToEngagementEvent(msg)
	if err != nil {
		// 脏消息直接丢弃，避免无限重试堵死分区
		return nil
	}

	ts := time.UnixMilli(event.Timestamp)
	if event.Timestamp <= 0 {
		ts = time.Now()
	}
	date := ts.UTC().Format("2006-01-02")

	return s.metricRepo.RecordEvent(ctx, event.GameID, date, event.Type)
}
