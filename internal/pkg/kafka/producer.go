package kafka

import (
	"RomXD/internal/api/config"
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// Producer 互动事件生产者，投递失败只记日志不影响主流程
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducer 创建同步生产者
func NewProducer(cfg *config.Config) (*Producer, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.RequiredAcks = sarama.WaitForLocal

	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &Producer{
		producer: producer,
		topic:    cfg.KafkaEngagementConsumer.Topic,
	}, nil
}

// EmitEngagement 发送一条互动事件，按游戏 ID 分区保序。
// 生产者未接通时事件直接丢弃，互动本身不受影响。
func (p *Producer) EmitEngagement(ctx context.Context, gameID, eventType string) {
	if p == nil || p.producer == nil {
		return
	}
	event := EngagementEvent{
		GameID:    gameID,
		Type:      eventType,
		Timestamp: time.Now().UnixMilli(),
	}
	value, err := json.Marshal(event)
	if err != nil {
		log.ErrorContext(ctx, "互动事件序列化失败", "error", err)
		return
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(gameID),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		log.ErrorContext(ctx, "互动事件投递失败", "gameId", gameID, "type", eventType, "error", err)
	}
}

// Close 关闭生产者
func (p *Producer) Close() error {
	return p.producer.Close()
}
