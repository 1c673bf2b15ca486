package model

// GameDailyMetric 游戏每日互动统计，由 Kafka 消费者聚合写入
type GameDailyMetric struct {
	GameID    string `bson:"game_id" json:"gameId"`
	Date      string `bson:"date" json:"date"` // yyyy-MM-dd
	Votes     int64  `bson:"votes" json:"votes"`
	Downloads int64  `bson:"downloads" json:"downloads"`
	Comments  int64  `bson:"comments" json:"comments"`
}
