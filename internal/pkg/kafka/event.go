package kafka

// EngagementEvent 站内互动事件，驱动日维度统计
type EngagementEvent struct {
	GameID    string `json:"gameId"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"` // 毫秒
}
