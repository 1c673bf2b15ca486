package model

// Comment MongoDB 评论模型
// parent_id 为空表示楼主评论；非空时必须指向同一游戏下已存在的评论。
// 评论创建后不再更新，也不单独删除，随所属游戏一并清理。
type Comment struct {
	ID        string `bson:"_id" json:"id"`
	GameID    string `bson:"game_id" json:"gameId"`
	ParentID  string `bson:"parent_id,omitempty" json:"parentId,omitempty"`
	Author    string `bson:"author" json:"author"`
	Content   string `bson:"content" json:"content"`
	CreatedAt int64  `bson:"created_at" json:"createdAt"` // 毫秒时间戳
}
