package repository

import (
	"RomXD/internal/model"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type GameRepo interface {
	Create(ctx context.Context, game *model.Game) error
	GetByID(ctx context.Context, id string) (*model.Game, error)
	GetBySlug(ctx context.Context, slug string) (*model.Game, error)
	ExistsSlug(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, platform, genre, gameType string, limit, offset int64) ([]*model.Game, error)
	SearchByTitle(ctx context.Context, keyword string, limit int64) ([]*model.Game, error)
	Update(ctx context.Context, game *model.Game) error
	Delete(ctx context.Context, id string) error
	CompareAndSetVote(ctx context.Context, id, prevRating string, prevCount int, newRating string, newCount int) (bool, error)
	CompareAndSetDownloads(ctx context.Context, id, prev, next string) (bool, error)
	Watch(ctx context.Context) (*mongo.ChangeStream, error)
}

type gameRepoImpl struct {
	db       *mongo.Database
	col      *mongo.Collection
	comments *mongo.Collection
}

func NewGameRepo(db *mongo.Database) GameRepo {
	return &gameRepoImpl{
		db:       db,
		col:      db.Collection("games"),
		comments: db.Collection("comments"),
	}
}

// Create 插入新游戏条目
func (s *gameRepoImpl) Create(ctx context.Context, game *model.Game) error {
	_, err := s.col.InsertOne(ctx, game)
	return err
}

// GetByID 根据主键获取条目
func (s *gameRepoImpl) GetByID(ctx context.Context, id string) (*model.Game, error) {
	var game model.Game
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// GetBySlug 根据路由标识获取条目
func (s *gameRepoImpl) GetBySlug(ctx context.Context, slug string) (*model.Game, error) {
	var game model.Game
	err := s.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// ExistsSlug 路由标识是否已被占用
func (s *gameRepoImpl) ExistsSlug(ctx context.Context, slug string) (bool, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List 按筛选条件分页获取条目，标题升序
func (s *gameRepoImpl) List(ctx context.Context, platform, genre, gameType string, limit, offset int64) ([]*model.Game, error) {
	filter := bson.M{}
	if platform != "" {
		filter["platform"] = platform
	}
	if genre != "" {
		filter["genre"] = genre
	}
	if gameType != "" {
		filter["type"] = gameType
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "title", Value: 1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var list []*model.Game
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SearchByTitle 标题模糊匹配，ES 不可用时的兜底检索
func (s *gameRepoImpl) SearchByTitle(ctx context.Context, keyword string, limit int64) ([]*model.Game, error) {
	filter := bson.M{"title": bson.M{"$regex": keyword, "$options": "i"}}
	opts := options.Find().
		SetSort(bson.D{{Key: "title", Value: 1}}).
		SetLimit(limit)

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var list []*model.Game
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Update 整体替换条目
func (s *gameRepoImpl) Update(ctx context.Context, game *model.Game) error {
	result, err := s.col.ReplaceOne(ctx, bson.M{"_id": game.ID}, game)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete 删除条目并级联清理其评论，事务保证两者一致
func (s *gameRepoImpl) Delete(ctx context.Context, id string) error {
	session, err := s.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		result, err := s.col.DeleteOne(sessCtx, bson.M{"_id": id})
		if err != nil {
			return nil, err
		}
		if result.DeletedCount == 0 {
			return nil, mongo.ErrNoDocuments
		}
		if _, err = s.comments.DeleteMany(sessCtx, bson.M{"game_id": id}); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

// CompareAndSetVote 乐观写入评分，仅当评分与票数仍是读取时的值才生效
func (s *gameRepoImpl) CompareAndSetVote(ctx context.Context, id, prevRating string, prevCount int, newRating string, newCount int) (bool, error) {
	filter := bson.M{"_id": id, "rating": prevRating, "vote_count": prevCount}
	update := bson.M{"$set": bson.M{"rating": newRating, "vote_count": newCount}}
	result, err := s.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// CompareAndSetDownloads 乐观写入下载计数
func (s *gameRepoImpl) CompareAndSetDownloads(ctx context.Context, id, prev, next string) (bool, error) {
	filter := bson.M{"_id": id, "downloads": prev}
	update := bson.M{"$set": bson.M{"downloads": next}}
	result, err := s.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// Watch 游戏集合的变更流，实时目录推送使用
func (s *gameRepoImpl) Watch(ctx context.Context) (*mongo.ChangeStream, error) {
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	return s.col.Watch(ctx, mongo.Pipeline{}, opts)
}
