package repository

import (
	"RomXD/internal/model"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CommentRepo interface {
	GetByID(ctx context.Context, id string) (*model.Comment, error)
	ListByGame(ctx context.Context, gameID string) ([]*model.Comment, error)
	CreateWithCounter(ctx context.Context, comment *model.Comment) error
	Watch(ctx context.Context, gameID string) (*mongo.ChangeStream, error)
}

type commentRepoImpl struct {
	db    *mongo.Database
	col   *mongo.Collection
	games *mongo.Collection
}

func NewCommentRepo(db *mongo.Database) CommentRepo {
	return &commentRepoImpl{
		db:    db,
		col:   db.Collection("comments"),
		games: db.Collection("games"),
	}
}

// GetByID 根据主键获取评论
func (s *commentRepoImpl) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	var comment model.Comment
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByGame 获取某游戏的全部评论，按创建时间升序
func (s *commentRepoImpl) ListByGame(ctx context.Context, gameID string) ([]*model.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := s.col.Find(ctx, bson.M{"game_id": gameID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var list []*model.Comment
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// CreateWithCounter 插入评论并同步递增游戏冗余计数，事务保证两者要么同时生效要么都不生效
func (s *commentRepoImpl) CreateWithCounter(ctx context.Context, comment *model.Comment) error {
	session, err := s.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		if _, err := s.col.InsertOne(sessCtx, comment); err != nil {
			return nil, err
		}
		result, err := s.games.UpdateOne(sessCtx,
			bson.M{"_id": comment.GameID},
			bson.M{"$inc": bson.M{"comments": 1}},
		)
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, mongo.ErrNoDocuments
		}
		return nil, nil
	})
	return err
}

// Watch 单个游戏评论的变更流
func (s *commentRepoImpl) Watch(ctx context.Context, gameID string) (*mongo.ChangeStream, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"fullDocument.game_id": gameID}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	return s.col.Watch(ctx, pipeline, opts)
}
