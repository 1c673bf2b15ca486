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

type SettingsRepo interface {
	Get(ctx context.Context) (*model.Settings, error)
	Upsert(ctx context.Context, settings *model.Settings) error
}

type settingsRepoImpl struct {
	col *mongo.Collection
}

func NewSettingsRepo(db *mongo.Database) SettingsRepo {
	return &settingsRepoImpl{
		col: db.Collection("settings"),
	}
}

// Get 读取站点设置单文档，文档缺失时返回空设置
func (s *settingsRepoImpl) Get(ctx context.Context) (*model.Settings, error) {
	var settings model.Settings
	err := s.col.FindOne(ctx, bson.M{"_id": consts.SettingsDocID}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &model.Settings{
			ID:                 consts.SettingsDocID,
			Tags:               []string{},
			Platforms:          []string{},
			MenuLinks:          []model.MenuLink{},
			TrustedCollections: []string{},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert 整体覆盖站点设置
func (s *settingsRepoImpl) Upsert(ctx context.Context, settings *model.Settings) error {
	settings.ID = consts.SettingsDocID
	opts := options.Replace().SetUpsert(true)
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": consts.SettingsDocID}, settings, opts)
	return err
}
