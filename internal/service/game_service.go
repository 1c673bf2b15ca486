package service

import (
	"RomXD/internal/api/dto"
	"RomXD/internal/model"
	"RomXD/internal/pkg/consts"
	"RomXD/internal/pkg/es"
	"RomXD/internal/pkg/kafka"
	"RomXD/internal/pkg/util"
	"RomXD/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/mongo"
)

// voteRetryLimit 乐观更新冲突时的最大重试次数
const voteRetryLimit = 3

type GameService interface {
	CreateGame(ctx context.Context, gameDTO *dto.GameBaseDTO) (*model.Game, error)
	UpdateGame(ctx context.Context, id string, gameDTO *dto.GameBaseDTO) (*model.Game, error)
	DeleteGame(ctx context.Context, id string) error
	GetGameByID(ctx context.Context, id string) (*model.Game, error)
	GetGameBySlug(ctx context.Context, slug string) (*model.Game, error)
	ListGames(ctx context.Context, platform, genre, gameType string, page, pageSize int) ([]*model.Game, error)
	SearchGames(ctx context.Context, keyword string, page, pageSize int) ([]*model.Game, error)
	Vote(ctx context.Context, id string, value int) (*model.Game, error)
	RegisterDownload(ctx context.Context, id string) error
}

type gameServiceImpl struct {
	gameRepo   repository.GameRepo
	gameESRepo es.GameRepo
	producer   *kafka.Producer
}

func NewGameService(gameRepo repository.GameRepo, gameESRepo es.GameRepo, producer *kafka.Producer) GameService {
	return &gameServiceImpl{
		gameRepo:   gameRepo,
		gameESRepo: gameESRepo,
		producer:   producer,
	}
}

// CreateGame 新建条目，slug 缺省时由标题派生
func (s *gameServiceImpl) CreateGame(ctx context.Context, gameDTO *dto.GameBaseDTO) (*model.Game, error) {
	game := &model.Game{}
	if err := copier.Copy(game, gameDTO); err != nil {
		return nil, ErrParamInvalid
	}

	if strings.TrimSpace(game.Title) == "" {
		return nil, ErrParamInvalid
	}
	if game.Slug == "" {
		game.Slug = util.Slugify(game.Title)
	}
	if game.Slug == "" {
		return nil, ErrParamInvalid
	}

	exists, err := s.gameRepo.ExistsSlug(ctx, game.Slug)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if exists {
		return nil, ErrSlugExist
	}

	game.ID = uuid.NewString()
	if game.Downloads == "" {
		game.Downloads = "0"
	}
	if game.Rating == "" {
		game.Rating = "0"
	}
	game.VoteCount = 0
	game.Comments = 0
	game.CreatedAt = time.Now().UnixMilli()
	if game.Screenshots == nil {
		game.Screenshots = []string{}
	}

	if err = s.gameRepo.Create(ctx, game); err != nil {
		log.ErrorContext(ctx, "游戏创建失败", "slug", game.Slug, "error", err)
		return nil, mapStoreErr(err)
	}

	s.indexGame(ctx, game)
	return game, nil
}

// UpdateGame 整体更新条目，slug 变更时检查占用
func (s *gameServiceImpl) UpdateGame(ctx context.Context, id string, gameDTO *dto.GameBaseDTO) (*model.Game, error) {
	current, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrGameNotFound
		}
		return nil, mapStoreErr(err)
	}

	game := &model.Game{}
	if err = copier.Copy(game, gameDTO); err != nil {
		return nil, ErrParamInvalid
	}
	game.ID = current.ID
	if game.Slug == "" {
		game.Slug = current.Slug
	}
	// 互动字段与创建时间不走管理端更新
	game.Downloads = current.Downloads
	game.Rating = current.Rating
	game.VoteCount = current.VoteCount
	game.Comments = current.Comments
	game.CreatedAt = current.CreatedAt

	if game.Slug != current.Slug {
		exists, err := s.gameRepo.ExistsSlug(ctx, game.Slug)
		if err != nil {
			return nil, mapStoreErr(err)
		}
		if exists {
			return nil, ErrSlugExist
		}
	}

	if err = s.gameRepo.Update(ctx, game); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrGameNotFound
		}
		log.ErrorContext(ctx, "游戏更新失败", "id", id, "error", err)
		return nil, mapStoreErr(err)
	}

	s.indexGame(ctx, game)
	return game, nil
}

// DeleteGame 删除条目及其评论，并移除检索文档
func (s *gameServiceImpl) DeleteGame(ctx context.Context, id string) error {
	if err := s.gameRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrGameNotFound
		}
		log.ErrorContext(ctx, "游戏删除失败", "id", id, "error", err)
		return mapStoreErr(err)
	}

	if err := s.gameESRepo.DeleteGame(ctx, id); err != nil {
		log.WarnContext(ctx, "检索文档删除失败", "id", id, "error", err)
	}
	return nil
}

func (s *gameServiceImpl) GetGameByID(ctx context.Context, id string) (*model.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrGameNotFound
		}
		return nil, mapStoreErr(err)
	}
	return game, nil
}

func (s *gameServiceImpl) GetGameBySlug(ctx context.Context, slug string) (*model.Game, error) {
	game, err := s.gameRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrGameNotFound
		}
		return nil, mapStoreErr(err)
	}
	return game, nil
}

// ListGames 按筛选条件分页列出条目。
// 带筛选时优先走 ES 过滤（新条目排前），ES 不可用时退回数据库扫描。
func (s *gameServiceImpl) ListGames(ctx context.Context, platform, genre, gameType string, page, pageSize int) ([]*model.Game, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	if platform != "" || genre != "" || gameType != "" {
		docs, err := s.gameESRepo.SearchByFilter(ctx, platform, genre, gameType, (page-1)*pageSize, pageSize)
		if err == nil {
			games := make([]*model.Game, 0, len(docs))
			for _, doc := range docs {
				game, getErr := s.gameRepo.GetByID(ctx, doc.ID)
				if getErr != nil {
					continue
				}
				games = append(games, game)
			}
			return games, nil
		}
		log.WarnContext(ctx, "ES 过滤失败，退回数据库扫描", "error", err)
	}

	games, err := s.gameRepo.List(ctx, platform, genre, gameType, int64(pageSize), int64((page-1)*pageSize))
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return games, nil
}

// SearchGames 优先走 ES 全文检索，ES 不可用时退回标题模糊匹配
func (s *gameServiceImpl) SearchGames(ctx context.Context, keyword string, page, pageSize int) ([]*model.Game, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return s.ListGames(ctx, "", "", "", page, pageSize)
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	docs, err := s.gameESRepo.SearchGames(ctx, keyword, (page-1)*pageSize, pageSize)
	if err == nil {
		games := make([]*model.Game, 0, len(docs))
		for _, doc := range docs {
			game, getErr := s.gameRepo.GetByID(ctx, doc.ID)
			if getErr != nil {
				continue
			}
			games = append(games, game)
		}
		return games, nil
	}

	log.WarnContext(ctx, "ES 检索失败，退回数据库模糊匹配", "keyword", keyword, "error", err)
	games, err := s.gameRepo.SearchByTitle(ctx, keyword, int64(pageSize))
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return games, nil
}

// Vote 投票并维护均分，基于读-改-条件写的乐观并发
func (s *gameServiceImpl) Vote(ctx context.Context, id string, value int) (*model.Game, error) {
	if value < 1 || value > 5 {
		return nil, ErrVoteOutOfRange
	}

	for i := 0; i < voteRetryLimit; i++ {
		game, err := s.gameRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrGameNotFound
			}
			return nil, mapStoreErr(err)
		}

		newRating, newCount := NextRating(game.Rating, game.VoteCount, value)
		ok, err := s.gameRepo.CompareAndSetVote(ctx, id, game.Rating, game.VoteCount, newRating, newCount)
		if err != nil {
			return nil, mapStoreErr(err)
		}
		if ok {
			game.Rating = newRating
			game.VoteCount = newCount
			s.producer.EmitEngagement(ctx, id, consts.EventVote)
			return game, nil
		}
		// 并发投票撞上了，重读重算
	}

	log.WarnContext(ctx, "投票重试耗尽", "id", id)
	return nil, UnExpectedError
}

// RegisterDownload 下载点击计数，k/m 后缀展示值转为精确值后递增
func (s *gameServiceImpl) RegisterDownload(ctx context.Context, id string) error {
	for i := 0; i < voteRetryLimit; i++ {
		game, err := s.gameRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrGameNotFound
			}
			return mapStoreErr(err)
		}

		next := strconv.FormatInt(ParseDisplayCount(game.Downloads)+1, 10)
		ok, err := s.gameRepo.CompareAndSetDownloads(ctx, id, game.Downloads, next)
		if err != nil {
			return mapStoreErr(err)
		}
		if ok {
			s.producer.EmitEngagement(ctx, id, consts.EventDownload)
			return nil
		}
	}

	log.WarnContext(ctx, "下载计数重试耗尽", "id", id)
	return UnExpectedError
}

func (s *gameServiceImpl) indexGame(ctx context.Context, game *model.Game) {
	doc := &es.GameES{
		ID:          game.ID,
		Slug:        game.Slug,
		Title:       game.Title,
		Description: game.ShortDescription + " " + game.FullDescription,
		Genre:       game.Genre,
		Platform:    strings.Join(game.Platform, " "),
		Type:        game.Type,
		Developer:   game.Developer,
		ReleaseDate: game.ReleaseDate,
		Downloads:   game.Downloads,
		Rating:      game.Rating,
		CoverImage:  game.CoverImage,
		CreatedAt:   game.CreatedAt,
	}
	if err := s.gameESRepo.IndexGame(ctx, doc); err != nil {
		log.WarnContext(ctx, "检索文档写入失败", "id", game.ID, "error", err)
	}
}

// NextRating 以当前均分与票数计算加入新票后的均分，保留一位小数
func NextRating(rating string, voteCount, vote int) (string, int) {
	current, err := strconv.ParseFloat(rating, 64)
	if err != nil {
		current = 0
	}
	total := current*float64(voteCount) + float64(vote)
	newCount := voteCount + 1
	return fmt.Sprintf("%.1f", total/float64(newCount)), newCount
}

// ParseDisplayCount 解析展示用计数，支持 k/m 后缀（如 "1.2k"、"3m"）
func ParseDisplayCount(s string) int64 {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0
	}

	multiplier := float64(1)
	switch {
	case strings.HasSuffix(s, "k"):
		multiplier = 1_000
		s = strings.TrimSuffix(s, "k")
	case strings.HasSuffix(s, "m"):
		multiplier = 1_000_000
		s = strings.TrimSuffix(s, "m")
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return int64(value * multiplier)
}
