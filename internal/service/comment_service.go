package service

import (
	"RomXD/internal/model"
	"RomXD/internal/pkg/consts"
	"RomXD/internal/pkg/kafka"
	"RomXD/internal/pkg/llm"
	"RomXD/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// denyTokens 本地词表，大小写不敏感子串匹配，是远端审核不可用时的兜底
var denyTokens = []string{
	"puta", "puto", "mierda", "imbecil", "estupido", "idiota", "verga",
	"pene", "zorra", "maricon", "tragapito", "chupamela", "culero",
	"pendejo", "malparido", "sex", "xxx", "porn", "viagra", "casino", "bitcoin",
}

var urlPattern = regexp.MustCompile(`https?://[^\s]+`)

type CommentService interface {
	GetThread(ctx context.Context, gameID string) ([]*ThreadedComment, error)
	AddComment(ctx context.Context, gameID, author, content, parentID string) (*model.Comment, error)
}

// ModerateFunc 远端内容审核调用，可替换以便隔离外部依赖
type ModerateFunc func(ctx context.Context, author, content string) (*llm.SafetyVerdict, error)

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	gameRepo    repository.GameRepo
	producer    *kafka.Producer
	moderate    ModerateFunc
}

func NewCommentService(commentRepo repository.CommentRepo, gameRepo repository.GameRepo, producer *kafka.Producer) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		gameRepo:    gameRepo,
		producer:    producer,
		moderate:    llm.CheckContentSafety,
	}
}

// GetThread 获取某游戏的完整评论线程
func (s *commentServiceImpl) GetThread(ctx context.Context, gameID string) ([]*ThreadedComment, error) {
	comments, err := s.commentRepo.ListByGame(ctx, gameID)
	if err != nil {
		log.ErrorContext(ctx, "评论列表读取失败", "gameId", gameID, "error", err)
		return nil, mapStoreErr(err)
	}
	return BuildThread(comments), nil
}

// AddComment 评论准入流水线：格式校验 -> 本地词表与链接数 -> 远端审核。
// 任一环节失败立即短路；远端审核不可达按安全放行。
func (s *commentServiceImpl) AddComment(ctx context.Context, gameID, author, content, parentID string) (*model.Comment, error) {
	author = strings.TrimSpace(author)
	content = strings.TrimSpace(content)
	if author == "" || content == "" {
		return nil, ErrCommentEmpty
	}

	if containsDenyToken(author) || containsDenyToken(content) {
		return nil, ErrCommentBadWords
	}
	if len(urlPattern.FindAllString(content, -1)) > 1 {
		return nil, ErrCommentLinkSpam
	}

	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrGameNotFound
		}
		return nil, mapStoreErr(err)
	}

	if parentID != "" {
		parent, err := s.commentRepo.GetByID(ctx, parentID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrCommentNotFound
			}
			return nil, mapStoreErr(err)
		}
		if parent.GameID != gameID {
			return nil, ErrCommentNotFound
		}
	}

	verdict, err := s.moderate(ctx, author, content)
	if err != nil {
		// 审核服务降级不拦截正常评论，本地词表已兜底
		log.WarnContext(ctx, "远端审核不可达，按安全放行", "error", err)
	} else if !verdict.Safe {
		reason := verdict.Reason
		if reason == "" {
			reason = ErrCommentBadWords.Error()
		}
		return nil, &RejectError{Reason: reason}
	}

	comment := &model.Comment{
		ID:        uuid.NewString(),
		GameID:    gameID,
		ParentID:  parentID,
		Author:    author,
		Content:   content,
		CreatedAt: time.Now().UnixMilli(),
	}

	if err = s.commentRepo.CreateWithCounter(ctx, comment); err != nil {
		log.ErrorContext(ctx, "评论写入失败", "gameId", gameID, "error", err)
		return nil, mapStoreErr(err)
	}

	s.producer.EmitEngagement(ctx, gameID, consts.EventComment)
	return comment, nil
}

func containsDenyToken(text string) bool {
	lower := strings.ToLower(text)
	for _, token := range denyTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}
