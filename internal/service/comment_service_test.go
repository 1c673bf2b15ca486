package service

import (
	"RomXD/internal/model"
	"RomXD/internal/pkg/llm"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type stubCommentRepo struct {
	comments map[string]*model.Comment
	created  *model.Comment
}

func (s *stubCommentRepo) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	if comment, ok := s.comments[id]; ok {
		return comment, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (s *stubCommentRepo) ListByGame(ctx context.Context, gameID string) ([]*model.Comment, error) {
	return nil, nil
}

func (s *stubCommentRepo) CreateWithCounter(ctx context.Context, comment *model.Comment) error {
	s.created = comment
	return nil
}

func (s *stubCommentRepo) Watch(ctx context.Context, gameID string) (*mongo.ChangeStream, error) {
	return nil, nil
}

func newStubbedCommentService(moderate ModerateFunc) (*commentServiceImpl, *stubCommentRepo) {
	commentRepo := &stubCommentRepo{comments: map[string]*model.Comment{}}
	gameRepo := &stubGameRepo{games: []*model.Game{{ID: "g1", Slug: "g1"}}}
	return &commentServiceImpl{
		commentRepo: commentRepo,
		gameRepo:    gameRepo,
		moderate:    moderate,
	}, commentRepo
}

// 仅覆盖进入存储/远端审核之前就短路的校验分支
func newValidationOnlyService() CommentService {
	return &commentServiceImpl{}
}

func TestAddCommentRejectsEmpty(t *testing.T) {
	svc := newValidationOnlyService()

	_, err := svc.AddComment(context.Background(), "g1", "  ", "hola", "")
	assert.ErrorIs(t, err, ErrCommentEmpty)

	_, err = svc.AddComment(context.Background(), "g1", "Ana", "   ", "")
	assert.ErrorIs(t, err, ErrCommentEmpty)
}

func TestAddCommentRejectsDenylistedAuthor(t *testing.T) {
	svc := newValidationOnlyService()

	// 词表是大小写不敏感的子串匹配，昵称同样受检
	_, err := svc.AddComment(context.Background(), "g1", "SuperPUTOgamer", "buen juego", "")
	assert.ErrorIs(t, err, ErrCommentBadWords)
}

func TestAddCommentRejectsDenylistedContent(t *testing.T) {
	svc := newValidationOnlyService()

	_, err := svc.AddComment(context.Background(), "g1", "Ana", "gana BITCOIN gratis", "")
	assert.ErrorIs(t, err, ErrCommentBadWords)
}

func TestAddCommentRejectsLinkSpam(t *testing.T) {
	svc := newValidationOnlyService()

	_, err := svc.AddComment(context.Background(), "g1", "Ana", "mira http://a.com y http://b.com", "")
	assert.ErrorIs(t, err, ErrCommentLinkSpam)
}

func TestAddCommentAcceptsSingleURL(t *testing.T) {
	svc, repo := newStubbedCommentService(func(ctx context.Context, author, content string) (*llm.SafetyVerdict, error) {
		return &llm.SafetyVerdict{Safe: true}, nil
	})

	comment, err := svc.AddComment(context.Background(), "g1", "Ana", "mira http://a.com buen juego", "")
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, "mira http://a.com buen juego", comment.Content)
	assert.Equal(t, "g1", comment.GameID)
	assert.NotEmpty(t, comment.ID)
	assert.NotZero(t, comment.CreatedAt)
}

func TestAddCommentFailOpenWhenModerationUnreachable(t *testing.T) {
	// 远端审核不可达按安全放行，本地词表已兜底
	svc, repo := newStubbedCommentService(func(ctx context.Context, author, content string) (*llm.SafetyVerdict, error) {
		return nil, errors.New("connection refused")
	})

	comment, err := svc.AddComment(context.Background(), "g1", "Ana", "buen juego", "")
	require.NoError(t, err)
	assert.NotNil(t, repo.created)
	assert.Equal(t, "buen juego", comment.Content)
}

func TestAddCommentRejectedByModeration(t *testing.T) {
	svc, repo := newStubbedCommentService(func(ctx context.Context, author, content string) (*llm.SafetyVerdict, error) {
		return &llm.SafetyVerdict{Safe: false, Reason: "contenido ofensivo"}, nil
	})

	_, err := svc.AddComment(context.Background(), "g1", "Ana", "texto cualquiera", "")
	var reject *RejectError
	require.ErrorAs(t, err, &reject)
	assert.Equal(t, "contenido ofensivo", reject.Reason)
	assert.Nil(t, repo.created)
}

func TestAddCommentRejectsParentFromOtherGame(t *testing.T) {
	svc, repo := newStubbedCommentService(func(ctx context.Context, author, content string) (*llm.SafetyVerdict, error) {
		return &llm.SafetyVerdict{Safe: true}, nil
	})
	repo.comments["c-otro"] = &model.Comment{ID: "c-otro", GameID: "otro-juego"}

	_, err := svc.AddComment(context.Background(), "g1", "Ana", "respuesta", "c-otro")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestContainsDenyTokenCaseInsensitive(t *testing.T) {
	assert.True(t, containsDenyToken("MiErDa total"))
	assert.True(t, containsDenyToken("compra viagra aqui"))
	assert.False(t, containsDenyToken("juego excelente"))
}

func TestURLPatternCountsLinks(t *testing.T) {
	assert.Len(t, urlPattern.FindAllString("sin enlaces", -1), 0)
	assert.Len(t, urlPattern.FindAllString("ver https://a.com", -1), 1)
	assert.Len(t, urlPattern.FindAllString("http://a.com http://b.com", -1), 2)
}
