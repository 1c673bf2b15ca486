package handler

import (
	"RomXD/internal/api/dto"
	"RomXD/internal/pkg/response"
	"RomXD/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameSvc service.GameService
}

func NewGameHandler(gameSvc service.GameService) *GameHandler {
	return &GameHandler{
		gameSvc: gameSvc,
	}
}

// ListGames 目录列表，支持平台/类型/载体筛选
func (s *GameHandler) ListGames(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	games, err := s.gameSvc.ListGames(c.Request.Context(),
		c.Query("platform"), c.Query("genre"), c.Query("type"), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, games)
}

// SearchGames 目录全文检索
func (s *GameHandler) SearchGames(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	games, err := s.gameSvc.SearchGames(c.Request.Context(), c.Query("q"), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, games)
}

// GetGameBySlug 详情页入口
func (s *GameHandler) GetGameBySlug(c *gin.Context) {
	game, err := s.gameSvc.GetGameBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, game)
}

func (s *GameHandler) CreateGame(c *gin.Context) {
	var req dto.GameBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	game, err := s.gameSvc.CreateGame(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, game)
}

func (s *GameHandler) UpdateGame(c *gin.Context) {
	var req dto.GameBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	game, err := s.gameSvc.UpdateGame(c.Request.Context(), c.Param("game_id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, game)
}

func (s *GameHandler) DeleteGame(c *gin.Context) {
	if err := s.gameSvc.DeleteGame(c.Request.Context(), c.Param("game_id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Vote 公开投票，返回更新后的均分与票数
func (s *GameHandler) Vote(c *gin.Context) {
	var req dto.VoteDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	game, err := s.gameSvc.Vote(c.Request.Context(), c.Param("game_id"), req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"rating":    game.Rating,
		"voteCount": game.VoteCount,
	})
}

// RegisterDownload 下载点击上报
func (s *GameHandler) RegisterDownload(c *gin.Context) {
	if err := s.gameSvc.RegisterDownload(c.Request.Context(), c.Param("game_id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
