package handler

import (
	"RomXD/internal/api/dto"
	"RomXD/internal/pkg/response"
	"RomXD/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
	}
}

// GetThread 某游戏的完整评论线程，楼主倒序、楼内回复正序
func (s *CommentHandler) GetThread(c *gin.Context) {
	thread, err := s.commentSvc.GetThread(c.Request.Context(), c.Param("game_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, thread)
}

// AddComment 提交评论或回复
func (s *CommentHandler) AddComment(c *gin.Context) {
	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.commentSvc.AddComment(c.Request.Context(),
		c.Param("game_id"), req.Author, req.Content, req.ParentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}
