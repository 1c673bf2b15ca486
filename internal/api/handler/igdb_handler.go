package handler

import (
	"RomXD/internal/pkg/response"
	"RomXD/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type IGDBHandler struct {
	igdbSvc service.IGDBService
}

func NewIGDBHandler(igdbSvc service.IGDBService) *IGDBHandler {
	return &IGDBHandler{
		igdbSvc: igdbSvc,
	}
}

// Search 按名称搜索元数据候选
func (s *IGDBHandler) Search(c *gin.Context) {
	results, err := s.igdbSvc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, results)
}

// Prefill 拉取完整元数据并返回表单预填条目
func (s *IGDBHandler) Prefill(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("igdb_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	game, err := s.igdbSvc.BuildPrefill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, game)
}
