package handler

import (
	"RomXD/internal/pkg/response"
	"RomXD/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type MetricHandler struct {
	metricSvc service.MetricService
}

func NewMetricHandler(metricSvc service.MetricService) *MetricHandler {
	return &MetricHandler{
		metricSvc: metricSvc,
	}
}

// GameMetrics 某游戏最近 N 天的互动统计
func (s *MetricHandler) GameMetrics(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	metrics, err := s.metricSvc.GameMetrics(c.Request.Context(), c.Param("game_id"), days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, metrics)
}

// DailyBoard 某一天的全站互动榜
func (s *MetricHandler) DailyBoard(c *gin.Context) {
	metrics, err := s.metricSvc.DailyBoard(c.Request.Context(), c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, metrics)
}
