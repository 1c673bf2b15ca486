package handler

import (
	"RomXD/internal/api/dto"
	"RomXD/internal/model"
	"RomXD/internal/pkg/response"
	"RomXD/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsSvc service.SettingsService
}

func NewSettingsHandler(settingsSvc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsSvc: settingsSvc,
	}
}

// Get 公开读取站点设置，前端渲染导航/广告位用
func (s *SettingsHandler) Get(c *gin.Context) {
	settings, err := s.settingsSvc.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, settings)
}

// Update 管理端整体覆盖站点设置
func (s *SettingsHandler) Update(c *gin.Context) {
	var req model.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.settingsSvc.Update(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// AddTrustedCollection 登记可信集合
func (s *SettingsHandler) AddTrustedCollection(c *gin.Context) {
	var req dto.TrustedCollectionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	settings, err := s.settingsSvc.AddTrustedCollection(c.Request.Context(), req.Input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, settings)
}

// RemoveTrustedCollection 注销可信集合
func (s *SettingsHandler) RemoveTrustedCollection(c *gin.Context) {
	settings, err := s.settingsSvc.RemoveTrustedCollection(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, settings)
}
