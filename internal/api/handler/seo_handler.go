package handler

import (
	"RomXD/internal/pkg/response"
	"RomXD/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SeoHandler struct {
	sitemapSvc service.SitemapService
}

func NewSeoHandler(sitemapSvc service.SitemapService) *SeoHandler {
	return &SeoHandler{
		sitemapSvc: sitemapSvc,
	}
}

// Sitemap 输出站点地图 XML
func (s *SeoHandler) Sitemap(c *gin.Context) {
	xml, err := s.sitemapSvc.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(xml))
}

// RebuildSitemap 管理端手动触发重建
func (s *SeoHandler) RebuildSitemap(c *gin.Context) {
	if _, err := s.sitemapSvc.Rebuild(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
