package job

import (
	"RomXD/internal/service"
	"context"
	log "log/slog"
	"time"
)

// SitemapJob 定时重建站点地图缓存
type SitemapJob struct {
	sitemapSvc service.SitemapService
}

func NewSitemapJob(sitemapSvc service.SitemapService) *SitemapJob {
	return &SitemapJob{sitemapSvc: sitemapSvc}
}

func (s *SitemapJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := s.sitemapSvc.Rebuild(ctx); err != nil {
		log.Error("站点地图定时重建失败", "err", err)
		return
	}
	log.Info("站点地图定时重建完成")
}
