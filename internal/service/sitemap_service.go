package service

import (
	"RomXD/internal/api/config"
	"RomXD/internal/pkg/consts"
	"RomXD/internal/pkg/redis"
	"RomXD/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"
)

// sitemapCacheTTL 站点地图缓存时长，定时任务会提前刷新
const sitemapCacheTTL = 48 * time.Hour

type SitemapService interface {
	Get(ctx context.Context) (string, error)
	Rebuild(ctx context.Context) (string, error)
}

type sitemapServiceImpl struct {
	gameRepo     repository.GameRepo
	settingsRepo repository.SettingsRepo
}

func NewSitemapService(gameRepo repository.GameRepo, settingsRepo repository.SettingsRepo) SitemapService {
	return &sitemapServiceImpl{gameRepo: gameRepo, settingsRepo: settingsRepo}
}

// Get 读取缓存的站点地图，缺失时现场重建
func (s *sitemapServiceImpl) Get(ctx context.Context) (string, error) {
	cached, err := redis.GetValue(ctx, consts.SitemapKey)
	if err == nil && cached != "" {
		return cached, nil
	}
	return s.Rebuild(ctx)
}

// Rebuild 全量生成 XML 并写入缓存
func (s *sitemapServiceImpl) Rebuild(ctx context.Context) (string, error) {
	games, err := s.gameRepo.List(ctx, "", "", "", 0, 0)
	if err != nil {
		log.ErrorContext(ctx, "站点地图生成失败", "error", err)
		return "", mapStoreErr(err)
	}

	baseURL := strings.TrimSuffix(config.Cfg.Server.BaseURL, "/")
	now := time.Now().UTC().Format("2006-01-02")

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")

	writeURL := func(loc, priority string) {
		builder.WriteString("  <url>\n")
		builder.WriteString("    <loc>" + loc + "</loc>\n")
		builder.WriteString("    <lastmod>" + now + "</lastmod>\n")
		builder.WriteString("    <priority>" + priority + "</priority>\n")
		builder.WriteString("  </url>\n")
	}

	writeURL(baseURL+"/", "1.0")
	for _, game := range games {
		writeURL(baseURL+"/game/"+game.Slug, "0.8")
	}

	// 站内导航页一并收录，站外链接不属于本站地图
	if settings, err := s.settingsRepo.Get(ctx); err == nil {
		for _, link := range settings.MenuLinks {
			if strings.HasPrefix(link.URL, "/") {
				writeURL(baseURL+link.URL, "0.5")
			}
		}
	} else {
		log.WarnContext(ctx, "站点设置读取失败，导航链接不收录", "error", err)
	}
	builder.WriteString("</urlset>\n")

	xml := builder.String()
	if err = redis.SetWithExpiration(ctx, consts.SitemapKey, xml, sitemapCacheTTL); err != nil {
		log.WarnContext(ctx, "站点地图缓存写入失败", "error", err)
	}
	return xml, nil
}
