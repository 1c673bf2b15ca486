package api

import "RomXD/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AuthHandler     *handler.AuthHandler
	GameHandler     *handler.GameHandler
	CommentHandler  *handler.CommentHandler
	ArchiveHandler  *handler.ArchiveHandler
	IGDBHandler     *handler.IGDBHandler
	SettingsHandler *handler.SettingsHandler
	DownloadHandler *handler.DownloadHandler
	SeoHandler      *handler.SeoHandler
	MetricHandler   *handler.MetricHandler
	LiveHandler     *handler.LiveHandler
}
