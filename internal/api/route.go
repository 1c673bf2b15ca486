package api

import (
	"RomXD/internal/api/middleware"
	"RomXD/internal/pkg/consts"
	"RomXD/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	// SEO 资源直接挂根路径
	r.GET("/sitemap.xml", group.SeoHandler.Sitemap)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/login", group.AuthHandler.Login)

			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware())
			{
				adminGroup.POST("/logout", group.AuthHandler.Logout)
			}
		}

		gameGroup := apiGroup.Group("/games")
		{
			// 公开目录接口
			gameGroup.GET("", group.GameHandler.ListGames)
			gameGroup.GET("/search", group.GameHandler.SearchGames)
			gameGroup.GET("/slug/:slug", group.GameHandler.GetGameBySlug)
			gameGroup.POST("/:game_id/vote", group.GameHandler.Vote)
			gameGroup.POST("/:game_id/download", group.GameHandler.RegisterDownload)
			gameGroup.GET("/:game_id/comments", group.CommentHandler.GetThread)
			gameGroup.POST("/:game_id/comments", group.CommentHandler.AddComment)

			// 管理端目录维护
			adminGroup := gameGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.POST("", group.GameHandler.CreateGame)
				adminGroup.PUT("/:game_id", group.GameHandler.UpdateGame)
				adminGroup.DELETE("/:game_id", group.GameHandler.DeleteGame)
			}
		}

		downloadGroup := apiGroup.Group("/download")
		{
			downloadGroup.GET("/reveal", group.DownloadHandler.Reveal)
		}

		settingsGroup := apiGroup.Group("/settings")
		{
			settingsGroup.GET("", group.SettingsHandler.Get)

			adminGroup := settingsGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.PUT("", group.SettingsHandler.Update)
				adminGroup.POST("/trusted-collections", group.SettingsHandler.AddTrustedCollection)
				adminGroup.DELETE("/trusted-collections/:identifier", group.SettingsHandler.RemoveTrustedCollection)
			}
		}

		// 管理端专用：归档检索、元数据导入、互动统计
		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
		{
			adminGroup.GET("/archive/search", group.ArchiveHandler.Search)
			adminGroup.GET("/archive/files/:identifier", group.ArchiveHandler.ListFiles)
			adminGroup.GET("/archive/link", group.ArchiveHandler.ResolveLink)

			adminGroup.GET("/igdb/search", group.IGDBHandler.Search)
			adminGroup.GET("/igdb/prefill/:igdb_id", group.IGDBHandler.Prefill)

			adminGroup.GET("/metrics/games/:game_id", group.MetricHandler.GameMetrics)
			adminGroup.GET("/metrics/daily", group.MetricHandler.DailyBoard)

			adminGroup.POST("/sitemap/rebuild", group.SeoHandler.RebuildSitemap)
		}

		// 实时推送
		liveGroup := apiGroup.Group("/live")
		{
			liveGroup.GET("/games", group.LiveHandler.WatchGames)
			liveGroup.GET("/comments/:game_id", group.LiveHandler.WatchComments)
		}
	}

	return r
}
