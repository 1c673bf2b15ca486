package consts

const (
	ArchiveFilesKey = "archive:files:"
	SitemapKey      = "seo:sitemap"
	LiveChannelKey  = "live:channel:"
	TokenDenyKey    = "auth:token:deny:"
)
