package consts

const (
	SettingsDocID = "site"

	// DownloadRevealDelay 下载中转页揭示直链前的固定等待秒数
	DownloadRevealDelay = 30
)

const (
	RoleAdmin = "ADMIN"
)

// 互动事件类型
const (
	EventVote     = "vote"
	EventDownload = "download"
	EventComment  = "comment"
)

const (
	// LiveScopeGames 目录列表实时订阅范围
	LiveScopeGames = "games"
	// LiveScopeCommentsPrefix 评论实时订阅范围前缀，后接游戏 ID
	LiveScopeCommentsPrefix = "comments:"
)
