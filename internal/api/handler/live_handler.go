package handler

import (
	"RomXD/internal/pkg/consts"
	"RomXD/internal/pkg/live"
	"RomXD/internal/pkg/redis"
	"RomXD/internal/pkg/response"
	"RomXD/internal/service"
	"context"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	goredis "github.com/redis/go-redis/v9"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// LiveHandler 实时视图推送：目录列表与单游戏评论线程。
// 订阅范围出现变更时向客户端推送该范围的全量快照，客户端整体替换本地视图。
type LiveHandler struct {
	registry   *live.Registry
	gameSvc    service.GameService
	commentSvc service.CommentService
}

func NewLiveHandler(registry *live.Registry, gameSvc service.GameService, commentSvc service.CommentService) *LiveHandler {
	return &LiveHandler{
		registry:   registry,
		gameSvc:    gameSvc,
		commentSvc: commentSvc,
	}
}

// WatchGames 订阅目录列表
func (s *LiveHandler) WatchGames(c *gin.Context) {
	s.serve(c, consts.LiveScopeGames, func(ctx context.Context) (interface{}, error) {
		return s.gameSvc.ListGames(ctx, "", "", "", 1, 100)
	})
}

// WatchComments 订阅某游戏的评论线程
func (s *LiveHandler) WatchComments(c *gin.Context) {
	gameID := c.Param("game_id")
	if gameID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	s.serve(c, consts.LiveScopeCommentsPrefix+gameID, func(ctx context.Context) (interface{}, error) {
		return s.commentSvc.GetThread(ctx, gameID)
	})
}

func (s *LiveHandler) serve(c *gin.Context, scope string, snapshot func(context.Context) (interface{}, error)) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WS 协议升级失败", "err", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	s.registry.Acquire(scope)
	defer s.registry.Release(scope)

	// redis 未接通时 pubsub 为 nil，连接退化为只推初始快照
	pubsub := redis.Subscribe(context.Background(), consts.LiveChannelKey+scope)
	var redisCh <-chan *goredis.Message
	if pubsub != nil {
		defer func() {
			_ = pubsub.Close()
		}()
		redisCh = pubsub.Channel()
	}

	log.Info("实时订阅已建立", "scope", scope)

	// 连接建立先推一次全量
	if !s.pushSnapshot(conn, scope, snapshot) {
		return
	}

	stopChan := make(chan struct{})

	// 读循环：监听客户端主动断开
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				close(stopChan)
				return
			}
		}
	}()

	// 写循环：范围有变更就重推全量快照
	for {
		select {
		case <-redisCh:
			if !s.pushSnapshot(conn, scope, snapshot) {
				return
			}
		case <-stopChan:
			log.Info("实时订阅已断开", "scope", scope)
			return
		}
	}
}

func (s *LiveHandler) pushSnapshot(conn *websocket.Conn, scope string, snapshot func(context.Context) (interface{}, error)) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := snapshot(ctx)
	if err != nil {
		log.Error("快照获取失败", "scope", scope, "err", err)
		return true
	}

	payload, err := json.Marshal(gin.H{"scope": scope, "data": data})
	if err != nil {
		return true
	}

	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if err = conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		log.Error("WS 推送失败", "scope", scope, "err", err)
		return false
	}
	return true
}
