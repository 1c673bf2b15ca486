package live

import (
	"RomXD/internal/pkg/consts"
	"RomXD/internal/pkg/redis"
	"RomXD/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// Registry 按订阅范围维护变更流监听，同一范围至多一条变更流。
// 范围内出现变更时向对应 Redis 频道广播一条通知，推送端收到后拉全量快照。
type Registry struct {
	mu       sync.Mutex
	watchers map[string]*watcher

	gameRepo    repository.GameRepo
	commentRepo repository.CommentRepo
}

type watcher struct {
	refs   int
	cancel context.CancelFunc
}

func NewRegistry(gameRepo repository.GameRepo, commentRepo repository.CommentRepo) *Registry {
	return &Registry{
		watchers:    make(map[string]*watcher),
		gameRepo:    gameRepo,
		commentRepo: commentRepo,
	}
}

// Acquire 增加范围的订阅计数，首个订阅者触发变更流启动
func (r *Registry) Acquire(scope string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if w, ok := r.watchers[scope]; ok {
		w.refs++
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.watchers[scope] = &watcher{refs: 1, cancel: cancel}
	go r.watchLoop(ctx, scope)
}

// Release 减少范围的订阅计数，归零时停掉变更流
func (r *Registry) Release(scope string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.watchers[scope]
	if !ok {
		return
	}
	w.refs--
	if w.refs <= 0 {
		w.cancel()
		delete(r.watchers, scope)
	}
}

// Shutdown 停掉全部变更流
func (r *Registry) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for scope, w := range r.watchers {
		w.cancel()
		delete(r.watchers, scope)
	}
}

func (r *Registry) watchLoop(ctx context.Context, scope string) {
	for {
		stream, err := r.openStream(ctx, scope)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Error("变更流启动失败", "scope", scope, "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(3 * time.Second):
				continue
			}
		}

		for stream.Next(ctx) {
			redis.Publish(ctx, consts.LiveChannelKey+scope, "changed")
		}

		_ = stream.Close(context.Background())
		if ctx.Err() != nil {
			return
		}
		// 变更流断开，稍后重建
		log.Warn("变更流中断，准备重建", "scope", scope, "error", stream.Err())
		select {
		case <-ctx.Done():
			return
		case <-time.After(3 * time.Second):
		}
	}
}

func (r *Registry) openStream(ctx context.Context, scope string) (*mongo.ChangeStream, error) {
	if scope == consts.LiveScopeGames {
		return r.gameRepo.Watch(ctx)
	}
	gameID := strings.TrimPrefix(scope, consts.LiveScopeCommentsPrefix)
	return r.commentRepo.Watch(ctx, gameID)
}
