package service

import (
	"RomXD/internal/pkg/archive"
	"RomXD/internal/pkg/consts"
	"RomXD/internal/pkg/redis"
	"RomXD/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

const (
	// 单次标准检索的最大返回条数
	searchRows = 20
	// 文件清单缓存时长
	filesCacheTTL = 30 * time.Minute
)

type ArchiveService interface {
	Search(ctx context.Context, query string, global bool) ([]archive.Item, error)
	ListFiles(ctx context.Context, identifier string) ([]archive.File, error)
	ResolveLink(identifier, filename string) string
}

type archiveServiceImpl struct {
	client       *archive.Client
	settingsRepo repository.SettingsRepo
}

func NewArchiveService(client *archive.Client, settingsRepo repository.SettingsRepo) ArchiveService {
	return &archiveServiceImpl{
		client:       client,
		settingsRepo: settingsRepo,
	}
}

// Search 两段式检索：可信集合内的文件级深搜 + 站点条目级标准检索。
// 深搜命中排在标准命中之前；任一半路失败降级为空，两路同时不可用才报错。
func (s *archiveServiceImpl) Search(ctx context.Context, query string, global bool) ([]archive.Item, error) {
	clean := archive.NormalizeQuery(query)
	if clean == "" {
		return []archive.Item{}, nil
	}
	terms := strings.Fields(clean)

	var trusted []string
	if settings, err := s.settingsRepo.Get(ctx); err == nil {
		trusted = settings.TrustedCollections
	} else {
		log.WarnContext(ctx, "站点设置读取失败，按无可信集合处理", "error", err)
	}

	deepRequested := !global && len(trusted) > 0

	var (
		deepResults []archive.Item
		deepErr     error
		stdResults  []archive.Item
		stdErr      error
	)

	g, gctx := errgroup.WithContext(ctx)

	if deepRequested {
		g.Go(func() error {
			deepResults, deepErr = s.deepSearch(gctx, trusted, terms)
			return nil
		})
	}

	g.Go(func() error {
		stdResults, stdErr = s.client.SearchItems(gctx, archive.BuildSearchQuery(clean, trusted, global), searchRows)
		return nil
	})

	_ = g.Wait()

	if stdErr != nil {
		log.WarnContext(ctx, "标准检索失败，降级为空", "query", clean, "error", stdErr)
		stdResults = nil
	}
	if deepErr != nil {
		log.WarnContext(ctx, "深度检索失败，降级为空", "query", clean, "error", deepErr)
		deepResults = nil
	}

	// 所有可用的子检索都失败时才向上报错
	if stdErr != nil && (!deepRequested || deepErr != nil) {
		return nil, ErrArchiveUnavailable
	}

	merged := make([]archive.Item, 0, len(deepResults)+len(stdResults))
	merged = append(merged, deepResults...)
	merged = append(merged, stdResults...)
	return merged, nil
}

// deepSearch 并行拉取每个可信集合的文件清单，保留文件名包含全部查询词的文件
func (s *archiveServiceImpl) deepSearch(ctx context.Context, collections []string, terms []string) ([]archive.Item, error) {
	var (
		mu      sync.Mutex
		results []archive.Item
		hitAny  bool
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, identifier := range collections {
		identifier := identifier
		g.Go(func() error {
			files, err := s.ListFiles(gctx, identifier)
			if err != nil {
				// 单个集合失败不拖垮整个深搜
				log.WarnContext(gctx, "集合清单拉取失败", "identifier", identifier, "error", err)
				return nil
			}

			mu.Lock()
			hitAny = true
			for _, f := range files {
				if archive.MatchesAllTerms(f.Name, terms) {
					results = append(results, archive.Item{
						Identifier:   identifier,
						Title:        f.Name,
						IsFileSearch: true,
						FileName:     f.Name,
						FileSize:     f.Size,
					})
				}
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if !hitAny {
		return nil, ErrArchiveUnavailable
	}
	return results, nil
}

// ListFiles 获取过滤排序后的文件清单，按集合标识缓存
func (s *archiveServiceImpl) ListFiles(ctx context.Context, identifier string) ([]archive.File, error) {
	cacheKey := consts.ArchiveFilesKey + identifier
	if raw, err := redis.GetBytes(ctx, cacheKey); err == nil && len(raw) > 0 {
		var cached []archive.File
		if err = json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	files, err := s.client.FetchFiles(ctx, identifier)
	if err != nil {
		return nil, err
	}

	files = archive.FilterFiles(files)
	archive.SortFilesByLocale(files)

	if raw, err := json.Marshal(files); err == nil {
		redis.SetWithExpiration(ctx, cacheKey, string(raw), filesCacheTTL)
	}
	return files, nil
}

// ResolveLink 纯函数，由集合标识与文件名拼出直链
func (s *archiveServiceImpl) ResolveLink(identifier, filename string) string {
	return s.client.DirectLink(identifier, filename)
}
