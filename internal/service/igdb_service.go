package service

import (
	"RomXD/internal/model"
	"RomXD/internal/pkg/igdb"
	"RomXD/internal/pkg/llm"
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// 导入截图上限与封面尺寸
const (
	importScreenshotLimit = 4
	coverSize             = "cover_big"
	screenshotSize        = "screenshot_big"
)

type IGDBService interface {
	Search(ctx context.Context, query string) ([]igdb.SearchResult, error)
	BuildPrefill(ctx context.Context, id int64) (*model.Game, error)
}

type igdbServiceImpl struct {
	client *igdb.Client
}

func NewIGDBService(client *igdb.Client) IGDBService {
	return &igdbServiceImpl{client: client}
}

// Search 按名称搜索候选条目
func (s *igdbServiceImpl) Search(ctx context.Context, query string) ([]igdb.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrParamInvalid
	}
	return s.client.SearchGames(ctx, query)
}

// BuildPrefill 拉取完整元数据并组装表单预填条目，自由文本先过翻译。
// 翻译失败回退原文，元数据导入不因翻译服务降级而中断。
func (s *igdbServiceImpl) BuildPrefill(ctx context.Context, id int64) (*model.Game, error) {
	detail, err := s.client.GameDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	genres := make([]string, 0, len(detail.Genres))
	for _, g := range detail.Genres {
		genres = append(genres, g.Name)
	}

	summary := detail.Summary
	genreNames := genres

	// 两路翻译并行，内部已做失败回退原文
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if detail.Summary != "" {
			summary = llm.TranslateToSpanish(gctx, detail.Summary)
		}
		return nil
	})
	g.Go(func() error {
		if len(genres) == 0 {
			return nil
		}
		translated := llm.TranslateKeywords(gctx, strings.Join(genres, ", "))
		parts := strings.Split(translated, ",")
		names := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				names = append(names, p)
			}
		}
		if len(names) > 0 {
			genreNames = names
		}
		return nil
	})
	_ = g.Wait()

	platforms := make([]string, 0, len(detail.Platforms))
	for _, p := range detail.Platforms {
		platforms = append(platforms, p.Name)
	}

	screenshots := make([]string, 0, importScreenshotLimit)
	for _, shot := range detail.Screenshots {
		if len(screenshots) >= importScreenshotLimit {
			break
		}
		if url := igdb.ImageURL(shot.ImageID, screenshotSize); url != "" {
			screenshots = append(screenshots, url)
		}
	}

	developer := ""
	for _, company := range detail.InvolvedCompanies {
		if company.Developer {
			developer = company.Company.Name
			break
		}
	}

	releaseDate := ""
	if detail.FirstReleaseDate > 0 {
		releaseDate = time.Unix(detail.FirstReleaseDate, 0).UTC().Format("2006-01-02")
	}

	short := summary
	if len([]rune(short)) > 160 {
		short = string([]rune(short)[:160])
	}

	game := &model.Game{
		Title:            detail.Name,
		ShortDescription: short,
		FullDescription:  summary,
		Genre:            genreNames,
		Platform:         platforms,
		ReleaseDate:      releaseDate,
		Developer:        developer,
		Screenshots:      screenshots,
	}
	if detail.Cover != nil {
		game.CoverImage = igdb.ImageURL(detail.Cover.ImageID, coverSize)
	}
	return game, nil
}
