package archive

import (
	"RomXD/internal/api/config"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client 封装 Internet Archive 的检索与清单接口
type Client struct {
	httpClient  *resty.Client
	searchURL   string
	metadataURL string
	downloadURL string
}

// NewClient 创建归档站客户端
func NewClient() *Client {
	client := resty.New().
		SetTimeout(15 * time.Second).
		SetHeader("User-Agent", "RomXD/1.0")

	return &Client{
		httpClient:  client,
		searchURL:   config.Cfg.Archive.SearchURL,
		metadataURL: config.Cfg.Archive.MetadataURL,
		downloadURL: config.Cfg.Archive.DownloadURL,
	}
}

type searchResponse struct {
	Response struct {
		Docs []struct {
			Identifier string   `json:"identifier"`
			Title      string   `json:"title"`
			Downloads  int64    `json:"downloads"`
			Collection []string `json:"collection"`
		} `json:"docs"`
	} `json:"response"`
}

// SearchItems 执行 advancedsearch 查询，按下载量降序返回条目
func (c *Client) SearchItems(ctx context.Context, query string, rows int) ([]Item, error) {
	var result searchResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":      query,
			"fl[]":   "identifier,title,downloads,collection",
			"sort[]": "downloads desc",
			"rows":   fmt.Sprintf("%d", rows),
			"page":   "1",
			"output": "json",
		}).
		SetResult(&result).
		Get(c.searchURL)
	if err != nil {
		log.ErrorContext(ctx, "归档站检索请求失败", "error", err)
		return nil, err
	}
	if resp.IsError() {
		log.ErrorContext(ctx, "归档站检索返回异常状态", "status", resp.StatusCode())
		return nil, errors.New("归档站检索失败")
	}

	items := make([]Item, 0, len(result.Response.Docs))
	for _, doc := range result.Response.Docs {
		title := doc.Title
		if title == "" {
			title = doc.Identifier
		}
		items = append(items, Item{
			Identifier: doc.Identifier,
			Title:      title,
			Downloads:  doc.Downloads,
			Collection: doc.Collection,
		})
	}
	return items, nil
}

type metadataResponse struct {
	Files []struct {
		Name   string `json:"name"`
		Size   string `json:"size"`
		Format string `json:"format"`
	} `json:"files"`
}

// FetchFiles 拉取指定集合的完整文件清单
func (c *Client) FetchFiles(ctx context.Context, identifier string) ([]File, error) {
	var result metadataResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&result).
		Get(strings.TrimSuffix(c.metadataURL, "/") + "/" + identifier)
	if err != nil {
		log.ErrorContext(ctx, "归档站清单请求失败", "identifier", identifier, "error", err)
		return nil, err
	}
	if resp.IsError() {
		log.ErrorContext(ctx, "归档站清单返回异常状态", "identifier", identifier, "status", resp.StatusCode())
		return nil, errors.New("归档站清单获取失败")
	}

	files := make([]File, 0, len(result.Files))
	for _, f := range result.Files {
		files = append(files, File{Name: f.Name, Size: f.Size, Format: f.Format})
	}
	return files, nil
}

// DirectLink 生成文件直链
func (c *Client) DirectLink(identifier, filename string) string {
	return BuildDirectLink(strings.TrimSuffix(c.downloadURL, "/"), identifier, filename)
}
