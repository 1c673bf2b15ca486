package igdb

import (
	"RomXD/internal/api/config"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client IGDB 元数据客户端，令牌内存缓存并在过期前自动续期
type Client struct {
	httpClient *resty.Client

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

// NewClient 创建 IGDB 客户端
func NewClient() *Client {
	return &Client{
		httpClient: resty.New().SetTimeout(15 * time.Second),
	}
}

// SearchResult 搜索接口返回的候选条目
type SearchResult struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	FirstReleaseDate int64  `json:"first_release_date"`
	Cover            *Image `json:"cover"`
}

// GameDetail 详情接口返回的完整条目
type GameDetail struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	Summary           string            `json:"summary"`
	FirstReleaseDate  int64             `json:"first_release_date"`
	Cover             *Image            `json:"cover"`
	Screenshots       []Image           `json:"screenshots"`
	Genres            []Named           `json:"genres"`
	Platforms         []Named           `json:"platforms"`
	InvolvedCompanies []InvolvedCompany `json:"involved_companies"`
}

// Image IGDB 图片引用
type Image struct {
	ImageID string `json:"image_id"`
}

// Named 带名称的关联实体
type Named struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// InvolvedCompany 参与公司，Developer 标记开发商
type InvolvedCompany struct {
	Company   Named `json:"company"`
	Developer bool  `json:"developer"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.expiresAt) {
		return c.accessToken, nil
	}

	var result tokenResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client_id":     config.Cfg.IGDB.ClientID,
			"client_secret": config.Cfg.IGDB.ClientSecret,
			"grant_type":    "client_credentials",
		}).
		SetResult(&result).
		Post(config.Cfg.IGDB.AuthURL)
	if err != nil {
		log.ErrorContext(ctx, "IGDB 令牌获取失败", "error", err)
		return "", err
	}
	if resp.IsError() || result.AccessToken == "" {
		log.ErrorContext(ctx, "IGDB 令牌响应异常", "status", resp.StatusCode())
		return "", errors.New("IGDB 认证失败")
	}

	c.accessToken = result.AccessToken
	// 提前一分钟过期，避免临界请求被拒
	c.expiresAt = time.Now().Add(time.Duration(result.ExpiresIn-60) * time.Second)
	return c.accessToken, nil
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.accessToken = ""
	c.mu.Unlock()
}

func (c *Client) query(ctx context.Context, endpoint, body string, out any) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Client-ID", config.Cfg.IGDB.ClientID).
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("Content-Type", "text/plain").
		SetBody(body).
		SetResult(out).
		Post(config.Cfg.IGDB.APIURL + endpoint)
	if err != nil {
		log.ErrorContext(ctx, "IGDB 请求失败", "endpoint", endpoint, "error", err)
		return err
	}
	if resp.StatusCode() == 401 {
		// 令牌被提前吊销，清掉缓存重试一次
		c.invalidateToken()
		token, err = c.token(ctx)
		if err != nil {
			return err
		}
		resp, err = c.httpClient.R().
			SetContext(ctx).
			SetHeader("Client-ID", config.Cfg.IGDB.ClientID).
			SetHeader("Authorization", "Bearer "+token).
			SetHeader("Content-Type", "text/plain").
			SetBody(body).
			SetResult(out).
			Post(config.Cfg.IGDB.APIURL + endpoint)
		if err != nil {
			return err
		}
	}
	if resp.IsError() {
		log.ErrorContext(ctx, "IGDB 响应异常状态", "endpoint", endpoint, "status", resp.StatusCode())
		return errors.New("IGDB 查询失败")
	}
	return nil
}

// SearchGames 按名称搜索候选游戏
func (c *Client) SearchGames(ctx context.Context, q string) ([]SearchResult, error) {
	body := fmt.Sprintf(`search "%s"; fields name, first_release_date, cover.image_id; limit 10;`, sanitizeSearchTerm(q))
	var results []SearchResult
	if err := c.query(ctx, "/games", body, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// GameDetails 按 ID 拉取完整元数据
func (c *Client) GameDetails(ctx context.Context, id int64) (*GameDetail, error) {
	body := fmt.Sprintf(`fields name, summary, first_release_date, cover.image_id, screenshots.image_id, genres.name, platforms.name, involved_companies.company.name, involved_companies.developer; where id = %d;`, id)
	var results []GameDetail
	if err := c.query(ctx, "/games", body, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, errors.New("未找到对应游戏")
	}
	return &results[0], nil
}

// sanitizeSearchTerm 去掉会破坏 Apicalypse 查询串的引号与反斜杠
func sanitizeSearchTerm(q string) string {
	q = strings.ReplaceAll(q, `\`, "")
	return strings.ReplaceAll(q, `"`, "")
}

// ImageURL 拼出指定尺寸的图片地址
func ImageURL(imageID, size string) string {
	if imageID == "" {
		return ""
	}
	return fmt.Sprintf("https://images.igdb.com/igdb/image/upload/t_%s/%s.jpg", size, imageID)
}
