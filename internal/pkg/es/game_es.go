package es

// GameES 写入 ES 的游戏检索文档
type GameES struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genre       []string `json:"genre"`
	Platform    string   `json:"platform"`
	Type        string   `json:"type"`
	Developer   string   `json:"developer"`
	ReleaseDate string   `json:"release_date"`
	Downloads   string   `json:"downloads"`
	Rating      string   `json:"rating"`
	CoverImage  string   `json:"cover_image"`
	CreatedAt   int64    `json:"created_at"`
}
