package model

// SystemRequirements 运行环境要求
type SystemRequirements struct {
	OS        string `bson:"os" json:"os"`
	Processor string `bson:"processor" json:"processor"`
	Memory    string `bson:"memory" json:"memory"`
	Graphics  string `bson:"graphics" json:"graphics"`
	Storage   string `bson:"storage" json:"storage"`
}

const (
	GameTypeISO = "ISO"
	GameTypeROM = "ROM"
)

// Game MongoDB 游戏条目模型
type Game struct {
	ID               string             `bson:"_id" json:"id"`                          // 文档主键，创建时生成
	Slug             string             `bson:"slug" json:"slug"`                       // 路由用唯一标识，由标题派生
	Title            string             `bson:"title" json:"title"`                     // 标题
	ShortDescription string             `bson:"short_description" json:"shortDescription"`
	FullDescription  string             `bson:"full_description" json:"fullDescription"` // Markdown 正文
	CoverImage       string             `bson:"cover_image" json:"coverImage"`
	HeroImage        string             `bson:"hero_image,omitempty" json:"heroImage,omitempty"`
	Screenshots      []string           `bson:"screenshots" json:"screenshots"` // 有序截图 URL 列表
	Genre            []string           `bson:"genre" json:"genre"`
	Platform         []string           `bson:"platform" json:"platform"`
	ReleaseDate      string             `bson:"release_date" json:"releaseDate"`
	Developer        string             `bson:"developer" json:"developer"`
	DownloadURL      string             `bson:"download_url" json:"downloadUrl"`
	DownloadSize     string             `bson:"download_size" json:"downloadSize"`
	Requirements     SystemRequirements `bson:"requirements,omitempty" json:"requirements"`
	Type             string             `bson:"type" json:"type"`         // ISO / ROM
	Region           string             `bson:"region" json:"region"`     // US / EU / JP / PT
	Language         string             `bson:"language" json:"language"`
	Downloads        string             `bson:"downloads" json:"downloads"`   // 展示用计数，允许 k/m 后缀
	Rating           string             `bson:"rating" json:"rating"`         // 所有投票的算术平均值，保留一位小数
	VoteCount        int                `bson:"vote_count" json:"voteCount"`
	Comments         int                `bson:"comments" json:"comments"` // 评论冗余计数，随评论写入事务性递增
	CreatedAt        int64              `bson:"created_at" json:"createdAt"` // 毫秒，入库后不再变化
}
