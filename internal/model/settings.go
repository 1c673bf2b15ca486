package model

// MenuLink 站点导航链接
type MenuLink struct {
	ID    string `bson:"id" json:"id"`
	Label string `bson:"label" json:"label"`
	URL   string `bson:"url" json:"url"`
}

// AdsConfig 广告与脚本注入配置
type AdsConfig struct {
	TopAdCode        string `bson:"top_ad_code" json:"topAdCode"`
	BottomAdCode     string `bson:"bottom_ad_code" json:"bottomAdCode"`
	GlobalHeadScript string `bson:"global_head_script" json:"globalHeadScript"`
	GlobalBodyScript string `bson:"global_body_script" json:"globalBodyScript"`
}

// Settings 站点设置单文档
type Settings struct {
	ID                 string     `bson:"_id" json:"-"`
	Tags               []string   `bson:"tags" json:"tags"`
	Platforms          []string   `bson:"platforms" json:"platforms"`
	MenuLinks          []MenuLink `bson:"menu_links" json:"menuLinks"`
	AdsConfig          AdsConfig  `bson:"ads_config" json:"adsConfig"`
	TrustedCollections []string   `bson:"trusted_collections" json:"trustedCollections"` // Internet Archive 可信集合标识
}
