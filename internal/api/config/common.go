package config

// Config 配置主体
type Config struct {
	Server                  ServerConfig            `mapstructure:"server"`
	Mongo                   MongoConfig             `mapstructure:"mongo"`
	Redis                   RedisConfig             `mapstructure:"redis"`
	Elastic                 ElasticConfig           `mapstructure:"elastic"`
	LLM                     LLMConfig               `mapstructure:"llm"`
	IGDB                    IGDBConfig              `mapstructure:"igdb"`
	Archive                 ArchiveConfig           `mapstructure:"archive"`
	Admin                   AdminConfig             `mapstructure:"admin"`
	Kafka                   KafkaConfig             `mapstructure:"kafka"`
	KafkaEngagementConsumer KafkaEngagementConsumer `mapstructure:"kafka_engagement_consumer"`
	Logstash                LogstashConfig          `mapstructure:"logstash"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port    int    `mapstructure:"port"`
	BaseURL string `mapstructure:"base_url"` // 对外站点地址，sitemap 等使用
}

// MongoConfig 文档库配置
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// ElasticConfig Elastic配置
type ElasticConfig struct {
	Address   string `mapstructure:"address"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	GameIndex string `mapstructure:"game_index"`
}

type LLMConfig struct {
	URL         string           `mapstructure:"url"`
	Model       string           `mapstructure:"model"`
	ApiKey      string           `mapstructure:"api_key"`
	PromptsPath PromptPathConfig `mapstructure:"prompts_path"`
}

type PromptPathConfig struct {
	ContentSafe       string `mapstructure:"content_safe"`
	Translate         string `mapstructure:"translate"`
	TranslateKeywords string `mapstructure:"translate_keywords"`
}

// IGDBConfig 游戏元数据 API（IGDB，凭据走 Twitch OAuth）
type IGDBConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	AuthURL      string `mapstructure:"auth_url"`
	APIURL       string `mapstructure:"api_url"`
}

// ArchiveConfig Internet Archive 接口地址
type ArchiveConfig struct {
	SearchURL   string `mapstructure:"search_url"`
	MetadataURL string `mapstructure:"metadata_url"`
	DownloadURL string `mapstructure:"download_url"`
}

// AdminConfig 运营后台账号
type AdminConfig struct {
	Email        string `mapstructure:"email"`
	PasswordHash string `mapstructure:"password_hash"` // bcrypt
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaEngagementConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// LogstashConfig 远程日志配置
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}
