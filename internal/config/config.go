package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	Cache  CacheConfig
	Log    LogConfig
	Wiki   WikiConfig
	Gemini GeminiConfig
	TTS    TTSConfig
	Lookup LookupConfig
	Worker WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	LookupCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// WikiConfig - параметры доступа к Wikipedia/Wikidata API
type WikiConfig struct {
	UserAgent      string
	RequestTimeout time.Duration
	MaxRetries     int
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type TTSConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	MaxTextLen     int
}

// LookupConfig - параметры пайплайна lookup: дефолты запроса и целевые
// длины выжимок. Read-only после старта процесса.
type LookupConfig struct {
	DefaultLang    string
	DefaultRadius  int
	DefaultLimit   int
	MaxLimit       int
	ShortSentences int
	MoreSentences  int
	ShortMaxChars  int
	MoreMaxChars   int
	FanOutLimit    int
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	MaxRetries    int
	PrefetchLangs []string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			LookupCacheTTL: time.Duration(viper.GetInt("LOOKUP_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Wiki: WikiConfig{
			UserAgent:      viper.GetString("WIKI_USER_AGENT"),
			RequestTimeout: time.Duration(viper.GetInt("WIKI_REQUEST_TIMEOUT")) * time.Second,
			MaxRetries:     viper.GetInt("WIKI_MAX_RETRIES"),
		},
		Gemini: GeminiConfig{
			APIKey: viper.GetString("GEMINI_API_KEY"),
			Model:  viper.GetString("GEMINI_MODEL"),
		},
		TTS: TTSConfig{
			BaseURL:        viper.GetString("TTS_BASE_URL"),
			RequestTimeout: time.Duration(viper.GetInt("TTS_REQUEST_TIMEOUT")) * time.Second,
			MaxTextLen:     viper.GetInt("TTS_MAX_TEXT_LEN"),
		},
		Lookup: LookupConfig{
			DefaultLang:    viper.GetString("LOOKUP_DEFAULT_LANG"),
			DefaultRadius:  viper.GetInt("LOOKUP_DEFAULT_RADIUS"),
			DefaultLimit:   viper.GetInt("LOOKUP_DEFAULT_LIMIT"),
			MaxLimit:       viper.GetInt("LOOKUP_MAX_LIMIT"),
			ShortSentences: viper.GetInt("LOOKUP_SHORT_SENTENCES"),
			MoreSentences:  viper.GetInt("LOOKUP_MORE_SENTENCES"),
			ShortMaxChars:  viper.GetInt("LOOKUP_SHORT_MAX_CHARS"),
			MoreMaxChars:   viper.GetInt("LOOKUP_MORE_MAX_CHARS"),
			FanOutLimit:    viper.GetInt("LOOKUP_FANOUT_LIMIT"),
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
			MaxRetries:    viper.GetInt("WORKER_MAX_RETRIES"),
			PrefetchLangs: parsePrefetchLangs(viper.GetString("WORKER_PREFETCH_LANGS")),
		},
	}

	// Set default values if not provided
	if cfg.Wiki.UserAgent == "" {
		cfg.Wiki.UserAgent = "tourist-guide/1.0"
	}
	if cfg.Wiki.RequestTimeout == 0 {
		cfg.Wiki.RequestTimeout = 15 * time.Second
	}
	if cfg.Wiki.MaxRetries == 0 {
		cfg.Wiki.MaxRetries = 2
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-1.5-flash"
	}
	if cfg.TTS.BaseURL == "" {
		cfg.TTS.BaseURL = "https://translate.google.com"
	}
	if cfg.TTS.RequestTimeout == 0 {
		cfg.TTS.RequestTimeout = 20 * time.Second
	}
	if cfg.TTS.MaxTextLen == 0 {
		cfg.TTS.MaxTextLen = 5000
	}
	if cfg.Cache.LookupCacheTTL == 0 {
		cfg.Cache.LookupCacheTTL = 15 * time.Minute
	}
	if cfg.Lookup.DefaultLang == "" {
		cfg.Lookup.DefaultLang = "en"
	}
	if cfg.Lookup.DefaultRadius == 0 {
		cfg.Lookup.DefaultRadius = 8000
	}
	if cfg.Lookup.DefaultLimit == 0 {
		cfg.Lookup.DefaultLimit = 8
	}
	if cfg.Lookup.MaxLimit == 0 {
		cfg.Lookup.MaxLimit = 20
	}
	if cfg.Lookup.ShortSentences == 0 {
		cfg.Lookup.ShortSentences = 5
	}
	if cfg.Lookup.MoreSentences == 0 {
		cfg.Lookup.MoreSentences = 15
	}
	if cfg.Lookup.ShortMaxChars == 0 {
		cfg.Lookup.ShortMaxChars = 700
	}
	if cfg.Lookup.MoreMaxChars == 0 {
		cfg.Lookup.MoreMaxChars = 3000
	}
	if cfg.Lookup.FanOutLimit == 0 {
		cfg.Lookup.FanOutLimit = 4
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "lookup-prefetch-workers"
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}
	if len(cfg.Worker.PrefetchLangs) == 0 {
		cfg.Worker.PrefetchLangs = []string{"en", "fr", "de", "es"}
	}

	return cfg, nil
}

func parsePrefetchLangs(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
