package config

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type PostgresConfig struct {
	DSN             string
	MaxOpen         int
	MaxIdle         int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SecurityConfig struct {
	// SeedSecret keys the per-user-per-day reading seed derivation.
	SeedSecret string
	SessionTTL time.Duration
	CsrfTTL    time.Duration
}

type GenerationConfig struct {
	APIBase       string
	APIKey        string
	Model         string
	DevModel      string
	Timeout       time.Duration
	PromptVersion string
	DefaultTone   string
}

type AppConfig struct {
	Environment      string
	HTTP             HTTPConfig
	Postgres         PostgresConfig
	Redis            RedisConfig
	Security         SecurityConfig
	Generation       GenerationConfig
	AllowCORSOrigins []string
}

func (c *AppConfig) Production() bool {
	return c.Environment == "production"
}

// GenerationModel picks the production or development model for the current
// environment.
func (c *AppConfig) GenerationModel() string {
	if c.Production() {
		return c.Generation.Model
	}
	return c.Generation.DevModel
}

func Load() (*AppConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("../config")

	v.SetEnvPrefix("TAROT")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Security.SeedSecret == "" {
		return nil, fmt.Errorf("security.seedsecret is required")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.readtimeout", "10s")
	v.SetDefault("http.writetimeout", "60s")
	v.SetDefault("http.idletimeout", "60s")

	v.SetDefault("postgres.maxopen", 30)
	v.SetDefault("postgres.maxidle", 10)
	v.SetDefault("postgres.connmaxlifetime", "30m")

	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("security.sessionttl", "720h") // 30 days
	v.SetDefault("security.csrfttl", "72h")     // CSRF tokens churn faster than sessions

	v.SetDefault("generation.apibase", "https://api.groq.com/openai/v1/chat/completions")
	v.SetDefault("generation.model", "groq/openai/gpt-oss-120b")
	v.SetDefault("generation.devmodel", "groq/openai/gpt-oss-20b")
	v.SetDefault("generation.timeout", "30s")
	v.SetDefault("generation.promptversion", "v1.deterministic")
	v.SetDefault("generation.defaulttone", "warm-analytical")
}
