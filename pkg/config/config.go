package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix is applied by envconfig on top of the explicit tag names.
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App    AppConfig
	API    APIConfig
	Search SearchConfig
	Cache  CacheConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.API.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FIELDPARTS_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"FIELDPARTS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FIELDPARTS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// APIConfig points the client at the maintenance backend. The token is an
// opaque bearer credential issued elsewhere; the client only carries it.
type APIConfig struct {
	BaseURL   string        `envconfig:"FIELDPARTS_API_BASE_URL" required:"true"`
	Token     string        `envconfig:"FIELDPARTS_API_TOKEN"`
	Timeout   time.Duration `envconfig:"FIELDPARTS_API_TIMEOUT" default:"15s"`
	UserAgent string        `envconfig:"FIELDPARTS_API_USER_AGENT" default:"fieldparts-client"`
}

func (a APIConfig) validate() error {
	if strings.TrimSpace(a.BaseURL) == "" {
		return fmt.Errorf("FIELDPARTS_API_BASE_URL is required")
	}
	return nil
}

// SearchConfig tunes keystroke-driven catalog search.
type SearchConfig struct {
	DebounceWindow time.Duration `envconfig:"FIELDPARTS_SEARCH_DEBOUNCE" default:"400ms"`
	PageSize       int           `envconfig:"FIELDPARTS_SEARCH_PAGE_SIZE" default:"20"`
}

// CacheConfig controls the local offline snapshot store.
type CacheConfig struct {
	Enabled bool   `envconfig:"FIELDPARTS_CACHE_ENABLED" default:"true"`
	Path    string `envconfig:"FIELDPARTS_CACHE_PATH" default:"fieldparts.db"`
}
