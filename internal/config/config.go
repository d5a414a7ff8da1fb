package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig `envconfig:"DB"`
	GitHub    GitHubConfig
	Dashboard DashboardConfig
	Sidebar   SidebarConfig
	Session   SessionConfig
	Log       LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         string        `envconfig:"PORT" default:"8080"`
	Host         string        `envconfig:"HOST" default:"0.0.0.0"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"0s"` // 0 keeps SSE streams open
	IdleTimeout  time.Duration `envconfig:"IDLE_TIMEOUT" default:"120s"`
	GinMode      string        `envconfig:"GIN_MODE" default:"release"`
	CORSOrigins  []string      `envconfig:"CORS_ORIGINS" default:"*"`
}

// DatabaseConfig holds database configuration. An empty DSN keeps fetch history in memory.
type DatabaseConfig struct {
	Driver   string `envconfig:"DRIVER" default:"postgres"`
	DSN      string `envconfig:"DSN"`
	MaxConns int    `envconfig:"MAX_CONNS" default:"25"`
	MinConns int    `envconfig:"MIN_CONNS" default:"5"`
}

// GitHubConfig holds repository API configuration
type GitHubConfig struct {
	BaseURL        string        `envconfig:"API_URL" default:"https://api.github.com/"`
	UserAgent      string        `envconfig:"USER_AGENT" default:"repodash"`
	Token          string        `envconfig:"TOKEN"`
	Timeout        time.Duration `envconfig:"TIMEOUT" default:"30s"`
	DefaultAccount string        `envconfig:"DEFAULT_ACCOUNT" default:"google"`
}

// DashboardConfig holds dashboard session configuration
type DashboardConfig struct {
	PageSize      int           `envconfig:"PAGE_SIZE" default:"6"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	SweepInterval time.Duration `envconfig:"SWEEP_INTERVAL" default:"1m"`
}

// SidebarConfig holds weather and image widget configuration
type SidebarConfig struct {
	WeatherURL    string        `envconfig:"WEATHER_URL" default:"https://api.open-meteo.com"`
	ImageURL      string        `envconfig:"IMAGE_URL" default:"https://dog.ceo"`
	Latitude      float64       `envconfig:"LATITUDE" default:"25.0330"`
	Longitude     float64       `envconfig:"LONGITUDE" default:"121.5654"`
	FallbackImage string        `envconfig:"FALLBACK_IMAGE" default:"/static/placeholder-dog.png"`
	Timeout       time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

// SessionConfig holds session token configuration
type SessionConfig struct {
	Secret   string        `envconfig:"SECRET"`
	Issuer   string        `envconfig:"ISSUER" default:"repodash"`
	TokenTTL time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"console"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// .env file is optional, so we don't return error if it doesn't exist
		log.Debug().Msg("no .env file found, using environment variables")
	}

	config := &Config{}
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Dashboard.PageSize < 1 {
		return fmt.Errorf("DASHBOARD_PAGE_SIZE must be at least 1")
	}
	if c.Dashboard.SessionTTL <= 0 {
		return fmt.Errorf("DASHBOARD_SESSION_TTL must be positive")
	}
	if c.Dashboard.SweepInterval <= 0 {
		return fmt.Errorf("DASHBOARD_SWEEP_INTERVAL must be positive")
	}
	if err := validateURL("GITHUB_API_URL", c.GitHub.BaseURL); err != nil {
		return err
	}
	if err := validateURL("SIDEBAR_WEATHER_URL", c.Sidebar.WeatherURL); err != nil {
		return err
	}
	if err := validateURL("SIDEBAR_IMAGE_URL", c.Sidebar.ImageURL); err != nil {
		return err
	}
	if c.GitHub.UserAgent == "" {
		return fmt.Errorf("GITHUB_USER_AGENT is required")
	}
	if c.Sidebar.Latitude < -90 || c.Sidebar.Latitude > 90 {
		return fmt.Errorf("SIDEBAR_LATITUDE must be within [-90, 90]")
	}
	if c.Sidebar.Longitude < -180 || c.Sidebar.Longitude > 180 {
		return fmt.Errorf("SIDEBAR_LONGITUDE must be within [-180, 180]")
	}
	return nil
}

// GetServerAddress returns the server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// HistoryPersistent reports whether fetch history goes to a database
func (c *Config) HistoryPersistent() bool {
	return c.Database.DSN != ""
}

func validateURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", key, raw)
	}
	return nil
}
