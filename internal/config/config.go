package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"portfolio_sync/internal/domain"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Source   SourceConfig   `yaml:"source"`
	Sync     SyncConfig     `yaml:"sync"`
	Server   ServerConfig   `yaml:"server"`
	LogLevel string         `yaml:"log_level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

// Enabled reports whether sync events should be published at all. No URL
// means no publisher, which is not an error.
func (r RabbitMQConfig) Enabled() bool {
	return r.URL != ""
}

// TypeConfig holds one content type's source binding. Both fields are
// independently optional; a type with no resolvable collection or token is
// skipped without affecting the others.
type TypeConfig struct {
	Collection string `yaml:"collection"`
	Token      string `yaml:"token"`
}

type SourceConfig struct {
	BaseURL  string        `yaml:"base_url"`
	Token    string        `yaml:"token"` // default credential, overridable per type
	PageSize int           `yaml:"page_size"`
	Timeout  time.Duration `yaml:"timeout"`
	Retry    RetryConfig   `yaml:"retry"`

	Types map[string]TypeConfig `yaml:"types"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type SyncConfig struct {
	Interval    time.Duration `yaml:"interval"`     // 0 disables periodic resync in serve mode
	PassTimeout time.Duration `yaml:"pass_timeout"` // budget for one full pass
}

type ServerConfig struct {
	Port      string `yaml:"port"`
	AccessKey string `yaml:"access_key"` // shared secret gating /sync; empty disables the endpoint
}

// TypeBinding resolves one content type's collection id and credential.
// The second return is false when the type is not configured, which
// disables its sync silently.
func (c *Config) TypeBinding(t domain.ContentType) (collection, token string, ok bool) {
	tc, found := c.Source.Types[string(t)]
	if !found || tc.Collection == "" {
		return "", "", false
	}
	token = tc.Token
	if token == "" {
		token = c.Source.Token
	}
	if token == "" {
		return "", "", false
	}
	return tc.Collection, token, true
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "portfolio_sync"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "records"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "site_records"
	}
	if c.Source.PageSize == 0 {
		c.Source.PageSize = 100
	}
	if c.Source.Timeout == 0 {
		c.Source.Timeout = 30 * time.Second
	}
	if c.Source.Retry.MaxAttempts == 0 {
		c.Source.Retry.MaxAttempts = 3
	}
	if c.Source.Retry.InitialBackoff == 0 {
		c.Source.Retry.InitialBackoff = 1 * time.Second
	}
	if c.Source.Retry.MaxBackoff == 0 {
		c.Source.Retry.MaxBackoff = 30 * time.Second
	}
	if c.Sync.PassTimeout == 0 {
		c.Sync.PassTimeout = 5 * time.Minute
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	if c.Database.User == "" || c.Database.DBName == "" {
		return fmt.Errorf("database user and dbname are required")
	}
	if c.Source.BaseURL == "" {
		return fmt.Errorf("source base_url is required")
	}
	for name := range c.Source.Types {
		if !domain.ContentType(name).Valid() {
			return fmt.Errorf("unknown content type in source.types: %q", name)
		}
	}
	return nil
}
