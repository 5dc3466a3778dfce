package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DeliveryModeZone = "zone"
	DeliveryModeCity = "city"

	HistoryModeLocal  = "local"
	HistoryModeRemote = "remote"

	StorageDriverFile     = "file"
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	DefaultBackendURL = "https://app-aqualan-production.up.railway.app"
)

type HTTPServer struct {
	Addr             string        `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
	CORSAllowOrigins []string      `yaml:"cors_allow_origins" env:"CORS_ALLOW_ORIGINS" env-default:"*"`
}

type Backend struct {
	BaseURL string        `yaml:"BASE_URL" env:"AQUALAN_BACKEND_URL" env-default:"https://app-aqualan-production.up.railway.app"`
	Timeout time.Duration `yaml:"TIMEOUT" env:"AQUALAN_BACKEND_TIMEOUT" env-default:"10s"`
}

// Variant selects the backend contract once at startup.
type Variant struct {
	Delivery string `yaml:"delivery" env:"AQUALAN_DELIVERY_VARIANT" env-default:"city"`
	History  string `yaml:"history" env:"AQUALAN_HISTORY_VARIANT" env-default:"local"`
}

type RedisConnect struct {
	Host      string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port      string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username  string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password  string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB        int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
	Namespace string `yaml:"REDIS_NAMESPACE" env:"REDIS_NAMESPACE" env-default:"aqualan"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"5"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"2"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"30m"`
}

type Storage struct {
	Driver   string       `yaml:"driver" env:"STORAGE_DRIVER" env-default:"file"`
	Path     string       `yaml:"path" env:"STORAGE_PATH" env-default:"./data"`
	Redis    RedisConnect `yaml:"redis"`
	Database Database     `yaml:"database"`
}

type History struct {
	Timezone string `yaml:"timezone" env:"HISTORY_TIMEZONE" env-default:"Europe/Madrid"`
}

type SendGrid struct {
	APIKey    string `yaml:"API_KEY" env:"SENDGRID_API_KEY"`
	FromEmail string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"pedidos@aqualan.es"`
	FromName  string `yaml:"FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Aqualan"`
}

// Catalog.CacheTTL enables the redis read-through cache for catalog reads when
// the redis storage driver is active. Zero disables it.
type Catalog struct {
	CacheTTL time.Duration `yaml:"cache_ttl" env:"CATALOG_CACHE_TTL" env-default:"0s"`
}

// RateLimit caps order and offer submissions per client when the redis
// storage driver is active. MaxAttempts 0 disables it.
type RateLimit struct {
	MaxAttempts int64         `yaml:"max_attempts" env:"RATE_LIMIT_MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"window_size" env:"RATE_LIMIT_WINDOW_SIZE" env-default:"1m"`
}

type Otel struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"aqualan-storefront"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	LogLevel   string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	HTTPServer `yaml:"http_server"`
	Backend    Backend   `yaml:"backend"`
	Variant    Variant   `yaml:"variant"`
	Storage    Storage   `yaml:"storage"`
	History    History   `yaml:"history"`
	Catalog    Catalog   `yaml:"catalog"`
	RateLimit  RateLimit `yaml:"rate_limit"`
	SendGrid   SendGrid  `yaml:"sendgrid"`
	Otel       Otel      `yaml:"otel"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "path to the config file")

		flag.Parse()

		configPath = *flags
	}

	var (
		cfg *Config
		err error
	)

	if configPath == "" {
		cfg, err = LoadConfigFromEnv()
	} else {
		cfg, err = LoadConfigFromPath(configPath)
	}

	if err != nil {
		log.Fatalf("can not load config: %s", err.Error())
	}

	return cfg
}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfigFromEnv builds the config from env vars and defaults only.
func LoadConfigFromEnv() (*Config, error) {

	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("can not read env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {

	switch c.Variant.Delivery {
	case DeliveryModeZone, DeliveryModeCity:
	default:
		return fmt.Errorf("invalid delivery variant %q: must be %q or %q", c.Variant.Delivery, DeliveryModeZone, DeliveryModeCity)
	}

	switch c.Variant.History {
	case HistoryModeLocal, HistoryModeRemote:
	default:
		return fmt.Errorf("invalid history variant %q: must be %q or %q", c.Variant.History, HistoryModeLocal, HistoryModeRemote)
	}

	switch c.Storage.Driver {
	case StorageDriverFile, StorageDriverRedis, StorageDriverPostgres, StorageDriverMemory:
	default:
		return fmt.Errorf("invalid storage driver %q", c.Storage.Driver)
	}

	if c.Catalog.CacheTTL < 0 {
		return fmt.Errorf("invalid catalog cache ttl %s: must not be negative", c.Catalog.CacheTTL)
	}

	if c.RateLimit.MaxAttempts > 0 && c.RateLimit.WindowSize < time.Second {
		return fmt.Errorf("invalid rate limit window %s: must be at least 1s", c.RateLimit.WindowSize)
	}

	if _, err := time.LoadLocation(c.History.Timezone); err != nil {
		return fmt.Errorf("invalid history timezone %q: %w", c.History.Timezone, err)
	}

	return nil
}

// Location returns the timezone used to bucket orders by month.
func (h History) Location() *time.Location {
	loc, err := time.LoadLocation(h.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	if r.Username == "" && r.Password == "" {
		return fmt.Sprintf("redis://%s:%s/%d", r.Host, r.Port, r.DB)
	}
	return fmt.Sprintf("redis://%s:%s@%s:%s/%d", r.Username, r.Password, r.Host, r.Port, r.DB)
}

// ResolveBaseURL trims the trailing slash and falls back to the production backend.
func (b Backend) ResolveBaseURL() string {
	u := strings.TrimSpace(b.BaseURL)
	if u == "" {
		u = DefaultBackendURL
	}
	return strings.TrimRight(u, "/")
}
