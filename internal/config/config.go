package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения с секретами
const EnvPrefix = "TRANSFER"

var (
	// ErrInvalidConfig возвращается, если конфигурация не прошла проверку
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Redis        RedisConfig        `toml:"redis"`
	Pricing      PricingConfig      `toml:"pricing"`
	Push         PushConfig         `toml:"push"`
	Mail         MailConfig         `toml:"mail"`
	Admin        AdminConfig        `toml:"admin"`
	Reservations ReservationsConfig `toml:"reservations"`
	Contact      ContactConfig      `toml:"contact"`
	Company      CompanyConfig      `toml:"company"`
}

type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`     // секунды
	WriteTimeout    int      `toml:"write_timeout"`    // секунды
	IdleTimeout     int      `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int      `toml:"shutdown_timeout"` // секунды
	CORSOrigins     []string `toml:"cors_origins"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type PricingConfig struct {
	CacheTTLMinutes int `toml:"cache_ttl_minutes"`
}

// CacheTTL время жизни записи в кэше цен
func (p PricingConfig) CacheTTL() time.Duration {
	return time.Duration(p.CacheTTLMinutes) * time.Minute
}

type PushConfig struct {
	VAPIDPublicKey  string `toml:"vapid_public_key"`
	VAPIDPrivateKey string `toml:"vapid_private_key"`
	Subject         string `toml:"subject"`
	TTL             int    `toml:"ttl"`         // секунды
	Timeout         int    `toml:"timeout"`     // секунды на один запрос к push-сервису
	Concurrency     int    `toml:"concurrency"` // параллельных отправок при рассылке
}

// Enabled true, если заданы оба VAPID ключа
func (p PushConfig) Enabled() bool {
	return p.VAPIDPublicKey != "" && p.VAPIDPrivateKey != ""
}

type MailConfig struct {
	Enabled  bool     `toml:"enabled"`
	Host     string   `toml:"host"`
	Port     int      `toml:"port"`
	Username string   `toml:"username"`
	Password string   `toml:"password"`
	From     string   `toml:"from"`
	To       []string `toml:"to"`
}

type AdminConfig struct {
	Token string `toml:"token"`
}

type ReservationsConfig struct {
	// DeletePolicy "cancel" или "delete"
	DeletePolicy  string `toml:"delete_policy"`
	NotifyTimeout int    `toml:"notify_timeout"` // секунды на фоновые уведомления
}

type ContactConfig struct {
	RateLimitPerMinute int  `toml:"rate_limit_per_minute"`
	RateLimitBurst     int  `toml:"rate_limit_burst"`
	TrustForwarded     bool `toml:"trust_forwarded"`
}

type CompanyConfig struct {
	Name     string `toml:"name"`
	Currency string `toml:"currency"`
}

// Secrets значения, которые не хранятся в config.toml.
// Читаются из окружения с префиксом TRANSFER_, например TRANSFER_DB_PASSWORD
type Secrets struct {
	DBPassword      string `envconfig:"DB_PASSWORD"`
	AdminToken      string `envconfig:"ADMIN_TOKEN"`
	VAPIDPublicKey  string `envconfig:"VAPID_PUBLIC_KEY"`
	VAPIDPrivateKey string `envconfig:"VAPID_PRIVATE_KEY"`
	SMTPPassword    string `envconfig:"SMTP_PASSWORD"`
	RedisPassword   string `envconfig:"REDIS_PASSWORD"`
}

// Load читает config.toml, подгружает .env (если есть) и накладывает секреты из окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	// .env опционален: в проде переменные задает окружение
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load .env: %w", err)
	}

	var secrets Secrets
	if err := envconfig.Process(EnvPrefix, &secrets); err != nil {
		return nil, fmt.Errorf("config: failed to read environment: %w", err)
	}
	cfg.applySecrets(secrets)

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "transfer_service",
		},
		Pricing: PricingConfig{
			CacheTTLMinutes: 30,
		},
		Push: PushConfig{
			TTL:         86400,
			Timeout:     10,
			Concurrency: 8,
		},
		Mail: MailConfig{
			Port: 587,
		},
		Reservations: ReservationsConfig{
			DeletePolicy:  "cancel",
			NotifyTimeout: 30,
		},
		Contact: ContactConfig{
			RateLimitPerMinute: 5,
			RateLimitBurst:     3,
		},
		Company: CompanyConfig{
			Name:     "Transfer Service",
			Currency: "EUR",
		},
	}
}

func (c *Config) applySecrets(s Secrets) {
	if s.DBPassword != "" {
		c.Database.Password = s.DBPassword
	}
	if s.AdminToken != "" {
		c.Admin.Token = s.AdminToken
	}
	if s.VAPIDPublicKey != "" {
		c.Push.VAPIDPublicKey = s.VAPIDPublicKey
	}
	if s.VAPIDPrivateKey != "" {
		c.Push.VAPIDPrivateKey = s.VAPIDPrivateKey
	}
	if s.SMTPPassword != "" {
		c.Mail.Password = s.SMTPPassword
	}
	if s.RedisPassword != "" {
		c.Redis.Password = s.RedisPassword
	}
}

// applyDefaults восстанавливает значения, явно обнуленные в файле
func (c *Config) applyDefaults() {
	d := Default()
	if c.Pricing.CacheTTLMinutes <= 0 {
		c.Pricing.CacheTTLMinutes = d.Pricing.CacheTTLMinutes
	}
	if c.Push.Concurrency <= 0 {
		c.Push.Concurrency = d.Push.Concurrency
	}
	if c.Push.Timeout <= 0 {
		c.Push.Timeout = d.Push.Timeout
	}
	if c.Reservations.DeletePolicy == "" {
		c.Reservations.DeletePolicy = d.Reservations.DeletePolicy
	}
	if c.Reservations.NotifyTimeout <= 0 {
		c.Reservations.NotifyTimeout = d.Reservations.NotifyTimeout
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = d.Server.ShutdownTimeout
	}
	if c.Company.Currency == "" {
		c.Company.Currency = d.Company.Currency
	}
	c.Company.Currency = strings.ToUpper(c.Company.Currency)
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		problems = append(problems, "database.host, database.dbname and database.user are required")
	}
	switch c.Logs.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("logs.level %q is not one of debug, info, warn, error", c.Logs.Level))
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		problems = append(problems, "redis.addr is required when redis is enabled")
	}
	if c.Reservations.DeletePolicy != "cancel" && c.Reservations.DeletePolicy != "delete" {
		problems = append(problems, fmt.Sprintf("reservations.delete_policy %q must be cancel or delete", c.Reservations.DeletePolicy))
	}
	if (c.Push.VAPIDPublicKey == "") != (c.Push.VAPIDPrivateKey == "") {
		problems = append(problems, "push: both VAPID keys must be set or both left empty")
	}
	if c.Push.Enabled() && c.Push.Subject == "" {
		problems = append(problems, "push.subject is required when VAPID keys are set")
	}
	if c.Mail.Enabled && (c.Mail.Host == "" || c.Mail.From == "" || len(c.Mail.To) == 0) {
		problems = append(problems, "mail.host, mail.from and mail.to are required when mail is enabled")
	}
	if c.Contact.RateLimitPerMinute < 0 || c.Contact.RateLimitBurst < 0 {
		problems = append(problems, "contact rate limits must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
