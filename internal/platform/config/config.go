package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	// DriverPostgres は PostgreSQL ストレージを表します。
	DriverPostgres = "postgres"
	// DriverSQLite は組み込み SQLite ストレージを表します。
	DriverSQLite = "sqlite"

	defaultRetirementTitle = "RETIRED"
	defaultShutdownTimeout = 10 * time.Second
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Tracing  TracingConfig  `yaml:"tracing"`
	Duty     DutyConfig     `yaml:"duty"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr         string        `yaml:"listen_addr" env:"STARGATE_LISTEN_ADDR"`
	ShutdownTimeout    time.Duration `yaml:"-"`
	ShutdownTimeoutRaw string        `yaml:"shutdown_timeout" env:"STARGATE_SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig はストレージ接続に関する設定です。
type DatabaseConfig struct {
	Driver             string        `yaml:"driver" env:"STARGATE_DB_DRIVER"`
	Host               string        `yaml:"host" env:"STARGATE_DB_HOST"`
	Port               int           `yaml:"port" env:"STARGATE_DB_PORT"`
	User               string        `yaml:"user" env:"STARGATE_DB_USER"`
	Password           string        `yaml:"password" env:"STARGATE_DB_PASSWORD"`
	Name               string        `yaml:"name" env:"STARGATE_DB_NAME"`
	SSLMode            string        `yaml:"ssl_mode" env:"STARGATE_DB_SSL_MODE"`
	Path               string        `yaml:"path" env:"STARGATE_DB_PATH"`
	AutoMigrate        bool          `yaml:"auto_migrate" env:"STARGATE_DB_AUTO_MIGRATE"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
}

// LogConfig はロガーに関する設定です。
type LogConfig struct {
	Level  string `yaml:"level" env:"STARGATE_LOG_LEVEL"`
	Format string `yaml:"format" env:"STARGATE_LOG_FORMAT"`
}

// TracingConfig は OpenTelemetry トレースに関する設定です。
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled" env:"STARGATE_TRACING_ENABLED"`
	Endpoint    string  `yaml:"endpoint" env:"STARGATE_TRACING_ENDPOINT"`
	ServiceName string  `yaml:"service_name" env:"STARGATE_TRACING_SERVICE_NAME"`
	SampleRatio float64 `yaml:"sample_ratio" env:"STARGATE_TRACING_SAMPLE_RATIO"`
}

// DutyConfig は任務記録の取り込みルールに関する設定です。
type DutyConfig struct {
	RetirementTitle string `yaml:"retirement_title" env:"STARGATE_RETIREMENT_TITLE"`
}

// Load は指定されたパスから設定ファイルを読み込み、環境変数で上書きします。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}

	timeout, err := parseDurationAllowEmpty(c.Server.ShutdownTimeoutRaw)
	if err != nil {
		return fmt.Errorf("config: server.shutdown_timeout: %w", err)
	}
	if timeout == 0 {
		timeout = defaultShutdownTimeout
	}
	c.Server.ShutdownTimeout = timeout

	if err := c.Database.validateAndNormalize(); err != nil {
		return err
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	switch c.Log.Format {
	case "":
		c.Log.Format = "json"
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format must be json or console, got %q", c.Log.Format)
	}

	if c.Tracing.Enabled && strings.TrimSpace(c.Tracing.Endpoint) == "" {
		return fmt.Errorf("config: tracing.endpoint must be set when tracing is enabled")
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = "stargate"
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("config: tracing.sample_ratio must be between 0 and 1")
	}
	if c.Tracing.SampleRatio == 0 {
		c.Tracing.SampleRatio = 1
	}

	c.Duty.RetirementTitle = strings.TrimSpace(c.Duty.RetirementTitle)
	if c.Duty.RetirementTitle == "" {
		c.Duty.RetirementTitle = defaultRetirementTitle
	}

	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Driver == "" {
		d.Driver = DriverPostgres
	}

	switch d.Driver {
	case DriverSQLite:
		if strings.TrimSpace(d.Path) == "" {
			return fmt.Errorf("config: database.path must be set for sqlite")
		}
		return nil
	case DriverPostgres:
	default:
		return fmt.Errorf("config: unsupported database.driver %q", d.Driver)
	}

	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}

// SQLiteDSN は modernc.org/sqlite 用の接続文字列を返します。
func (d DatabaseConfig) SQLiteDSN() string {
	return "file:" + d.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate"
}
