package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// postgres, used when DATABASE_URL is not set
	PostgresHost string `toml:"postgres_host"`
	PostgresPort string `toml:"postgres_port"`
	PostgresDB   string `toml:"postgres_db"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// api
	RateLimitPerMinute int      `toml:"rate_limit_per_minute"`
	AllowedOrigins     []string `toml:"allowed_origins"`
	// seed
	SeedDays               int     `toml:"seed_days"`
	SeedWorkoutProbability float64 `toml:"seed_workout_probability"`
	SeedRandomSeed         int64   `toml:"seed_random_seed"`
	SeedTimeZone           string  `toml:"seed_time_zone"`
	// backups
	BackupsDir          string `toml:"backups_dir"`
	BackupDriveEnabled  bool   `toml:"backup_drive_enabled"`
	BackupDriveCredFile string `toml:"backup_drive_cred_file"`
	BackupDriveFolder   string `toml:"backup_drive_folder"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return t.Get(env)
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.PostgresHost == "" {
		c.PostgresHost = "localhost"
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresDB == "" {
		c.PostgresDB = "ihealth"
	}
	if c.RedisHost == "" {
		c.RedisHost = "localhost"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.RateLimitPerMinute == 0 {
		c.RateLimitPerMinute = 60
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if c.SeedDays == 0 {
		c.SeedDays = 31
	}
	if c.SeedWorkoutProbability == 0 {
		c.SeedWorkoutProbability = 0.7
	}
	if c.SeedTimeZone == "" {
		c.SeedTimeZone = "UTC"
	}
	if c.BackupsDir == "" {
		c.BackupsDir = "backups"
	}
	if c.BackupDriveFolder == "" {
		c.BackupDriveFolder = "ihealth-backups"
	}
}
