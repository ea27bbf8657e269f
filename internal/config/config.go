package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// DownloadConfig holds the document download settings.
type DownloadConfig struct {
	// SecretField is the object attribute a caller must match with the "secret" query parameter.
	// Objects without this attribute match an empty secret.
	SecretField string
	// SecretMismatchDelay is waited before answering a request with a wrong secret.
	SecretMismatchDelay time.Duration
	// CacheSeconds is the max-age sent with cached downloads; zero disables caching headers.
	CacheSeconds int
	// RateLimitRPS and RateLimitBurst bound page requests per client IP; RPS <= 0 disables the limit.
	RateLimitRPS   float64
	RateLimitBurst int
}

// AppConfig is the centralized configuration struct for the application.
type AppConfig struct {
	AppHost    string
	Port       string
	AppRootURL string
	BaseDir    string
	LogLevel   string
	Timezone   string
	Database   DatabaseConfig
	MinIO      MinIOConfig
	Download   DownloadConfig
}

// Location returns the configured time zone, UTC when it cannot be loaded.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func Load() *AppConfig {
	return fromViper(newViper())
}

// LoadFile reads configuration from a YAML, TOML, JSON or dotenv file. Keys use the
// environment variable names in lower case (e.g. db_host) and environment variables
// still take precedence over the file.
func LoadFile(path string) (*AppConfig, error) {
	v := newViper()
	v.SetConfigFile(path)
	if strings.HasSuffix(path, ".env") {
		v.SetConfigType("env")
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return fromViper(v), nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("app_host", "localhost:8080")
	v.SetDefault("port", "8080")
	v.SetDefault("app_root_url", "http://localhost:8080/")
	v.SetDefault("app_base_dir", ".")
	v.SetDefault("log_level", "info")
	v.SetDefault("timezone", "UTC")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("db_max_open_conns", 10)
	v.SetDefault("db_max_idle_conns", 5)
	v.SetDefault("db_conn_max_lifetime_sec", 300)
	v.SetDefault("minio_use_ssl", false)
	v.SetDefault("download_secret_field", "secret")
	v.SetDefault("download_secret_delay_us", 200)
	v.SetDefault("download_cache_seconds", 0)
	v.SetDefault("download_rate_limit_rps", 20)
	v.SetDefault("download_rate_limit_burst", 40)
	return v
}

func fromViper(v *viper.Viper) *AppConfig {
	return &AppConfig{
		AppHost:    v.GetString("app_host"),
		Port:       v.GetString("port"),
		AppRootURL: v.GetString("app_root_url"),
		BaseDir:    v.GetString("app_base_dir"),
		LogLevel:   v.GetString("log_level"),
		Timezone:   v.GetString("timezone"),
		Database: DatabaseConfig{
			Host:               v.GetString("db_host"),
			Port:               v.GetString("db_port"),
			User:               v.GetString("db_user"),
			Password:           v.GetString("db_password"),
			Name:               v.GetString("db_name"),
			SSLMode:            v.GetString("db_sslmode"),
			MaxOpenConns:       v.GetInt("db_max_open_conns"),
			MaxIdleConns:       v.GetInt("db_max_idle_conns"),
			ConnMaxLifetimeSec: v.GetInt("db_conn_max_lifetime_sec"),
		},
		MinIO: MinIOConfig{
			Endpoint:  v.GetString("minio_endpoint"),
			AccessKey: v.GetString("minio_access_key"),
			SecretKey: v.GetString("minio_secret_key"),
			Bucket:    v.GetString("minio_bucket"),
			UseSSL:    v.GetBool("minio_use_ssl"),
		},
		Download: DownloadConfig{
			SecretField:         v.GetString("download_secret_field"),
			SecretMismatchDelay: time.Duration(v.GetInt("download_secret_delay_us")) * time.Microsecond,
			CacheSeconds:        v.GetInt("download_cache_seconds"),
			RateLimitRPS:        v.GetFloat64("download_rate_limit_rps"),
			RateLimitBurst:      v.GetInt("download_rate_limit_burst"),
		},
	}
}
