package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	DB         DBConfig
	S3         S3Config
	Log        LogConfig
	CORS       CORSConfig
	Validation ValidationConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// IsProduction reports whether the server runs in the production environment.
func (s *ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds object storage settings for uploaded version files.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
	CDNURL        string `mapstructure:"cdn_url"`
}

// MaxFileSizeBytes returns the upload size limit in bytes.
func (s *S3Config) MaxFileSizeBytes() int64 {
	return s.MaxFileSizeMB * 1024 * 1024
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ValidationConfig holds archive validation pool settings.
type ValidationConfig struct {
	Workers int `mapstructure:"workers"`
}

// Load reads configuration from environment variables with the LABRINTH_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LABRINTH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "labrinth")
	v.SetDefault("db.password", "labrinth")
	v.SetDefault("db.name", "labrinth")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "labrinth-files")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 500)
	v.SetDefault("s3.presign_expiry", 3600)
	v.SetDefault("s3.cdn_url", "http://localhost:9000/labrinth-files")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	v.SetDefault("validation.workers", runtime.NumCPU())

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "LABRINTH_SERVER_PORT",
		"server.read_timeout":  "LABRINTH_SERVER_READ_TIMEOUT",
		"server.write_timeout": "LABRINTH_SERVER_WRITE_TIMEOUT",
		"server.environment":   "LABRINTH_SERVER_ENVIRONMENT",
		"db.host":              "LABRINTH_DB_HOST",
		"db.port":              "LABRINTH_DB_PORT",
		"db.user":              "LABRINTH_DB_USER",
		"db.password":          "LABRINTH_DB_PASSWORD",
		"db.name":              "LABRINTH_DB_NAME",
		"db.sslmode":           "LABRINTH_DB_SSLMODE",
		"db.max_open":          "LABRINTH_DB_MAX_OPEN",
		"db.max_idle":          "LABRINTH_DB_MAX_IDLE",
		"s3.region":            "LABRINTH_S3_REGION",
		"s3.bucket":            "LABRINTH_S3_BUCKET",
		"s3.endpoint":          "LABRINTH_S3_ENDPOINT",
		"s3.access_key":        "LABRINTH_S3_ACCESS_KEY",
		"s3.secret_key":        "LABRINTH_S3_SECRET_KEY",
		"s3.max_file_size_mb":  "LABRINTH_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":    "LABRINTH_S3_PRESIGN_EXPIRY",
		"s3.cdn_url":           "LABRINTH_S3_CDN_URL",
		"log.level":            "LABRINTH_LOG_LEVEL",
		"log.format":           "LABRINTH_LOG_FORMAT",
		"cors.allowed_origins": "LABRINTH_CORS_ALLOWED_ORIGINS",
		"validation.workers":   "LABRINTH_VALIDATION_WORKERS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set PORT. Use it if LABRINTH_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LABRINTH_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
		CDNURL:        strings.TrimSuffix(v.GetString("s3.cdn_url"), "/"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Validation = ValidationConfig{
		Workers: v.GetInt("validation.workers"),
	}
	if cfg.Validation.Workers <= 0 {
		return nil, fmt.Errorf("validation.workers must be positive, got %d", cfg.Validation.Workers)
	}

	return cfg, nil
}
