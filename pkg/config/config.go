package config

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	App      AppConfig
	Redis    RedisConfig
	Store    StoreConfig
	Schedule ScheduleConfig
	CORS     CORSConfig
	Log      LogConfig
}

// AppConfig carries presentation metadata for the docs surface.
type AppConfig struct {
	Title       string
	Description string
	Version     string
	DocsPath    string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// StoreConfig identifies the schedule bucket and the role used to read it.
type StoreConfig struct {
	ReaderRoleARN string
	Bucket        string
	Region        string
}

// ScheduleConfig tunes the fetch/normalize/cache pipeline.
type ScheduleConfig struct {
	CacheTTL     time.Duration
	FetchTimeout time.Duration
	SubjectCodes []int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.App = AppConfig{
		Title:       v.GetString("APP_TITLE"),
		Description: v.GetString("APP_DESCRIPTION"),
		Version:     v.GetString("APP_VERSION"),
		DocsPath:    v.GetString("APP_DOCS_PATH"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Store = StoreConfig{
		ReaderRoleARN: v.GetString("READER_ROLE"),
		Bucket:        v.GetString("BUCKET_NAME"),
		Region:        v.GetString("AWS_REGION"),
	}

	cfg.Schedule = ScheduleConfig{
		CacheTTL:     parseDuration(v.GetString("SCHEDULE_CACHE_TTL"), 6*time.Hour),
		FetchTimeout: parseDuration(v.GetString("SCHEDULE_FETCH_TIMEOUT"), 10*time.Second),
		SubjectCodes: parseCodes(v.GetString("SCHEDULE_SUBJECTS")),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8000)
	v.SetDefault("API_PREFIX", "/api")

	v.SetDefault("APP_TITLE", "Schedule of Classes API")
	v.SetDefault("APP_DESCRIPTION", "Simple API to get schedule of classes from Rutgers University")
	v.SetDefault("APP_VERSION", "0.1.0")
	v.SetDefault("APP_DOCS_PATH", "/api/docs")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("READER_ROLE", "")
	v.SetDefault("BUCKET_NAME", "")
	v.SetDefault("AWS_REGION", "us-east-1")

	v.SetDefault("SCHEDULE_CACHE_TTL", "6h")
	v.SetDefault("SCHEDULE_FETCH_TIMEOUT", "10s")
	v.SetDefault("SCHEDULE_SUBJECTS", "640,198,623,547,548")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func parseCodes(raw string) []int {
	parts := splitAndTrim(raw)
	codes := make([]int, 0, len(parts))
	for _, part := range parts {
		code, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		codes = append(codes, code)
	}

	return codes
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
