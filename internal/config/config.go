package config

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env                 string
	Port                string
	StoreDriver         string // sqlite, postgres or redis
	DatabaseURL         string // sqlite path or postgres DSN
	RedisURL            string // optional; also enables traffic stats
	ProjectsDataPath    string
	FrontendURLEndsWith string
	DevPassword         string
	HealthAdminKey      string
	MonthlyWindow       int
	TopN                int
	LogLevel            zerolog.Level
}

const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("STORE_DRIVER", StoreSQLite)
	v.SetDefault("DATABASE_URL", "data/sitetrack.db")
	v.SetDefault("PROJECTS_DATA_PATH", "data/projects.json")
	v.SetDefault("MONTHLY_WINDOW", 6)
	v.SetDefault("TOP_N", 5)
	v.SetDefault("LOG_LEVEL", "info")

	level, err := zerolog.ParseLevel(strings.ToLower(v.GetString("LOG_LEVEL")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return &Config{
		Env:                 v.GetString("APP_ENV"),
		Port:                v.GetString("PORT"),
		StoreDriver:         strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		DatabaseURL:         v.GetString("DATABASE_URL"),
		RedisURL:            v.GetString("REDIS_URL"),
		ProjectsDataPath:    v.GetString("PROJECTS_DATA_PATH"),
		FrontendURLEndsWith: v.GetString("FRONTEND_URL_ENDS_WITH"),
		DevPassword:         v.GetString("DEV_PASSWORD"),
		HealthAdminKey:      v.GetString("HEALTH_ADMIN_KEY"),
		MonthlyWindow:       v.GetInt("MONTHLY_WINDOW"),
		TopN:                v.GetInt("TOP_N"),
		LogLevel:            level,
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
