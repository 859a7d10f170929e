package cli

import (
	"log/slog"
	"os"

	"github.com/mcoot/playerlist/internal/factory"
	redisstorage "github.com/mcoot/playerlist/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	PlayerlistPath string
	ConfigDir      string
	StorageType    string
	RedisURL       string
	Output         string
	Verbose        bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		PlayerlistPath: os.Getenv("PLAYERLIST_PATH"),
		ConfigDir:      os.Getenv("PLAYERLIST_CONFIG_DIR"),
		StorageType:    getEnvOrDefault("PLAYERLIST_STORAGE", factory.StorageTypeFile),
		RedisURL:       getEnvOrDefault("PLAYERLIST_REDIS_URL", redisstorage.DefaultConfig().URL),
		Output:         "text",
		Verbose:        false,
	}
}

// FactoryConfig converts the CLI settings into an application config
func (c *Config) FactoryConfig(logger *slog.Logger) factory.Config {
	fc := factory.Config{
		PlayerlistPath: c.PlayerlistPath,
		ConfigDir:      c.ConfigDir,
		StorageType:    c.StorageType,
		Logger:         logger,
	}
	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
