package config

import (
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

// NewRedis returns nil when no address is configured. The leaderboard is
// optional and the rest of the app runs without redis.
func NewRedis(config *viper.Viper) redis.UniversalClient {
	addr := config.GetString("redis.addr")
	if addr == "" {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.GetString("redis.password"),
		DB:       config.GetInt("redis.db"),
	})
}
