package config

import (
	"os"
	"strconv"
)

type Config struct {
	LowStockThreshold      int
	ResolveCacheTTLSeconds int
	RedisAddr              string
	RedisPassword          string
	RedisDB                int
}

func Load() Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	threshold, err := strconv.Atoi(getEnv("LOW_STOCK_THRESHOLD", "10"))
	if err != nil || threshold < 1 {
		threshold = 10
	}
	ttl, err := strconv.Atoi(getEnv("RESOLVE_CACHE_TTL_SECONDS", "30"))
	if err != nil || ttl < 1 {
		ttl = 30
	}

	return Config{
		LowStockThreshold:      threshold,
		ResolveCacheTTLSeconds: ttl,
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:                redisDB,
	}
}

func getEnv(key string, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}
