package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

const availabilityTTL = 60 * time.Second

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, availability caching disabled")
		Client = nil
		return
	}
	log.Info().Msg("Connected to Redis")
}

// AvailabilityKey builds the cache key for one availability query.
func AvailabilityKey(serviceID uint, date string, employeeID *uint) string {
	emp := "all"
	if employeeID != nil {
		emp = fmt.Sprintf("%d", *employeeID)
	}
	return fmt.Sprintf("avail:%d:%s:%s", serviceID, date, emp)
}

// GetAvailability returns the cached JSON payload, or "" on miss.
func GetAvailability(key string) string {
	if Client == nil {
		return ""
	}
	val, err := Client.Get(Ctx, key).Result()
	if err != nil {
		return ""
	}
	return val
}

// SetAvailability caches the JSON payload for a short TTL.
func SetAvailability(key, payload string) {
	if Client == nil {
		return
	}
	if err := Client.Set(Ctx, key, payload, availabilityTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to cache availability")
	}
}

// InvalidateAllAvailability drops every cached availability entry.
// Business-hours writes affect every date sharing the weekday, so the
// whole cache goes.
func InvalidateAllAvailability() {
	if Client == nil {
		return
	}
	keys, err := Client.Keys(Ctx, "avail:*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := Client.Del(Ctx, keys...).Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate availability cache")
	}
}

// InvalidateAvailability drops every cached availability entry for a
// date. Called after booking and blocked-slot writes.
func InvalidateAvailability(date string) {
	if Client == nil {
		return
	}
	pattern := fmt.Sprintf("avail:*:%s:*", date)
	keys, err := Client.Keys(Ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := Client.Del(Ctx, keys...).Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate availability cache")
	}
}
