package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

var (
	RDB *redis.Client
	Ctx = context.Background()
)

// sentinelAddrs reads REDIS_SENTINEL_ADDRS, a comma-separated host:port list.
func sentinelAddrs() []string {
	var addrs []string
	for _, addr := range strings.Split(os.Getenv("REDIS_SENTINEL_ADDRS"), ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			addrs = append(addrs, addr)
		}
	}
	return addrs
}

// ConnectRedis initializes the Redis client holding admin sessions and the
// poster byte cache. REDIS_MODE=sentinel switches to failover mode.
func ConnectRedis() (*redis.Client, context.Context) {
	mode := os.Getenv("REDIS_MODE")
	password := os.Getenv("REDIS_PASSWORD")

	if mode == "sentinel" {
		RDB = redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:       os.Getenv("REDIS_MASTER_NAME"),
			SentinelAddrs:    sentinelAddrs(),
			Password:         password,
			SentinelPassword: password,
			DB:               0,
		})
	} else {
		addr := fmt.Sprintf("%s:%s", os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"))
		RDB = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       0,
		})
	}

	pong, err := RDB.Ping(Ctx).Result()
	if err != nil {
		log.Printf("Failed to connect to Redis (%s mode): %v", mode, err)
		return nil, nil
	}

	fmt.Println("Redis connected (mode:", mode, "):", pong)
	return RDB, Ctx
}
