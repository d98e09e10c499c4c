package data

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

func MustRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	return redis.NewClient(opt)
}

// PublishCaseEvent pushes a case lifecycle event onto the shared
// stream so other services (web panel, audit log) can follow along.
func PublishCaseEvent(ctx context.Context, rdb *redis.Client, payload map[string]interface{}) error {
	_, err := rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: "supportbot.cases",
		Values: payload,
	}).Result()
	return err
}
