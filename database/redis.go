package database

import (
	"context"

	"github.com/nurlanmnn/roomate-sub001/config"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var Redis *redis.Client

func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr: config.AppConfig.RedisURL,
	})

	_, err := Redis.Ping(context.Background()).Result()
	if err != nil {
		logrus.Warn("⚠️  Redis not available, reminder cooldowns fall back to memory: ", err)
		Redis = nil
		return
	}

	logrus.Info("✅ Redis connected successfully")
}
