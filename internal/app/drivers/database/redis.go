package database

import (
	"context"
	"log"
	"net"
	"time"

	"healthease-client/internal/app/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the redis instance holding the session slots.
// The client is only built when the redis session driver is selected.
func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	addr := net.JoinHostPort(driverConfig.Redis.Host, driverConfig.Redis.Port)
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    driverConfig.Redis.Password,
		DB:          driverConfig.Redis.DB,
		ClientName:  "healthease-client",
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis at %s: %v", addr, err)
	}

	log.Printf("Successfully connected to Redis at %s", addr)
	return rdb
}
