package server

import "github.com/redis/go-redis/v9"

// newRedisClient builds the client for the cross-context bus.
func newRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})
}
