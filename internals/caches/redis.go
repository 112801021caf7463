// Package caches menyediakan client Redis opsional untuk cache respons publik.
// Kalau koneksi gagal saat startup, client = nil dan caller harus degrade
// gracefully (tanpa cache).
package caches

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient membuat client Redis dari ENV:
//   REDIS_ADDR – host:port (default localhost:6379)
//   REDIS_PASSWORD – opsional
//   REDIS_DB – nomor database (default 0)
// Return nil kalau server tidak bisa di-ping.
func NewRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	dbNum := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if n, err := strconv.Atoi(dbStr); err == nil {
			dbNum = n
		}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       dbNum,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis %s tidak bisa di-ping, cache dimatikan: %v", addr, err)
		_ = client.Close() // jangan bocorkan pool dari client yang dibuang
		return nil
	}
	return client
}
