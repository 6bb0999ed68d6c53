package database

import (
	"bakery_store/config"
	"bakery_store/constants"
	"bakery_store/model"
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var (
	Orders       *Collection[model.Order]
	CustomOrders *Collection[model.CustomOrder]
	Products     *Collection[model.Product]
	Posts        *Collection[model.BlogPost]
	Users        *Collection[model.User]
	Settings     *Collection[model.PaymentSettings]

	Redis *redis.Client
)

// Connect initializes every collection under the data directory and seeds
// the defaults. It replaces a database handshake: there is nothing to open,
// the files are created lazily on first write.
func Connect() {
	dir := config.ConfigDefault("DATA_DIR", "data")
	ConnectDir(dir)
	SeedData()
}

// ConnectDir wires the collections against an explicit directory. Tests use
// this with a temp dir.
func ConnectDir(dir string) {
	Orders = NewCollection[model.Order](dir, constants.COLLECTION_ORDERS)
	CustomOrders = NewCollection[model.CustomOrder](dir, constants.COLLECTION_CUSTOM_ORDERS)
	Products = NewCollection[model.Product](dir, constants.COLLECTION_PRODUCTS)
	Posts = NewCollection[model.BlogPost](dir, constants.COLLECTION_BLOG)
	Users = NewCollection[model.User](dir, constants.COLLECTION_USERS)
	Settings = NewCollection[model.PaymentSettings](dir, constants.COLLECTION_SETTINGS)
}

// ConnectRedis opens the shared redis client used by the rate limiter and
// the order feed. Failure is logged, not fatal: both features degrade.
func ConnectRedis() {
	addr := config.ConfigDefault("REDIS_ADDR", "localhost:6379")
	Redis = redis.NewClient(&redis.Options{Addr: addr})
	if err := Redis.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable at %s: %v", addr, err)
	}
}
