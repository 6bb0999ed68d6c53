package handler

import (
	"bakery_store/database"
	"bakery_store/logger"
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const orderFeedChannel = "orders:feed"

type orderEvent struct {
	Event        string    `json:"event"`
	OrderID      string    `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	Total        float64   `json:"total,omitempty"`
	At           time.Time `json:"at"`
}

// PublishOrderEvent pushes an order event onto the Redis feed so every
// connected admin dashboard sees it. A missing Redis connection is not an
// error; the order flow must not depend on the feed.
func PublishOrderEvent(event, orderID, customerName string, total float64) {
	if database.Redis == nil {
		return
	}

	payload, err := json.Marshal(orderEvent{
		Event:        event,
		OrderID:      orderID,
		CustomerName: customerName,
		Total:        total,
		At:           time.Now().UTC(),
	})
	if err != nil {
		return
	}

	if err := database.Redis.Publish(context.Background(), orderFeedChannel, payload).Err(); err != nil {
		logger.Warn("order feed publish failed", zap.String("event", event), zap.Error(err))
	}
}

type feedWriter interface {
	WriteMessage(messageType int, data []byte) error
}

// relayOrderFeed copies messages to a single connection until the channel
// closes or the write fails. Each subscriber owns its own subscription, so
// an event reaches every connection exactly once.
func relayOrderFeed(w feedWriter, messages <-chan *redis.Message) {
	for msg := range messages {
		if err := w.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
			return
		}
	}
}

// OrderFeed keeps an admin dashboard connection open and relays order events
// from the Redis channel to it.
func OrderFeed(c *websocket.Conn) {
	defer c.Close()

	if database.Redis == nil {
		c.WriteJSON(map[string]string{"error": "order feed unavailable"})
		return
	}

	pubsub := database.Redis.Subscribe(context.Background(), orderFeedChannel)
	defer pubsub.Close()

	relayOrderFeed(c, pubsub.Channel())
}
