package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// busEnvelope is the wire form of one bus message.
type busEnvelope struct {
	Origin  string          `json:"origin"`
	Payload json.RawMessage `json:"payload"`
}

// RedisBus carries profile updates between browsing contexts (or server
// instances) over a Redis pub/sub channel.
type RedisBus struct {
	client  *redis.Client
	channel string

	mu       sync.Mutex
	nextID   int
	handlers map[int]func(string, []byte)

	cancel context.CancelFunc
}

// NewRedisBus connects a bus to the given channel and starts its receive
// loop.
func NewRedisBus(ctx context.Context, client *redis.Client, channel string) (*RedisBus, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	b := &RedisBus{
		client:   client,
		channel:  channel,
		handlers: make(map[int]func(string, []byte)),
		cancel:   cancel,
	}

	sub := client.Subscribe(loopCtx, channel)
	go b.receive(loopCtx, sub)
	return b, nil
}

func (b *RedisBus) receive(ctx context.Context, sub *redis.PubSub) {
	defer sub.Close()
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var env busEnvelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				log.Printf("[bus] dropping malformed message: %v", err)
				continue
			}
			b.mu.Lock()
			handlers := make([]func(string, []byte), 0, len(b.handlers))
			for _, h := range b.handlers {
				handlers = append(handlers, h)
			}
			b.mu.Unlock()
			for _, h := range handlers {
				h(env.Origin, env.Payload)
			}
		}
	}
}

// Publish sends the payload to every context subscribed to the channel.
func (b *RedisBus) Publish(origin string, payload []byte) error {
	data, err := json.Marshal(busEnvelope{Origin: origin, Payload: payload})
	if err != nil {
		return fmt.Errorf("failed to encode bus message: %w", err)
	}
	if err := b.client.Publish(context.Background(), b.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish bus message: %w", err)
	}
	return nil
}

// Subscribe registers a handler and returns its unsubscribe func.
func (b *RedisBus) Subscribe(handler func(string, []byte)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	b.mu.Unlock()
	return func() {
		b.mu.Lock()
		delete(b.handlers, id)
		b.mu.Unlock()
	}
}

// Close stops the receive loop.
func (b *RedisBus) Close() {
	b.cancel()
}
