package mq

import (
	"context"
	"encoding/json"
	"log"

	"tabu/rdx"
)

const channel = "entity-events"

// Event describes a mutation other services may react to (search indexing,
// activity feeds).
type Event struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Method     string `json:"method"`
	ActorID    string `json:"actor_id,omitempty"`
}

// Emitter publishes entity events to a redis channel. A nil Emitter is a
// no-op so tests can skip the wiring.
type Emitter struct {
	cache *rdx.Cache
}

func NewEmitter(cache *rdx.Cache) *Emitter {
	return &Emitter{cache: cache}
}

// Emit publishes asynchronously; failures are logged, never surfaced to the
// request path.
func (e *Emitter) Emit(ctx context.Context, name string, event Event) {
	if e == nil || e.cache == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("mq: failed to marshal %s event: %v", name, err)
		return
	}

	if err := e.cache.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("mq: failed to publish %s event: %v", name, err)
	}
}
