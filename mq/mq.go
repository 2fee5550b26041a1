package mq

import (
	"context"
	"encoding/json"
	"log"

	"travelstar/rdx"
)

const channel = "trip-events"

// TripEvent is the payload published whenever something history-worthy
// happens (a user registers, an itinerary is generated).
type TripEvent struct {
	Event       string `json:"event"`
	UserID      string `json:"user_id"`
	Destination string `json:"destination,omitempty"`
}

// Emit publishes an event to Redis. Best-effort: a dead broker never fails
// the request that emitted the event.
func Emit(ctx context.Context, event TripEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s event: %v", event.Event, err)
	}
}

// StartTripEventWorker consumes trip events and maintains the destination
// popularity ranking behind GET /api/trips/popular.
func StartTripEventWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("[TripEventWorker] Listening for trip events...")

	for msg := range ch {
		var event TripEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[TripEventWorker] Failed to parse event: %v", err)
			continue
		}

		if event.Event == "trip-generated" && event.Destination != "" {
			if err := rdx.Conn.ZIncrBy(ctx, "trips:popular", 1, event.Destination).Err(); err != nil {
				log.Printf("[TripEventWorker] ZIncrBy error: %v", err)
			}
		}
	}
}
