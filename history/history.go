// Package history appends generated itineraries to a user's travel history.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travelstar/db"
	"travelstar/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	// ErrUserNotFound means the operation matched no user document.
	ErrUserNotFound = errors.New("user not found")
	// ErrEntryNotFound means the user has no history entry with that id.
	ErrEntryNotFound = errors.New("history entry not found")
)

const dateLayout = "2006-01-02 15:04:05"

// NewEntry stamps an itinerary into an immutable history entry.
func NewEntry(destination string, itinerary models.Itinerary) models.HistoryEntry {
	return models.HistoryEntry{
		EntryID:     uuid.NewString(),
		Date:        time.Now().Format(dateLayout),
		Destination: destination,
		Itinerary:   itinerary,
	}
}

// prependUpdate builds the update that inserts an entry at the head of
// travel_history. $push with $position 0 is a single atomic list insert, so
// concurrent appends for one user interleave without losing entries and the
// newest entry is always first.
func prependUpdate(entry models.HistoryEntry) bson.M {
	return bson.M{
		"$push": bson.M{
			"travel_history": bson.M{
				"$each":     []models.HistoryEntry{entry},
				"$position": 0,
			},
		},
	}
}

// Append prepends a timestamped entry to the user's history. It does not
// deduplicate, cap, or re-validate the itinerary; the planner already
// normalized it. Failures here must never undo a generation the user has
// already been shown.
func Append(ctx context.Context, userID, destination string, itinerary models.Itinerary) error {
	entry := NewEntry(destination, itinerary)

	res, err := db.UserCollection.UpdateOne(ctx, bson.M{"userid": userID}, prependUpdate(entry))
	if err != nil {
		return fmt.Errorf("append history for %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ForUser returns the user's history, newest first (storage order).
func ForUser(ctx context.Context, userID string) ([]models.HistoryEntry, error) {
	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user)
	if err != nil {
		return nil, fmt.Errorf("load history for %s: %w", userID, err)
	}
	if user.TravelHistory == nil {
		return []models.HistoryEntry{}, nil
	}
	return user.TravelHistory, nil
}

// Entry looks up a single saved entry by id for the given user.
func Entry(ctx context.Context, userID, entryID string) (*models.HistoryEntry, error) {
	entries, err := ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].EntryID == entryID {
			return &entries[i], nil
		}
	}
	return nil, ErrEntryNotFound
}
