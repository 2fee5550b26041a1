package history

import (
	"testing"
	"time"

	"travelstar/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNewEntry(t *testing.T) {
	it := models.Itinerary{Title: "Goa Getaway", TotalBudget: "5000"}

	entry := NewEntry("Goa", it)

	assert.NotEmpty(t, entry.EntryID)
	assert.Equal(t, "Goa", entry.Destination)
	assert.Equal(t, it, entry.Itinerary)

	// wall-clock timestamp in the stored layout
	stamp, err := time.Parse(dateLayout, entry.Date)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), stamp, time.Minute)
}

func TestNewEntryIDsAreUnique(t *testing.T) {
	it := models.Itinerary{Title: "Repeat trip"}
	a := NewEntry("Goa", it)
	b := NewEntry("Goa", it)
	assert.NotEqual(t, a.EntryID, b.EntryID)
}

// The ordering guarantee rests on the store's atomic list insert: one
// $push at position 0 per append, so the newest entry is always first and
// concurrent appends for a user can interleave but never lose entries.
func TestPrependUpdateShape(t *testing.T) {
	entry := NewEntry("Manali", models.Itinerary{Title: "Snow Week"})

	update := prependUpdate(entry)

	push, ok := update["$push"].(bson.M)
	require.True(t, ok)
	spec, ok := push["travel_history"].(bson.M)
	require.True(t, ok)

	assert.Equal(t, 0, spec["$position"])

	each, ok := spec["$each"].([]models.HistoryEntry)
	require.True(t, ok)
	require.Len(t, each, 1)
	assert.Equal(t, entry, each[0])
}
