package models

import "time"

type User struct {
	UserID        string         `json:"userid" bson:"userid"`
	Username      string         `json:"username" bson:"username"`
	Password      string         `json:"-" bson:"password"`
	Role          []string       `json:"role" bson:"role"`
	TravelHistory []HistoryEntry `json:"travel_history" bson:"travel_history"`
	CreatedAt     time.Time      `json:"created_at" bson:"created_at"`
	LastLogin     time.Time      `json:"last_login" bson:"last_login"`
	RefreshToken  string         `json:"-" bson:"refreshtoken,omitempty"`
	RefreshExpiry time.Time      `json:"refreshexp" bson:"refreshexp,omitempty"`
}

// HistoryEntry is one saved trip. Entries are immutable once written and
// live exclusively inside the owning user's travel_history list.
type HistoryEntry struct {
	EntryID     string    `json:"entryid" bson:"entryid"`
	Date        string    `json:"date" bson:"date"`
	Destination string    `json:"destination" bson:"destination"`
	Itinerary   Itinerary `json:"itinerary" bson:"itinerary"`
}
