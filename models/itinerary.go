package models

// Itinerary is the normalized result of one successful generation. The json
// tags are the persisted wire shape: the same document the model is asked to
// emit, the SPA renders, and Mongo stores inside a HistoryEntry.
type Itinerary struct {
	Title           string             `json:"itinerary_title" bson:"itinerary_title"`
	TotalBudget     string             `json:"total_budget" bson:"total_budget"`
	BudgetBreakdown map[string]string  `json:"budget_breakdown" bson:"budget_breakdown"`
	TravelTips      []string           `json:"travel_tips" bson:"travel_tips"`
	DailyItinerary  map[string]DayPlan `json:"daily_itinerary" bson:"daily_itinerary"`
}

type DayPlan struct {
	Theme string `json:"theme" bson:"theme"`
	// A nil slot means the model planned nothing for it. Slots are never
	// filled in at storage time; display defaults belong to the renderer.
	Morning   *Activity `json:"morning,omitempty" bson:"morning,omitempty"`
	Afternoon *Activity `json:"afternoon,omitempty" bson:"afternoon,omitempty"`
	Evening   *Activity `json:"evening,omitempty" bson:"evening,omitempty"`
}

type Activity struct {
	Activity string `json:"activity" bson:"activity"`
	Cost     string `json:"cost" bson:"cost"`
	Duration string `json:"duration" bson:"duration"`
}
