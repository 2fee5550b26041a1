package planner

import (
	"encoding/json"
	"fmt"
	"strings"

	"travelstar/models"
)

// extractJSON slices the candidate object out of the accumulated model
// output: first '{' through last '}', inclusive. Models routinely wrap the
// JSON in prose no matter what the instructions say; this tolerates leading
// and trailing commentary without needing a grammar.
func extractJSON(text string) (string, bool) {
	start := strings.Index(text, "{")
	if start < 0 {
		return "", false
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return "", false
	}
	return text[start : end+1], true
}

// normalize parses the candidate permissively into an Itinerary. The only
// hard requirement is that the candidate is a JSON object; every field is
// optional, unknown fields are ignored, and a field that fails to decode is
// simply left at its empty value. Absent collections come back empty, never
// nil, so the result always renders and round-trips.
func normalize(candidate string) (models.Itinerary, error) {
	it := models.Itinerary{
		BudgetBreakdown: map[string]string{},
		TravelTips:      []string{},
		DailyItinerary:  map[string]models.DayPlan{},
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &raw); err != nil {
		return models.Itinerary{}, fmt.Errorf("response is not a JSON object: %w", err)
	}

	if v, ok := raw["itinerary_title"]; ok {
		json.Unmarshal(v, &it.Title)
	}
	if v, ok := raw["total_budget"]; ok {
		json.Unmarshal(v, &it.TotalBudget)
	}
	if v, ok := raw["budget_breakdown"]; ok {
		var breakdown map[string]string
		if err := json.Unmarshal(v, &breakdown); err == nil && breakdown != nil {
			it.BudgetBreakdown = breakdown
		}
	}
	if v, ok := raw["travel_tips"]; ok {
		var tips []string
		if err := json.Unmarshal(v, &tips); err == nil && tips != nil {
			it.TravelTips = tips
		}
	}
	if v, ok := raw["daily_itinerary"]; ok {
		var days map[string]json.RawMessage
		if err := json.Unmarshal(v, &days); err == nil {
			for label, dayRaw := range days {
				// A day that fails to decode still gets an entry; an empty
				// DayPlan renders safely. Slots stay nil unless the model
				// supplied them.
				var plan models.DayPlan
				json.Unmarshal(dayRaw, &plan)
				it.DailyItinerary[label] = plan
			}
		}
	}

	return it, nil
}
