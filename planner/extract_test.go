package planner

import (
	"encoding/json"
	"testing"

	"travelstar/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONFromProse(t *testing.T) {
	text := `Sure! {"itinerary_title":"Goa Trip","total_budget":"5000"} Hope that helps!`

	candidate, ok := extractJSON(text)
	require.True(t, ok)
	assert.Equal(t, `{"itinerary_title":"Goa Trip","total_budget":"5000"}`, candidate)

	it, err := normalize(candidate)
	require.NoError(t, err)
	assert.Equal(t, "Goa Trip", it.Title)
	assert.Equal(t, "5000", it.TotalBudget)
	assert.Empty(t, it.BudgetBreakdown)
	assert.Empty(t, it.TravelTips)
	assert.Empty(t, it.DailyItinerary)
	// absent collections are empty, never nil
	assert.NotNil(t, it.BudgetBreakdown)
	assert.NotNil(t, it.TravelTips)
	assert.NotNil(t, it.DailyItinerary)
}

func TestExtractJSONNoDelimiters(t *testing.T) {
	_, ok := extractJSON("no json here at all")
	assert.False(t, ok)

	// opening brace but no close after it
	_, ok = extractJSON("} oops {")
	assert.False(t, ok)

	_, ok = extractJSON("truncated stream ends mid-object {\"itinerary_title\": \"Goa")
	assert.False(t, ok)
}

func TestNormalizeRejectsNonObject(t *testing.T) {
	_, err := normalize(`["not", "an", "object"]`)
	assert.Error(t, err)

	_, err = normalize(`{not valid json}`)
	assert.Error(t, err)
}

func TestNormalizeMissingDailyItinerary(t *testing.T) {
	it, err := normalize(`{"itinerary_title":"Weekend in Manali","travel_tips":["Carry layers"]}`)
	require.NoError(t, err)
	assert.Equal(t, "Weekend in Manali", it.Title)
	assert.Equal(t, []string{"Carry layers"}, it.TravelTips)
	assert.NotNil(t, it.DailyItinerary)
	assert.Len(t, it.DailyItinerary, 0)
}

func TestNormalizeKeepsSlotsAbsent(t *testing.T) {
	it, err := normalize(`{
		"daily_itinerary": {
			"Day 1": {
				"theme": "Beaches",
				"morning": {"activity": "Baga Beach", "cost": "Free", "duration": "3 hours"}
			}
		}
	}`)
	require.NoError(t, err)

	day, ok := it.DailyItinerary["Day 1"]
	require.True(t, ok)
	assert.Equal(t, "Beaches", day.Theme)
	require.NotNil(t, day.Morning)
	assert.Equal(t, "Baga Beach", day.Morning.Activity)
	// absent slots are never synthesized at this layer
	assert.Nil(t, day.Afternoon)
	assert.Nil(t, day.Evening)
}

func TestNormalizeIgnoresUnknownAndBadFields(t *testing.T) {
	it, err := normalize(`{
		"itinerary_title": "Kerala Backwaters",
		"unknown_field": {"whatever": true},
		"travel_tips": "not an array",
		"budget_breakdown": {"food": "2000"}
	}`)
	require.NoError(t, err)
	assert.Equal(t, "Kerala Backwaters", it.Title)
	// a field that fails to decode is left empty, not an error
	assert.Empty(t, it.TravelTips)
	assert.Equal(t, map[string]string{"food": "2000"}, it.BudgetBreakdown)
}

func TestNormalizeRoundTrip(t *testing.T) {
	original := models.Itinerary{
		Title:       "5 Days in Goa",
		TotalBudget: "₹22,500",
		BudgetBreakdown: map[string]string{
			"accommodation": "₹8,000",
			"food":          "₹5,500",
		},
		TravelTips: []string{"Rent a scooter", "Eat at beach shacks"},
		DailyItinerary: map[string]models.DayPlan{
			"Day 1": {
				Theme:   "North Goa",
				Morning: &models.Activity{Activity: "Fort Aguada", Cost: "₹50", Duration: "2 hours"},
				Evening: &models.Activity{Activity: "Sunset at Vagator", Cost: "Free", Duration: "1 hour"},
			},
			"Day 2": {Theme: "Old Goa churches"},
		},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	parsed, err := normalize(string(data))
	require.NoError(t, err)
	assert.Equal(t, original, parsed)

	// normalization is idempotent
	data2, err := json.Marshal(parsed)
	require.NoError(t, err)
	again, err := normalize(string(data2))
	require.NoError(t, err)
	assert.Equal(t, parsed, again)
}
