package prompts

import (
	"testing"

	"travelstar/models"

	"github.com/stretchr/testify/assert"
)

func prefs() *models.TripPreferences {
	return &models.TripPreferences{
		Destination:     "Kerala",
		Duration:        6,
		Budget:          "Budget (₹10k - ₹25k)",
		TravelStyle:     "Backpacker",
		Interests:       []string{"Beaches", "Local Markets"},
		Season:          "Spring",
		GroupSize:       "Couple",
		AdditionalNotes: "vegetarian food only",
	}
}

func TestBuildItinerarySubstitutesEveryField(t *testing.T) {
	out := BuildItinerary(prefs())

	assert.Contains(t, out, "Destination: Kerala")
	assert.Contains(t, out, "Duration: 6 days")
	assert.Contains(t, out, "Budget: Budget (₹10k - ₹25k)")
	assert.Contains(t, out, "Travel Style: Backpacker")
	assert.Contains(t, out, "Interests: Beaches, Local Markets")
	assert.Contains(t, out, "Season: Spring")
	assert.Contains(t, out, "Group Size: Couple")
	assert.Contains(t, out, "vegetarian food only")

	// every placeholder was consumed
	assert.NotContains(t, out, "{destination}")
	assert.NotContains(t, out, "{additional_notes}")
}

func TestBuildItineraryCarriesSchemaExample(t *testing.T) {
	out := BuildItinerary(prefs())

	// the literal output-shape example survives templating untouched
	assert.Contains(t, out, `"itinerary_title"`)
	assert.Contains(t, out, `"total_budget"`)
	assert.Contains(t, out, `"budget_breakdown"`)
	assert.Contains(t, out, `"travel_tips"`)
	assert.Contains(t, out, `"daily_itinerary"`)
	assert.Contains(t, out, `"morning"`)
}

func TestBuildPackingList(t *testing.T) {
	out := BuildPackingList(prefs())
	assert.Contains(t, out, "Destination: Kerala")
	assert.Contains(t, out, "Season: Spring")
	assert.NotContains(t, out, "{")
}

func TestBuildBudgetTips(t *testing.T) {
	it := models.Itinerary{Title: "Kerala on a Shoestring", TotalBudget: "₹18,000"}
	out := BuildBudgetTips("Kerala", &it)
	assert.Contains(t, out, "Kerala on a Shoestring")
	assert.Contains(t, out, "₹18,000")
	assert.Contains(t, out, "Destination: Kerala")
}
