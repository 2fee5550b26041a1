// Package prompts holds the compile-time prompt templates and renders them
// with user preferences. Rendering is pure string substitution; the caller
// guarantees every placeholder has a value.
package prompts

import (
	"strconv"
	"strings"

	"travelstar/models"
)

// SystemItinerary is the fixed system instruction for itinerary generation.
const SystemItinerary = "You are an expert travel planner. Always respond with valid JSON format."

// SystemPacking is the fixed system instruction for packing-list generation.
const SystemPacking = "You are a travel packing expert. Provide concise, practical packing advice."

// SystemBudget is the fixed system instruction for budget optimization.
const SystemBudget = "You are a travel budget optimization expert. Provide concrete, destination-specific savings."

// The itinerary template carries a literal example of the JSON shape the
// adapter parses. The schema is advisory: the model is told the shape, the
// adapter accepts whatever subset of it comes back.
const itineraryTemplate = `You are Travelstar, an expert AI travel planner specializing in creating personalized, budget-friendly itineraries for students and young travelers.

**CRITICAL FORMATTING REQUIREMENTS:**
You MUST format your response as valid JSON with this exact structure:

{
  "itinerary_title": "Creative title for the itinerary",
  "total_budget": "Total estimated cost",
  "budget_breakdown": {
    "accommodation": "cost",
    "food": "cost",
    "activities_and_shopping": "cost",
    "transportation": "cost",
    "miscellaneous": "cost"
  },
  "travel_tips": ["tip1", "tip2", "tip3", "tip4", "tip5"],
  "daily_itinerary": {
    "Day 1": {
      "theme": "Day theme",
      "morning": {"activity": "description", "cost": "amount", "duration": "time"},
      "afternoon": {"activity": "description", "cost": "amount", "duration": "time"},
      "evening": {"activity": "description", "cost": "amount", "duration": "time"}
    }
  }
}

**User Travel Preferences:**
Destination: {destination}
Duration: {duration} days
Budget: {budget}
Travel Style: {travel_style}
Interests: {interests}
Season: {season}
Group Size: {group_size}
Additional Notes: {additional_notes}

Create a realistic, budget-friendly itinerary that maximizes experiences while minimizing costs. Focus on student-friendly accommodations, local food, and free/cheap activities.`

const packingTemplate = `Create a smart packing list for this trip considering:
- Destination: {destination}
- Duration: {duration} days
- Season: {season}
- Activities: {interests}

Focus on essentials and multi-purpose items for budget travelers.`

const budgetTemplate = `You are a travel budget optimization expert. Given a travel itinerary, suggest specific ways to reduce costs while maintaining quality.

Itinerary: {title}
Destination: {destination}
Total budget: {total_budget}

Provide 5-7 concrete money-saving tips specific to this destination and itinerary.`

func replacer(p *models.TripPreferences) *strings.Replacer {
	return strings.NewReplacer(
		"{destination}", p.Destination,
		"{duration}", strconv.Itoa(p.Duration),
		"{budget}", p.Budget,
		"{travel_style}", p.TravelStyle,
		"{interests}", p.InterestList(),
		"{season}", p.Season,
		"{group_size}", p.GroupSize,
		"{additional_notes}", p.AdditionalNotes,
	)
}

// BuildItinerary renders the itinerary-planner instruction.
func BuildItinerary(p *models.TripPreferences) string {
	return replacer(p).Replace(itineraryTemplate)
}

// BuildPackingList renders the packing-list instruction.
func BuildPackingList(p *models.TripPreferences) string {
	return replacer(p).Replace(packingTemplate)
}

// BuildBudgetTips renders the budget-optimizer instruction for an already
// generated itinerary.
func BuildBudgetTips(destination string, it *models.Itinerary) string {
	return strings.NewReplacer(
		"{title}", it.Title,
		"{destination}", destination,
		"{total_budget}", it.TotalBudget,
	).Replace(budgetTemplate)
}
