package models

import (
	"fmt"
	"slices"
	"strings"
)

// TripPreferences is the per-request form payload. It is never persisted;
// it only lives long enough to render one prompt.
type TripPreferences struct {
	Destination     string   `json:"destination"`
	Duration        int      `json:"duration"`
	Budget          string   `json:"budget"`
	TravelStyle     string   `json:"travel_style"`
	Interests       []string `json:"interests"`
	Season          string   `json:"season"`
	GroupSize       string   `json:"group_size"`
	AdditionalNotes string   `json:"additional_notes,omitempty"`
}

var (
	BudgetBands = []string{
		"Budget (₹10k - ₹25k)",
		"Moderate (₹25k - ₹75k)",
		"Luxury (₹75k+)",
	}
	TravelStyles = []string{
		"Backpacker",
		"Cultural Explorer",
		"Foodie",
		"Adventure Seeker",
		"Relaxation",
		"City Breaker",
	}
	Seasons    = []string{"Spring", "Summer", "Fall", "Winter"}
	GroupSizes = []string{
		"Solo Travel",
		"Couple",
		"Friends (3-5)",
		"Family",
		"Group (6+)",
	}
	InterestTags = []string{
		"History & Culture",
		"Food & Dining",
		"Nature & Hiking",
		"Art & Museums",
		"Shopping",
		"Nightlife",
		"Beaches",
		"Photography",
		"Local Markets",
	}
)

// Validate enforces the form contract before any prompt is built: a
// non-empty destination, a sane duration, and every enumerated field inside
// its enumeration.
func (p *TripPreferences) Validate() error {
	if strings.TrimSpace(p.Destination) == "" {
		return fmt.Errorf("destination is required")
	}
	if p.Duration < 1 || p.Duration > 30 {
		return fmt.Errorf("duration must be between 1 and 30 days")
	}
	if !slices.Contains(BudgetBands, p.Budget) {
		return fmt.Errorf("invalid budget range: %q", p.Budget)
	}
	if !slices.Contains(TravelStyles, p.TravelStyle) {
		return fmt.Errorf("invalid travel style: %q", p.TravelStyle)
	}
	if !slices.Contains(Seasons, p.Season) {
		return fmt.Errorf("invalid season: %q", p.Season)
	}
	if !slices.Contains(GroupSizes, p.GroupSize) {
		return fmt.Errorf("invalid group size: %q", p.GroupSize)
	}
	for _, tag := range p.Interests {
		if !slices.Contains(InterestTags, tag) {
			return fmt.Errorf("invalid interest: %q", tag)
		}
	}
	return nil
}

// InterestList renders the interests as the comma-joined string the prompt
// templates expect.
func (p *TripPreferences) InterestList() string {
	return strings.Join(p.Interests, ", ")
}
