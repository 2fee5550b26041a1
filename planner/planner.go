// Package planner turns free-text model output into structured itineraries.
// It drives the generation endpoint, accumulates the streamed fragments,
// extracts the JSON object buried in whatever prose the model wrapped it in,
// and normalizes it into models.Itinerary. Every failure comes back as a
// *GenerationError value; the package never panics on model output and
// never persists anything.
package planner

import (
	"context"
	"strings"

	"travelstar/llm"
	"travelstar/models"
	"travelstar/prompts"
)

const (
	// User-facing failure reasons.
	ReasonCommunication = "communication error"
	ReasonMalformed     = "failed to generate itinerary"
)

// GenerationError is the typed outcome for a generation that produced no
// usable itinerary. Reason is safe to show to the user; Err, when set,
// carries the underlying transport or parse error for the logs.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *GenerationError) Unwrap() error { return e.Err }

type Planner struct {
	llm llm.Streamer
}

func New(streamer llm.Streamer) *Planner {
	return &Planner{llm: streamer}
}

// accumulate drains one generation stream into a single buffer, keeping the
// fragments strictly in arrival order. A mid-stream error discards the
// partial text: the caller sees either the whole response or none of it.
func (p *Planner) accumulate(ctx context.Context, system, user string) (string, *GenerationError) {
	var buf strings.Builder
	for fragment, err := range p.llm.Stream(ctx, system, user) {
		if err != nil {
			return "", &GenerationError{Reason: ReasonCommunication, Err: err}
		}
		buf.WriteString(fragment)
	}
	return strings.TrimSpace(buf.String()), nil
}

// Generate produces a normalized itinerary for the given preferences, or a
// *GenerationError. Retry is the caller's business; this does exactly one
// endpoint call and touches no storage.
func (p *Planner) Generate(ctx context.Context, prefs *models.TripPreferences) (models.Itinerary, error) {
	text, genErr := p.accumulate(ctx, prompts.SystemItinerary, prompts.BuildItinerary(prefs))
	if genErr != nil {
		return models.Itinerary{}, genErr
	}

	candidate, ok := extractJSON(text)
	if !ok {
		return models.Itinerary{}, &GenerationError{Reason: ReasonMalformed}
	}

	itinerary, err := normalize(candidate)
	if err != nil {
		return models.Itinerary{}, &GenerationError{Reason: ReasonMalformed, Err: err}
	}
	return itinerary, nil
}

// PackingList is a separately-invoked capability: plain-text advice, no JSON
// contract. Its failure never affects an already generated itinerary.
func (p *Planner) PackingList(ctx context.Context, prefs *models.TripPreferences) (string, error) {
	text, genErr := p.accumulate(ctx, prompts.SystemPacking, prompts.BuildPackingList(prefs))
	if genErr != nil {
		return "", genErr
	}
	return text, nil
}

// BudgetTips generates money-saving suggestions for a finished itinerary.
func (p *Planner) BudgetTips(ctx context.Context, destination string, it *models.Itinerary) (string, error) {
	text, genErr := p.accumulate(ctx, prompts.SystemBudget, prompts.BuildBudgetTips(destination, it))
	if genErr != nil {
		return "", genErr
	}
	return text, nil
}
