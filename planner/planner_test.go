package planner

import (
	"context"
	"errors"
	"iter"
	"testing"

	"travelstar/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStreamer replays canned fragments, optionally failing mid-stream the
// way a dropped connection would.
type fakeStreamer struct {
	fragments []string
	err       error // delivered after the fragments, if set
	system    string
	user      string
}

func (f *fakeStreamer) Stream(ctx context.Context, system, user string) iter.Seq2[string, error] {
	f.system = system
	f.user = user
	return func(yield func(string, error) bool) {
		for _, frag := range f.fragments {
			if !yield(frag, nil) {
				return
			}
		}
		if f.err != nil {
			yield("", f.err)
		}
	}
}

func testPrefs() *models.TripPreferences {
	return &models.TripPreferences{
		Destination: "Goa",
		Duration:    5,
		Budget:      models.BudgetBands[0],
		TravelStyle: models.TravelStyles[0],
		Interests:   []string{"Beaches"},
		Season:      "Winter",
		GroupSize:   models.GroupSizes[1],
	}
}

func TestGenerateAssemblesFragmentsInOrder(t *testing.T) {
	fake := &fakeStreamer{fragments: []string{
		"Here is your trip! ",
		`{"itinerary_title":"Goa`,
		` Getaway","total_budget":`,
		`"5000"}`,
		" Enjoy!",
	}}

	it, err := New(fake).Generate(context.Background(), testPrefs())
	require.NoError(t, err)
	assert.Equal(t, "Goa Getaway", it.Title)
	assert.Equal(t, "5000", it.TotalBudget)

	// the fixed system instruction and the rendered prompt both reach the endpoint
	assert.Contains(t, fake.system, "valid JSON")
	assert.Contains(t, fake.user, "Goa")
}

func TestGenerateCommunicationErrorDiscardsPartialText(t *testing.T) {
	fake := &fakeStreamer{
		fragments: []string{`{"itinerary_title":"Almost`},
		err:       errors.New("connection reset"),
	}

	_, err := New(fake).Generate(context.Background(), testPrefs())
	require.Error(t, err)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, ReasonCommunication, genErr.Reason)
	assert.ErrorContains(t, genErr, "connection reset")
}

func TestGenerateTruncatedStreamFails(t *testing.T) {
	// stream completes normally but the closing brace never arrived
	fake := &fakeStreamer{fragments: []string{`{"itinerary_title":"Half a trip`}}

	_, err := New(fake).Generate(context.Background(), testPrefs())

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, ReasonMalformed, genErr.Reason)
}

func TestGenerateNoJSONFails(t *testing.T) {
	fake := &fakeStreamer{fragments: []string{"Sorry, I can't plan that trip."}}

	_, err := New(fake).Generate(context.Background(), testPrefs())

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, ReasonMalformed, genErr.Reason)
}

func TestPackingListReturnsPlainText(t *testing.T) {
	fake := &fakeStreamer{fragments: []string{"- Sunscreen\n", "- Power bank\n"}}

	list, err := New(fake).PackingList(context.Background(), testPrefs())
	require.NoError(t, err)
	assert.Equal(t, "- Sunscreen\n- Power bank", list)
	assert.Contains(t, fake.system, "packing")
}

func TestBudgetTipsPropagatesCommunicationError(t *testing.T) {
	fake := &fakeStreamer{err: errors.New("quota exceeded")}

	it := models.Itinerary{Title: "Goa Getaway", TotalBudget: "5000"}
	_, err := New(fake).BudgetTips(context.Background(), "Goa", &it)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, ReasonCommunication, genErr.Reason)
}
