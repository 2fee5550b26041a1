// Package trips is the HTTP surface for itinerary generation and history.
package trips

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"travelstar/globals"
	"travelstar/history"
	"travelstar/models"
	"travelstar/mq"
	"travelstar/planner"
	"travelstar/prompts"
	"travelstar/rdx"
	"travelstar/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	planner *planner.Planner
}

func NewHandler(p *planner.Planner) *Handler {
	return &Handler{planner: p}
}

func requestUserID(r *http.Request) string {
	if id, ok := r.Context().Value(globals.UserIDKey).(string); ok {
		return id
	}
	return ""
}

// POST /api/trips/generate
//
// Generates an itinerary and then saves it to the user's history. The save
// is best-effort: a store failure is logged and reported via "saved", never
// by withholding an itinerary the generation already produced.
func (h *Handler) GenerateTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := requestUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var prefs models.TripPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := prefs.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	itinerary, err := h.planner.Generate(r.Context(), &prefs)
	if err != nil {
		var genErr *planner.GenerationError
		if errors.As(err, &genErr) {
			log.Printf("Generation failed for %s (%s): %v", userID, prefs.Destination, err)
			utils.RespondWithError(w, http.StatusBadGateway, genErr.Reason+". Please try again.")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate itinerary")
		return
	}

	saved := true
	if err := history.Append(r.Context(), userID, prefs.Destination, itinerary); err != nil {
		// The itinerary is already generated; a failed save must not hide it.
		log.Printf("Failed to save itinerary for %s: %v", userID, err)
		saved = false
	}

	mq.Emit(r.Context(), mq.TripEvent{
		Event:       "trip-generated",
		UserID:      userID,
		Destination: prefs.Destination,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"itinerary": itinerary,
		"weather":   WeatherInfo(prefs.Season),
		"saved":     saved,
	})
}

// GET /api/trips/history
func (h *Handler) GetTravelHistory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := requestUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := history.ForUser(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to load history for %s: %v", userID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching travel history")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, entries)
}

// POST /api/trips/packing-list
//
// A separate generation call, kept apart from GenerateTrip so its failure
// cannot touch an itinerary result. Responses are cached by prompt hash;
// identical requests reuse the cached text instead of paying for another
// model call.
func (h *Handler) GetPackingList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var prefs models.TripPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := prefs.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	cacheKey := "packing:" + utils.EncrypIt(prompts.BuildPackingList(&prefs))
	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"packing_list": cached, "cached": true})
		return
	}

	list, err := h.planner.PackingList(r.Context(), &prefs)
	if err != nil {
		log.Printf("Packing list generation failed for %s: %v", prefs.Destination, err)
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to generate packing list. Please try again.")
		return
	}

	if err := rdx.SetWithExpiry(cacheKey, list, 24*time.Hour); err != nil {
		log.Printf("Failed to cache packing list: %v", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"packing_list": list, "cached": false})
}

type budgetTipsRequest struct {
	Destination string           `json:"destination"`
	Itinerary   models.Itinerary `json:"itinerary"`
}

// POST /api/trips/budget-tips
func (h *Handler) GetBudgetTips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req budgetTipsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Destination == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "destination is required")
		return
	}

	tips, err := h.planner.BudgetTips(r.Context(), req.Destination, &req.Itinerary)
	if err != nil {
		log.Printf("Budget tips generation failed for %s: %v", req.Destination, err)
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to generate budget tips. Please try again.")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"budget_tips": tips})
}

// GET /api/trips/popular
func (h *Handler) GetPopularDestinations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	results, err := rdx.Conn.ZRevRangeWithScores(r.Context(), "trips:popular", 0, 9).Result()
	if err != nil {
		log.Printf("Failed to read popular destinations: %v", err)
		utils.RespondWithJSON(w, http.StatusOK, []utils.M{})
		return
	}

	popular := make([]utils.M, 0, len(results))
	for _, z := range results {
		popular = append(popular, utils.M{
			"destination": z.Member,
			"trips":       int64(z.Score),
		})
	}

	utils.RespondWithJSON(w, http.StatusOK, popular)
}
