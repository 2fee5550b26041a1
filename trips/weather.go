package trips

import (
	"net/http"
	"strings"

	"travelstar/utils"

	"github.com/julienschmidt/httprouter"
)

// Seasonal advisories. Simulated; a real weather API would slot in here.
var seasonWeather = map[string]string{
	"summer": "Warm and sunny, perfect for outdoor activities",
	"winter": "Cooler temperatures, great for indoor attractions",
	"spring": "Mild weather with blooming flowers",
	"fall":   "Comfortable temperatures with beautiful foliage",
}

// WeatherInfo returns the advisory for the requested season.
func WeatherInfo(season string) string {
	if info, ok := seasonWeather[strings.ToLower(season)]; ok {
		return info
	}
	return "Pleasant travel weather"
}

// GET /api/trips/weather?season=...
func (h *Handler) GetWeather(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	season := r.URL.Query().Get("season")
	if season == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "season query parameter is required")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"season":  season,
		"weather": WeatherInfo(season),
	})
}
