package routes

import (
	"travelstar/auth"
	"travelstar/middleware"
	"travelstar/ratelim"
	"travelstar/trips"
	"travelstar/utils"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", auth.RegisterHandler)
	router.POST("/api/auth/login", auth.LoginHandler)
	router.POST("/api/auth/logout", auth.LogoutHandler)
	router.POST("/api/auth/token/refresh", auth.RefreshTokenHandler)
}

func AddTripRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter, handler *trips.Handler) {
	// Generation-backed routes are rate limited; each request is a model call.
	router.POST("/api/trips/generate", rateLimiter.Limit(middleware.Authenticate(handler.GenerateTrip)))
	router.POST("/api/trips/packing-list", rateLimiter.Limit(middleware.Authenticate(handler.GetPackingList)))
	router.POST("/api/trips/budget-tips", rateLimiter.Limit(middleware.Authenticate(handler.GetBudgetTips)))

	router.GET("/api/trips/history", middleware.Authenticate(handler.GetTravelHistory))
	router.GET("/api/trips/history/:entryid/print", middleware.Authenticate(handler.PrintTrip))
	router.GET("/api/trips/weather", middleware.Authenticate(handler.GetWeather))
	router.GET("/api/trips/popular", handler.GetPopularDestinations)
}

func AddUtilityRoutes(router *httprouter.Router) {
	router.GET("/api/csrf", utils.CSRF)
}
