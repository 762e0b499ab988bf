package routes

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"chefreel/booking"
	"chefreel/chefs"
	"chefreel/feed"
	"chefreel/middleware"
	"chefreel/profile"
	"chefreel/ratelim"
	"chefreel/reviews"
	"chefreel/search"
)

// Guards holds the middleware shared by every route.
type Guards struct {
	Auth    *middleware.Auth
	Limiter *ratelim.RateLimiter
}

func (g Guards) read(h httprouter.Handle) httprouter.Handle {
	return g.Auth.OptionalAuth(h)
}

// write rate-limits before resolving the user.
func (g Guards) write(h httprouter.Handle) httprouter.Handle {
	return middleware.Chain(h, g.Limiter.Limit, g.Auth.OptionalAuth)
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Write([]byte("200"))
}

func AddUtilityRoutes(router *httprouter.Router) {
	router.GET("/health", Index)
}

func AddFeedRoutes(router *httprouter.Router, h *feed.Handler, g Guards) {
	router.GET("/", g.read(h.GetFeedPage))
	router.GET("/ws/feed", g.read(h.ServeWS))
}

func AddSearchRoutes(router *httprouter.Router, h *search.Handler, g Guards) {
	router.GET("/search", g.read(h.GetSearchPage))
	router.GET("/api/search/suggestions", g.read(h.GetSuggestions))
}

func AddBookingRoutes(router *httprouter.Router, h *booking.Handler, g Guards) {
	router.GET("/book/:chefId", g.read(h.GetBookingPage))
	router.POST("/api/book/:chefId", g.write(h.StartWizard))

	router.GET("/api/wizard/:session", g.read(h.GetWizard))
	router.POST("/api/wizard/:session/service", g.write(h.SelectService))
	router.PUT("/api/wizard/:session/details", g.write(h.SetDetails))
	router.PUT("/api/wizard/:session/contact", g.write(h.SetContact))
	router.POST("/api/wizard/:session/next", g.write(h.Next))
	router.POST("/api/wizard/:session/back", g.write(h.Back))
	router.POST("/api/wizard/:session/confirm", g.write(h.Confirm))

	router.GET("/booking-success", g.read(h.GetSuccessPage))
	router.GET("/booking-success/qr", g.read(h.GetReferenceQR))
	router.GET("/booking-success/receipt", g.read(h.GetReceipt))

	router.GET("/bookings", g.read(h.GetBookings))
}

func AddChefRoutes(router *httprouter.Router, h *chefs.Handler, g Guards) {
	router.GET("/chef/:id", g.read(h.GetChefProfile))
	router.POST("/api/chef/:id/follow", g.write(h.ToggleFollow))
}

func AddReviewsRoutes(router *httprouter.Router, h *reviews.Handler, g Guards) {
	router.GET("/api/reviews/chef/:id", g.read(h.GetChefReviews))
}

func AddProfileRoutes(router *httprouter.Router, h *profile.Handler, g Guards) {
	router.GET("/profile", g.read(h.GetProfile))
	router.POST("/api/profile/notifications/:setting", g.write(h.ToggleNotification))
}

// Handlers bundles one handler per screen.
type Handlers struct {
	Feed    *feed.Handler
	Search  *search.Handler
	Booking *booking.Handler
	Chefs   *chefs.Handler
	Reviews *reviews.Handler
	Profile *profile.Handler
}

func New(hs Handlers, g Guards) *httprouter.Router {
	router := httprouter.New()
	AddUtilityRoutes(router)
	AddFeedRoutes(router, hs.Feed, g)
	AddSearchRoutes(router, hs.Search, g)
	AddBookingRoutes(router, hs.Booking, g)
	AddChefRoutes(router, hs.Chefs, g)
	AddReviewsRoutes(router, hs.Reviews, g)
	AddProfileRoutes(router, hs.Profile, g)
	return router
}
