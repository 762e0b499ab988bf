package booking

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"chefreel/catalog"
	"chefreel/models"
	"chefreel/nav"
	"chefreel/utils"
)

const (
	TabUpcoming = "upcoming"
	TabPast     = "past"
)

type BookingsView struct {
	Nav           nav.Bar                `json:"nav"`
	Tab           string                 `json:"tab"`
	UpcomingCount int                    `json:"upcomingCount"`
	PastCount     int                    `json:"pastCount"`
	Bookings      []models.BookingRecord `json:"bookings"`
}

// SplitBookings separates confirmed/pending bookings from the rest,
// keeping order.
func SplitBookings(records []models.BookingRecord) (upcoming, past []models.BookingRecord) {
	upcoming, past = []models.BookingRecord{}, []models.BookingRecord{}
	for _, b := range records {
		if b.Upcoming() {
			upcoming = append(upcoming, b)
		} else {
			past = append(past, b)
		}
	}
	return upcoming, past
}

// GET /bookings?tab=upcoming|past
func (h *Handler) GetBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.UserIDOr(r, catalog.DemoUserID)
	records, err := h.bookings.ListByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("list bookings", zap.String("user", userID), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to load bookings")
		return
	}

	upcoming, past := SplitBookings(records)
	view := BookingsView{
		Nav:           nav.Build("/bookings"),
		Tab:           TabUpcoming,
		UpcomingCount: len(upcoming),
		PastCount:     len(past),
		Bookings:      upcoming,
	}
	if r.URL.Query().Get("tab") == TabPast {
		view.Tab = TabPast
		view.Bookings = past
	}
	utils.RespondWithJSON(w, http.StatusOK, view)
}
