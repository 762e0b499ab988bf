package models

const (
	BookingConfirmed = "confirmed"
	BookingPending   = "pending"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

type BookingChef struct {
	Name      string  `json:"name" bson:"name"`
	Avatar    string  `json:"avatar" bson:"avatar"`
	Rating    float64 `json:"rating" bson:"rating"`
	Specialty string  `json:"specialty" bson:"specialty"`
}

// BookingRecord is a booking shown on the bookings screen.
type BookingRecord struct {
	ID         string      `json:"id" bson:"id"`
	UserID     string      `json:"userId" bson:"userId"`
	Chef       BookingChef `json:"chef" bson:"chef"`
	Service    string      `json:"service" bson:"service"`
	Date       string      `json:"date" bson:"date"`
	Time       string      `json:"time" bson:"time"`
	Location   string      `json:"location" bson:"location"`
	Guests     int         `json:"guests" bson:"guests"`
	Price      int         `json:"price" bson:"price"`
	Status     string      `json:"status" bson:"status"`
	BookingRef string      `json:"bookingRef" bson:"bookingRef"`
	Reviewed   bool        `json:"reviewed,omitempty" bson:"reviewed,omitempty"`
}

// Upcoming reports whether the booking belongs on the upcoming tab.
func (b BookingRecord) Upcoming() bool {
	return b.Status == BookingConfirmed || b.Status == BookingPending
}
