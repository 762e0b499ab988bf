package models

type Preferences struct {
	Cuisines            []string `json:"cuisines" bson:"cuisines"`
	DietaryRestrictions []string `json:"dietaryRestrictions" bson:"dietaryRestrictions"`
	PriceRange          string   `json:"priceRange" bson:"priceRange"`
}

type NotificationSettings struct {
	BookingUpdates bool `json:"bookingUpdates" bson:"bookingUpdates"`
	NewChefs       bool `json:"newChefs" bson:"newChefs"`
	Promotions     bool `json:"promotions" bson:"promotions"`
	Reminders      bool `json:"reminders" bson:"reminders"`
}

type FavoriteChef struct {
	ID         string  `json:"id" bson:"id"`
	Name       string  `json:"name" bson:"name"`
	Avatar     string  `json:"avatar" bson:"avatar"`
	Cuisine    string  `json:"cuisine" bson:"cuisine"`
	Rating     float64 `json:"rating" bson:"rating"`
	LastBooked string  `json:"lastBooked" bson:"lastBooked"`
}

type RecentBooking struct {
	ID      string `json:"id" bson:"id"`
	Chef    string `json:"chef" bson:"chef"`
	Service string `json:"service" bson:"service"`
	Date    string `json:"date" bson:"date"`
	Status  string `json:"status" bson:"status"`
	Rating  int    `json:"rating" bson:"rating"`
}

type User struct {
	ID             string               `json:"id" bson:"id"`
	Name           string               `json:"name" bson:"name"`
	Email          string               `json:"email" bson:"email"`
	Phone          string               `json:"phone" bson:"phone"`
	Avatar         string               `json:"avatar" bson:"avatar"`
	Location       string               `json:"location" bson:"location"`
	JoinDate       string               `json:"joinDate" bson:"joinDate"`
	TotalBookings  int                  `json:"totalBookings" bson:"totalBookings"`
	FavoriteChefs  int                  `json:"favoriteChefs" bson:"favoriteChefs"`
	AverageRating  float64              `json:"averageRating" bson:"averageRating"`
	Preferences    Preferences          `json:"preferences" bson:"preferences"`
	Notifications  NotificationSettings `json:"notifications" bson:"notifications"`
	Favorites      []FavoriteChef       `json:"favorites" bson:"favorites"`
	RecentBookings []RecentBooking      `json:"recentBookings" bson:"recentBookings"`
}
