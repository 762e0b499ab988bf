package models

// Service is one bookable experience a chef offers. Prices are whole dollars per person.
type Service struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Price       int    `json:"price" bson:"price"`
	Duration    string `json:"duration" bson:"duration"`
	MinGuests   int    `json:"minGuests" bson:"minGuests"`
	MaxGuests   int    `json:"maxGuests" bson:"maxGuests"`
}

type Availability struct {
	NextAvailable string   `json:"nextAvailable" bson:"nextAvailable"`
	TimeSlots     []string `json:"timeSlots,omitempty" bson:"timeSlots,omitempty"`
	WeeklySlots   int      `json:"weeklySlots,omitempty" bson:"weeklySlots,omitempty"`
	ResponseTime  string   `json:"responseTime,omitempty" bson:"responseTime,omitempty"`
}

// Pricing holds the headline price per service type.
type Pricing struct {
	DinnerParty  int `json:"dinnerParty" bson:"dinnerParty"`
	CookingClass int `json:"cookingClass" bson:"cookingClass"`
	MealPrep     int `json:"mealPrep" bson:"mealPrep"`
}

type ChefVideo struct {
	ID        string `json:"id" bson:"id"`
	Title     string `json:"title" bson:"title"`
	Thumbnail string `json:"thumbnail" bson:"thumbnail"`
	Duration  int    `json:"duration" bson:"duration"`
	Likes     int    `json:"likes" bson:"likes"`
	Views     int    `json:"views" bson:"views"`
}

type Review struct {
	ID      string `json:"id" bson:"id"`
	User    string `json:"user" bson:"user"`
	Avatar  string `json:"avatar" bson:"avatar"`
	Rating  int    `json:"rating" bson:"rating"`
	Date    string `json:"date" bson:"date"`
	Comment string `json:"comment" bson:"comment"`
}

// Chef is the full chef record. Search fields (PriceValue, City, Tags) and
// profile fields (Bio, Languages, ...) live on the same record.
type Chef struct {
	ID             string       `json:"id" bson:"id"`
	Name           string       `json:"name" bson:"name"`
	Avatar         string       `json:"avatar" bson:"avatar"`
	CoverImage     string       `json:"coverImage" bson:"coverImage"`
	Cuisine        string       `json:"cuisine" bson:"cuisine"`
	Rating         float64      `json:"rating" bson:"rating"`
	ReviewCount    int          `json:"reviewCount" bson:"reviewCount"`
	Verified       bool         `json:"verified" bson:"verified"`
	Location       string       `json:"location" bson:"location"`
	City           string       `json:"city" bson:"city"`
	State          string       `json:"state" bson:"state"`
	PriceRange     string       `json:"priceRange" bson:"priceRange"`
	PriceValue     int          `json:"priceValue" bson:"priceValue"`
	Experience     string       `json:"experience" bson:"experience"`
	Bio            string       `json:"bio,omitempty" bson:"bio,omitempty"`
	Specialties    []string     `json:"specialties" bson:"specialties"`
	Tags           []string     `json:"tags" bson:"tags"`
	Languages      []string     `json:"languages,omitempty" bson:"languages,omitempty"`
	Certifications []string     `json:"certifications,omitempty" bson:"certifications,omitempty"`
	Availability   Availability `json:"availability" bson:"availability"`
	Pricing        Pricing      `json:"pricing" bson:"pricing"`
	Services       []Service    `json:"services,omitempty" bson:"services,omitempty"`
	Videos         []ChefVideo  `json:"videos,omitempty" bson:"videos,omitempty"`
	Reviews        []Review     `json:"reviews,omitempty" bson:"reviews,omitempty"`
}

// Service returns the chef's service with the given id.
func (c Chef) Service(id string) (Service, bool) {
	for _, s := range c.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// Summary is the compact chef view embedded in feed entries and booking pages.
func (c Chef) Summary() ChefSummary {
	return ChefSummary{
		ID:         c.ID,
		Name:       c.Name,
		Avatar:     c.Avatar,
		Cuisine:    c.Cuisine,
		Rating:     c.Rating,
		Verified:   c.Verified,
		Location:   c.Location,
		PriceRange: c.PriceRange,
	}
}
