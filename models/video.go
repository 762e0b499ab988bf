package models

type ChefSummary struct {
	ID         string  `json:"id" bson:"id"`
	Name       string  `json:"name" bson:"name"`
	Avatar     string  `json:"avatar" bson:"avatar"`
	Cuisine    string  `json:"cuisine" bson:"cuisine"`
	Rating     float64 `json:"rating" bson:"rating"`
	Verified   bool    `json:"verified" bson:"verified"`
	Location   string  `json:"location" bson:"location"`
	PriceRange string  `json:"priceRange" bson:"priceRange"`
}

// VideoEntry is one playable item of the vertical feed.
type VideoEntry struct {
	ID           string      `json:"id" bson:"id"`
	Chef         ChefSummary `json:"chef" bson:"chef"`
	VideoURL     string      `json:"videoUrl" bson:"videoUrl"`
	Title        string      `json:"title" bson:"title"`
	Description  string      `json:"description" bson:"description"`
	Likes        int         `json:"likes" bson:"likes"`
	Comments     int         `json:"comments" bson:"comments"`
	Shares       int         `json:"shares" bson:"shares"`
	Duration     int         `json:"duration" bson:"duration"`
	Tags         []string    `json:"tags" bson:"tags"`
	IsBookmarked bool        `json:"isBookmarked" bson:"isBookmarked"`
}
