package catalog

import "chefreel/models"

// DemoUserID is the user every unauthenticated request acts as.
const DemoUserID = "user-1"

// SeedData is a complete catalog snapshot.
type SeedData struct {
	Chefs    []models.Chef
	Videos   []models.VideoEntry
	Bookings []models.BookingRecord
	Users    []models.User
}

// Seed returns a fresh copy of the built-in corpus.
func Seed() SeedData {
	return SeedData{
		Chefs:    seedChefs(),
		Videos:   seedVideos(),
		Bookings: seedBookings(),
		Users:    seedUsers(),
	}
}

func seedChefs() []models.Chef {
	return []models.Chef{
		{
			ID:          "1",
			Name:        "Marco Rodriguez",
			Avatar:      "/chef-portrait.png",
			CoverImage:  "/chef-cooking-pasta.png",
			Cuisine:     "Italian",
			Rating:      4.9,
			ReviewCount: 247,
			Verified:    true,
			Location:    "New York, NY",
			City:        "New York",
			State:       "NY",
			PriceRange:  "$$$",
			PriceValue:  150,
			Experience:  "15+ years",
			Bio: "Born and raised in Naples, Italy, Chef Marco brings authentic Italian flavors to New York. " +
				"Trained under Michelin-starred chefs in Rome and Milan, he specializes in handmade pasta and " +
				"traditional Italian techniques passed down through generations.",
			Specialties:    []string{"Handmade Pasta", "Truffle Dishes", "Wine Pairing", "Traditional Italian"},
			Tags:           []string{"Italian", "Pasta", "Fine Dining", "Wine Expert"},
			Languages:      []string{"English", "Italian", "Spanish"},
			Certifications: []string{"Culinary Institute of America", "Italian Culinary Federation"},
			Availability: models.Availability{
				NextAvailable: "Tomorrow",
				TimeSlots:     []string{"10:00 AM", "11:00 AM", "12:00 PM", "1:00 PM", "2:00 PM", "5:00 PM", "6:00 PM", "7:00 PM", "8:00 PM"},
				WeeklySlots:   12,
				ResponseTime:  "Within 2 hours",
			},
			Pricing: models.Pricing{DinnerParty: 150, CookingClass: 75, MealPrep: 45},
			Services: []models.Service{
				{ID: "dinner-party", Name: "Private Dinner Party", Description: "Intimate dining experience with personalized menu", Price: 150, Duration: "3-4 hours", MinGuests: 2, MaxGuests: 12},
				{ID: "cooking-class", Name: "Cooking Class", Description: "Learn authentic Italian techniques hands-on", Price: 75, Duration: "2-3 hours", MinGuests: 1, MaxGuests: 8},
				{ID: "meal-prep", Name: "Meal Prep Service", Description: "Weekly meal preparation for busy schedules", Price: 45, Duration: "Per meal", MinGuests: 1, MaxGuests: 4},
			},
			Videos: []models.ChefVideo{
				{ID: "1", Title: "Homemade Truffle Pasta", Thumbnail: "/chef-cooking-pasta.png", Duration: 45, Likes: 1240, Views: 15600},
				{ID: "2", Title: "Perfect Risotto Technique", Thumbnail: "/chef-cooking-pasta.png", Duration: 38, Likes: 892, Views: 12300},
				{ID: "3", Title: "Italian Wine Pairing", Thumbnail: "/chef-cooking-pasta.png", Duration: 25, Likes: 567, Views: 8900},
				{ID: "4", Title: "Fresh Mozzarella Making", Thumbnail: "/chef-cooking-pasta.png", Duration: 52, Likes: 1456, Views: 18700},
			},
			Reviews: []models.Review{
				{ID: "1", User: "Sarah M.", Avatar: "/chef-portrait.png", Rating: 5, Date: "2 days ago",
					Comment: "Marco created an incredible Italian feast for our anniversary dinner. The truffle pasta was absolutely divine!"},
				{ID: "2", User: "James L.", Avatar: "/japanese-chef-portrait.png", Rating: 5, Date: "1 week ago",
					Comment: "Best cooking class I've ever taken. Marco's passion for Italian cuisine is infectious and his techniques are flawless."},
				{ID: "3", User: "Emily R.", Avatar: "/french-chef-portrait.png", Rating: 4, Date: "2 weeks ago",
					Comment: "Amazing meal prep service. Marco's dishes kept us eating well all week. Highly recommend!"},
			},
		},
		{
			ID:          "2",
			Name:        "Sakura Tanaka",
			Avatar:      "/japanese-chef-portrait.png",
			CoverImage:  "/sushi-preparation.png",
			Cuisine:     "Japanese",
			Rating:      4.8,
			ReviewCount: 189,
			Verified:    true,
			Location:    "Los Angeles, CA",
			City:        "Los Angeles",
			State:       "CA",
			PriceRange:  "$$$$",
			PriceValue:  200,
			Experience:  "12+ years",
			Bio: "Master sushi chef trained in Tokyo's prestigious Tsukiji market. Sakura combines traditional " +
				"Japanese techniques with California's fresh ingredients to create unforgettable omakase experiences.",
			Specialties:    []string{"Sushi & Sashimi", "Omakase", "Japanese Kaiseki", "Sake Pairing"},
			Tags:           []string{"Japanese", "Sushi", "Traditional", "Omakase"},
			Languages:      []string{"English", "Japanese"},
			Certifications: []string{"Tokyo Sushi Academy", "Japan Culinary Institute"},
			Availability: models.Availability{
				NextAvailable: "This weekend",
				TimeSlots:     []string{"11:00 AM", "12:00 PM", "1:00 PM", "2:00 PM", "6:00 PM", "7:00 PM", "8:00 PM"},
				WeeklySlots:   8,
				ResponseTime:  "Within 4 hours",
			},
			Pricing: models.Pricing{DinnerParty: 200, CookingClass: 95, MealPrep: 65},
			Services: []models.Service{
				{ID: "omakase", Name: "Omakase Experience", Description: "Chef's choice sushi and sashimi tasting menu", Price: 200, Duration: "2-3 hours", MinGuests: 2, MaxGuests: 8},
				{ID: "sushi-class", Name: "Sushi Making Class", Description: "Learn traditional sushi preparation techniques", Price: 95, Duration: "3 hours", MinGuests: 1, MaxGuests: 6},
			},
			Videos: []models.ChefVideo{
				{ID: "1", Title: "Perfect Sushi Technique", Thumbnail: "/sushi-preparation.png", Duration: 60, Likes: 892, Views: 23400},
			},
			Reviews: []models.Review{
				{ID: "1", User: "Michael K.", Avatar: "/chef-portrait.png", Rating: 5, Date: "3 days ago",
					Comment: "Sakura's omakase experience was transcendent. Every piece of sushi was perfection."},
			},
		},
		{
			ID:           "3",
			Name:         "Antoine Dubois",
			Avatar:       "/french-chef-portrait.png",
			CoverImage:   "/french-pastry-making.png",
			Cuisine:      "French",
			Rating:       4.9,
			ReviewCount:  312,
			Verified:     true,
			Location:     "San Francisco, CA",
			City:         "San Francisco",
			State:        "CA",
			PriceRange:   "$$$$",
			PriceValue:   180,
			Experience:   "18+ years",
			Specialties:  []string{"French Pastry", "Fine Dining", "Michelin Techniques"},
			Tags:         []string{"French", "Pastry", "Fine Dining", "Michelin"},
			Availability: models.Availability{NextAvailable: "Available tomorrow", ResponseTime: "1 hour"},
		},
		{
			ID:           "4",
			Name:         "Maria Gonzalez",
			Avatar:       "/chef-portrait.png",
			CoverImage:   "/chef-cooking-pasta.png",
			Cuisine:      "Mexican",
			Rating:       4.7,
			ReviewCount:  156,
			Verified:     true,
			Location:     "Austin, TX",
			City:         "Austin",
			State:        "TX",
			PriceRange:   "$$",
			PriceValue:   85,
			Experience:   "10+ years",
			Specialties:  []string{"Traditional Mexican", "Mole", "Street Food"},
			Tags:         []string{"Mexican", "Traditional", "Authentic", "Spicy"},
			Availability: models.Availability{NextAvailable: "Available next week", ResponseTime: "3 hours"},
		},
		{
			ID:           "5",
			Name:         "David Kim",
			Avatar:       "/japanese-chef-portrait.png",
			CoverImage:   "/sushi-preparation.png",
			Cuisine:      "Korean",
			Rating:       4.8,
			ReviewCount:  203,
			Verified:     true,
			Location:     "Seattle, WA",
			City:         "Seattle",
			State:        "WA",
			PriceRange:   "$$$",
			PriceValue:   120,
			Experience:   "14+ years",
			Specialties:  []string{"Korean BBQ", "Banchan", "Fermentation"},
			Tags:         []string{"Korean", "BBQ", "Fermented", "Authentic"},
			Availability: models.Availability{NextAvailable: "Available today", ResponseTime: "2 hours"},
		},
		{
			ID:           "6",
			Name:         "Isabella Romano",
			Avatar:       "/french-chef-portrait.png",
			CoverImage:   "/french-pastry-making.png",
			Cuisine:      "Mediterranean",
			Rating:       4.6,
			ReviewCount:  134,
			Verified:     false,
			Location:     "Miami, FL",
			City:         "Miami",
			State:        "FL",
			PriceRange:   "$$",
			PriceValue:   95,
			Experience:   "8+ years",
			Specialties:  []string{"Mediterranean", "Seafood", "Healthy Cuisine"},
			Tags:         []string{"Mediterranean", "Seafood", "Healthy", "Fresh"},
			Availability: models.Availability{NextAvailable: "Available this weekend", ResponseTime: "5 hours"},
		},
	}
}

func seedVideos() []models.VideoEntry {
	return []models.VideoEntry{
		{
			ID:          "1",
			Chef:        models.ChefSummary{ID: "1", Name: "Marco Rodriguez", Avatar: "/chef-portrait.png", Cuisine: "Italian", Rating: 4.9, Verified: true, Location: "New York, NY", PriceRange: "$$$"},
			VideoURL:    "/chef-cooking-pasta.png",
			Title:       "Homemade Truffle Pasta",
			Description: "Learn the secrets of authentic Italian truffle pasta with fresh ingredients",
			Likes:       1240,
			Comments:    89,
			Shares:      45,
			Duration:    45,
			Tags:        []string{"Italian", "Pasta", "Truffle"},
		},
		{
			ID:           "2",
			Chef:         models.ChefSummary{ID: "2", Name: "Sakura Tanaka", Avatar: "/japanese-chef-portrait.png", Cuisine: "Japanese", Rating: 4.8, Verified: true, Location: "Los Angeles, CA", PriceRange: "$$$$"},
			VideoURL:     "/sushi-preparation.png",
			Title:        "Perfect Sushi Technique",
			Description:  "Master the art of sushi making with traditional Japanese methods",
			Likes:        892,
			Comments:     156,
			Shares:       78,
			Duration:     60,
			Tags:         []string{"Japanese", "Sushi", "Traditional"},
			IsBookmarked: true,
		},
		{
			ID:          "3",
			Chef:        models.ChefSummary{ID: "3", Name: "Antoine Dubois", Avatar: "/french-chef-portrait.png", Cuisine: "French", Rating: 4.9, Verified: true, Location: "San Francisco, CA", PriceRange: "$$$$"},
			VideoURL:    "/french-pastry-making.png",
			Title:       "Classic French Croissants",
			Description: "The perfect flaky croissant technique revealed by a Michelin-starred chef",
			Likes:       2156,
			Comments:    234,
			Shares:      123,
			Duration:    90,
			Tags:        []string{"French", "Pastry", "Breakfast"},
		},
		{
			ID:          "4",
			Chef:        models.ChefSummary{ID: "4", Name: "Maria Gonzalez", Avatar: "/chef-portrait.png", Cuisine: "Mexican", Rating: 4.7, Verified: true, Location: "Austin, TX", PriceRange: "$$"},
			VideoURL:    "/chef-cooking-pasta.png",
			Title:       "Authentic Mole Poblano",
			Description: "Traditional Mexican mole with 20+ ingredients, passed down through generations",
			Likes:       1567,
			Comments:    198,
			Shares:      89,
			Duration:    120,
			Tags:        []string{"Mexican", "Traditional", "Mole"},
		},
		{
			ID:           "5",
			Chef:         models.ChefSummary{ID: "5", Name: "David Kim", Avatar: "/japanese-chef-portrait.png", Cuisine: "Korean", Rating: 4.8, Verified: true, Location: "Seattle, WA", PriceRange: "$$$"},
			VideoURL:     "/sushi-preparation.png",
			Title:        "Korean BBQ Masterclass",
			Description:  "Perfect galbi and banchan preparation for an authentic Korean feast",
			Likes:        934,
			Comments:     112,
			Shares:       67,
			Duration:     75,
			Tags:         []string{"Korean", "BBQ", "Galbi"},
			IsBookmarked: true,
		},
		{
			ID:          "6",
			Chef:        models.ChefSummary{ID: "6", Name: "Isabella Chen", Avatar: "/french-chef-portrait.png", Cuisine: "Fusion", Rating: 4.9, Verified: true, Location: "Miami, FL", PriceRange: "$$$"},
			VideoURL:    "/french-pastry-making.png",
			Title:       "Asian-French Fusion",
			Description: "Innovative fusion cuisine blending Asian flavors with French techniques",
			Likes:       1876,
			Comments:    267,
			Shares:      134,
			Duration:    85,
			Tags:        []string{"Fusion", "Asian", "French"},
		},
		{
			ID:           "7",
			Chef:         models.ChefSummary{ID: "7", Name: "Ahmed Hassan", Avatar: "/chef-portrait.png", Cuisine: "Middle Eastern", Rating: 4.8, Verified: true, Location: "Chicago, IL", PriceRange: "$$"},
			VideoURL:     "/sushi-preparation.png",
			Title:        "Perfect Shawarma",
			Description:  "Traditional Middle Eastern shawarma with homemade spices and sauces",
			Likes:        1345,
			Comments:     178,
			Shares:       92,
			Duration:     65,
			Tags:         []string{"Middle Eastern", "Shawarma", "Traditional"},
			IsBookmarked: true,
		},
		{
			ID:          "8",
			Chef:        models.ChefSummary{ID: "8", Name: "Elena Rossi", Avatar: "/japanese-chef-portrait.png", Cuisine: "Mediterranean", Rating: 4.7, Verified: true, Location: "Portland, OR", PriceRange: "$$$"},
			VideoURL:    "/chef-cooking-pasta.png",
			Title:       "Fresh Mediterranean Bowl",
			Description: "Healthy Mediterranean cuisine with fresh herbs and olive oil",
			Likes:       987,
			Comments:    145,
			Shares:      73,
			Duration:    55,
			Tags:        []string{"Mediterranean", "Healthy", "Fresh"},
		},
	}
}

func seedBookings() []models.BookingRecord {
	return []models.BookingRecord{
		{
			ID:         "1",
			UserID:     DemoUserID,
			Chef:       models.BookingChef{Name: "Marco Rodriguez", Avatar: "/chef-portrait.png", Rating: 4.9, Specialty: "Italian Cuisine"},
			Service:    "Private Dinner Party",
			Date:       "2024-01-15",
			Time:       "7:00 PM",
			Location:   "Your Home",
			Guests:     6,
			Price:      450,
			Status:     models.BookingConfirmed,
			BookingRef: "CHF-2024-001",
		},
		{
			ID:         "2",
			UserID:     DemoUserID,
			Chef:       models.BookingChef{Name: "Sarah Chen", Avatar: "/chef-portrait.png", Rating: 4.8, Specialty: "Asian Fusion"},
			Service:    "Cooking Class",
			Date:       "2024-01-20",
			Time:       "2:00 PM",
			Location:   "Chef's Kitchen",
			Guests:     4,
			Price:      280,
			Status:     models.BookingPending,
			BookingRef: "CHF-2024-002",
		},
		{
			ID:         "3",
			UserID:     DemoUserID,
			Chef:       models.BookingChef{Name: "David Kim", Avatar: "/chef-portrait.png", Rating: 4.7, Specialty: "Korean BBQ"},
			Service:    "Family Meal Prep",
			Date:       "2023-12-10",
			Time:       "10:00 AM",
			Location:   "Your Home",
			Guests:     4,
			Price:      320,
			Status:     models.BookingCompleted,
			BookingRef: "CHF-2023-045",
			Reviewed:   true,
		},
	}
}

func seedUsers() []models.User {
	return []models.User{
		{
			ID:            DemoUserID,
			Name:          "Sarah Johnson",
			Email:         "sarah.johnson@email.com",
			Phone:         "+1 (555) 123-4567",
			Avatar:        "/chef-portrait.png",
			Location:      "New York, NY",
			JoinDate:      "March 2023",
			TotalBookings: 12,
			FavoriteChefs: 8,
			AverageRating: 4.8,
			Preferences: models.Preferences{
				Cuisines:            []string{"Italian", "Japanese", "French"},
				DietaryRestrictions: []string{"Vegetarian"},
				PriceRange:          "$$$",
			},
			Notifications: models.NotificationSettings{BookingUpdates: true, Promotions: true, Reminders: true},
			Favorites: []models.FavoriteChef{
				{ID: "1", Name: "Marco Rodriguez", Avatar: "/chef-portrait.png", Cuisine: "Italian", Rating: 4.9, LastBooked: "2 weeks ago"},
				{ID: "2", Name: "Sakura Tanaka", Avatar: "/japanese-chef-portrait.png", Cuisine: "Japanese", Rating: 4.8, LastBooked: "1 month ago"},
				{ID: "3", Name: "Antoine Dubois", Avatar: "/french-chef-portrait.png", Cuisine: "French", Rating: 4.9, LastBooked: "3 weeks ago"},
			},
			RecentBookings: []models.RecentBooking{
				{ID: "1", Chef: "Marco Rodriguez", Service: "Private Dinner Party", Date: "Dec 15, 2023", Status: models.BookingCompleted, Rating: 5},
				{ID: "2", Chef: "Sakura Tanaka", Service: "Sushi Making Class", Date: "Nov 28, 2023", Status: models.BookingCompleted, Rating: 5},
			},
		},
	}
}
