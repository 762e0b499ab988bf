package search

import (
	"slices"

	"chefreel/models"
	"chefreel/utils"
)

// Match reports whether chef is visible for query under f. It is the AND of
// the six predicates below.
func Match(chef models.Chef, query string, f Filters) bool {
	return MatchesQuery(chef, query) &&
		MatchesCuisine(chef, f.Cuisines) &&
		MatchesPrice(chef, f.PriceMin, f.PriceMax) &&
		MatchesRating(chef, f.MinRating) &&
		MatchesLocation(chef, f.Location) &&
		MatchesVerified(chef, f.Verified)
}

// MatchesQuery does a case-insensitive substring match against name,
// cuisine, location, specialties and tags.
func MatchesQuery(chef models.Chef, query string) bool {
	if query == "" {
		return true
	}
	return utils.ContainsIgnoreCase(chef.Name, query) ||
		utils.ContainsIgnoreCase(chef.Cuisine, query) ||
		utils.ContainsIgnoreCase(chef.Location, query) ||
		utils.AnyContainsIgnoreCase(chef.Specialties, query) ||
		utils.AnyContainsIgnoreCase(chef.Tags, query)
}

func MatchesCuisine(chef models.Chef, cuisines []string) bool {
	return len(cuisines) == 0 || slices.Contains(cuisines, chef.Cuisine)
}

// MatchesPrice is inclusive on both bounds.
func MatchesPrice(chef models.Chef, min, max int) bool {
	return chef.PriceValue >= min && chef.PriceValue <= max
}

func MatchesRating(chef models.Chef, minRating float64) bool {
	return chef.Rating >= minRating
}

func MatchesLocation(chef models.Chef, location string) bool {
	return location == "" || utils.ContainsIgnoreCase(chef.Location, location)
}

func MatchesVerified(chef models.Chef, verifiedOnly bool) bool {
	return !verifiedOnly || chef.Verified
}

// Apply returns the visible chefs in corpus order.
func Apply(corpus []models.Chef, query string, f Filters) []models.Chef {
	out := []models.Chef{}
	for _, c := range corpus {
		if Match(c, query, f) {
			out = append(out, c)
		}
	}
	return out
}
