// Package search implements chef discovery: the filter set, the conjunctive
// predicate engine over the chef corpus and autocomplete suggestions.
package search

import (
	"errors"
	"slices"
)

var errInvertedPrice = errors.New("price_min must not exceed price_max")

const (
	PriceFloor   = 0
	PriceCeiling = 300
	PriceStep    = 25
)

// Filters is the filter panel state. The zero value is not the default:
// use DefaultFilters.
type Filters struct {
	Cuisines  []string `json:"cuisines"`
	PriceMin  int      `json:"priceMin"`
	PriceMax  int      `json:"priceMax"`
	MinRating float64  `json:"minRating"`
	Location  string   `json:"location"`
	Verified  bool     `json:"verified"`
}

func DefaultFilters() Filters {
	return Filters{
		Cuisines: []string{},
		PriceMin: PriceFloor,
		PriceMax: PriceCeiling,
	}
}

// ToggleCuisine adds c to the selection, or removes it when present.
func (f *Filters) ToggleCuisine(c string) {
	if i := slices.Index(f.Cuisines, c); i >= 0 {
		f.Cuisines = slices.Delete(slices.Clone(f.Cuisines), i, i+1)
		return
	}
	f.Cuisines = append(slices.Clone(f.Cuisines), c)
}

// AddCuisine adds c to the selection unless it is already there.
func (f *Filters) AddCuisine(c string) {
	if !slices.Contains(f.Cuisines, c) {
		f.Cuisines = append(slices.Clone(f.Cuisines), c)
	}
}

// Clear resets every field to its default.
func (f *Filters) Clear() {
	*f = DefaultFilters()
}

func (f Filters) PriceNarrowed() bool {
	return f.PriceMin > PriceFloor || f.PriceMax < PriceCeiling
}

// ActiveCount is the badge number: one per selected cuisine plus one for
// each other narrowed filter.
func (f Filters) ActiveCount() int {
	n := len(f.Cuisines)
	if f.PriceNarrowed() {
		n++
	}
	if f.MinRating > 0 {
		n++
	}
	if f.Location != "" {
		n++
	}
	if f.Verified {
		n++
	}
	return n
}

type PriceTier struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

var CuisineTypes = []string{
	"Italian", "Japanese", "French", "Mexican", "Korean",
	"Mediterranean", "American", "Indian", "Thai", "Chinese",
}

var PriceTiers = []PriceTier{
	{Label: "$", Value: "budget", Min: 0, Max: 75},
	{Label: "$$", Value: "moderate", Min: 75, Max: 125},
	{Label: "$$$", Value: "expensive", Min: 125, Max: 175},
	{Label: "$$$$", Value: "luxury", Min: 175, Max: 300},
}

var RatingOptions = []float64{4.5, 4.0, 3.5, 0}
