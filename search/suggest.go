package search

import (
	"context"
	"fmt"

	"chefreel/autocom"
	"chefreel/models"
)

const MaxSuggestions = 6

// SuggestionPool flattens names, cuisines, cities, specialties and tags, in
// that order, keeping the first occurrence of each term.
func SuggestionPool(chefs []models.Chef) []string {
	seen := make(map[string]struct{})
	pool := []string{}
	add := func(terms ...string) {
		for _, t := range terms {
			if t == "" {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			pool = append(pool, t)
		}
	}

	for _, c := range chefs {
		add(c.Name)
	}
	for _, c := range chefs {
		add(c.Cuisine)
	}
	for _, c := range chefs {
		add(c.City)
	}
	for _, c := range chefs {
		add(c.Specialties...)
	}
	for _, c := range chefs {
		add(c.Tags...)
	}
	return pool
}

// Reindex rebuilds idx from the chef corpus.
func Reindex(ctx context.Context, idx autocom.Index, chefs []models.Chef) error {
	if err := idx.Replace(ctx, SuggestionPool(chefs)); err != nil {
		return fmt.Errorf("search: reindex suggestions: %w", err)
	}
	return nil
}

func Suggest(ctx context.Context, idx autocom.Index, query string) ([]string, error) {
	return idx.Suggest(ctx, query, MaxSuggestions)
}
