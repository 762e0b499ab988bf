package utils

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
)

// ParsePagination reads page and limit query parameters and returns the
// number of items to skip and the page size. Missing or invalid values fall
// back to page 1 and def; limit is capped at max.
func ParsePagination(r *http.Request, def, max int) (skip, limit int) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ = strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	// keep skip from overflowing on absurd page numbers
	if page > math.MaxInt/limit {
		page = math.MaxInt / limit
	}
	return (page - 1) * limit, limit
}

// QueryInt parses an optional integer query parameter.
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}

// QueryFloat parses an optional float query parameter.
func QueryFloat(r *http.Request, name string, def float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}

// QueryBool parses an optional boolean query parameter.
func QueryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false", name)
	}
	return v, nil
}
