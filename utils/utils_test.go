package utils

import (
	"math"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReference(t *testing.T) {
	ref := GenerateReference()
	require.Len(t, ref, 10)
	assert.True(t, strings.HasPrefix(ref, "#CHF"))
	for _, r := range ref[4:] {
		assert.True(t, (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z'), "unexpected rune %q", r)
	}
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		query       string
		skip, limit int
	}{
		{"", 0, 10},
		{"?page=2&limit=5", 5, 5},
		{"?page=0&limit=-1", 0, 10},
		{"?page=3&limit=500", 200, 100},
		{"?page=abc", 0, 10},
		{"?page=9223372036854775807&limit=100", (math.MaxInt/100 - 1) * 100, 100},
	}
	for _, tc := range cases {
		r := httptest.NewRequest("GET", "/x"+tc.query, nil)
		skip, limit := ParsePagination(r, 10, 100)
		assert.Equal(t, tc.skip, skip, tc.query)
		assert.Equal(t, tc.limit, limit, tc.query)
	}
}

func TestQueryParsers(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?n=4&f=4.5&b=true&bad=x", nil)

	n, err := QueryInt(r, "n", 0)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = QueryInt(r, "missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = QueryInt(r, "bad", 0)
	assert.Error(t, err)

	f, err := QueryFloat(r, "f", 0)
	require.NoError(t, err)
	assert.Equal(t, 4.5, f)

	b, err := QueryBool(r, "b")
	require.NoError(t, err)
	assert.True(t, b)

	_, err = QueryBool(r, "bad")
	assert.Error(t, err)
}

func TestQueryFloatRejectsNonFinite(t *testing.T) {
	for _, raw := range []string{"NaN", "Inf", "-Inf", "+Infinity"} {
		r := httptest.NewRequest("GET", "/x?rating="+url.QueryEscape(raw), nil)
		_, err := QueryFloat(r, "rating", 0)
		assert.Error(t, err, raw)
	}
}

func TestAnyContainsIgnoreCase(t *testing.T) {
	assert.True(t, AnyContainsIgnoreCase([]string{"Korean BBQ", "Sushi & Sashimi"}, "sushi"))
	assert.False(t, AnyContainsIgnoreCase(nil, "sushi"))
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithError(w, 404, "chef not found")
	assert.Equal(t, 404, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"chef not found"}`, w.Body.String())
}
