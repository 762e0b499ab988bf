package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chefreel/autocom"
	"chefreel/catalog"
)

func newRouter(t *testing.T) *httprouter.Router {
	t.Helper()
	store := catalog.NewMemory(catalog.Seed()).Store()
	idx := autocom.NewMemory()
	chefs, err := store.Chefs.List(context.Background())
	require.NoError(t, err)
	require.NoError(t, Reindex(context.Background(), idx, chefs))

	h := NewHandler(store.Chefs, idx, nil)
	router := httprouter.New()
	router.GET("/search", h.GetSearchPage)
	router.GET("/api/search/suggestions", h.GetSuggestions)
	return router
}

func get(t *testing.T, router http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func TestSearchPage(t *testing.T) {
	router := newRouter(t)

	w := get(t, router, "/search?q=sushi")
	require.Equal(t, http.StatusOK, w.Code)
	var res Results
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, []string{"2"}, ids(res.Chefs))
	assert.Contains(t, res.Suggestions, "Sushi")
	assert.Len(t, res.CuisineTypes, 10)
	assert.True(t, res.Nav.Items[1].Active)
	assert.False(t, res.Nav.Overlay)
}

func TestSearchPageFilters(t *testing.T) {
	router := newRouter(t)

	w := get(t, router, "/search?cuisine=Korean&cuisine=Mexican&verified=true&price_max=150")
	require.Equal(t, http.StatusOK, w.Code)
	var res Results
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, []string{"4", "5"}, ids(res.Chefs))
	assert.Equal(t, 4, res.ActiveFilters)
	assert.Empty(t, res.Suggestions)
}

func TestRepeatedCuisineIsKept(t *testing.T) {
	router := newRouter(t)

	w := get(t, router, "/search?cuisine=Japanese&cuisine=Japanese")
	require.Equal(t, http.StatusOK, w.Code)
	var res Results
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, []string{"Japanese"}, res.Filters.Cuisines)
	assert.Equal(t, 1, res.ActiveFilters)
	assert.Equal(t, []string{"2"}, ids(res.Chefs))
}

func TestQueryIsMatchedAsSent(t *testing.T) {
	router := newRouter(t)

	var res Results
	require.NoError(t, json.Unmarshal(get(t, router, "/search?q=%20sushi").Body.Bytes(), &res))
	assert.Equal(t, " sushi", res.Query)
	assert.Zero(t, res.Count)
}

func TestSearchPageRejectsMalformedNumbers(t *testing.T) {
	router := newRouter(t)

	for _, url := range []string{
		"/search?price_min=abc",
		"/search?price_max=1e",
		"/search?rating=high",
		"/search?verified=maybe",
		"/search?price_min=200&price_max=100",
		"/search?rating=NaN",
		"/search?rating=Inf",
		"/search?rating=-Inf",
	} {
		w := get(t, router, url)
		assert.Equal(t, http.StatusBadRequest, w.Code, url)
	}
}

func TestSuggestionsEndpoint(t *testing.T) {
	router := newRouter(t)

	w := get(t, router, "/api/search/suggestions?q=kor")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Query       string   `json:"query"`
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "kor", body.Query)
	assert.Equal(t, []string{"Korean", "Korean BBQ"}, body.Suggestions)
}
