package search

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"chefreel/autocom"
	"chefreel/catalog"
	"chefreel/models"
	"chefreel/nav"
	"chefreel/utils"
)

type Handler struct {
	chefs  catalog.ChefRepository
	index  autocom.Index
	logger *zap.Logger
}

func NewHandler(chefs catalog.ChefRepository, index autocom.Index, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{chefs: chefs, index: index, logger: logger.Named("search")}
}

// Results is the search screen view model.
type Results struct {
	Nav           nav.Bar       `json:"nav"`
	Query         string        `json:"query"`
	Filters       Filters       `json:"filters"`
	ActiveFilters int           `json:"activeFilters"`
	Chefs         []models.Chef `json:"chefs"`
	Count         int           `json:"count"`
	Suggestions   []string      `json:"suggestions"`
	CuisineTypes  []string      `json:"cuisineTypes"`
	PriceTiers    []PriceTier   `json:"priceTiers"`
	RatingOptions []float64     `json:"ratingOptions"`
}

// ParseFilters reads the filter panel from query parameters. Absent
// parameters keep their defaults; repeated cuisines collapse into one.
// The location is matched as sent, like the query.
func ParseFilters(r *http.Request) (Filters, error) {
	f := DefaultFilters()
	q := r.URL.Query()

	for _, c := range q["cuisine"] {
		if c = strings.TrimSpace(c); c != "" {
			f.AddCuisine(c)
		}
	}

	var err error
	if f.PriceMin, err = utils.QueryInt(r, "price_min", PriceFloor); err != nil {
		return f, err
	}
	if f.PriceMax, err = utils.QueryInt(r, "price_max", PriceCeiling); err != nil {
		return f, err
	}
	if f.PriceMin > f.PriceMax {
		return f, errInvertedPrice
	}
	if f.MinRating, err = utils.QueryFloat(r, "rating", 0); err != nil {
		return f, err
	}
	if f.Verified, err = utils.QueryBool(r, "verified"); err != nil {
		return f, err
	}
	f.Location = q.Get("location")
	return f, nil
}

// GET /search
func (h *Handler) GetSearchPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filters, err := ParseFilters(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	query := r.URL.Query().Get("q")

	corpus, err := h.chefs.List(r.Context())
	if err != nil {
		h.logger.Error("list chefs", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to load chefs")
		return
	}

	suggestions, err := Suggest(r.Context(), h.index, query)
	if err != nil {
		// suggestions are decoration; the result list still goes out
		h.logger.Warn("suggestions unavailable", zap.Error(err))
		suggestions = []string{}
	}

	chefs := Apply(corpus, query, filters)
	h.logger.Debug("search",
		zap.String("q", query),
		zap.Int("active_filters", filters.ActiveCount()),
		zap.Int("results", len(chefs)))

	utils.RespondWithJSON(w, http.StatusOK, Results{
		Nav:           nav.Build("/search"),
		Query:         query,
		Filters:       filters,
		ActiveFilters: filters.ActiveCount(),
		Chefs:         chefs,
		Count:         len(chefs),
		Suggestions:   suggestions,
		CuisineTypes:  CuisineTypes,
		PriceTiers:    PriceTiers,
		RatingOptions: RatingOptions,
	})
}

// GET /api/search/suggestions?q=
func (h *Handler) GetSuggestions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query().Get("q")
	suggestions, err := Suggest(r.Context(), h.index, query)
	if err != nil {
		h.logger.Error("suggest", zap.String("q", query), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to load suggestions")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"query": query, "suggestions": suggestions})
}
