package reviews

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"chefreel/catalog"
	"chefreel/models"
	"chefreel/utils"
)

const (
	SortNewest = "newest"
	SortRating = "rating"
)

type Handler struct {
	chefs  catalog.ChefRepository
	logger *zap.Logger
}

func NewHandler(chefs catalog.ChefRepository, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{chefs: chefs, logger: logger.Named("reviews")}
}

type Page struct {
	Reviews       []models.Review `json:"reviews"`
	Total         int             `json:"total"`
	Page          int             `json:"page"`
	Limit         int             `json:"limit"`
	Sort          string          `json:"sort"`
	AverageRating float64         `json:"averageRating"`
	ReviewCount   int             `json:"reviewCount"`
}

// Paginate sorts a chef's reviews and cuts one page. Stored order is newest
// first; rating order is stable so equal ratings keep that order.
func Paginate(all []models.Review, sortBy string, skip, limit int) []models.Review {
	list := append([]models.Review(nil), all...)
	if sortBy == SortRating {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Rating > list[j].Rating })
	}
	if skip < 0 || skip >= len(list) {
		return []models.Review{}
	}
	end := skip + limit
	if end > len(list) {
		end = len(list)
	}
	return list[skip:end]
}

// GET /api/reviews/chef/:id?page=&limit=&sort=
func (h *Handler) GetChefReviews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	chef, err := h.chefs.FindByID(ctx, ps.ByName("id"))
	if errors.Is(err, catalog.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Chef not found")
		return
	}
	if err != nil {
		h.logger.Error("find chef", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	skip, limit := utils.ParsePagination(r, 10, 100)
	sortBy := r.URL.Query().Get("sort")
	if sortBy != SortRating {
		sortBy = SortNewest
	}

	utils.RespondWithJSON(w, http.StatusOK, Page{
		Reviews:       Paginate(chef.Reviews, sortBy, skip, limit),
		Total:         len(chef.Reviews),
		Page:          skip/limit + 1,
		Limit:         limit,
		Sort:          sortBy,
		AverageRating: chef.Rating,
		ReviewCount:   chef.ReviewCount,
	})
}
