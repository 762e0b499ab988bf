// Package chefs serves the chef profile screen.
package chefs

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"chefreel/catalog"
	"chefreel/models"
	"chefreel/utils"
)

const (
	TabAbout   = "about"
	TabVideos  = "videos"
	TabReviews = "reviews"
)

var tabs = []string{TabAbout, TabVideos, TabReviews}

type Handler struct {
	chefs   catalog.ChefRepository
	follows FollowStore
	logger  *zap.Logger
}

func NewHandler(chefs catalog.ChefRepository, follows FollowStore, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{chefs: chefs, follows: follows, logger: logger.Named("chefs")}
}

type ProfileView struct {
	Chef      models.Chef `json:"chef"`
	Tab       string      `json:"tab"`
	Tabs      []string    `json:"tabs"`
	Following bool        `json:"following"`
	BookURL   string      `json:"bookUrl,omitempty"`
}

// ActiveTab falls back to about for anything unknown.
func ActiveTab(tab string) string {
	for _, t := range tabs {
		if t == tab {
			return t
		}
	}
	return TabAbout
}

// GET /chef/:id?tab=
func (h *Handler) GetChefProfile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	chef, ok := h.loadChef(w, r, ps.ByName("id"))
	if !ok {
		return
	}

	userID := utils.UserIDOr(r, catalog.DemoUserID)
	following, err := h.follows.IsFollowing(r.Context(), userID, chef.ID)
	if err != nil {
		// the profile is still useful without the follow badge
		h.logger.Warn("follow state", zap.String("chef", chef.ID), zap.Error(err))
	}

	view := ProfileView{
		Chef:      chef,
		Tab:       ActiveTab(r.URL.Query().Get("tab")),
		Tabs:      tabs,
		Following: following,
	}
	if len(chef.Services) > 0 {
		view.BookURL = "/book/" + chef.ID
	}
	utils.RespondWithJSON(w, http.StatusOK, view)
}

// POST /api/chef/:id/follow
func (h *Handler) ToggleFollow(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	chef, ok := h.loadChef(w, r, ps.ByName("id"))
	if !ok {
		return
	}
	userID := utils.UserIDOr(r, catalog.DemoUserID)
	following, err := h.follows.Toggle(r.Context(), userID, chef.ID)
	if err != nil {
		h.logger.Error("toggle follow", zap.String("chef", chef.ID), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to update follow")
		return
	}
	h.logger.Info("follow toggled",
		zap.String("user", userID),
		zap.String("chef", chef.ID),
		zap.Bool("following", following))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"chefId": chef.ID, "following": following})
}

func (h *Handler) loadChef(w http.ResponseWriter, r *http.Request, id string) (models.Chef, bool) {
	chef, err := h.chefs.FindByID(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Chef not found")
		return models.Chef{}, false
	}
	if err != nil {
		h.logger.Error("find chef", zap.String("chef", id), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to load chef")
		return models.Chef{}, false
	}
	return chef, true
}
