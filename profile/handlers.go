// Package profile serves the signed-in user's profile screen.
package profile

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"chefreel/catalog"
	"chefreel/models"
	"chefreel/nav"
	"chefreel/utils"
)

const (
	TabOverview  = "overview"
	TabFavorites = "favorites"
	TabActivity  = "activity"
	TabSettings  = "settings"
)

var tabs = []string{TabOverview, TabFavorites, TabActivity, TabSettings}

type Handler struct {
	users         catalog.UserRepository
	notifications NotificationStore
	logger        *zap.Logger
}

func NewHandler(users catalog.UserRepository, notifications NotificationStore, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{users: users, notifications: notifications, logger: logger.Named("profile")}
}

type View struct {
	Nav           nav.Bar     `json:"nav"`
	Tab           string      `json:"tab"`
	Tabs          []string    `json:"tabs"`
	User          models.User `json:"user"`
	Notifications []Setting   `json:"notifications"`
}

func activeTab(tab string) string {
	if tab == "profile" {
		return TabOverview
	}
	for _, t := range tabs {
		if t == tab {
			return t
		}
	}
	return TabOverview
}

func (h *Handler) loadUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	userID := utils.UserIDOr(r, catalog.DemoUserID)
	user, err := h.users.FindByID(r.Context(), userID)
	if errors.Is(err, catalog.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return models.User{}, false
	}
	if err != nil {
		h.logger.Error("find user", zap.String("user", userID), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to load profile")
		return models.User{}, false
	}

	overrides, err := h.notifications.Overrides(r.Context(), user.ID)
	if err != nil {
		h.logger.Warn("notification overrides", zap.String("user", user.ID), zap.Error(err))
	}
	user.Notifications = Merge(user.Notifications, overrides)
	return user, true
}

// GET /profile?tab=
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user, ok := h.loadUser(w, r)
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, View{
		Nav:           nav.Build("/profile"),
		Tab:           activeTab(r.URL.Query().Get("tab")),
		Tabs:          tabs,
		User:          user,
		Notifications: Settings(user.Notifications),
	})
}

// POST /api/profile/notifications/:setting
func (h *Handler) ToggleNotification(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	key := ps.ByName("setting")
	user, ok := h.loadUser(w, r)
	if !ok {
		return
	}

	ns := user.Notifications
	p, err := field(&ns, key)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	enabled := !*p
	if err := h.notifications.Set(r.Context(), user.ID, key, enabled); err != nil {
		h.logger.Error("set notification", zap.String("user", user.ID), zap.String("setting", key), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to update setting")
		return
	}
	*p = enabled
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"setting":       key,
		"enabled":       enabled,
		"notifications": Settings(ns),
	})
}
