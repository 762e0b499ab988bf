package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chefreel/catalog"
	"chefreel/globals"
	"chefreel/models"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	h := NewHandler(catalog.NewMemory(catalog.Seed()).Store().Users, NewMemoryNotifications(), nil)
	router := httprouter.New()
	router.GET("/profile", h.GetProfile)
	router.POST("/api/profile/notifications/:setting", h.ToggleNotification)
	return router
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetProfile(t *testing.T) {
	router := newRouter(t)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/profile?tab=favorites", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var view View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, TabFavorites, view.Tab)
	assert.Equal(t, "Sarah Johnson", view.User.Name)
	assert.Len(t, view.User.Favorites, 3)
	require.Len(t, view.Notifications, 4)
	assert.Equal(t, "newChefs", view.Notifications[1].Key)
	assert.False(t, view.Notifications[1].Enabled)
	assert.True(t, view.Nav.Items[3].Active)
}

func TestProfileTabs(t *testing.T) {
	assert.Equal(t, TabOverview, activeTab(""))
	assert.Equal(t, TabOverview, activeTab("profile"))
	assert.Equal(t, TabSettings, activeTab("settings"))
	assert.Equal(t, TabOverview, activeTab("billing"))
}

func TestUnknownUser(t *testing.T) {
	router := newRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req = req.WithContext(context.WithValue(req.Context(), globals.UserIDKey, "ghost"))
	assert.Equal(t, http.StatusNotFound, serve(router, req).Code)
}

func TestToggleNotification(t *testing.T) {
	router := newRouter(t)

	toggle := func(key string) *httptest.ResponseRecorder {
		return serve(router, httptest.NewRequest(http.MethodPost, "/api/profile/notifications/"+key, nil))
	}

	w := toggle("newChefs")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Enabled bool `json:"enabled"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Enabled)

	require.NoError(t, json.Unmarshal(toggle("promotions").Body.Bytes(), &body))
	assert.False(t, body.Enabled)

	var view View
	require.NoError(t, json.Unmarshal(serve(router, httptest.NewRequest(http.MethodGet, "/profile", nil)).Body.Bytes(), &view))
	assert.Equal(t, models.NotificationSettings{BookingUpdates: true, NewChefs: true, Promotions: false, Reminders: true}, view.User.Notifications)

	assert.Equal(t, http.StatusNotFound, toggle("sms").Code)
}

func TestMerge(t *testing.T) {
	got := Merge(models.NotificationSettings{Reminders: true}, map[string]bool{"reminders": false, "newChefs": true, "bogus": true})
	assert.Equal(t, models.NotificationSettings{NewChefs: true}, got)
}
