package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chefreel/catalog"
	"chefreel/globals"
)

func newRouter(t *testing.T, policy Policy) http.Handler {
	t.Helper()
	store := catalog.NewMemory(catalog.Seed()).Store()
	h := NewHandler(store.Chefs, store.Bookings, NewMemoryStore(0), policy, nil)

	router := httprouter.New()
	router.GET("/book/:chefId", h.GetBookingPage)
	router.POST("/api/book/:chefId", h.StartWizard)
	router.GET("/api/wizard/:session", h.GetWizard)
	router.POST("/api/wizard/:session/service", h.SelectService)
	router.PUT("/api/wizard/:session/details", h.SetDetails)
	router.PUT("/api/wizard/:session/contact", h.SetContact)
	router.POST("/api/wizard/:session/next", h.Next)
	router.POST("/api/wizard/:session/back", h.Back)
	router.POST("/api/wizard/:session/confirm", h.Confirm)
	router.GET("/booking-success", h.GetSuccessPage)
	router.GET("/booking-success/qr", h.GetReferenceQR)
	router.GET("/booking-success/receipt", h.GetReceipt)
	router.GET("/bookings", h.GetBookings)
	return router
}

func do(t *testing.T, router http.Handler, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, url, &buf))
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestBookingPage(t *testing.T) {
	router := newRouter(t, PolicyLax)

	w := do(t, router, http.MethodGet, "/book/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Private Dinner Party")

	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/book/99", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/book/4", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodPost, "/api/book/99", nil).Code)
}

func TestWizardOverHTTP(t *testing.T) {
	router := newRouter(t, PolicyLax)

	w := do(t, router, http.MethodPost, "/api/book/1", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	view := decode[WizardView](t, w)
	require.NotEmpty(t, view.SessionID)
	assert.Equal(t, StepService, view.Step)
	assert.False(t, view.CanAdvance)
	base := "/api/wizard/" + view.SessionID

	w = do(t, router, http.MethodPost, base+"/next", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	conflict := decode[map[string]any](t, w)
	assert.Equal(t, "Service", conflict["stepTitle"])

	w = do(t, router, http.MethodPost, base+"/service", serviceRequest{ServiceID: "dinner-party"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, StepDetails, decode[WizardView](t, w).Step)

	w = do(t, router, http.MethodPut, base+"/details", validDetails)
	require.Equal(t, http.StatusOK, w.Code)
	view = decode[WizardView](t, w)
	assert.True(t, view.CanAdvance)
	assert.Equal(t, "$900", view.TotalLabel)

	require.Equal(t, http.StatusOK, do(t, router, http.MethodPost, base+"/next", nil).Code)
	require.Equal(t, http.StatusOK, do(t, router, http.MethodPut, base+"/contact", validContact).Code)
	w = do(t, router, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, StepConfirm, decode[WizardView](t, w).Step)

	w = do(t, router, http.MethodPost, base+"/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "/booking-success?chef=1", body["redirect"])
	assert.Equal(t, "$900", body["totalLabel"])

	// confirming discards the session
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, base, nil).Code)
}

func TestWizardErrors(t *testing.T) {
	router := newRouter(t, PolicyLax)
	view := decode[WizardView](t, do(t, router, http.MethodPost, "/api/book/2", nil))
	base := "/api/wizard/" + view.SessionID

	assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodPost, base+"/service", serviceRequest{ServiceID: "dinner-party"}).Code)
	assert.Equal(t, http.StatusConflict, do(t, router, http.MethodPut, base+"/details", validDetails).Code)
	assert.Equal(t, http.StatusConflict, do(t, router, http.MethodPost, base+"/confirm", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/api/wizard/nope", nil).Code)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, base+"/service", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWizardBackExits(t *testing.T) {
	router := newRouter(t, PolicyLax)
	view := decode[WizardView](t, do(t, router, http.MethodPost, "/api/book/1", nil))
	base := "/api/wizard/" + view.SessionID

	require.Equal(t, http.StatusOK, do(t, router, http.MethodPost, base+"/service", serviceRequest{ServiceID: "meal-prep"}).Code)
	view = decode[WizardView](t, do(t, router, http.MethodPost, base+"/back", nil))
	assert.Equal(t, StepService, view.Step)
	assert.False(t, view.Exited)
	assert.Equal(t, "meal-prep", view.Draft.Service.ID)

	view = decode[WizardView](t, do(t, router, http.MethodPost, base+"/back", nil))
	assert.True(t, view.Exited)
	assert.Equal(t, "/chef/1", view.Redirect)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, base, nil).Code)
}

func TestSessionsAreScopedToTheirUser(t *testing.T) {
	router := newRouter(t, PolicyLax)
	view := decode[WizardView](t, do(t, router, http.MethodPost, "/api/book/1", nil))

	req := httptest.NewRequest(http.MethodGet, "/api/wizard/"+view.SessionID, nil)
	req = req.WithContext(context.WithValue(req.Context(), globals.UserIDKey, "intruder"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/api/wizard/"+view.SessionID, nil).Code)
}

func TestStrictPolicyOverHTTP(t *testing.T) {
	router := newRouter(t, PolicyStrict)
	view := decode[WizardView](t, do(t, router, http.MethodPost, "/api/book/1", nil))
	base := "/api/wizard/" + view.SessionID
	assert.Equal(t, "strict", view.Policy)

	do(t, router, http.MethodPost, base+"/service", serviceRequest{ServiceID: "dinner-party"})
	d := validDetails
	d.Guests = 20
	view = decode[WizardView](t, do(t, router, http.MethodPut, base+"/details", d))
	assert.False(t, view.CanAdvance)
	assert.NotEmpty(t, view.Warnings)
	assert.Equal(t, http.StatusConflict, do(t, router, http.MethodPost, base+"/next", nil).Code)
}

func TestSuccessPage(t *testing.T) {
	router := newRouter(t, PolicyLax)

	w := do(t, router, http.MethodGet, "/booking-success?chef=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[SuccessView](t, w)
	assert.Regexp(t, `^#CHF[0-9A-Z]{6}$`, view.Reference)
	assert.Equal(t, int64(3000), view.ConfettiMs)
	assert.Len(t, view.NextSteps, 3)
	assert.Equal(t, "Marco Rodriguez", view.Chef.Name)

	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/booking-success?chef=42", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/booking-success", nil).Code)

	qr := do(t, router, http.MethodGet, view.QRCode, nil)
	require.Equal(t, http.StatusOK, qr.Code)
	assert.Equal(t, "image/png", qr.Header().Get("Content-Type"))
	_, err := png.Decode(qr.Body)
	assert.NoError(t, err)

	receipt := do(t, router, http.MethodGet, view.Receipt, nil)
	require.Equal(t, http.StatusOK, receipt.Code)
	assert.Equal(t, "application/pdf", receipt.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(receipt.Body.Bytes(), []byte("%PDF")))
}

func TestReferenceValidation(t *testing.T) {
	router := newRouter(t, PolicyLax)

	assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodGet, "/booking-success/qr?ref=abc", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodGet, "/booking-success/receipt?chef=1&ref=%23CHFabc123", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/booking-success/receipt?chef=9&ref=%23CHFABC123", nil).Code)
}

func TestBookingsTabs(t *testing.T) {
	router := newRouter(t, PolicyLax)

	view := decode[BookingsView](t, do(t, router, http.MethodGet, "/bookings", nil))
	assert.Equal(t, TabUpcoming, view.Tab)
	assert.Equal(t, 2, view.UpcomingCount)
	assert.Equal(t, 1, view.PastCount)
	require.Len(t, view.Bookings, 2)
	assert.Equal(t, "CHF-2024-001", view.Bookings[0].BookingRef)
	assert.True(t, view.Nav.Items[2].Active)

	view = decode[BookingsView](t, do(t, router, http.MethodGet, "/bookings?tab=past", nil))
	assert.Equal(t, TabPast, view.Tab)
	require.Len(t, view.Bookings, 1)
	assert.True(t, view.Bookings[0].Reviewed)
}
