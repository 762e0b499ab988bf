package booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"chefreel/catalog"
	"chefreel/models"
	"chefreel/utils"
)

// Handler serves the wizard, the success screen and the bookings list.
type Handler struct {
	chefs    catalog.ChefRepository
	bookings catalog.BookingRepository
	store    Store
	policy   Policy
	logger   *zap.Logger

	// serializes load-modify-save of a session
	mu sync.Mutex
}

func NewHandler(chefs catalog.ChefRepository, bookings catalog.BookingRepository, store Store, policy Policy, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		chefs:    chefs,
		bookings: bookings,
		store:    store,
		policy:   policy,
		logger:   logger.Named("booking"),
	}
}

// WizardView is the booking screen view model.
type WizardView struct {
	SessionID  string             `json:"sessionId"`
	Chef       models.ChefSummary `json:"chef"`
	Steps      []StepInfo         `json:"steps"`
	Step       Step               `json:"step"`
	StepTitle  string             `json:"stepTitle"`
	Services   []models.Service   `json:"services"`
	TimeSlots  []string           `json:"timeSlots"`
	Draft      Draft              `json:"draft"`
	CanAdvance bool               `json:"canAdvance"`
	Total      int                `json:"total"`
	TotalLabel string             `json:"totalLabel"`
	Policy     string             `json:"policy"`
	Warnings   []string           `json:"warnings"`
	Exited     bool               `json:"exited,omitempty"`
	Redirect   string             `json:"redirect,omitempty"`
}

func newWizardView(s Session) WizardView {
	w := s.Wizard
	chef := w.Chef()
	total := w.TotalPrice()
	return WizardView{
		SessionID:  s.ID,
		Chef:       chef.Summary(),
		Steps:      Steps,
		Step:       w.Step(),
		StepTitle:  w.Step().String(),
		Services:   chef.Services,
		TimeSlots:  chef.Availability.TimeSlots,
		Draft:      w.Draft(),
		CanAdvance: w.CanAdvance(),
		Total:      total,
		TotalLabel: fmt.Sprintf("$%d", total),
		Policy:     w.Policy().String(),
		Warnings:   w.Warnings(),
	}
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

// GET /book/:chefId
func (h *Handler) GetBookingPage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	chef, ok := h.loadChef(w, r, ps.ByName("chefId"))
	if !ok {
		return
	}
	if len(chef.Services) == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Chef not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"chef":      chef.Summary(),
		"steps":     Steps,
		"services":  chef.Services,
		"timeSlots": chef.Availability.TimeSlots,
		"policy":    h.policy.String(),
		"start":     "/api/book/" + chef.ID,
	})
}

// POST /api/book/:chefId
func (h *Handler) StartWizard(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	chef, ok := h.loadChef(w, r, ps.ByName("chefId"))
	if !ok {
		return
	}
	wiz, err := NewWizard(chef, h.policy)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Chef not found")
		return
	}

	s := Session{
		ID:        utils.NewID(),
		UserID:    utils.UserIDOr(r, catalog.DemoUserID),
		Wizard:    wiz,
		UpdatedAt: time.Now(),
	}
	if err := h.store.Save(r.Context(), s); err != nil {
		h.logger.Error("save session", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to start booking")
		return
	}
	h.logger.Info("wizard started",
		zap.String("session", s.ID),
		zap.String("chef", chef.ID),
		zap.String("user", s.UserID))
	utils.RespondWithJSON(w, http.StatusCreated, newWizardView(s))
}

// GET /api/wizard/:session
func (h *Handler) GetWizard(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, err := h.session(r, ps)
	if err != nil {
		h.respondErr(w, err, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, newWizardView(s))
}

type serviceRequest struct {
	ServiceID string `json:"serviceId"`
}

// POST /api/wizard/:session/service
func (h *Handler) SelectService(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req serviceRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	h.mutate(w, r, ps, func(s *Session) error {
		return s.Wizard.SelectService(req.ServiceID)
	})
}

// PUT /api/wizard/:session/details
func (h *Handler) SetDetails(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req Details
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	h.mutate(w, r, ps, func(s *Session) error {
		return s.Wizard.SetDetails(req)
	})
}

// PUT /api/wizard/:session/contact
func (h *Handler) SetContact(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req Contact
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	h.mutate(w, r, ps, func(s *Session) error {
		return s.Wizard.SetContact(req)
	})
}

// POST /api/wizard/:session/next
func (h *Handler) Next(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.mutate(w, r, ps, func(s *Session) error {
		return s.Wizard.Next()
	})
}

// POST /api/wizard/:session/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := r.Context()
	s, err := h.session(r, ps)
	if err != nil {
		h.respondErr(w, err, nil)
		return
	}

	if s.Wizard.Back() {
		// leaving the wizard discards the draft
		if err := h.store.Delete(ctx, s.ID); err != nil {
			h.logger.Warn("delete session", zap.String("session", s.ID), zap.Error(err))
		}
		view := newWizardView(s)
		view.Exited = true
		view.Redirect = "/chef/" + view.Chef.ID
		utils.RespondWithJSON(w, http.StatusOK, view)
		return
	}
	h.saveAndRespond(ctx, w, s)
}

// POST /api/wizard/:session/confirm
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := r.Context()
	s, err := h.session(r, ps)
	if err != nil {
		h.respondErr(w, err, nil)
		return
	}
	conf, err := s.Wizard.Confirm()
	if err != nil {
		h.respondErr(w, err, &s)
		return
	}
	if err := h.store.Delete(ctx, s.ID); err != nil {
		h.logger.Warn("delete session", zap.String("session", s.ID), zap.Error(err))
	}

	h.logger.Info("booking confirmed",
		zap.String("session", s.ID),
		zap.String("chef", conf.ChefID),
		zap.String("user", s.UserID),
		zap.Int("total", conf.Total),
		zap.Strings("warnings", s.Wizard.Warnings()))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"confirmation": conf,
		"totalLabel":   fmt.Sprintf("$%d", conf.Total),
		"redirect":     conf.Redirect,
	})
}

// session loads the caller's session. Sessions of other users read as missing.
func (h *Handler) session(r *http.Request, ps httprouter.Params) (Session, error) {
	s, err := h.store.Get(r.Context(), ps.ByName("session"))
	if err != nil {
		return Session{}, err
	}
	if s.UserID != utils.UserIDOr(r, catalog.DemoUserID) {
		return Session{}, fmt.Errorf("session %s: %w", s.ID, ErrSessionNotFound)
	}
	return s, nil
}

func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, ps httprouter.Params, fn func(*Session) error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := r.Context()
	s, err := h.session(r, ps)
	if err != nil {
		h.respondErr(w, err, nil)
		return
	}
	if err := fn(&s); err != nil {
		h.respondErr(w, err, &s)
		return
	}
	h.saveAndRespond(ctx, w, s)
}

func (h *Handler) saveAndRespond(ctx context.Context, w http.ResponseWriter, s Session) {
	s.UpdatedAt = time.Now()
	if err := h.store.Save(ctx, s); err != nil {
		h.logger.Error("save session", zap.String("session", s.ID), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to save booking")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, newWizardView(s))
}

// respondErr maps wizard errors to status codes. s is nil when the session
// could not be loaded.
func (h *Handler) respondErr(w http.ResponseWriter, err error, s *Session) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Booking session not found")
	case errors.Is(err, ErrStepIncomplete), errors.Is(err, ErrFinalStep), errors.Is(err, ErrWrongStep):
		body := utils.M{"error": err.Error()}
		if s != nil {
			body["step"] = s.Wizard.Step()
			body["stepTitle"] = s.Wizard.Step().String()
		}
		utils.RespondWithJSON(w, http.StatusConflict, body)
	case errors.Is(err, ErrUnknownService):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("wizard", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "internal error")
	}
}
