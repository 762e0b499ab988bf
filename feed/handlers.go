package feed

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"chefreel/catalog"
	"chefreel/nav"
	"chefreel/sched"
	"chefreel/utils"
)

// Handler serves the feed page and its websocket session.
type Handler struct {
	videos  catalog.VideoRepository
	logger  *zap.Logger
	clock   sched.Clock
	lockFor time.Duration
	shuffle func() ShuffleFunc
}

func NewHandler(videos catalog.VideoRepository, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		videos:  videos,
		logger:  logger.Named("feed"),
		clock:   sched.Real(),
		lockFor: DefaultTransitionLock,
	}
}

// WithClock replaces the clock used by every new session.
func (h *Handler) WithClock(clock sched.Clock) *Handler {
	h.clock = clock
	return h
}

func (h *Handler) WithTransitionLock(d time.Duration) *Handler {
	h.lockFor = d
	return h
}

// WithShuffle installs a factory so each session gets its own shuffle.
func (h *Handler) WithShuffle(factory func() ShuffleFunc) *Handler {
	h.shuffle = factory
	return h
}

func (h *Handler) options() []Option {
	opts := []Option{
		WithClock(h.clock),
		WithTransitionLock(h.lockFor),
		WithLogger(h.logger),
	}
	if h.shuffle != nil {
		opts = append(opts, WithShuffle(h.shuffle()))
	}
	return opts
}

// Page is the home screen view model.
type Page struct {
	Nav       nav.Bar `json:"nav"`
	Feed      State   `json:"feed"`
	SwipeHint string  `json:"swipeHint"`
	Socket    string  `json:"socket"`
}

func (h *Handler) GetFeedPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	videos, err := h.videos.List(r.Context())
	if err != nil {
		h.logger.Error("load feed entries", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to load feed")
		return
	}

	ctrl, err := NewController(videos, h.options()...)
	if err != nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	defer ctrl.Close()

	utils.RespondWithJSON(w, http.StatusOK, Page{
		Nav:       nav.Build("/"),
		Feed:      ctrl.Snapshot(),
		SwipeHint: "Swipe up for next video",
		Socket:    "/ws/feed",
	})
}
