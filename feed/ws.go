package feed

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Origins are enforced by the CORS layer in front of the router
		return true
	},
}

type clientMessage struct {
	Type     string  `json:"type"`
	Distance float64 `json:"distance,omitempty"`
	Key      string  `json:"key,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	On       bool    `json:"on,omitempty"`
}

type serverMessage struct {
	Type     string `json:"type"`
	Event    string `json:"event,omitempty"`
	Accepted bool   `json:"accepted"`
	Tap      string `json:"tap,omitempty"`
	Heart    *Heart `json:"heart,omitempty"`
	State    *State `json:"state,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ServeWS runs one feed session per connection. Every client message is
// answered with the resulting state; timer-driven changes (transition
// unlock, controls hiding, hearts expiring) are pushed unprompted.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	videos, err := h.videos.List(r.Context())
	if err != nil {
		h.logger.Error("load feed entries", zap.Error(err))
		http.Error(w, "failed to load feed", http.StatusInternalServerError)
		return
	}

	changed := make(chan struct{}, 1)
	opts := append(h.options(), WithOnChange(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}))
	ctrl, err := NewController(videos, opts...)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		ctrl.Close()
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	h.logger.Info("feed session opened", zap.String("remote", r.RemoteAddr))

	s := &session{conn: conn, ctrl: ctrl, logger: h.logger}
	s.run(changed)

	h.logger.Info("feed session closed", zap.String("remote", r.RemoteAddr))
}

type session struct {
	conn   *websocket.Conn
	ctrl   *Controller
	drag   Drag
	logger *zap.Logger
}

func (s *session) run(changed <-chan struct{}) {
	out := make(chan serverMessage, 8)
	quit := make(chan struct{})
	writerDone := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(writerDone)
		s.writeLoop(out, changed, quit)
	}()

	send := func(m serverMessage) bool {
		select {
		case out <- m:
			return true
		case <-writerDone:
			return false
		}
	}

	if send(s.stateMessage("init", true)) {
		for {
			var msg clientMessage
			if err := s.conn.ReadJSON(&msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					s.logger.Warn("feed session read", zap.Error(err))
				}
				break
			}
			if !send(s.handle(msg)) {
				break
			}
		}
	}

	s.ctrl.Close()
	close(quit)
	wg.Wait()
	s.conn.Close()
}

func (s *session) writeLoop(out <-chan serverMessage, changed <-chan struct{}, quit <-chan struct{}) {
	for {
		var m serverMessage
		select {
		case <-quit:
			return
		case m = <-out:
		case <-changed:
			m = s.stateMessage("tick", true)
		}
		s.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := s.conn.WriteJSON(m); err != nil {
			s.logger.Warn("feed session write", zap.Error(err))
			// unblock the reader
			s.conn.Close()
			return
		}
	}
}

func (s *session) handle(msg clientMessage) serverMessage {
	accepted := true
	reply := serverMessage{}

	switch msg.Type {
	case "swipe":
		accepted = s.ctrl.Swipe(msg.Distance)
	case "touchstart":
		s.drag.Start(msg.Y)
	case "touchmove":
		s.drag.Move(msg.Y)
	case "touchend":
		distance, ok := s.drag.End()
		accepted = ok && s.ctrl.Swipe(distance)
	case "key":
		accepted = s.ctrl.Key(msg.Key)
	case "next":
		s.ctrl.Advance()
	case "previous":
		accepted = s.ctrl.Retreat()
	case "tap":
		res := s.ctrl.Card().Tap(msg.X, msg.Y)
		accepted = res.Kind != 0
		reply.Tap = res.Kind.String()
		reply.Heart = res.Heart
	case "like":
		s.ctrl.Card().ToggleLike()
	case "bookmark":
		s.ctrl.Card().ToggleBookmark()
	case "play":
		s.ctrl.Card().TogglePlay()
	case "hover":
		s.ctrl.Card().SetHover(msg.On)
	case "state":
	default:
		return serverMessage{Type: "error", Event: msg.Type, Error: "unknown message type"}
	}

	st := s.ctrl.Snapshot()
	reply.Type = "state"
	reply.Event = msg.Type
	reply.Accepted = accepted
	reply.State = &st
	return reply
}

func (s *session) stateMessage(event string, accepted bool) serverMessage {
	st := s.ctrl.Snapshot()
	return serverMessage{Type: "state", Event: event, Accepted: accepted, State: &st}
}
