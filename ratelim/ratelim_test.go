package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestLimit(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	rl := NewRateLimiter(1, 2)
	rl.now = func() time.Time { return now }

	h := rl.Limit(func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusNoContent)
	})
	call := func(remote string) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		h(w, req, nil)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, call("10.0.0.1:1000"))
	assert.Equal(t, http.StatusNoContent, call("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:1002"))
	assert.Equal(t, http.StatusNoContent, call("10.0.0.2:1000"))

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusNoContent, call("10.0.0.1:1003"))
}

func TestIdleVisitorsSwept(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	rl := NewRateLimiter(1, 1)
	rl.now = func() time.Time { return now }

	rl.Allow("a")
	now = now.Add(idleTTL + time.Second)
	rl.Allow("b")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "a")
	assert.Contains(t, rl.visitors, "b")
}
