package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// A burst past the per-IP budget must start drawing 429s; the limiter sits
// in front of every registered route, not just the kiosk.
func TestGlobalRateLimitBurst(t *testing.T) {
	r, _ := setupRouter(t)

	codes := make(map[int]int)
	for i := 0; i < 60; i++ {
		req, err := http.NewRequest("GET", "/queue", nil)
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes[w.Code]++
	}

	assert.GreaterOrEqual(t, codes[http.StatusOK], 1)
	assert.GreaterOrEqual(t, codes[http.StatusTooManyRequests], 1)
	assert.Equal(t, 60, codes[http.StatusOK]+codes[http.StatusTooManyRequests])
}
