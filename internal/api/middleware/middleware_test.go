package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	var got uuid.UUID
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetUserID(r.Context())
		require.True(t, ok)
		got = id
		w.WriteHeader(http.StatusNoContent)
	}))

	clientID := uuid.New()
	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not uuid", "42", http.StatusUnauthorized},
		{"nil uuid", uuid.Nil.String(), http.StatusUnauthorized},
		{"valid", clientID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/v1/wizard", nil)
			if tt.header != "" {
				r.Header.Set(UserIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, r)
			assert.Equal(t, tt.want, rec.Code)
		})
	}

	assert.Equal(t, clientID, got)
}

func TestGetUserID_Missing(t *testing.T) {
	_, ok := GetUserID(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}

type observed struct {
	method, route, status string
}

type fakeRecorder struct {
	calls []observed
}

func (f *fakeRecorder) ObserveHTTPRequest(method, route, status string, _ float64) {
	f.calls = append(f.calls, observed{method, route, status})
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	rec := &fakeRecorder{}
	router := mux.NewRouter()
	router.Use(Metrics(rec))
	router.HandleFunc("/reservations/{reservationId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/reservations/"+uuid.NewString(), nil))

	require.Len(t, rec.calls, 1)
	assert.Equal(t, observed{"GET", "/reservations/{reservationId}", "404"}, rec.calls[0])
}

func TestRateLimiter_PerClient(t *testing.T) {
	stop := make(chan struct{})
	defer close(stop)

	rl := NewRateLimiter(0.001, 1, stop)
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	do := func(clientID uuid.UUID) int {
		r := httptest.NewRequest(http.MethodPost, "/api/v1/wizard/submit", nil)
		r = r.WithContext(WithUserID(r.Context(), clientID))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		return rec.Code
	}

	first, second := uuid.New(), uuid.New()
	assert.Equal(t, http.StatusCreated, do(first))
	assert.Equal(t, http.StatusTooManyRequests, do(first))
	assert.Equal(t, http.StatusCreated, do(second))
}

func TestRateLimiter_Cleanup(t *testing.T) {
	stop := make(chan struct{})
	defer close(stop)

	rl := NewRateLimiter(1, 1, stop)
	rl.get("stale")
	rl.get("fresh")
	rl.clients["stale"].seen = time.Now().Add(-2 * clientTTL)

	rl.cleanup(time.Now())

	assert.NotContains(t, rl.clients, "stale")
	assert.Contains(t, rl.clients, "fresh")
}
