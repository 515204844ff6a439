package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := New()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/me/slots", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/me/slots", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/me/slots", "GET", "200")))
}

func TestSchedulingCounters(t *testing.T) {
	m := New()
	m.SlotCreated()
	m.SlotCreated()
	m.SlotConflict()
	m.LeaveDecided("Approved")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.slotsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.slotConflicts))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.leaveDecisions.WithLabelValues("Approved")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	m.BookingConfirmed()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "salon_scheduler_bookings_confirmed_total 1"))
}
