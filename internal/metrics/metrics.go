package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "salon_scheduler"

// Metrics holds the HTTP and scheduling collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec

	slotsCreated      prometheus.Counter
	slotConflicts     prometheus.Counter
	schedulingBlocked prometheus.Counter
	bookingsConfirmed prometheus.Counter
	bookingsRejected  prometheus.Counter
	leaveDecisions    *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		slotsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slots_created_total",
			Help:      "Slots created.",
		}),
		slotConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_conflicts_total",
			Help:      "Slot creations rejected for overlapping an existing slot.",
		}),
		schedulingBlocked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scheduling_blocked_total",
			Help:      "Slot creations rejected by leave or the weekly off day.",
		}),
		bookingsConfirmed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_confirmed_total",
			Help:      "Bookings confirmed.",
		}),
		bookingsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_rejected_total",
			Help:      "Booking attempts on slots that were not available.",
		}),
		leaveDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leave_decisions_total",
			Help:      "Leave decisions by outcome.",
		}, []string{"status"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.latency,
		m.slotsCreated,
		m.slotConflicts,
		m.schedulingBlocked,
		m.bookingsConfirmed,
		m.bookingsRejected,
		m.leaveDecisions,
	)

	return m
}

// --------------------------------------------------
// HTTP
// --------------------------------------------------

func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method

		m.requests.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		m.latency.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// --------------------------------------------------
// Scheduling
// --------------------------------------------------

func (m *Metrics) SlotCreated() { m.slotsCreated.Inc() }
func (m *Metrics) SlotConflict() { m.slotConflicts.Inc() }
func (m *Metrics) SchedulingBlocked() { m.schedulingBlocked.Inc() }
func (m *Metrics) BookingConfirmed() { m.bookingsConfirmed.Inc() }
func (m *Metrics) BookingRejected() { m.bookingsRejected.Inc() }

func (m *Metrics) LeaveDecided(status string) {
	m.leaveDecisions.WithLabelValues(status).Inc()
}
