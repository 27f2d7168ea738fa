package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// EngineMetrics records pricing/availability latency and booking admission outcomes.
type EngineMetrics struct {
	pricingDuration      *prometheus.HistogramVec
	availabilityDuration prometheus.Histogram
	bookingsAdmitted     prometheus.Counter
	bookingConflicts     prometheus.Counter
	bookingsRejected     *prometheus.CounterVec
}

// NewEngineMetrics registers the engine metrics on the provided registerer.
func NewEngineMetrics(reg prometheus.Registerer) *EngineMetrics {
	if reg == nil {
		return &EngineMetrics{}
	}
	pricingDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pricing_duration_seconds",
		Help:    "Duration of price resolution in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"pricing_type"})
	availabilityDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "availability_duration_seconds",
		Help:    "Duration of availability computation in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	bookingsAdmitted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bookings_admitted_total",
		Help: "Bookings accepted and persisted.",
	})
	bookingConflicts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "booking_conflicts_total",
		Help: "Booking requests rejected because the slot was held.",
	})
	bookingsRejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bookings_rejected_total",
		Help: "Booking requests rejected before the conflict check.",
	}, []string{"reason"})
	reg.MustRegister(pricingDuration, availabilityDuration, bookingsAdmitted, bookingConflicts, bookingsRejected)
	return &EngineMetrics{
		pricingDuration:      pricingDuration,
		availabilityDuration: availabilityDuration,
		bookingsAdmitted:     bookingsAdmitted,
		bookingConflicts:     bookingConflicts,
		bookingsRejected:     bookingsRejected,
	}
}

// ObservePricing records the duration of one price resolution.
func (m *EngineMetrics) ObservePricing(pricingType string, duration time.Duration) {
	if m == nil || m.pricingDuration == nil {
		return
	}
	m.pricingDuration.WithLabelValues(normalizeLabel(pricingType)).Observe(duration.Seconds())
}

// ObserveAvailability records the duration of one availability computation.
func (m *EngineMetrics) ObserveAvailability(duration time.Duration) {
	if m == nil || m.availabilityDuration == nil {
		return
	}
	m.availabilityDuration.Observe(duration.Seconds())
}

// IncAdmitted counts a persisted booking.
func (m *EngineMetrics) IncAdmitted() {
	if m == nil || m.bookingsAdmitted == nil {
		return
	}
	m.bookingsAdmitted.Inc()
}

// IncConflict counts a booking turned away because its slot was held.
func (m *EngineMetrics) IncConflict() {
	if m == nil || m.bookingConflicts == nil {
		return
	}
	m.bookingConflicts.Inc()
}

// IncRejected counts a booking rejected by validation, labeled with the reason.
func (m *EngineMetrics) IncRejected(reason string) {
	if m == nil || m.bookingsRejected == nil {
		return
	}
	m.bookingsRejected.WithLabelValues(normalizeLabel(reason)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
