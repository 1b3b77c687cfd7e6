package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Total confirmed bookings created",
		},
	)

	seatsBooked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seats_booked_total",
			Help: "Total seats across all confirmed bookings",
		},
	)

	bookingsCancelled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_cancelled_total",
			Help: "Total bookings cancelled, by mode (single or reset)",
		},
		[]string{"mode"},
	)

	bookingConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_conflicts_total",
			Help: "Booking attempts rejected because a seat was taken",
		},
	)

	broadcastFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "broadcast_failures_total",
			Help: "Seat-event publishes that failed after commit",
		},
	)

	lockWaitDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seat_lock_wait_seconds",
			Help:    "Time spent acquiring the per-seat booking guard",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
	)
)

// TrackBookingCreated records a successful booking of n seats.
func TrackBookingCreated(n int) {
	bookingsCreated.Inc()
	seatsBooked.Add(float64(n))
}

// TrackBookingCancelled records cancellations; mode is "single" for an
// individual cancel and "reset" for a bulk reset.
func TrackBookingCancelled(mode string, n int64) {
	bookingsCancelled.WithLabelValues(mode).Add(float64(n))
}

// TrackBookingConflict records a create rejected on seat availability.
func TrackBookingConflict() {
	bookingConflicts.Inc()
}

// TrackBroadcastFailure records a failed post-commit event publish.
func TrackBroadcastFailure() {
	broadcastFailures.Inc()
}

// TrackLockWait records how long a booking waited on its seat guard.
func TrackLockWait(d time.Duration) {
	lockWaitDuration.Observe(d.Seconds())
}
