package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_BookingConflicts(t *testing.T) {
	m := NewWithRegistry("salon", prometheus.NewRegistry())

	m.IncBookingConflict("overlap")
	m.IncBookingConflict("overlap")
	m.IncBookingConflict("outside_hours")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingConflicts.WithLabelValues("salon", "overlap")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingConflicts.WithLabelValues("salon", "outside_hours")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveFreeSlots(3)
		m.IncBookingConflict("overlap")
	})
}
