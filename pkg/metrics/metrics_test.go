package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("reservation_test")

	m.IncReservationCommitted("table")
	m.IncReservationCommitted("table")
	m.IncReservationRejected("seat_max_exceeded")
	m.ObserveGatewayCall("list_events", "ok", 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.reservations.WithLabelValues("table")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejections.WithLabelValues("seat_max_exceeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.gatewayCalls.WithLabelValues("list_events", "ok")))
}

func TestNew_Twice(t *testing.T) {
	assert.NotPanics(t, func() {
		New("reservation_a")
		New("reservation_a")
	})
}
