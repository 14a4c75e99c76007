package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Checkout counters, read by the healthz handler.
var (
	OrdersPlaced  Counter
	OrdersFailed  Counter
	EmptyCartHits Counter
)

// CheckoutStats snapshots the checkout counters for the healthz payload.
func CheckoutStats() map[string]uint64 {
	return map[string]uint64{
		"orders_placed":   OrdersPlaced.Load(),
		"orders_failed":   OrdersFailed.Load(),
		"empty_cart_hits": EmptyCartHits.Load(),
	}
}
