package influxdb

import (
	"sync/atomic"
)

// Counter accumulates an integral metric between two flushes. It is safe for
// concurrent use.
type Counter struct {
	count int64
}

func NewCounter() *Counter {
	return &Counter{}
}

func (counter *Counter) Add(nbr int) {
	atomic.AddInt64(&counter.count, int64(nbr))
}

// GetAndReset returns the accumulated value and restarts from zero.
func (counter *Counter) GetAndReset() int {
	return int(atomic.SwapInt64(&counter.count, 0))
}
