package influxdb_test

import (
	"sync"
	"testing"

	"github.com/theblacknight/raycast2d/common/influxdb"
)

func TestCounterAccumulates(t *testing.T) {
	counter := influxdb.NewCounter()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				counter.Add(2)
			}
		}()
	}
	wg.Wait()

	if got := counter.GetAndReset(); got != 16000 {
		t.Errorf("GetAndReset() = %d, want 16000", got)
	}

	if got := counter.GetAndReset(); got != 0 {
		t.Errorf("GetAndReset() after a reset = %d, want 0", got)
	}
}
