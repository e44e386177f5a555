package worker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolRunsAllTasks(t *testing.T) {
	pool := NewPool(3)

	var done int32
	for i := 0; i < 20; i++ {
		pool.Submit(func() {
			atomic.AddInt32(&done, 1)
		})
	}
	pool.Wait()

	assert.Equal(t, int32(20), atomic.LoadInt32(&done))
}

func TestPoolBoundsConcurrency(t *testing.T) {
	pool := NewPool(2)

	var running, peak int32
	for i := 0; i < 10; i++ {
		pool.Submit(func() {
			n := atomic.AddInt32(&running, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&running, -1)
		})
	}
	pool.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}
