package watcher

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDebouncer(t *testing.T) {
	t.Run("default duration", func(t *testing.T) {
		assert.Equal(t, DefaultDebounceDuration, NewDebouncer(0).Duration())
	})

	t.Run("custom duration", func(t *testing.T) {
		assert.Equal(t, 500*time.Millisecond, NewDebouncer(500*time.Millisecond).Duration())
	})
}

func TestDebouncerTrigger(t *testing.T) {
	t.Run("single trigger", func(t *testing.T) {
		var calls atomic.Int32
		d := NewDebouncer(50 * time.Millisecond)

		d.Trigger(func() { calls.Add(1) })
		time.Sleep(150 * time.Millisecond)

		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("rapid triggers coalesce", func(t *testing.T) {
		var calls atomic.Int32
		d := NewDebouncer(100 * time.Millisecond)

		for i := 0; i < 5; i++ {
			d.Trigger(func() { calls.Add(1) })
			time.Sleep(10 * time.Millisecond)
		}
		time.Sleep(250 * time.Millisecond)

		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("last callback wins", func(t *testing.T) {
		var got atomic.Int32
		d := NewDebouncer(50 * time.Millisecond)

		for i := int32(1); i <= 3; i++ {
			v := i
			d.Trigger(func() { got.Store(v) })
		}
		time.Sleep(150 * time.Millisecond)

		assert.Equal(t, int32(3), got.Load())
	})
}

func TestDebouncerCancel(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(50 * time.Millisecond)

	d.Trigger(func() { calls.Add(1) })
	d.Cancel()
	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, int32(0), calls.Load())

	// Cancel with nothing pending is a no-op.
	d.Cancel()
}
