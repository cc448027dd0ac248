package syncer

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_SingleCall(t *testing.T) {
	var called atomic.Int32
	d := NewDebouncer(50 * time.Millisecond)

	d.Debounce(func() { called.Add(1) })

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), called.Load())
	assert.False(t, d.Pending())
}

func TestDebouncer_RapidCallsKeepLast(t *testing.T) {
	var called, last atomic.Int32
	d := NewDebouncer(50 * time.Millisecond)

	for i := 1; i <= 10; i++ {
		value := int32(i)
		d.Debounce(func() {
			last.Store(value)
			called.Add(1)
		})
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), called.Load())
	assert.Equal(t, int32(10), last.Load())
}

func TestDebouncer_WindowRestartsOnEachCall(t *testing.T) {
	var called atomic.Int32
	d := NewDebouncer(80 * time.Millisecond)

	d.Debounce(func() { called.Add(1) })
	time.Sleep(50 * time.Millisecond)
	d.Debounce(func() { called.Add(1) })
	time.Sleep(50 * time.Millisecond)

	// 100ms after the first call, but only 50ms after the second
	assert.Equal(t, int32(0), called.Load())

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), called.Load())
}

func TestDebouncer_Cancel(t *testing.T) {
	var called atomic.Int32
	d := NewDebouncer(50 * time.Millisecond)

	d.Debounce(func() { called.Add(1) })
	time.Sleep(10 * time.Millisecond)
	d.Cancel()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), called.Load())
}

func TestDebouncer_Flush(t *testing.T) {
	var called atomic.Int32
	d := NewDebouncer(time.Hour)

	assert.False(t, d.Flush())

	d.Debounce(func() { called.Add(1) })
	assert.True(t, d.Pending())

	assert.True(t, d.Flush())
	assert.Equal(t, int32(1), called.Load())
	assert.False(t, d.Pending())
	assert.False(t, d.Flush())
}

func TestDebouncer_FlushWaitsForFiredCall(t *testing.T) {
	var done atomic.Bool
	started := make(chan struct{})
	release := make(chan struct{})
	d := NewDebouncer(10 * time.Millisecond)

	d.Debounce(func() {
		close(started)
		<-release
		done.Store(true)
	})
	<-started

	flushed := make(chan bool, 1)
	go func() { flushed <- d.Flush() }()

	select {
	case <-flushed:
		t.Fatal("Flush returned while the fired call was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	assert.False(t, <-flushed)
	assert.True(t, done.Load())
}
