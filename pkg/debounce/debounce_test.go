package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestOnlyLastCallFires(t *testing.T) {
	d := New(20 * time.Millisecond)

	var fired int32
	var last int32
	for i := int32(1); i <= 5; i++ {
		value := i
		d.Do(func() {
			atomic.AddInt32(&fired, 1)
			atomic.StoreInt32(&last, value)
		})
	}

	time.Sleep(80 * time.Millisecond)
	if n := atomic.LoadInt32(&fired); n != 1 {
		t.Fatalf("fired %d times, want 1", n)
	}
	if v := atomic.LoadInt32(&last); v != 5 {
		t.Fatalf("fired with value %d, want the last scheduled", v)
	}
}

func TestCancelDropsPending(t *testing.T) {
	d := New(20 * time.Millisecond)

	var fired int32
	d.Do(func() { atomic.AddInt32(&fired, 1) })
	d.Cancel()

	time.Sleep(80 * time.Millisecond)
	if n := atomic.LoadInt32(&fired); n != 0 {
		t.Fatalf("fired %d times after cancel, want 0", n)
	}
}

func TestCancelWithNothingPending(t *testing.T) {
	d := New(time.Millisecond)
	d.Cancel()
	d.Cancel()
}

func TestZeroWindowFallsBackToDefault(t *testing.T) {
	d := New(0)
	if d.window != DefaultWindow {
		t.Fatalf("window = %v, want %v", d.window, DefaultWindow)
	}
}
