package utils

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestByteToRuneOffsets(t *testing.T) {
	// "a" (1 byte), "é" (2 bytes), "😛" (4 bytes)
	got := ByteToRuneOffsets([]byte("aé😛"))
	want := []int{0, 1, 1, 2, 2, 2, 2, 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0}, ByteToRuneOffsets(nil)); diff != "" {
		t.Errorf("empty input (-want +got):\n%s", diff)
	}
}

func TestDebouncerCoalesces(t *testing.T) {
	var d Debouncer
	var calls atomic.Int32
	done := make(chan int32, 2)

	for i := int32(1); i <= 3; i++ {
		d.Debounce(20*time.Millisecond, func() {
			calls.Add(1)
			done <- i
		})
	}

	select {
	case got := <-done:
		if got != 3 {
			t.Errorf("ran call %d, want the last one", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("debounced call never ran")
	}
	time.Sleep(50 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Errorf("calls = %d, want 1", n)
	}
}

func TestDebouncerStop(t *testing.T) {
	var d Debouncer
	ran := make(chan struct{}, 1)
	d.Debounce(30*time.Millisecond, func() { ran <- struct{}{} })
	if !d.Stop() {
		t.Fatal("Stop() = false with a pending call")
	}
	select {
	case <-ran:
		t.Error("stopped call ran")
	case <-time.After(80 * time.Millisecond):
	}
	if d.Stop() {
		t.Error("Stop() = true with nothing pending")
	}
}
