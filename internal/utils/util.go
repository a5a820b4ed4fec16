package utils

import (
	"sync"
	"time"
	"unicode/utf8"
)

// ByteToRuneOffsets maps every byte offset of src (len(src) included) to
// the index of the code point it falls in. Offsets inside a multi-byte
// sequence map to that code point's index.
func ByteToRuneOffsets(src []byte) []int {
	table := make([]int, len(src)+1)
	runeIndex := 0
	for offset := 0; offset < len(src); {
		_, size := utf8.DecodeRune(src[offset:])
		for i := 0; i < size; i++ {
			table[offset+i] = runeIndex
		}
		offset += size
		runeIndex++
	}
	table[len(src)] = runeIndex
	return table
}

// Debouncer provides a way to debounce function calls
type Debouncer struct {
	mutex sync.Mutex
	timer *time.Timer
}

// Debounce calls the provided function after the specified duration,
// canceling any previous pending calls
func (d *Debouncer) Debounce(duration time.Duration, fn func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(duration, func() {
		d.mutex.Lock()
		d.timer = nil
		d.mutex.Unlock()
		fn()
	})
}

// Stop cancels a pending call. It reports whether one was pending.
func (d *Debouncer) Stop() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	return stopped
}
