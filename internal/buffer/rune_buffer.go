// internal/buffer/rune_buffer.go
package buffer

import (
	"errors"
	"fmt"
	"os"

	"github.com/bethropolis/tidemark/internal/types"
)

// RuneBuffer keeps the document as a slice of code points.
type RuneBuffer struct {
	runes    []rune
	modified bool // Track if buffer has unsaved changes
}

// NewRuneBuffer creates an empty RuneBuffer.
func NewRuneBuffer() *RuneBuffer {
	return &RuneBuffer{runes: make([]rune, 0)}
}

// Set replaces the entire content.
func (rb *RuneBuffer) Set(text string) {
	rb.runes = []rune(text)
	rb.modified = false
}

// String returns the content as UTF-8.
func (rb *RuneBuffer) String() string {
	return string(rb.runes)
}

// Runes returns a copy of the content.
func (rb *RuneBuffer) Runes() []rune {
	out := make([]rune, len(rb.runes))
	copy(out, rb.runes)
	return out
}

// Len returns the number of code points.
func (rb *RuneBuffer) Len() int {
	return len(rb.runes)
}

// Slice returns a copy of [start, end). Reversed offsets are normalized.
func (rb *RuneBuffer) Slice(start, end int) []rune {
	left, right := rb.normalize(start, end)
	out := make([]rune, right-left)
	copy(out, rb.runes[left:right])
	return out
}

// Splice removes [start, end) and inserts text in its place.
func (rb *RuneBuffer) Splice(start, end int, text []rune) types.EditInfo {
	left, right := rb.normalize(start, end)
	edit := types.EditInfo{Start: left, OldEnd: right, NewEnd: left + len(text)}
	if left == right && len(text) == 0 {
		return edit
	}

	tail := make([]rune, len(rb.runes)-right)
	copy(tail, rb.runes[right:])
	rb.runes = append(append(rb.runes[:left], text...), tail...)
	rb.modified = true
	return edit
}

// IsModified returns true if the buffer changed since the last Set, Load or Save.
func (rb *RuneBuffer) IsModified() bool {
	return rb.modified
}

// ClearModified marks the content as saved.
func (rb *RuneBuffer) ClearModified() {
	rb.modified = false
}

func (rb *RuneBuffer) normalize(start, end int) (int, int) {
	left := types.ClampOffset(min(start, end), len(rb.runes))
	right := types.ClampOffset(max(start, end), len(rb.runes))
	return left, right
}

// Load reads a file into a string. A missing file yields an empty document.
func Load(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	return string(data), nil
}

// Save writes content to filePath.
func Save(filePath string, content string) error {
	if filePath == "" {
		return errors.New("no file path specified for saving")
	}
	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", filePath, err)
	}
	return nil
}

// Ensure RuneBuffer satisfies the Buffer interface
var _ Buffer = (*RuneBuffer)(nil)
