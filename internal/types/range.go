// internal/types/range.go
package types

// Range is a directional span of code point offsets.
// Anchor is where the range was started, Focus is where it was extended to.
// A range with Anchor > Focus was made right to left (e.g. a backward drag).
// Geometry is always read through Start/End; mutations go through the
// side helpers below so the anchor keeps being the anchor.
type Range struct {
	Anchor int
	Focus  int
}

// NewRange creates a range anchored at anchor and extended to focus.
func NewRange(anchor, focus int) Range {
	return Range{Anchor: anchor, Focus: focus}
}

// Start returns the left (smaller) offset.
func (r Range) Start() int {
	return min(r.Anchor, r.Focus)
}

// End returns the right (larger) offset.
func (r Range) End() int {
	return max(r.Anchor, r.Focus)
}

// Len returns the number of code points covered.
func (r Range) Len() int {
	return r.End() - r.Start()
}

// Backward reports whether the range was made right to left.
// A collapsed range counts as forward.
func (r Range) Backward() bool {
	return r.Anchor > r.Focus
}

// IsEmpty reports whether the range has collapsed to a single point.
func (r Range) IsEmpty() bool {
	return r.Anchor == r.Focus
}

// Normalized returns the forward range covering the same span.
func (r Range) Normalized() Range {
	return Range{Anchor: r.Start(), Focus: r.End()}
}

// Contains reports whether offset lies strictly between the two ends.
func (r Range) Contains(offset int) bool {
	return offset > r.Start() && offset < r.End()
}

// Intersects reports whether the two spans share at least one code point.
// Spans that only touch are not intersecting.
func (r Range) Intersects(o Range) bool {
	return max(r.Start(), o.Start()) < min(r.End(), o.End())
}

// Shift moves both ends by amount.
func (r *Range) Shift(amount int) {
	r.Anchor += amount
	r.Focus += amount
}

// GrowEnd moves the right side by amount.
func (r *Range) GrowEnd(amount int) {
	if r.Backward() {
		r.Anchor += amount
	} else {
		r.Focus += amount
	}
}

// SetEnd assigns the right side.
func (r *Range) SetEnd(value int) {
	if r.Backward() {
		r.Anchor = value
	} else {
		r.Focus = value
	}
}

// SetBounds assigns the left and right sides, keeping the direction.
func (r *Range) SetBounds(left, right int) {
	if r.Backward() {
		r.Anchor, r.Focus = right, left
	} else {
		r.Anchor, r.Focus = left, right
	}
}

// Clamp forces both ends into [0, length].
func (r *Range) Clamp(length int) {
	r.Anchor = ClampOffset(r.Anchor, length)
	r.Focus = ClampOffset(r.Focus, length)
}

// ClampOffset forces offset into [0, length].
func ClampOffset(offset, length int) int {
	if offset < 0 {
		return 0
	}
	if offset > length {
		return length
	}
	return offset
}
