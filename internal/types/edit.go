package types

// EditInfo describes a committed replacement in code point offsets.
// The old text occupied [Start, OldEnd); the new text occupies [Start, NewEnd).
type EditInfo struct {
	Start  int
	OldEnd int
	NewEnd int
}

// Inserted returns the number of code points added by the edit.
func (e EditInfo) Inserted() int {
	return e.NewEnd - e.Start
}

// Removed returns the number of code points removed by the edit.
func (e EditInfo) Removed() int {
	return e.OldEnd - e.Start
}
