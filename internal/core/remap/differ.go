package remap

import (
	"fmt"
	"iter"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// OpKind is the kind of one diff operation.
type OpKind int

const (
	OpRetain OpKind = iota // keep Count code points
	OpInsert               // insert Text
	OpDelete               // drop Count code points
)

func (k OpKind) String() string {
	switch k {
	case OpRetain:
		return "retain"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is one step of an edit script. Count is set for retain and delete,
// Text for insert.
type Op struct {
	Kind  OpKind
	Count int
	Text  string
}

// Differ produces an edit script turning from into to. Retains and deletes
// together cover from exactly once, left to right; retains and inserts
// together spell out to.
type Differ interface {
	Diff(from, to []rune) iter.Seq[Op]
}

// DiffMatchPatch is the default Differ, backed by go-diff's Myers diff
// over code points. It never times out.
type DiffMatchPatch struct{}

// Diff implements Differ.
func (DiffMatchPatch) Diff(from, to []rune) iter.Seq[Op] {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	diffs := dmp.DiffMainRunes(from, to, false)

	return func(yield func(Op) bool) {
		for _, d := range diffs {
			var op Op
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				op = Op{Kind: OpRetain, Count: utf8.RuneCountInString(d.Text)}
			case diffmatchpatch.DiffInsert:
				op = Op{Kind: OpInsert, Text: d.Text}
			case diffmatchpatch.DiffDelete:
				op = Op{Kind: OpDelete, Count: utf8.RuneCountInString(d.Text)}
			default:
				continue
			}
			if !yield(op) {
				return
			}
		}
	}
}
