package wer

import "github.com/fmueller/voxwer/internal/align"

type SegmentKind uint8

const (
	SegmentEqual SegmentKind = iota
	SegmentInsert
	SegmentDelete
	SegmentReplace
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentEqual:
		return "equal"
	case SegmentInsert:
		return "insert"
	case SegmentDelete:
		return "delete"
	case SegmentReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Segment is a display unit of an edit script. Reference is unset for
// inserts, Hypothesis is unset for deletes.
type Segment[T comparable] struct {
	Kind       SegmentKind
	Reference  T
	Hypothesis T
}

// Segments groups script with the same pairing rule Score uses, so every
// Replace segment here is one substitution there.
func Segments[T comparable](script align.Script[T]) []Segment[T] {
	out := make([]Segment[T], 0, len(script))
	for i := 0; i < len(script); i++ {
		op := script[i]
		switch op.Kind {
		case align.Equal:
			out = append(out, Segment[T]{Kind: SegmentEqual, Reference: op.Token, Hypothesis: op.Token})
		case align.Insert:
			out = append(out, Segment[T]{Kind: SegmentInsert, Hypothesis: op.Token})
		case align.Delete:
			if i+1 < len(script) && script[i+1].Kind == align.Insert {
				out = append(out, Segment[T]{Kind: SegmentReplace, Reference: op.Token, Hypothesis: script[i+1].Token})
				i++
				continue
			}
			out = append(out, Segment[T]{Kind: SegmentDelete, Reference: op.Token})
		}
	}
	return out
}
