// Package align computes minimal edit scripts between token sequences.
package align

import (
	"errors"
	"fmt"
)

var ErrScriptMismatch = errors.New("edit script does not match sequence")

type Kind uint8

const (
	Equal Kind = iota
	Insert
	Delete
)

func (k Kind) String() string {
	switch k {
	case Equal:
		return "equal"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Op is one step of an edit script. Token is taken from the old sequence for
// Equal and Delete, and from the new sequence for Insert.
type Op[T comparable] struct {
	Kind  Kind
	Token T
}

type Script[T comparable] []Op[T]

// Distance returns the number of insertions and deletions in the script.
func Distance[T comparable](script Script[T]) int {
	dist := 0
	for _, op := range script {
		if op.Kind != Equal {
			dist++
		}
	}
	return dist
}

// Apply replays script against old and returns the sequence it produces.
func Apply[T comparable](old []T, script Script[T]) ([]T, error) {
	out := make([]T, 0, len(script))
	pos := 0

	for i, op := range script {
		switch op.Kind {
		case Equal, Delete:
			if pos >= len(old) {
				return nil, fmt.Errorf("%w: op %d (%s) past end of sequence", ErrScriptMismatch, i, op.Kind)
			}
			if old[pos] != op.Token {
				return nil, fmt.Errorf("%w: op %d (%s) token %v, sequence has %v", ErrScriptMismatch, i, op.Kind, op.Token, old[pos])
			}
			pos++
			if op.Kind == Equal {
				out = append(out, op.Token)
			}
		case Insert:
			out = append(out, op.Token)
		default:
			return nil, fmt.Errorf("%w: op %d has unknown kind %s", ErrScriptMismatch, i, op.Kind)
		}
	}

	if pos != len(old) {
		return nil, fmt.Errorf("%w: script consumed %d of %d tokens", ErrScriptMismatch, pos, len(old))
	}

	return out, nil
}
