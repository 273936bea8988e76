// Package wer scores edit scripts as word (or character) error rates.
package wer

import (
	"errors"
	"fmt"

	"github.com/fmueller/voxwer/internal/align"
)

// ErrEmptyReference is returned when the error rate would divide by zero.
var ErrEmptyReference = errors.New("reference is empty; error rate is undefined")

type Result struct {
	Substitutions   int
	Deletions       int
	Insertions      int
	ReferenceLength int
	WER             float64
}

func (r Result) Errors() int {
	return r.Substitutions + r.Deletions + r.Insertions
}

func (r Result) Percent() float64 {
	return r.WER * 100
}

// Score classifies script and divides the error count by referenceLength.
//
// A Delete directly followed by an Insert counts as one substitution and both
// ops are consumed. Runs are not re-paired: Delete Delete Insert Insert is a
// deletion, a substitution and an insertion.
func Score[T comparable](script align.Script[T], referenceLength int) (Result, error) {
	if referenceLength <= 0 {
		return Result{}, fmt.Errorf("score %d ops against reference of length %d: %w", len(script), referenceLength, ErrEmptyReference)
	}

	res := Result{ReferenceLength: referenceLength}
	for i := 0; i < len(script); i++ {
		switch script[i].Kind {
		case align.Delete:
			if i+1 < len(script) && script[i+1].Kind == align.Insert {
				res.Substitutions++
				i++
				continue
			}
			res.Deletions++
		case align.Insert:
			res.Insertions++
		}
	}

	res.WER = float64(res.Errors()) / float64(referenceLength)
	return res, nil
}

// Compare aligns hypothesis against reference and scores the result.
// The script is returned even when scoring fails.
func Compare[T comparable](reference, hypothesis []T) (align.Script[T], Result, error) {
	script := align.Diff(reference, hypothesis)
	res, err := Score(script, len(reference))
	return script, res, err
}
