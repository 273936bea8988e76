// Package report scores batches of transcriptions against a reference text
// and writes the results.
package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/fmueller/voxwer/internal/align"
	"github.com/fmueller/voxwer/internal/config"
	"github.com/fmueller/voxwer/internal/render"
	"github.com/fmueller/voxwer/internal/tokenize"
	"github.com/fmueller/voxwer/internal/wer"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Entry struct {
	Name string
	Text string
}

// Suite is a reference text and the transcriptions scored against it.
type Suite struct {
	Name      string
	Reference string
	Entries   []Entry
}

type Options struct {
	Unit     tokenize.Unit
	Tokenize tokenize.Options
	Render   render.Options
	Styles   render.Styles
	// Concurrency caps parallel alignments; 0 means one per CPU.
	Concurrency int
	Logger      *zap.Logger
}

// Outcome is the evaluation of one transcription. Err is set, and Result is
// zero, when the error rate is undefined.
type Outcome struct {
	Name       string
	Hypothesis []string
	Script     align.Script[string]
	Result     wer.Result
	Err        error
	Rendered   string
}

func (o Outcome) Undefined() bool {
	return errors.Is(o.Err, wer.ErrEmptyReference)
}

// ReadSuite loads the reference and transcription files a manifest suite
// points at.
func ReadSuite(suite config.Suite) (Suite, error) {
	reference, err := os.ReadFile(suite.Reference)
	if err != nil {
		return Suite{}, fmt.Errorf("read reference %s: %w", suite.Reference, err)
	}

	out := Suite{
		Name:      suite.Name,
		Reference: string(reference),
		Entries:   make([]Entry, 0, len(suite.Transcriptions)),
	}
	for _, tr := range suite.Transcriptions {
		text, err := os.ReadFile(tr.Path)
		if err != nil {
			return Suite{}, fmt.Errorf("read transcription %q (%s): %w", tr.Name, tr.Path, err)
		}
		out.Entries = append(out.Entries, Entry{Name: tr.Name, Text: string(text)})
	}

	return out, nil
}

// Evaluate aligns every entry of suite against its reference. Entries are
// aligned in parallel; outcomes keep the order of suite.Entries.
func Evaluate(ctx context.Context, suite Suite, opts Options) ([]Outcome, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	reference := tokenize.Tokens(suite.Reference, opts.Unit, opts.Tokenize)
	if len(reference) == 0 {
		logger.Warn("reference has no tokens; error rates are undefined", zap.String("suite", suite.Name))
	}

	outcomes := make([]Outcome, len(suite.Entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, entry := range suite.Entries {
		i, entry := i, entry
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			started := time.Now()
			hypothesis := tokenize.Tokens(entry.Text, opts.Unit, opts.Tokenize)
			script, res, err := wer.Compare(reference, hypothesis)
			if err != nil && !errors.Is(err, wer.ErrEmptyReference) {
				return fmt.Errorf("score %q: %w", entry.Name, err)
			}

			outcomes[i] = Outcome{
				Name:       entry.Name,
				Hypothesis: hypothesis,
				Script:     script,
				Result:     res,
				Err:        err,
				Rendered:   render.Diff(script, opts.Styles, opts.Render),
			}

			logger.Debug("aligned transcription",
				zap.String("suite", suite.Name),
				zap.String("name", entry.Name),
				zap.Int("reference_tokens", len(reference)),
				zap.Int("hypothesis_tokens", len(hypothesis)),
				zap.Int("distance", align.Distance(script)),
				zap.Float64("wer", res.WER),
				zap.Duration("elapsed", time.Since(started)),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// RateLabel names the metric for unit.
func RateLabel(unit tokenize.Unit) string {
	if unit == tokenize.UnitChar {
		return "Character Error Rate"
	}
	return "Word Error Rate"
}
