// Package render turns edit scripts into highlighted terminal text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fmueller/voxwer/internal/align"
	"github.com/fmueller/voxwer/internal/wer"
	"github.com/muesli/termenv"
)

type Options struct {
	// OnlyBad flags every error in one colour and leaves deleted tokens blank.
	OnlyBad bool
	// ElideDeleted drops deleted tokens instead of leaving a blank slot.
	ElideDeleted bool
	// MergeSubstitutions shows a Delete+Insert pair as one replaced token.
	MergeSubstitutions bool
	// Separator joins rendered tokens; a single space when empty.
	Separator string
}

type Styles struct {
	Plain   lipgloss.Style
	Insert  lipgloss.Style
	Delete  lipgloss.Style
	Replace lipgloss.Style
	Bad     lipgloss.Style
	Header  lipgloss.Style
	Score   lipgloss.Style
	Banner  lipgloss.Style
}

// NewStyles binds styles to w. With color disabled every style renders its
// input unchanged.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return Styles{
		Plain:   r.NewStyle(),
		Insert:  r.NewStyle().Foreground(lipgloss.Color("2")),
		Delete:  r.NewStyle().Foreground(lipgloss.Color("1")),
		Replace: r.NewStyle().Foreground(lipgloss.Color("3")),
		Bad:     r.NewStyle().Foreground(lipgloss.Color("1")),
		Header:  r.NewStyle().Foreground(lipgloss.Color("4")),
		Score:   r.NewStyle().Foreground(lipgloss.Color("3")),
		Banner:  r.NewStyle().Bold(true),
	}
}

// Diff renders script token by token.
func Diff(script align.Script[string], styles Styles, opts Options) string {
	if opts.MergeSubstitutions {
		return joinParts(segmentParts(wer.Segments(script), styles, opts), opts)
	}

	parts := make([]string, 0, len(script))
	for _, op := range script {
		switch op.Kind {
		case align.Equal:
			parts = append(parts, styles.Plain.Render(op.Token))
		case align.Insert:
			parts = append(parts, insertStyle(styles, opts).Render(op.Token))
		case align.Delete:
			if opts.ElideDeleted {
				continue
			}
			parts = append(parts, deleted(op.Token, styles, opts))
		}
	}
	return joinParts(parts, opts)
}

func segmentParts(segments []wer.Segment[string], styles Styles, opts Options) []string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg.Kind {
		case wer.SegmentEqual:
			parts = append(parts, styles.Plain.Render(seg.Hypothesis))
		case wer.SegmentInsert:
			parts = append(parts, insertStyle(styles, opts).Render(seg.Hypothesis))
		case wer.SegmentDelete:
			if opts.ElideDeleted {
				continue
			}
			parts = append(parts, deleted(seg.Reference, styles, opts))
		case wer.SegmentReplace:
			style := styles.Replace
			if opts.OnlyBad {
				style = styles.Bad
			}
			parts = append(parts, style.Render(seg.Hypothesis))
		}
	}
	return parts
}

func insertStyle(styles Styles, opts Options) lipgloss.Style {
	if opts.OnlyBad {
		return styles.Bad
	}
	return styles.Insert
}

func deleted(token string, styles Styles, opts Options) string {
	if opts.OnlyBad {
		return ""
	}
	return styles.Delete.Render(token)
}

func joinParts(parts []string, opts Options) string {
	sep := opts.Separator
	if sep == "" {
		sep = " "
	}
	return strings.Join(parts, sep)
}

func Header(name string, styles Styles) string {
	return styles.Header.Render(fmt.Sprintf("Transcription %s:", name))
}

// Score formats the error rate as a percentage with two decimals, e.g.
// "Word Error Rate: 12.50%".
func Score(label string, res wer.Result, styles Styles) string {
	return styles.Score.Render(fmt.Sprintf("%s: %.2f%%", label, res.Percent()))
}

func UndefinedScore(label string, styles Styles) string {
	return styles.Score.Render(label + ": undefined (empty reference)")
}

func Banner(title string, styles Styles) string {
	return styles.Banner.Render(fmt.Sprintf("===================== %s =====================", title))
}
