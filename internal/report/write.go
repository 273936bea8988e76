package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fmueller/voxwer/internal/render"
	"github.com/fmueller/voxwer/internal/tokenize"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(input string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(input))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected text, json or yaml)", input)
	}
}

// SuiteResult is an evaluated suite ready to be written.
type SuiteResult struct {
	Name     string
	Unit     tokenize.Unit
	Outcomes []Outcome
}

// WriteText prints each transcription's highlighted diff and error rate.
// Every suite after the first is introduced by a banner line.
func WriteText(w io.Writer, suites []SuiteResult, styles render.Styles) error {
	for i, suite := range suites {
		if i > 0 {
			if _, err := fmt.Fprintln(w, render.Banner(suite.Name, styles)); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		label := RateLabel(suite.Unit)
		for _, o := range suite.Outcomes {
			score := render.Score(label, o.Result, styles)
			if o.Undefined() {
				score = render.UndefinedScore(label, styles)
			}
			if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n\n", render.Header(o.Name, styles), o.Rendered, score); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteSummary renders one table row per transcription.
func WriteSummary(w io.Writer, suites []SuiteResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Suite", "Transcription", "Subs", "Dels", "Ins", "Ref", "Rate"})

	for _, suite := range suites {
		for _, o := range suite.Outcomes {
			rate := fmt.Sprintf("%.2f%%", o.Result.Percent())
			if o.Undefined() {
				rate = "undefined"
			}
			t.AppendRow(table.Row{
				suite.Name,
				o.Name,
				o.Result.Substitutions,
				o.Result.Deletions,
				o.Result.Insertions,
				o.Result.ReferenceLength,
				rate,
			})
		}
	}

	t.Render()
}

type opDoc struct {
	Kind  string `json:"kind" yaml:"kind"`
	Token string `json:"token" yaml:"token"`
}

type transcriptionDoc struct {
	Name            string   `json:"name" yaml:"name"`
	Substitutions   int      `json:"substitutions" yaml:"substitutions"`
	Deletions       int      `json:"deletions" yaml:"deletions"`
	Insertions      int      `json:"insertions" yaml:"insertions"`
	ReferenceLength int      `json:"reference_length" yaml:"reference_length"`
	Rate            *float64 `json:"rate" yaml:"rate"`
	Error           string   `json:"error,omitempty" yaml:"error,omitempty"`
	Ops             []opDoc  `json:"ops" yaml:"ops"`
}

type suiteDoc struct {
	Suite          string             `json:"suite" yaml:"suite"`
	Unit           string             `json:"unit" yaml:"unit"`
	Transcriptions []transcriptionDoc `json:"transcriptions" yaml:"transcriptions"`
}

func documents(suites []SuiteResult) []suiteDoc {
	docs := make([]suiteDoc, 0, len(suites))
	for _, suite := range suites {
		doc := suiteDoc{
			Suite:          suite.Name,
			Unit:           string(suite.Unit),
			Transcriptions: make([]transcriptionDoc, 0, len(suite.Outcomes)),
		}
		for _, o := range suite.Outcomes {
			tr := transcriptionDoc{
				Name:            o.Name,
				Substitutions:   o.Result.Substitutions,
				Deletions:       o.Result.Deletions,
				Insertions:      o.Result.Insertions,
				ReferenceLength: o.Result.ReferenceLength,
				Ops:             make([]opDoc, 0, len(o.Script)),
			}
			if o.Err != nil {
				tr.Error = o.Err.Error()
			} else {
				rate := o.Result.WER
				tr.Rate = &rate
			}
			for _, op := range o.Script {
				tr.Ops = append(tr.Ops, opDoc{Kind: op.Kind.String(), Token: op.Token})
			}
			doc.Transcriptions = append(doc.Transcriptions, tr)
		}
		docs = append(docs, doc)
	}
	return docs
}

func WriteJSON(w io.Writer, suites []SuiteResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(documents(suites))
}

func WriteYAML(w io.Writer, suites []SuiteResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(documents(suites)); err != nil {
		return err
	}
	return enc.Close()
}

// Write dispatches on format. The summary table is only added to text output.
func Write(w io.Writer, format Format, suites []SuiteResult, styles render.Styles, summary bool) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, suites)
	case FormatYAML:
		return WriteYAML(w, suites)
	default:
		if err := WriteText(w, suites, styles); err != nil {
			return err
		}
		if summary {
			WriteSummary(w, suites)
		}
		return nil
	}
}
