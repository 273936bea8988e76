// Package tokenize turns raw transcript text into comparable tokens.
package tokenize

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Unit string

const (
	UnitWord Unit = "word"
	UnitChar Unit = "char"
)

func ParseUnit(input string) (Unit, error) {
	switch Unit(strings.ToLower(strings.TrimSpace(input))) {
	case "", UnitWord, "words":
		return UnitWord, nil
	case UnitChar, "chars", "character", "characters":
		return UnitChar, nil
	default:
		return "", fmt.Errorf("unknown unit %q (expected word or char)", input)
	}
}

type Options struct {
	// StripPunctuation removes every Unicode punctuation rune, not just commas.
	StripPunctuation bool
}

// Tokens splits text according to unit.
func Tokens(text string, unit Unit, opts Options) []string {
	if unit == UnitChar {
		return Characters(text, opts)
	}
	return Words(text, opts)
}

// Words lower-cases text, drops commas and splits on whitespace.
func Words(text string, opts Options) []string {
	return strings.Fields(Normalize(text, opts))
}

// Characters returns one token per non-space rune of the normalized text.
func Characters(text string, opts Options) []string {
	normalized := Normalize(text, opts)
	out := make([]string, 0, len(normalized))
	for _, r := range normalized {
		if unicode.IsSpace(r) {
			continue
		}
		out = append(out, string(r))
	}
	return out
}

func Normalize(text string, opts Options) string {
	lowered := cases.Lower(language.Und).String(text)
	return strings.Map(func(r rune) rune {
		if r == ',' {
			return -1
		}
		if opts.StripPunctuation && unicode.IsPunct(r) {
			return -1
		}
		return r
	}, lowered)
}
