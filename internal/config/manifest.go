// Package config loads evaluation manifests: which reference texts to score
// which transcriptions against, and how to tokenize and render them.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fmueller/voxwer/internal/tokenize"
)

var ErrInvalidManifest = errors.New("invalid manifest")

type Transcription struct {
	Name string `koanf:"name"`
	Path string `koanf:"path"`
}

type Suite struct {
	Name           string          `koanf:"name"`
	Reference      string          `koanf:"reference"`
	Transcriptions []Transcription `koanf:"transcriptions"`
}

type Manifest struct {
	OnlyBad            bool    `koanf:"only_bad"`
	ElideDeleted       bool    `koanf:"elide_deleted"`
	MergeSubstitutions bool    `koanf:"merge_substitutions"`
	Unit               string  `koanf:"unit"`
	StripPunctuation   bool    `koanf:"strip_punctuation"`
	Concurrency        int     `koanf:"concurrency"`
	Suites             []Suite `koanf:"suites"`

	// Path is the manifest file the values were read from, if any.
	Path string `koanf:"-"`
}

// Validate reports the first structural problem in the manifest.
func (m *Manifest) Validate() error {
	if _, err := tokenize.ParseUnit(m.Unit); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if m.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency must not be negative, got %d", ErrInvalidManifest, m.Concurrency)
	}
	if len(m.Suites) == 0 {
		return fmt.Errorf("%w: no suites defined", ErrInvalidManifest)
	}

	suiteNames := make(map[string]struct{}, len(m.Suites))
	for i, suite := range m.Suites {
		label := suite.Name
		if strings.TrimSpace(label) == "" {
			return fmt.Errorf("%w: suite #%d has no name", ErrInvalidManifest, i+1)
		}
		if _, dup := suiteNames[label]; dup {
			return fmt.Errorf("%w: duplicate suite %q", ErrInvalidManifest, label)
		}
		suiteNames[label] = struct{}{}

		if strings.TrimSpace(suite.Reference) == "" {
			return fmt.Errorf("%w: suite %q has no reference", ErrInvalidManifest, label)
		}
		if len(suite.Transcriptions) == 0 {
			return fmt.Errorf("%w: suite %q has no transcriptions", ErrInvalidManifest, label)
		}

		names := make(map[string]struct{}, len(suite.Transcriptions))
		for j, tr := range suite.Transcriptions {
			if strings.TrimSpace(tr.Path) == "" {
				return fmt.Errorf("%w: suite %q transcription #%d has no path", ErrInvalidManifest, label, j+1)
			}
			if strings.TrimSpace(tr.Name) == "" {
				return fmt.Errorf("%w: suite %q transcription #%d has no name", ErrInvalidManifest, label, j+1)
			}
			if _, dup := names[tr.Name]; dup {
				return fmt.Errorf("%w: suite %q lists transcription %q twice", ErrInvalidManifest, label, tr.Name)
			}
			names[tr.Name] = struct{}{}
		}
	}

	return nil
}

// Suite returns the suite called name.
func (m *Manifest) Suite(name string) (Suite, bool) {
	for _, suite := range m.Suites {
		if suite.Name == name {
			return suite, true
		}
	}
	return Suite{}, false
}

func (m *Manifest) TokenUnit() tokenize.Unit {
	unit, err := tokenize.ParseUnit(m.Unit)
	if err != nil {
		return tokenize.UnitWord
	}
	return unit
}
