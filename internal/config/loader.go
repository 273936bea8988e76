package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fmueller/voxwer/internal/platform"
	"github.com/fmueller/voxwer/internal/tokenize"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const EnvPrefix = "VOXWER_"

var manifestNames = []string{"voxwer.yaml", "voxwer.yml"}

// flagKeys maps command line flags onto manifest keys. Flags not listed here
// never reach the manifest.
var flagKeys = map[string]string{
	"only-bad":            "only_bad",
	"elide-deleted":       "elide_deleted",
	"merge-substitutions": "merge_substitutions",
	"unit":                "unit",
	"strip-punctuation":   "strip_punctuation",
	"concurrency":         "concurrency",
}

// FindManifest picks the manifest to load: the explicit path, a voxwer.yaml
// in dir, or the one in the user config directory. It returns "" if none
// exists.
func FindManifest(explicit, dir string) string {
	if explicit != "" {
		return explicit
	}

	for _, name := range manifestNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	configDir, err := platform.ResolveConfigDir()
	if err != nil {
		return ""
	}
	for _, name := range manifestNames {
		candidate := filepath.Join(configDir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

// Load reads the manifest at path and layers environment variables and
// explicitly set flags on top.
// Precedence (highest to lowest): flags > env vars > manifest file > defaults
func Load(path string, flags *pflag.FlagSet) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no manifest found; pass --config or create voxwer.yaml", ErrInvalidManifest)
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"unit":        string(tokenize.UnitWord),
		"concurrency": 0,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var m Manifest
	if err := k.Unmarshal("", &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	m.Path = path

	base := filepath.Dir(path)
	for i := range m.Suites {
		m.Suites[i].Reference = resolvePathRelativeTo(m.Suites[i].Reference, base)
		for j := range m.Suites[i].Transcriptions {
			tr := &m.Suites[i].Transcriptions[j]
			if strings.TrimSpace(tr.Name) == "" {
				tr.Name = NameFromPath(tr.Path)
			}
			tr.Path = resolvePathRelativeTo(tr.Path, base)
		}
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	return &m, nil
}

func resolvePathRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// NameFromPath derives a display name from a transcript file name.
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
