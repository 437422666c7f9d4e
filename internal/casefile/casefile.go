package casefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/alexiusacademia/gobend/internal/engine"
)

var (
	ErrNoCases       = errors.New("case file defines no cases")
	ErrUnknownFormat = errors.New("unknown case file format")
)

// Case is one named analysis request
type Case struct {
	Name           string `json:"name,omitempty" yaml:"name,omitempty"`
	engine.Request `yaml:",inline"`
}

// File is a set of cases sharing a unit system and support condition.
// Per-case values override the file-level ones.
type File struct {
	Units   string `json:"units,omitempty" yaml:"units,omitempty"`
	Support string `json:"support,omitempty" yaml:"support,omitempty"`
	Cases   []Case `json:"cases" yaml:"cases"`
}

// LoadFromFile reads a JSON or YAML case file. A file holding a single
// request at the top level is accepted as a one-case file.
func LoadFromFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data, Format(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Format returns "json" or "yaml" from the file extension
func Format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	}
	return ""
}

// Parse decodes a case file in the given format
func Parse(data []byte, format string) (*File, error) {
	var unmarshal func([]byte, interface{}) error
	switch format {
	case "json":
		unmarshal = json.Unmarshal
	case "yaml":
		unmarshal = yaml.Unmarshal
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	var f File
	if err := unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.Cases) == 0 {
		var single Case
		if err := unmarshal(data, &single); err != nil {
			return nil, err
		}
		if single.Section == "" && single.Load == "" {
			return nil, ErrNoCases
		}
		f.Cases = []Case{single}
	}

	for i := range f.Cases {
		c := &f.Cases[i]
		if c.Units == "" {
			c.Units = f.Units
		}
		if c.Support == "" {
			c.Support = f.Support
		}
		if c.Name == "" {
			c.Name = fmt.Sprintf("case %d", i+1)
		}
	}
	return &f, nil
}
