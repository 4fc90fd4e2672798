// Package manifest handles nanbox.toml configuration for the nanbox
// demonstration program.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/chazu/nanbox/vm"
)

// FileName is the manifest file looked up by Load and FindAndLoad.
const FileName = "nanbox.toml"

// Output formats
const (
	FormatText = "text"
	FormatHex  = "hex"
	FormatCBOR = "cbor"
)

// Sample kinds
const (
	KindFloat    = "float"
	KindSigned   = "signed"
	KindUnsigned = "unsigned"
	KindPointer  = "pointer"
)

// Manifest represents a nanbox.toml configuration.
type Manifest struct {
	Output  Output   `toml:"output"`
	Samples []Sample `toml:"sample"`

	// Path is the file the manifest was loaded from (set at load time).
	Path string `toml:"-"`
}

// Output configures how samples are printed.
type Output struct {
	Format string `toml:"format"`
	Strict bool   `toml:"strict"`
}

// Sample is one value to box.
type Sample struct {
	Name  string `toml:"name"`
	Kind  string `toml:"kind"`
	Value string `toml:"value"`
}

// Default returns the built-in samples: one value per variant.
func Default() *Manifest {
	return &Manifest{
		Output: Output{Format: FormatText},
		Samples: []Sample{
			{Name: "float", Kind: KindFloat, Value: "3.14"},
			{Name: "signed", Kind: KindSigned, Value: "-69"},
			{Name: "unsigned", Kind: KindUnsigned, Value: "42"},
			{Name: "pointer", Kind: KindPointer, Value: "0x1234"},
		},
	}
}

// Load parses the nanbox.toml file in the given directory.
func Load(dir string) (*Manifest, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile parses a manifest from path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Path, err = filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}

	// Defaults
	if m.Output.Format == "" {
		m.Output.Format = FormatText
	}
	if len(m.Samples) == 0 {
		m.Samples = Default().Samples
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &m, nil
}

// FindAndLoad walks up from startDir to find a nanbox.toml file,
// then loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// Validate checks the output format and every sample's kind.
func (m *Manifest) Validate() error {
	switch m.Output.Format {
	case FormatText, FormatHex, FormatCBOR:
	default:
		return fmt.Errorf("unknown output format %q", m.Output.Format)
	}
	for i, s := range m.Samples {
		if _, err := s.Tag(); err != nil {
			return fmt.Errorf("sample %d (%s): %w", i, s.Name, err)
		}
	}
	return nil
}

// Tag returns the tag a boxed sample must classify as.
func (s Sample) Tag() (vm.Tag, error) {
	switch s.Kind {
	case KindFloat:
		return vm.TagFloat, nil
	case KindSigned:
		return vm.TagInt, nil
	case KindUnsigned:
		return vm.TagUint, nil
	case KindPointer:
		return vm.TagPointer, nil
	default:
		return 0, fmt.Errorf("unknown kind %q", s.Kind)
	}
}

// Box parses the sample's value and boxes it. Integers accept 0x, 0o and
// 0b prefixes. With strict set, values that do not fit the 48-bit payload
// are rejected instead of masked.
func (s Sample) Box(strict bool) (vm.Value, error) {
	v, err := s.box(strict)
	if err != nil {
		return 0, fmt.Errorf("sample %s: %w", s.Name, err)
	}
	return v, nil
}

func (s Sample) box(strict bool) (vm.Value, error) {
	switch s.Kind {
	case KindFloat:
		f, err := strconv.ParseFloat(s.Value, 64)
		if err != nil {
			return 0, err
		}
		return vm.FromFloat64(f), nil

	case KindSigned:
		n, err := strconv.ParseInt(s.Value, 0, 64)
		if err != nil {
			return 0, err
		}
		if strict {
			return vm.TryFromInt64(n)
		}
		return vm.FromInt64(n), nil

	case KindUnsigned:
		n, err := strconv.ParseUint(s.Value, 0, 64)
		if err != nil {
			return 0, err
		}
		if strict {
			return vm.TryFromUint64(n)
		}
		return vm.FromUint64(n), nil

	case KindPointer:
		addr, err := strconv.ParseUint(s.Value, 0, 64)
		if err != nil {
			return 0, err
		}
		if strict {
			return vm.TryFromPointer(addr)
		}
		return vm.FromPointer(addr), nil

	default:
		return 0, fmt.Errorf("unknown kind %q", s.Kind)
	}
}
