package plugin

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrManifestNotFound indicates the manifest file does not exist.
	ErrManifestNotFound = errors.New("manifest not found")

	// ErrInvalidManifest indicates the manifest could not be parsed or
	// fails structural validation.
	ErrInvalidManifest = errors.New("invalid manifest")
)

// Load reads and parses a rules manifest from path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse parses manifest bytes and validates the result.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// validate checks structural requirements that the YAML schema cannot express.
func (m *Manifest) validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: plugin name is required", ErrInvalidManifest)
	}

	for name := range m.Rules {
		if name == "" {
			return fmt.Errorf("%w: empty rule name", ErrInvalidManifest)
		}
	}
	for name := range m.Configs {
		if name == "" {
			return fmt.Errorf("%w: empty config name", ErrInvalidManifest)
		}
	}

	return nil
}
