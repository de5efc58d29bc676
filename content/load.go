package content

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// Load reads records in the YAML layout written by Marshal and validates
// them. Unknown keys are rejected.
func Load(r io.Reader) (*Store, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("content: read: %w", err)
	}
	var d Data
	if err := yaml.UnmarshalStrict(b, &d); err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}
	s := New(d)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadFile is Load for a file path.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Marshal renders the whole store, or a single section when name is not
// empty, as YAML.
func (s *Store) Marshal(name string) ([]byte, error) {
	if name == "" {
		return yaml.Marshal(s.Data())
	}
	if name == "profile" {
		return yaml.Marshal(s.Profile())
	}
	records, err := s.Section(name)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(records)
}
