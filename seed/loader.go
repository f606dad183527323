package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

/* Loader reads a catalog fixture from seed.yaml
 * A loaded fixture is always valid
 */
type Loader struct {
	fixture *Fixture
}

// NewLoader creates a new fixture loader
func NewLoader() *Loader {
	return &Loader{
		fixture: &Fixture{},
	}
}

// Load reads, parses and validates the fixture file
func (l *Loader) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading seed file: %w", err)
	}
	return l.Parse(data)
}

func (l *Loader) Parse(data []byte) error {
	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return fmt.Errorf("parsing seed YAML: %w", err)
	}
	if err := fixture.Validate(); err != nil {
		return fmt.Errorf("validating seed: %w", err)
	}
	l.fixture = &fixture
	return nil
}

// Fixture returns the last successfully loaded fixture
func (l *Loader) Fixture() *Fixture {
	return l.fixture
}
