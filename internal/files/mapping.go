package files

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Variable is an entry of a mapping file.
type Variable struct {
	Name string `yaml:"name"`
	ID   int    `yaml:"id"`
}

// SortedMapping returns the entries of m sorted by ID.
func SortedMapping(m map[string]int) []Variable {
	vars := make([]Variable, 0, len(m))
	for name, id := range m {
		vars = append(vars, Variable{Name: name, ID: id})
	}
	sort.Slice(vars, func(i, j int) bool {
		return vars[i].ID < vars[j].ID
	})
	return vars
}

// WriteMapping writes the name to ID mapping m as a YAML list ordered by ID.
func WriteMapping(filename string, m map[string]int) error {
	data, err := yaml.Marshal(SortedMapping(m))
	if err != nil {
		return errors.Wrap(err, "could not encode mapping")
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return errors.Wrapf(err, "could not write mapping %q", filename)
	}
	return nil
}
