package spantable

import (
	"io"

	"gopkg.in/yaml.v3"
)

// writeYAML writes the table's Definition.
func writeYAML(w io.Writer, t *Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t.Definition()); err != nil {
		return err
	}
	return enc.Close()
}
