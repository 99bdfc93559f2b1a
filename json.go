package spantable

import (
	"encoding/json"
	"io"
)

// writeJSON writes the table's Definition, indented by two spaces.
func writeJSON(w io.Writer, t *Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t.Definition())
}
