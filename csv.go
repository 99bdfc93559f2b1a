package spantable

import (
	"encoding/csv"
	"io"
)

// writeCSV writes one record per physical row. Span continuations are
// empty fields so every record has the same number of fields.
func writeCSV(w io.Writer, t *Table) error {
	rows, _, err := t.flatten()
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	for _, row := range rows {
		if err := cw.Write(texts(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
