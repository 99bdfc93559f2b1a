package spantable

import (
	"fmt"
	"io"
	"strings"
)

var tsvEscaper = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ")

func writeTSV(w io.Writer, t *Table) error {
	rows, _, err := t.flatten()
	if err != nil {
		return err
	}
	for _, row := range rows {
		fields := texts(row)
		for i, f := range fields {
			fields[i] = tsvEscaper.Replace(f)
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	return nil
}
