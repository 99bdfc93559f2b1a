package spantable

import (
	"io"
	"iter"
	"slices"
)

// AddSeq appends every row seq yields.
func (t *Table) AddSeq(seq iter.Seq[[]Cell]) *Table {
	for row := range seq {
		t.AddRow(row...)
	}
	return t
}

// FromSeq is FromItems over an iterator. The table needs every row for
// layout, so the sequence is drained first.
func FromSeq[T any](seq iter.Seq[T]) (*Table, error) {
	return FromItems(slices.Collect(seq)...)
}

// FromChan is FromItems over a channel. It returns once ch is closed.
func FromChan[T any](ch <-chan T) (*Table, error) {
	return FromSeq(chanToIter(ch))
}

// WriteIter builds a table from seq and writes it to w in format f.
func WriteIter[T any](w io.Writer, f Format, seq iter.Seq[T]) error {
	t, err := FromSeq(seq)
	if err != nil {
		return err
	}
	return Write(w, f, t)
}

// WriteChan builds a table from ch and writes it to w in format f.
// It is a thin wrapper around [WriteIter].
func WriteChan[T any](w io.Writer, f Format, ch <-chan T) error {
	return WriteIter(w, f, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
