package spantable

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

// failingWriter accepts the first n writes and fails every later one.
type failingWriter struct {
	n int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, errInternalWrite
	}
	f.n--
	return len(p), nil
}

func spanningTable() *Table {
	return New().
		SetHeaderStrings("H1", "H2", "H3").
		AddRow(NewCell("AB").WithColspan(2), NewCell("C")).
		AddRow(NewCell("X").WithRowspan(2), NewCell("y"), NewCell("z")).
		AddStrings("v", "w")
}

func TestWritersPropagateErrors(t *testing.T) {
	t.Parallel()
	writers := map[string]func(*failingWriter, *Table) error{
		"text":     func(w *failingWriter, t *Table) error { return writeText(w, t) },
		"csv":      func(w *failingWriter, t *Table) error { return writeCSV(w, t) },
		"tsv":      func(w *failingWriter, t *Table) error { return writeTSV(w, t) },
		"markdown": func(w *failingWriter, t *Table) error { return writeMarkdown(w, t) },
		"html":     func(w *failingWriter, t *Table) error { return writeHTML(w, t) },
		"json":     func(w *failingWriter, t *Table) error { return writeJSON(w, t) },
		"yaml":     func(w *failingWriter, t *Table) error { return writeYAML(w, t) },
	}
	for name, write := range writers {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			// count the writes a successful run makes, then fail each one
			counter := &failingWriter{n: 1 << 30}
			require.NoError(t, write(counter, spanningTable()))
			total := 1<<30 - counter.n
			require.Positive(t, total)
			for i := range total {
				err := write(&failingWriter{n: i}, spanningTable())
				if name == "yaml" {
					// the yaml encoder reports write failures as plain text
					assert.ErrorContains(t, err, errInternalWrite.Error())
					continue
				}
				assert.ErrorIs(t, err, errInternalWrite, "write %d of %d", i, total)
			}
		})
	}
}

func TestWriteCSVLargeRecordError(t *testing.T) {
	t.Parallel()
	tbl := New().AddStrings(strings.Repeat("x", 5000))
	assert.ErrorIs(t, writeCSV(&failingWriter{}, tbl), errInternalWrite)
}

func TestWritersRejectMalformedTables(t *testing.T) {
	t.Parallel()
	tbl := New().
		AddRow(NewCell("X").WithRowspan(2), NewCell("a")).
		AddStrings("b", "c")
	for _, f := range Formats() {
		if f == JSON || f == YAML {
			continue
		}
		err := Write(&bytes.Buffer{}, f, tbl)
		assert.ErrorIs(t, err, ErrTooManyCells, "format %s", f)
	}
}

func TestFlatten(t *testing.T) {
	t.Parallel()
	rows, header, err := spanningTable().flatten()
	require.NoError(t, err)
	assert.True(t, header)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"H1", "H2", "H3"}, texts(rows[0]))
	assert.Equal(t, []string{"AB", "", "C"}, texts(rows[1]))
	assert.True(t, rows[1][1].continuation)
	assert.Same(t, rows[1][0].placement, rows[1][1].placement)
	assert.Equal(t, []string{"", "v", "w"}, texts(rows[3]))
	assert.True(t, rows[3][0].continuation)
}

func TestFlattenStripsMarkers(t *testing.T) {
	t.Parallel()
	rows, _, err := New().AddRow(NewCell("\x1b[1m", "bold", "\x1b[0m")).flatten()
	require.NoError(t, err)
	assert.Equal(t, "bold", rows[0][0].text)
}

func TestFlattenEmpty(t *testing.T) {
	t.Parallel()
	rows, header, err := New().flatten()
	require.NoError(t, err)
	assert.False(t, header)
	assert.Empty(t, rows)
}

func TestMarkdownAlignmentMarkers(t *testing.T) {
	t.Parallel()
	tbl := New().SetHeaderStrings("left", "mid", "r").AddStrings("a", "b", "c")
	tbl.Column(1).SetAlign(AlignCenter)
	tbl.Column(2).SetAlign(AlignRight)

	var buf bytes.Buffer
	require.NoError(t, writeMarkdown(&buf, tbl))
	assert.Equal(t, ""+
		"| left | mid |   r |\n"+
		"| ---- | :-: | --: |\n"+
		"| a    |  b  |   c |\n",
		buf.String())
}

func TestMarkdownEscapesPipes(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, writeMarkdown(&buf, New().AddStrings("a|b", "x\ny")))
	assert.Equal(t, ""+
		"|      |        |\n"+
		"| ---- | ------ |\n"+
		"| a\\|b | x<br>y |\n",
		buf.String())
}

func TestSpanAttrs(t *testing.T) {
	t.Parallel()
	assert.Empty(t, spanAttrs(&placement{rowspan: 1, colspan: 1}))
	assert.Equal(t, ` colspan="2" rowspan="3"`, spanAttrs(&placement{rowspan: 3, colspan: 2}))
	assert.Equal(t, ` style="text-align: center"`, alignStyle(AlignCenter))
	assert.Empty(t, alignStyle(AlignLeft))
}
