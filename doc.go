// Package spantable renders tables with merged cells as fixed-width text.
//
// A [Table] holds an optional header row, logical body rows of [Cell]
// values and per-column [Column] settings. Cells may span several columns
// ([Cell.WithColspan]) and several rows ([Cell.WithRowspan]); a row placed
// below a rowspan simply supplies fewer cells:
//
//	t := spantable.New().
//		SetHeaderStrings("Region", "Q1", "Q2").
//		AddRow(spantable.NewCell("EU").WithRowspan(2), spantable.NewCell("10"), spantable.NewCell("12")).
//		AddStrings("14", "9").
//		AddRow(spantable.NewCell("total").WithColspan(3))
//	fmt.Println(t)
//
// # Layout
//
// Rendering runs in passes: the logical rows are resolved into a physical
// occupancy grid, column widths are arranged under the target width,
// every cell is wrapped to its effective width, row heights are derived
// from the wrapped content, and finally every line is composed with the
// border glyphs of the table's [Preset].
//
// Without a target width, columns take their natural (unwrapped) width.
// With one, set via [Table.SetWidth] or [Table.SetWidthSource] (for example
// [TerminalWidth]), [ArrangeAuto] makes the table exactly that wide as far
// as the column [Constraint] values allow.
//
// # Errors and warnings
//
// Structural problems stop the render: [*OverlapError], [*TooManyCellsError]
// and [*PartialRowError]. Recoverable problems are reported in
// [Result.Warnings]: [*BudgetExceededWarning] when the table cannot fit the
// target width, [*WrapWarning] when a cell has no room for its content.
// Every error unwraps to a sentinel usable with [errors.Is].
//
// # Styled text
//
// Cell content may carry ANSI escape sequences. The default [ANSI]
// [Measurer] measures them as zero-width and never splits them, so colors
// survive wrapping. Use [Plain] for text that contains no escapes.
//
// # Other formats
//
// [Write] and [Marshal] render a table as [Text], [Markdown], [CSV], [TSV]
// or [HTML], or serialize its [Definition] as [JSON] or [YAML]:
//
//	spantable.Write(os.Stdout, spantable.HTML, t)
//
// Definitions are read back with [LoadDefinition] and [ParseDefinition],
// which also accept TOML.
//
// # Items
//
// [FromItems] builds a table from any values implementing [Rower] or
// [Celled]. Optional interfaces ([Headed], [Aligned], [Bordered],
// [Spanned], [Constrained]) refine the result.
package spantable
