// Package rtf implements the byte-level RTF decomposer/recomposer: it locates
// translatable cells and footnotes inside an RTF stream, emits a
// placeholder-annotated template, and later re-inflates that template with
// translated content.
package rtf

// Byte-level symbols the scanner and iterator test against. Kept as named
// bytes rather than inlined so the control-flow in scanner.go and
// controlword.go reads the same way it does in the clinical-report source
// this package was distilled from.
const (
	leftBrace  = '{'
	rightBrace = '}'
	slash      = '\\'
	lf         = '\n'
	cr         = '\r'
)

// FontTbl is the control word that opens an RTF font table, e.g. {\fonttbl{\f1...}}.
var FontTbl = []byte(`\fonttbl`)

// WidowCtrl marks the start of the document body in the clinical-report
// generator's output; content before it is never translatable.
var WidowCtrl = []byte(`\widowctrl`)

// LineToken is the literal RTF token used to represent a line break inside a
// translatable cell; cell content is split on it to produce Lines.
const LineToken = `{\line}`

// CellToken is the RTF control word that closes a table cell.
const CellToken = `\cell`

// footnotePrefix and footnoteTerminator are the empirical markers that
// delimit a footnote fragment in this generator's output. They are tunable
// constants rather than inlined literals per the open question in spec.md §9.
const (
	footnotePrefix     = `\f2\fs`
	footnoteTerminator = `\uc1\cf0\chcbpat0`
)
