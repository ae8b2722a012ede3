package rtf

import (
	"bufio"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/cdvelop/rtftranslate/errs"
)

// CellTranslator is the external translation backend collaborator described
// in spec.md §6.1. The rtf package only consumes it; it never constructs
// one, which keeps this package free of any dependency on the HTTP/LLM
// backend implementation living in package translate.
type CellTranslator interface {
	// TranslateLine classifies and translates a single pre-trimmed source line.
	TranslateLine(line string) string
	// TranslateFootnote applies the fixed boilerplate rewrites to a footnote's raw text.
	TranslateFootnote(footnote string) string
}

// Sunderer walks an RTF document, identifies translatable cells and
// footnotes keyed by font, and emits a placeholder template alongside an
// indexed CellSet.
type Sunderer struct {
	bytes []byte
	cells *CellSet
}

// NewSunderer wraps the immutable byte buffer of an RTF document.
func NewSunderer(source []byte) *Sunderer {
	return &Sunderer{bytes: source, cells: NewCellSet()}
}

// Cells returns the CellSet populated by Split.
func (s *Sunderer) Cells() *CellSet {
	return s.cells
}

// Split walks the document (§4.5) and writes a byte-exact copy of it to
// templatePath, with every general-cell group and footnote region replaced
// by an ASCII `{#ID#}` placeholder. It returns the populated CellSet.
func (s *Sunderer) Split(templatePath string) (*CellSet, error) {
	tmpl, err := newTemplateWriter(templatePath)
	if err != nil {
		return nil, errs.New(errs.IOFailure, err)
	}
	defer tmpl.Close()

	fontCodes := FontSet(s.bytes)

	wcStart, _, ok := PatternPosition(WidowCtrl, s.bytes, 0)
	if !ok {
		return nil, errs.New(errs.MalformedInput, `missing \widowctrl`)
	}
	iter := NewControlWordIterator(s.bytes, wcStart)

	contentStart := 0
	var lastGroupEnd int
	haveLastGroup := false

	emitFootnote := func(rangeStart, rangeEnd int) error {
		fs, fe, ok := FootnotePosition(s.bytes, rangeStart, rangeEnd)
		if !ok {
			return nil
		}
		id := s.cells.Add(Cell{IsFootnote: true, Footnote: string(s.bytes[fs:fe])})
		if err := tmpl.Push(s.bytes[contentStart:fs]); err != nil {
			return err
		}
		if err := tmpl.Placeholder(id); err != nil {
			return err
		}
		contentStart = fe
		return nil
	}

	for !iter.IsDrained() {
		start, end, ok := iter.Next()
		if !ok {
			iter.CursorMoveOneStep()
			continue
		}

		name := string(s.bytes[start+1 : end])
		if _, known := fontCodes[name]; !known {
			continue
		}

		groupStart, groupEnd, ok := GroupPosition(s.bytes, end, len(s.bytes))
		if !ok {
			return nil, errs.New(errs.MalformedInput, "unterminated cell group")
		}

		if haveLastGroup {
			if err := emitFootnote(lastGroupEnd, groupStart); err != nil {
				return nil, errs.New(errs.IOFailure, err)
			}
		}

		payload := s.bytes[groupStart+1 : groupEnd-1]
		if !utf8.Valid(payload) {
			return nil, errs.New(errs.EncodingError, "cell \\"+name)
		}
		content := Normalize(string(payload))
		id := s.cells.Add(Cell{General: NewGeneralCell(content)})

		if err := tmpl.Push(s.bytes[contentStart:groupStart]); err != nil {
			return nil, errs.New(errs.IOFailure, err)
		}
		if err := tmpl.Placeholder(id); err != nil {
			return nil, errs.New(errs.IOFailure, err)
		}
		contentStart = groupEnd

		iter.SetCursor(groupEnd)
		lastGroupEnd = groupEnd
		haveLastGroup = true
	}

	if haveLastGroup {
		if err := emitFootnote(lastGroupEnd, len(s.bytes)); err != nil {
			return nil, errs.New(errs.IOFailure, err)
		}
	}

	if err := tmpl.Push(s.bytes[contentStart:]); err != nil {
		return nil, errs.New(errs.IOFailure, err)
	}
	if err := tmpl.Flush(); err != nil {
		return nil, errs.New(errs.IOFailure, err)
	}

	return s.cells, nil
}

// Translate passes every cell in document order through t and writes the
// result back, with no concurrency and in deterministic order.
func (s *Sunderer) Translate(t CellTranslator) error {
	n := s.cells.Size()
	for id := 0; id < n; id++ {
		cell, ok := s.cells.Find(id)
		if !ok {
			continue
		}
		if cell.IsFootnote {
			cell.Footnote = t.TranslateFootnote(cell.Footnote)
		} else {
			translated := make([]string, len(cell.General.Lines))
			for i, line := range cell.General.Lines {
				translated[i] = t.TranslateLine(line)
			}
			cell.General.TranslatedLines = translated
		}
		s.cells.Update(id, cell)
	}
	return nil
}

// templateWriter streams the template to disk, mirroring the buffered
// writer this pipeline's original template generator used.
type templateWriter struct {
	f *os.File
	w *bufio.Writer
}

func newTemplateWriter(path string) (*templateWriter, error) {
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return nil, err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &templateWriter{f: f, w: bufio.NewWriter(f)}, nil
}

func (t *templateWriter) Push(b []byte) error {
	_, err := t.w.Write(b)
	return err
}

func (t *templateWriter) Placeholder(id int) error {
	_, err := t.w.WriteString("{#" + strconv.Itoa(id) + "#}")
	return err
}

func (t *templateWriter) Flush() error {
	return t.w.Flush()
}

func (t *templateWriter) Close() error {
	return t.f.Close()
}
