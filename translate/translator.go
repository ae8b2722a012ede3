// Package translate implements the external collaborator rtf.CellTranslator
// expects: a per-run cache, the fixed line-classification rules this
// pipeline's source documents rely on, and an HTTP backend for everything
// that classification doesn't resolve locally.
package translate

import (
	"strconv"
	"strings"
	"sync"

	"github.com/cdvelop/rtftranslate/errs"
)

// Backend is the network collaborator a Translator falls back to once its
// cache and classification rules are exhausted.
type Backend interface {
	Translate(source string) (string, error)
}

// ErrorSink receives a non-fatal error encountered while translating a
// single line or footnote. A Translator has no way to fail a translation
// outright (rtf.CellTranslator's methods return only a string), so
// backend failures are reported here and the original source text is
// used as the translation.
type ErrorSink func(err error)

// Translator implements rtf.CellTranslator. It is safe for concurrent use;
// the cache is shared and protected by a mutex so a single Translator can
// back several Sunderer.Translate calls from worker.Worker's goroutines.
type Translator struct {
	mu      sync.Mutex
	cache   map[string]string
	backend Backend
	onError ErrorSink
}

// New returns a Translator backed by backend, with its cache pre-seeded
// with the organization-name translations and page-footer boilerplate this
// pipeline's source documents always carry. onError may be nil, in which
// case backend failures are silently absorbed and the source text passes
// through untranslated.
func New(backend Backend, onError ErrorSink) *Translator {
	t := &Translator{
		cache:   make(map[string]string),
		backend: backend,
		onError: onError,
	}
	t.cache["中山康方生物医药有限公司"] = "Akesobio"
	t.cache["康方赛诺医药有限公司"] = "Akesobio"
	t.cache[`第 {\field{\*\fldinst { PAGE }}} 页 共 {\field{\*\fldinst { NUMPAGES }}} 页`] = "Page Of "
	return t
}

// protocolNumberPrefix is the fullwidth-colon-terminated prefix a protocol
// number line always opens with. Built from code points rather than a
// literal run to keep the two fullwidth/ASCII colon glyphs unambiguous in
// source review.
var protocolNumberPrefix = string([]rune{0x65B9, 0x6848, 0x7F16, 0x53F7, 0xFF1A})

// TranslateLine classifies and translates a single pre-trimmed source line,
// memoizing every result it computes (including backend calls) so repeated
// lines across a document - or across documents sharing this Translator -
// cost one backend round trip at most.
func (t *Translator) TranslateLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}

	t.mu.Lock()
	if cached, ok := t.cache[trimmed]; ok {
		t.mu.Unlock()
		return cached
	}
	t.mu.Unlock()

	var result string
	switch {
	case !ContainsNonASCII(trimmed):
		result = trimmed
	case strings.HasPrefix(trimmed, protocolNumberPrefix):
		result = "Protocol: " + strings.TrimPrefix(trimmed, protocolNumberPrefix)
	default:
		translated, err := t.backend.Translate(trimmed)
		if err != nil {
			t.reportError(errs.New(errs.BackendFailure, err))
			result = trimmed
		} else {
			result = translated
		}
	}

	t.mu.Lock()
	t.cache[trimmed] = result
	t.mu.Unlock()
	return result
}

// rtfUnicodeEscape builds the raw, undecoded `\uc0\u<code>` control pair,
// the notation the four footnote boilerplate runs below carry in a
// footnote's raw bytes (footnotes are never run through DecodeUnicode).
func rtfUnicodeEscape(code int) string {
	return unicodeEscapePrefix + strconv.Itoa(code)
}

const unicodeEscapePrefix = `\uc0\u`

// footnoteReplacements are the fixed boilerplate substitutions every
// footnote in this pipeline's source documents needs; none of them require
// a backend call. Each left side is a sequence of RTF Unicode-escaped
// characters (date/source/comma/output labels in the source language)
// joined exactly as they appear between a footnote's fixed markers.
var footnoteReplacements = []struct{ from, to string }{
	{rtfUnicodeEscape(26085) + " " + rtfUnicodeEscape(26399) + " " + rtfUnicodeEscape(65306), "Date:"},
	{rtfUnicodeEscape(26469) + " " + rtfUnicodeEscape(28304) + " " + rtfUnicodeEscape(65306), "Source:"},
	{rtfUnicodeEscape(65292), ", "},
	{rtfUnicodeEscape(36755) + " " + rtfUnicodeEscape(20986), "Output"},
}

// TranslateFootnote rewrites a footnote's fixed boilerplate control-word
// runs in place; the surrounding RTF structure is left untouched.
func (t *Translator) TranslateFootnote(footnote string) string {
	out := footnote
	for _, r := range footnoteReplacements {
		out = strings.ReplaceAll(out, r.from, r.to)
	}
	return out
}

func (t *Translator) reportError(err error) {
	if t.onError != nil {
		t.onError(err)
	}
}

// ContainsNonASCII reports whether source carries any rune above U+007F
// (outside ASCII), the same heuristic this pipeline's source uses to
// decide whether a line needs translation at all, and the test worker uses
// to decide whether a harvested term belongs in the cross-file term set.
func ContainsNonASCII(source string) bool {
	for _, r := range source {
		if r > 0x7F {
			return true
		}
	}
	return false
}
