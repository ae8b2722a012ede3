package rtf

import "testing"

func TestFontSet(t *testing.T) {
	body := []byte(`{\fonttbl{\f1\froman\fprq2\fcharset0 SimSun;}{\f2\fnil\fcharset0 Arial;}{\f3\fswiss\fcharset0 Helvetica;}}`)
	fonts := FontSet(body)
	want := []string{"f1", "f2", "f3"}
	if len(fonts) != len(want) {
		t.Fatalf("got %d fonts, want %d: %v", len(fonts), len(want), fonts)
	}
	for _, w := range want {
		if _, ok := fonts[w]; !ok {
			t.Errorf("missing font code %q", w)
		}
	}
}

func TestFontSetMissingFontTbl(t *testing.T) {
	fonts := FontSet([]byte(`\widowctrl some content with no font table`))
	if len(fonts) != 0 {
		t.Errorf("expected empty set, got %v", fonts)
	}
}

func TestFontCode(t *testing.T) {
	source := []byte(`{\f1\froman\fprq2\fcharset0 SimSun;}`)
	code, ok := fontCode(source)
	if !ok || code != "f1" {
		t.Errorf("got (%q, %v), want (\"f1\", true)", code, ok)
	}
}
