package rtf

import "testing"

func TestSplitCellContentStyle(t *testing.T) {
	source := `Some content{\line}more text\brdrb\brdrs\cell`
	content, styles := splitCellContentStyle(source)
	if styles != `\brdrb\brdrs\cell` {
		t.Errorf("styles = %q", styles)
	}
	if content != `Some content{\line}more text` {
		t.Errorf("content = %q", content)
	}
}

func TestSplitCellContentStyleNoSuffix(t *testing.T) {
	source := "plain content, no trailing cell marker"
	content, styles := splitCellContentStyle(source)
	if styles != "" {
		t.Errorf("expected no styles, got %q", styles)
	}
	if content != source {
		t.Errorf("content = %q, want unchanged", content)
	}
}

func TestNewGeneralCell(t *testing.T) {
	content := `first line{\line}second line\cell`
	cell := NewGeneralCell(content)
	want := []string{"first line", "second line"}
	if len(cell.Lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(cell.Lines), len(want), cell.Lines)
	}
	for i, w := range want {
		if cell.Lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, cell.Lines[i], w)
		}
	}
	if cell.Styles != `\cell` {
		t.Errorf("styles = %q", cell.Styles)
	}
}

func TestCellSetAddFindUpdate(t *testing.T) {
	set := NewCellSet()
	id := set.Add(Cell{General: NewGeneralCell(`hello\cell`)})
	if id != 0 {
		t.Fatalf("expected id 0, got %d", id)
	}
	cell, ok := set.Find(id)
	if !ok || cell.General.Lines[0] != "hello" {
		t.Fatalf("unexpected cell: %+v ok=%v", cell, ok)
	}

	cell.General.TranslatedLines = []string{"translated"}
	set.Update(id, cell)

	got, _ := set.Find(id)
	if len(got.General.TranslatedLines) != 1 || got.General.TranslatedLines[0] != "translated" {
		t.Errorf("update not applied: %+v", got)
	}

	if set.Size() != 1 {
		t.Errorf("size = %d, want 1", set.Size())
	}
}

func TestCellSetFindClonesIndependently(t *testing.T) {
	set := NewCellSet()
	id := set.Add(Cell{General: NewGeneralCell(`a\cell`)})

	first, _ := set.Find(id)
	first.General.Lines[0] = "mutated"

	second, _ := set.Find(id)
	if second.General.Lines[0] != "a" {
		t.Errorf("mutation leaked into set: %q", second.General.Lines[0])
	}
}

func TestCellSetTermSetDedupLastWriteWins(t *testing.T) {
	set := NewCellSet()
	c1 := Cell{General: GeneralCell{Lines: []string{"foo", "bar"}, TranslatedLines: []string{"FOO-1", "BAR"}}}
	c2 := Cell{General: GeneralCell{Lines: []string{"foo"}, TranslatedLines: []string{"FOO-2"}}}
	set.Add(c1)
	set.Add(c2)

	terms := set.TermSet()
	if len(terms) != 2 {
		t.Fatalf("got %d terms, want 2: %v", len(terms), terms)
	}
	if terms[0].Source != "foo" || terms[0].Translation != "FOO-2" {
		t.Errorf("foo term = %+v, want last write FOO-2", terms[0])
	}
	if terms[1].Source != "bar" || terms[1].Translation != "BAR" {
		t.Errorf("bar term = %+v", terms[1])
	}
}

func TestCellSetRebuildAppliesOverrides(t *testing.T) {
	set := NewCellSet()
	set.Add(Cell{General: GeneralCell{Lines: []string{"foo"}, TranslatedLines: []string{"FOO"}}})
	set.Add(Cell{IsFootnote: true, Footnote: "footer text"})

	rebuilt := set.Rebuild(map[string]string{"foo": "FOO-OVERRIDE"})

	cell, _ := rebuilt.Find(0)
	if cell.General.TranslatedLines[0] != "FOO-OVERRIDE" {
		t.Errorf("override not applied: %+v", cell)
	}
	footnote, _ := rebuilt.Find(1)
	if footnote.Footnote != "footer text" {
		t.Errorf("footnote cell mutated by rebuild: %+v", footnote)
	}

	original, _ := set.Find(0)
	if original.General.TranslatedLines[0] != "FOO" {
		t.Errorf("Rebuild mutated the receiver: %+v", original)
	}
}

func TestCellSetRebuildEmptyOverridesIsObservablyEqual(t *testing.T) {
	set := NewCellSet()
	set.Add(Cell{General: GeneralCell{Lines: []string{"foo"}, TranslatedLines: []string{"FOO"}}})

	rebuilt := set.Rebuild(map[string]string{})

	want, _ := set.Find(0)
	got, _ := rebuilt.Find(0)
	if got.General.TranslatedLines[0] != want.General.TranslatedLines[0] {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
