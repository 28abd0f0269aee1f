package buffer

import "testing"

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})

	b.SetCursor(Pos{Row: 999, GraphemeCol: 999})
	if got := b.Cursor(); got != (Pos{Row: 1, GraphemeCol: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}
	if b.TextVersion() != 0 {
		t.Fatalf("expected text version unchanged, got %d", b.TextVersion())
	}

	b.SetCursor(Pos{Row: 1, GraphemeCol: 2})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
}

func TestBuffer_SetSelection_NormalizesAndMovesCursor(t *testing.T) {
	b := New("a\nbc", Options{})

	b.SetSelection(Range{
		Start: Pos{Row: 1, GraphemeCol: 99},
		End:   Pos{Row: 0, GraphemeCol: -1},
	})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection active")
	}
	want := Range{Start: Pos{}, End: Pos{Row: 1, GraphemeCol: 2}}
	if r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}
	if got := b.Cursor(); got != (Pos{}) {
		t.Fatalf("cursor=%v, want selection end (0,0)", got)
	}

	v := b.Version()
	b.SetSelection(Range{Start: Pos{Row: 1, GraphemeCol: 2}, End: Pos{}})
	if b.Version() != v {
		t.Fatalf("same selection bumped version: %d -> %d", v, b.Version())
	}

	b.ClearSelection()
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
	b.ClearSelection()
	if b.Version() != v+1 {
		t.Fatalf("version=%d, want %d", b.Version(), v+1)
	}
}

func TestBuffer_SetSelection_EmptyPlacesCaret(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(Range{Start: Pos{GraphemeCol: 3}, End: Pos{GraphemeCol: 3}})

	if _, ok := b.Selection(); ok {
		t.Fatalf("empty range must not activate selection")
	}
	if got, want := b.SelectionOrCursor(), (Range{Start: Pos{GraphemeCol: 3}, End: Pos{GraphemeCol: 3}}); got != want {
		t.Fatalf("selection or cursor=%v, want %v", got, want)
	}
}

func TestBuffer_SelectionRaw_PreservesDirection(t *testing.T) {
	b := New("abcd", Options{})
	b.SetSelection(Range{Start: Pos{GraphemeCol: 3}, End: Pos{GraphemeCol: 1}})

	raw, ok := b.SelectionRaw()
	if !ok {
		t.Fatalf("expected raw selection active")
	}
	if want := (Range{Start: Pos{GraphemeCol: 3}, End: Pos{GraphemeCol: 1}}); raw != want {
		t.Fatalf("raw selection=%v, want %v", raw, want)
	}

	norm, _ := b.Selection()
	if want := (Range{Start: Pos{GraphemeCol: 1}, End: Pos{GraphemeCol: 3}}); norm != want {
		t.Fatalf("normalized selection=%v, want %v", norm, want)
	}
}
