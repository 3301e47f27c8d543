package richtext

import (
	"math"
	"testing"
)

func TestNewSectionDefaults(t *testing.T) {
	s := NewSection()
	if s.ScreenPosition != (Point{}) {
		t.Errorf("ScreenPosition = %+v, want origin", s.ScreenPosition)
	}
	if !math.IsInf(float64(s.Bounds.W), 1) || !math.IsInf(float64(s.Bounds.H), 1) {
		t.Errorf("Bounds = %+v, want unbounded", s.Bounds)
	}
	if s.Layout != DefaultLayout() {
		t.Errorf("Layout = %+v, want default", s.Layout)
	}
	if len(s.Text) != 0 {
		t.Errorf("Text has %d runs, want 0", len(s.Text))
	}
}

func TestSectionBuilders(t *testing.T) {
	base := NewSection()
	s := base.
		WithScreenPosition(10, 20).
		WithBounds(300, 100).
		WithLayout(SingleLineLayout()).
		AddText(NewText("a")).
		AddText(NewText("b"))

	if s.ScreenPosition != (Point{X: 10, Y: 20}) {
		t.Errorf("ScreenPosition = %+v", s.ScreenPosition)
	}
	if s.Bounds != (Size{W: 300, H: 100}) {
		t.Errorf("Bounds = %+v", s.Bounds)
	}
	if !s.Layout.SingleLine {
		t.Error("Layout.SingleLine = false, want true")
	}
	if len(s.Text) != 2 || s.Text[0].Content != "a" || s.Text[1].Content != "b" {
		t.Errorf("Text = %+v", s.Text)
	}

	// Receiver is untouched.
	if len(base.Text) != 0 || base.ScreenPosition != (Point{}) {
		t.Errorf("receiver mutated by builders: %+v", base)
	}
}

// Two sections extended from one prefix must not share run storage.
func TestAddTextDoesNotAliasPrefix(t *testing.T) {
	prefix := NewSection().AddText(NewText("shared"))

	s1 := prefix.AddText(NewText("one"))
	s2 := prefix.AddText(NewText("two"))

	if got := s1.Text[1].Content; got != "one" {
		t.Errorf("s1.Text[1] = %q, want %q", got, "one")
	}
	if got := s2.Text[1].Content; got != "two" {
		t.Errorf("s2.Text[1] = %q, want %q", got, "two")
	}
	if len(prefix.Text) != 1 {
		t.Errorf("prefix grew to %d runs", len(prefix.Text))
	}
}

func TestWithTextSwapsPayloadType(t *testing.T) {
	styled := NewSection().
		WithScreenPosition(5, 6).
		WithBounds(70, 80).
		WithLayout(SingleLineLayout()).
		AddText(NewText("old"))

	tagged := WithText(styled, []Text[labels]{
		NewTextWith("new", labels{tags: []string{"ui"}}),
	})

	if tagged.ScreenPosition != styled.ScreenPosition || tagged.Bounds != styled.Bounds || tagged.Layout != styled.Layout {
		t.Errorf("WithText changed geometry or layout: %+v", tagged)
	}
	if len(tagged.Text) != 1 || tagged.Text[0].Content != "new" {
		t.Errorf("WithText runs = %+v", tagged.Text)
	}
}

func TestSectionGeometry(t *testing.T) {
	s := NewSection().WithScreenPosition(1, 2).WithBounds(3, 4)
	got := s.Geometry()
	want := SectionGeometry{ScreenPosition: Point{X: 1, Y: 2}, Bounds: Size{W: 3, H: 4}}
	if got != want {
		t.Errorf("Geometry() = %+v, want %+v", got, want)
	}
}

func TestSectionEqual(t *testing.T) {
	base := func() Section[Extra] {
		return NewSection().
			WithScreenPosition(1, 2).
			AddText(NewText("a")).
			AddText(NewText("b", WithColor(RGB(0, 1, 0))))
	}

	tests := []struct {
		name   string
		mutate func(Section[Extra]) Section[Extra]
		want   bool
	}{
		{"identical", func(s Section[Extra]) Section[Extra] { return s }, true},
		{"moved", func(s Section[Extra]) Section[Extra] { return s.WithScreenPosition(9, 9) }, false},
		{"rebounded", func(s Section[Extra]) Section[Extra] { return s.WithBounds(10, 10) }, false},
		{"relaid", func(s Section[Extra]) Section[Extra] { return s.WithLayout(SingleLineLayout()) }, false},
		{"extended", func(s Section[Extra]) Section[Extra] { return s.AddText(NewText("c")) }, false},
		{"restyled", func(s Section[Extra]) Section[Extra] {
			s.Text = append([]Text[Extra](nil), s.Text...)
			s.Text[1] = WithExtra(s.Text[1], Extra{Color: RGB(1, 0, 0)})
			return s
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := base()
			b := tt.mutate(base())
			if got := a.Equal(&b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

// NaN anywhere makes a section unequal to itself, like float NaN. The
// canonical hash still matches; only == semantics are affected.
func TestSectionEqualNaN(t *testing.T) {
	nan := float32(math.NaN())
	s := NewSection().WithScreenPosition(nan, 0)
	if s.Equal(&s) {
		t.Error("section with NaN position compares equal to itself")
	}
	if s.Hash() != s.Hash() {
		t.Error("section with NaN position hashes unstably")
	}
}

func TestSectionCloneIndependence(t *testing.T) {
	orig := EmptySection[labels]().
		AddText(NewTextWith("a", labels{tags: []string{"x"}}))

	cp := orig.Clone()
	if !cp.Equal(&orig) {
		t.Fatal("clone is not Equal to the original")
	}
	if cp.Hash() != orig.Hash() {
		t.Error("clone hash differs from the original")
	}

	// Neither the run slice nor the payloads may be shared.
	cp.Text[0] = cp.Text[0].WithContent("b")
	if orig.Text[0].Content != "a" {
		t.Error("replacing a cloned run changed the original")
	}
	cp2 := orig.Clone()
	cp2.Text[0].Extra.tags[0] = "y"
	if orig.Text[0].Extra.tags[0] != "x" {
		t.Error("mutating a cloned payload changed the original")
	}
}

func TestSectionCloneEmpty(t *testing.T) {
	s := NewSection()
	cp := s.Clone()
	if !cp.Equal(&s) {
		t.Error("clone of an empty section is not Equal to it")
	}
	if cp.Text != nil {
		t.Errorf("clone of an empty section has runs: %+v", cp.Text)
	}
}

func TestCloneExtras(t *testing.T) {
	s := EmptySection[labels]().
		AddText(NewTextWith("a", labels{tags: []string{"x"}})).
		AddText(NewTextWith("b", labels{tags: []string{"y"}}))

	extras := s.CloneExtras()
	if len(extras) != 2 || extras[0].tags[0] != "x" || extras[1].tags[0] != "y" {
		t.Fatalf("CloneExtras() = %+v", extras)
	}

	extras[0].tags[0] = "z"
	if s.Text[0].Extra.tags[0] != "x" {
		t.Error("mutating cloned extras changed the section")
	}

	empty := NewSection()
	if got := empty.CloneExtras(); got != nil {
		t.Errorf("CloneExtras() on empty section = %+v, want nil", got)
	}
}
