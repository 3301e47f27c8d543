package richtext

import "testing"

func TestNewTextDefaults(t *testing.T) {
	run := NewText("hello")
	if run.Content != "hello" {
		t.Errorf("Content = %q, want %q", run.Content, "hello")
	}
	if run.Scale != Scale(DefaultScale) {
		t.Errorf("Scale = %+v, want uniform %d", run.Scale, DefaultScale)
	}
	if run.Font != 0 {
		t.Errorf("Font = %d, want 0", run.Font)
	}
	if !run.Extra.Equal(DefaultExtra()) {
		t.Errorf("Extra = %+v, want %+v", run.Extra, DefaultExtra())
	}
}

func TestNewTextOptions(t *testing.T) {
	run := NewText("x",
		WithColor(RGB(1, 0, 0)),
		WithOutlineColor(RGBA(0, 0, 0, 0.5)),
		WithDepth(0.75),
	)
	want := Extra{Color: RGB(1, 0, 0), OutlineColor: RGBA(0, 0, 0, 0.5), Depth: 0.75}
	if !run.Extra.Equal(want) {
		t.Errorf("Extra = %+v, want %+v", run.Extra, want)
	}
}

func TestNewTextWith(t *testing.T) {
	run := NewTextWith("tagged", labels{tags: []string{"ui"}})
	if run.Content != "tagged" {
		t.Errorf("Content = %q, want %q", run.Content, "tagged")
	}
	if run.Scale != Scale(DefaultScale) {
		t.Errorf("Scale = %+v, want uniform %d", run.Scale, DefaultScale)
	}
	if len(run.Extra.tags) != 1 || run.Extra.tags[0] != "ui" {
		t.Errorf("Extra = %+v, want tags [ui]", run.Extra)
	}
}

func TestTextBuilders(t *testing.T) {
	base := NewText("base")

	got := base.
		WithContent("edited").
		WithScaleXY(20, 10).
		WithFont(2)
	if got.Content != "edited" || got.Scale != (PxScale{X: 20, Y: 10}) || got.Font != 2 {
		t.Errorf("built run = %+v", got)
	}

	if got := base.WithScale(32); got.Scale != (PxScale{X: 32, Y: 32}) {
		t.Errorf("WithScale(32).Scale = %+v, want uniform 32", got.Scale)
	}

	// Builders return copies; the receiver stays as constructed.
	if base.Content != "base" || base.Scale != Scale(DefaultScale) || base.Font != 0 {
		t.Errorf("receiver mutated by builders: %+v", base)
	}
}

func TestTextEqual(t *testing.T) {
	base := NewText("word", WithColor(RGB(1, 0, 0)))
	tests := []struct {
		name  string
		other Text[Extra]
		want  bool
	}{
		{"identical", NewText("word", WithColor(RGB(1, 0, 0))), true},
		{"different content", NewText("other", WithColor(RGB(1, 0, 0))), false},
		{"different scale", NewText("word", WithColor(RGB(1, 0, 0))).WithScale(24), false},
		{"different font", NewText("word", WithColor(RGB(1, 0, 0))).WithFont(1), false},
		{"different extra", NewText("word", WithColor(RGB(0, 0, 1))), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

// WithExtra re-types the run while keeping content, scale, and font.
func TestWithExtraChangesPayloadType(t *testing.T) {
	styled := NewText("word", WithColor(RGB(1, 0, 0))).WithScale(24).WithFont(3)
	tagged := WithExtra(styled, labels{tags: []string{"hud"}})

	if tagged.Content != styled.Content || tagged.Scale != styled.Scale || tagged.Font != styled.Font {
		t.Errorf("WithExtra changed shaping fields: %+v", tagged)
	}
	if len(tagged.Extra.tags) != 1 || tagged.Extra.tags[0] != "hud" {
		t.Errorf("WithExtra payload = %+v, want tags [hud]", tagged.Extra)
	}
}

// The text-stream hash must not change when only the payload type or
// value changes; SectionText is the same projection as a value.
func TestSectionTextProjection(t *testing.T) {
	run := NewText("word").WithScale(24).WithFont(3)
	got := run.SectionText()
	want := SectionText{Content: "word", Scale: PxScale{X: 24, Y: 24}, Font: 3}
	if got != want {
		t.Errorf("SectionText() = %+v, want %+v", got, want)
	}

	tagged := WithExtra(run, labels{tags: []string{"hud"}})
	if tagged.SectionText() != want {
		t.Errorf("projection changed across payload swap: %+v", tagged.SectionText())
	}
}

func TestTextCloneIndependentPayload(t *testing.T) {
	orig := NewTextWith("word", labels{tags: []string{"a"}})
	cp := orig.Clone()
	cp.Extra.tags[0] = "b"
	if orig.Extra.tags[0] != "a" {
		t.Error("mutating a cloned run's payload changed the original")
	}
}
