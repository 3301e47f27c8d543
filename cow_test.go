package richtext

import "testing"

func taggedSection() Section[labels] {
	return EmptySection[labels]().
		WithScreenPosition(10, 20).
		AddText(NewTextWith("word", labels{tags: []string{"hud"}}))
}

func TestBorrowedSharesTarget(t *testing.T) {
	s := taggedSection()
	ref := Borrowed(&s)

	if ref.IsOwned() {
		t.Error("Borrowed ref reports IsOwned")
	}
	if ref.Section() != &s {
		t.Error("Borrowed ref does not point at the target")
	}
}

func TestOwnedCarriesValue(t *testing.T) {
	ref := Owned(taggedSection())
	if !ref.IsOwned() {
		t.Error("Owned ref reports borrowed")
	}
	want := taggedSection()
	if !ref.Section().Equal(&want) {
		t.Errorf("owned Section() = %+v", ref.Section())
	}
}

// The zero ref owns an empty section; it must be usable, not a trap.
func TestZeroSectionRef(t *testing.T) {
	var ref SectionRef[Extra]
	if !ref.IsOwned() {
		t.Error("zero ref reports borrowed")
	}
	if ref.Section() == nil {
		t.Fatal("zero ref Section() = nil")
	}
	if got := ref.ToOwned(); len(got.Text) != 0 {
		t.Errorf("zero ref ToOwned() has runs: %+v", got.Text)
	}
}

// Borrow, take ownership, compare: equality and every hash stream must
// survive the round trip.
func TestToOwnedRoundTripPreservesIdentity(t *testing.T) {
	s := taggedSection()
	ref := Borrowed(&s)
	owned := ref.ToOwned()

	if !owned.Equal(&s) {
		t.Fatal("ToOwned() result is not Equal to the borrowed target")
	}
	ho, hs := owned.Hashes(), s.Hashes()
	if ho != hs {
		t.Errorf("hash streams diverged across ToOwned: %+v vs %+v", ho, hs)
	}
}

// ToOwned on a borrowed ref must deep-copy: mutating the copy cannot
// reach the borrowed target.
func TestToOwnedDecouplesFromTarget(t *testing.T) {
	s := taggedSection()
	ref := Borrowed(&s)
	owned := ref.ToOwned()

	owned.Text[0].Extra.tags[0] = "menu"
	if s.Text[0].Extra.tags[0] != "hud" {
		t.Error("mutating the owned copy changed the borrowed target")
	}

	owned.Text[0] = owned.Text[0].WithContent("other")
	if s.Text[0].Content != "word" {
		t.Error("replacing a run in the owned copy changed the borrowed target")
	}
}

func TestBorrowedNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Borrowed(nil) did not panic")
		}
	}()
	Borrowed[Extra](nil)
}
