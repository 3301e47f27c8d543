package richtext

// SectionRef is a section that is either borrowed (a pointer to a
// caller-owned Section) or owned (a value the ref carries itself). It
// is the copy-on-write building block for APIs that usually read
// sections in place and only occasionally keep them past the call.
//
// The zero value is an owned empty section.
type SectionRef[X Payload[X]] struct {
	borrowed *Section[X] // nil when owned
	owned    Section[X]
}

// Borrowed wraps a caller-owned section without copying anything.
// Panics if s is nil. The target must stay alive and unmodified while
// the ref is in use.
func Borrowed[X Payload[X]](s *Section[X]) SectionRef[X] {
	if s == nil {
		panic("richtext: Borrowed section must not be nil")
	}
	return SectionRef[X]{borrowed: s}
}

// Owned wraps a section the ref carries itself.
func Owned[X Payload[X]](s Section[X]) SectionRef[X] {
	return SectionRef[X]{owned: s}
}

// IsOwned reports whether the ref carries its own section.
func (r *SectionRef[X]) IsOwned() bool {
	return r.borrowed == nil
}

// Section returns the referenced section for reading. Callers must not
// mutate through the returned pointer; take ToOwned for a copy that is
// theirs to keep.
func (r *SectionRef[X]) Section() *Section[X] {
	if r.borrowed != nil {
		return r.borrowed
	}
	return &r.owned
}

// ToOwned returns a section the caller may keep: a deep clone when the
// ref is borrowed, the owned value as is otherwise. The borrowed
// target is never touched, and the result is equal to the original
// with all hash streams preserved.
func (r *SectionRef[X]) ToOwned() Section[X] {
	if r.borrowed != nil {
		return r.borrowed.Clone()
	}
	return r.owned
}
