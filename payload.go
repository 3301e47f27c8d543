package richtext

// Payload is the constraint on a section's per-run styling payload.
//
// The payload rides along with each run untouched by layout. The
// library needs exactly three things from it: fold it into a hash,
// compare it, and copy it. Any type with those three methods
// qualifies. The constraint is self-referential (the methods take and
// return the concrete type) so payloads stay plain values with no
// interface boxing.
//
// AppendHash and Equal must agree: payloads that compare equal must
// fold identical bytes. Both must be pure.
type Payload[X any] interface {
	// AppendHash folds the payload into h.
	AppendHash(h *Hasher)
	// Equal reports whether the payload equals other.
	Equal(other X) bool
	// Clone returns a copy sharing no mutable state with the receiver.
	Clone() X
}
