package richtext

import "math"

// IEEE 754 single-precision bit masks used for canonicalization.
const (
	signMask32     = 0x80000000
	exponentMask32 = 0x7F800000
	mantissaMask32 = 0x007FFFFF

	// quietNaN32 is the canonical quiet NaN every NaN payload collapses to.
	quietNaN32 = 0x7FC00000
)

// OrderedFloat is a float32 with canonical bits, a total order, and a
// stable hash identity.
//
// Plain float32 cannot key a cache: NaN != NaN breaks lookups, 0 and -0
// compare equal but carry distinct bit patterns, and < is only a partial
// order. OrderedFloat canonicalizes the value once at construction so
// that values which should be the same key are bit-identical:
//
//   - every NaN collapses to one quiet NaN
//   - negative zero folds to positive zero
//
// After canonicalization, == on OrderedFloat is a proper equivalence
// relation, equal values hash identically, and OrderedFloat can be used
// directly as a map key.
type OrderedFloat struct {
	bits uint32
}

// OrderFloat canonicalizes f into an OrderedFloat.
func OrderFloat(f float32) OrderedFloat {
	bits := math.Float32bits(f)
	switch {
	case bits&exponentMask32 == exponentMask32 && bits&mantissaMask32 != 0:
		bits = quietNaN32
	case bits == signMask32:
		bits = 0 // -0 == +0, so they must share one representative
	}
	return OrderedFloat{bits: bits}
}

// Float32 returns the canonicalized value.
func (o OrderedFloat) Float32() float32 {
	return math.Float32frombits(o.bits)
}

// Bits returns the canonical IEEE 754 bit pattern. Equal OrderedFloats
// return equal bits, so Bits is safe to feed to a Hasher.
func (o OrderedFloat) Bits() uint32 {
	return o.bits
}

// orderKey maps the canonical bits onto a uint32 whose unsigned order
// matches the numeric order: negative floats have all bits flipped,
// non-negative floats get the sign bit set. The canonical NaN sorts
// above +Inf.
func (o OrderedFloat) orderKey() uint32 {
	if o.bits&signMask32 != 0 {
		return ^o.bits
	}
	return o.bits | signMask32
}

// Less reports whether o sorts before p. The order is total:
// -Inf, finite values, +Inf, NaN.
func (o OrderedFloat) Less(p OrderedFloat) bool {
	return o.orderKey() < p.orderKey()
}

// Compare returns -1 when o sorts before p, +1 when after, and 0 when
// the canonical values are equal. It is suitable for slices.SortFunc.
func (o OrderedFloat) Compare(p OrderedFloat) int {
	a, b := o.orderKey(), p.orderKey()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
