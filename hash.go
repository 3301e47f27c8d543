package richtext

// FNV-1a 64-bit parameters.
const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

// Hasher is an incremental FNV-1a 64-bit hasher for section state.
//
// It exists instead of hash/fnv so floats and integers fold in as
// whole words without byte-slice round trips, and instead of
// hash/maphash so sums are stable across processes: the sums key
// caches that may outlive a single run.
//
// Floats are folded through OrderedFloat, so values that compare equal
// (including 0 and -0, and any two NaNs) contribute identical bits.
//
// The zero Hasher is not ready to use; call NewHasher or Reset.
type Hasher struct {
	sum uint64
}

// NewHasher returns a Hasher primed with the FNV-1a offset basis.
func NewHasher() *Hasher {
	return &Hasher{sum: fnvOffset}
}

// Reset reprimes the hasher so it can be reused.
func (h *Hasher) Reset() {
	h.sum = fnvOffset
}

// Sum64 returns the current hash.
func (h *Hasher) Sum64() uint64 {
	return h.sum
}

// AddByte folds one byte into the hash.
func (h *Hasher) AddByte(b byte) {
	h.sum ^= uint64(b)
	h.sum *= fnvPrime
}

// AddBool folds a bool in as one byte.
func (h *Hasher) AddBool(b bool) {
	if b {
		h.AddByte(1)
	} else {
		h.AddByte(0)
	}
}

// AddUint32 folds a 32-bit word into the hash.
func (h *Hasher) AddUint32(v uint32) {
	h.sum ^= uint64(v)
	h.sum *= fnvPrime
}

// AddUint64 folds a 64-bit word into the hash.
func (h *Hasher) AddUint64(v uint64) {
	h.sum ^= v
	h.sum *= fnvPrime
}

// AddString folds the string's bytes followed by a terminator, so
// adjacent strings cannot alias ("ab"+"c" vs "a"+"bc").
func (h *Hasher) AddString(s string) {
	for i := 0; i < len(s); i++ {
		h.AddByte(s[i])
	}
	h.AddByte(0xFF)
}

// AddFloat32 folds the float's canonical bits, as produced by
// OrderFloat.
func (h *Hasher) AddFloat32(f float32) {
	h.AddUint32(OrderFloat(f).Bits())
}

// Hash returns the full structural hash of the section: layout
// configuration, geometry as canonical float bits, then every run in
// order (content, font, scale, payload interleaved).
//
// Hash agrees with Equal, and sections that went through Clone,
// CloneExtras plus reassembly, or a SectionRef round trip hash the
// same as the original.
func (s *Section[X]) Hash() uint64 {
	h := NewHasher()
	s.Layout.appendHash(h)
	h.AddFloat32(s.ScreenPosition.X)
	h.AddFloat32(s.ScreenPosition.Y)
	h.AddFloat32(s.Bounds.W)
	h.AddFloat32(s.Bounds.H)
	for i := range s.Text {
		s.Text[i].appendHashNoExtra(h)
		s.Text[i].Extra.AppendHash(h)
	}
	return h.Sum64()
}

// HashParts is a section snapshot decomposed for hashing: geometry
// captured as canonical float bits, runs borrowed from the section.
// Each of its three hash streams folds a disjoint slice of section
// state, which is what lets a cache tell "moved", "restyled", and
// "rewritten" apart.
type HashParts[X Payload[X]] struct {
	geometry [4]OrderedFloat
	runs     []Text[X]
}

// HashParts decomposes the section. The result borrows the section's
// run list and is valid as long as the section is.
func (s *Section[X]) HashParts() HashParts[X] {
	return HashParts[X]{
		geometry: [4]OrderedFloat{
			OrderFloat(s.ScreenPosition.X),
			OrderFloat(s.ScreenPosition.Y),
			OrderFloat(s.Bounds.W),
			OrderFloat(s.Bounds.H),
		},
		runs: s.Text,
	}
}

// GeometryHash covers screen position and bounds only. Text and
// payload changes leave it untouched.
func (p HashParts[X]) GeometryHash() uint64 {
	h := NewHasher()
	for _, o := range p.geometry {
		h.AddUint32(o.Bits())
	}
	return h.Sum64()
}

// TextHash covers every run's content, font, and scale, in run order,
// and nothing from the payloads. Restyling leaves it untouched.
func (p HashParts[X]) TextHash() uint64 {
	h := NewHasher()
	for i := range p.runs {
		p.runs[i].appendHashNoExtra(h)
	}
	return h.Sum64()
}

// ExtraHash covers every run's payload, in run order, and nothing
// else.
func (p HashParts[X]) ExtraHash() uint64 {
	h := NewHasher()
	for i := range p.runs {
		p.runs[i].Extra.AppendHash(h)
	}
	return h.Sum64()
}

// SectionHashes bundles every hash stream of a section. Caches keep
// this next to their artifacts and diff streams to pick the cheapest
// way to bring a stale artifact up to date.
type SectionHashes struct {
	// Layout covers the layout configuration.
	Layout uint64
	// Geometry covers screen position and bounds.
	Geometry uint64
	// Text covers run content, fonts, and scales, without payloads.
	Text uint64
	// Extra covers run payloads only.
	Extra uint64
	// Full is Section.Hash: everything in one stream.
	Full uint64
}

// Hashes computes every hash stream of the section.
func (s *Section[X]) Hashes() SectionHashes {
	p := s.HashParts()
	return SectionHashes{
		Layout:   s.Layout.hash(),
		Geometry: p.GeometryHash(),
		Text:     p.TextHash(),
		Extra:    p.ExtraHash(),
		Full:     s.Hash(),
	}
}
