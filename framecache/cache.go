// Package framecache decides, section by section, how much of last
// frame's text pipeline output can be reused this frame.
//
// A SectionCache keys artifacts (shaped layouts, vertex batches,
// whatever V the caller stores) by section hash streams. Diffing the
// streams splits changes into three classes: nothing changed (reuse
// the artifact), only run styling changed (re-tint the artifact
// without laying out), anything else changed (lay out from scratch).
package framecache

import "github.com/gogpu/richtext"

// unknownStr is the String() fallback for out-of-range enum values.
const unknownStr = "Unknown"

// Action tells the caller how a section was resolved this frame.
type Action int

const (
	// ActionRelayout means nothing was reusable; the artifact came
	// from the layout callback.
	ActionRelayout Action = iota
	// ActionRetint means the cached layout survived and only the
	// styling was reapplied.
	ActionRetint
	// ActionReuse means last frame's artifact is current as is.
	ActionReuse
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionRelayout:
		return "Relayout"
	case ActionRetint:
		return "Retint"
	case ActionReuse:
		return "Reuse"
	default:
		return unknownStr
	}
}

// Stats holds cumulative cache statistics.
type Stats struct {
	Reuses    uint64
	Retints   uint64
	Relayouts uint64
	Evictions uint64
}

// HitRate returns the fraction of sections that avoided a full
// layout, in [0, 1]. Returns 0 when nothing was processed.
func (s Stats) HitRate() float64 {
	total := s.Reuses + s.Retints + s.Relayouts
	if total == 0 {
		return 0
	}
	return float64(s.Reuses+s.Retints) / float64(total)
}

// entry pairs an artifact with the hash streams of the section that
// produced it.
type entry[V any] struct {
	hashes   richtext.SectionHashes
	artifact V
}

// SectionCache caches one artifact per distinct section across
// frames, with two-generation retirement: artifacts survive exactly
// as long as their section keeps being processed every frame.
//
// SectionCache is NOT safe for concurrent use. It belongs to the
// goroutine driving the frame loop.
type SectionCache[X richtext.Payload[X], V any] struct {
	cur         map[uint64]*entry[V] // full hash, this frame
	prev        map[uint64]*entry[V] // full hash, last frame
	prevPartial map[uint64]*entry[V] // layout+geometry+text key, last frame

	stats Stats
}

// New creates an empty SectionCache for payload type X and artifact
// type V.
func New[X richtext.Payload[X], V any]() *SectionCache[X, V] {
	return &SectionCache[X, V]{
		cur:         make(map[uint64]*entry[V]),
		prev:        make(map[uint64]*entry[V]),
		prevPartial: make(map[uint64]*entry[V]),
	}
}

// partialKey folds the payload-independent streams into one key: two
// sections share it exactly when they differ at most in run styling.
func partialKey(h richtext.SectionHashes) uint64 {
	k := richtext.NewHasher()
	k.AddUint64(h.Layout)
	k.AddUint64(h.Geometry)
	k.AddUint64(h.Text)
	return k.Sum64()
}

// Process resolves one section for the current frame and returns its
// artifact along with how it was produced.
//
// layout builds the artifact from scratch and must not be nil. retint
// reapplies styling to a surviving artifact, given last frame's
// artifact and the section's freshly cloned payloads; a nil retint
// turns styling changes into full relayouts.
//
// Sections processed this frame survive into the next; everything
// else is retired at EndFrame.
func (c *SectionCache[X, V]) Process(s *richtext.Section[X], layout func() V, retint func(prior V, extras []X) V) (V, Action) {
	h := s.Hashes()

	// Same section already processed this frame.
	if e, ok := c.cur[h.Full]; ok {
		c.stats.Reuses++
		return e.artifact, ActionReuse
	}

	// Unchanged since last frame: carry the artifact over.
	if e, ok := c.prev[h.Full]; ok {
		c.cur[h.Full] = e
		c.stats.Reuses++
		return e.artifact, ActionReuse
	}

	// Layout, geometry, and text all match a last-frame section; only
	// styling moved.
	if e, ok := c.prevPartial[partialKey(h)]; ok && retint != nil {
		v := retint(e.artifact, s.CloneExtras())
		c.cur[h.Full] = &entry[V]{hashes: h, artifact: v}
		c.stats.Retints++
		return v, ActionRetint
	}

	v := layout()
	c.cur[h.Full] = &entry[V]{hashes: h, artifact: v}
	c.stats.Relayouts++
	return v, ActionRelayout
}

// EndFrame retires artifacts whose sections were not processed this
// frame and makes this frame the baseline for the next. Call once per
// frame, after all sections are processed.
func (c *SectionCache[X, V]) EndFrame() {
	evicted := 0
	for k := range c.prev {
		if _, kept := c.cur[k]; !kept {
			evicted++
		}
	}
	c.stats.Evictions += uint64(evicted)

	c.prev, c.cur = c.cur, c.prev
	clear(c.cur)

	clear(c.prevPartial)
	for _, e := range c.prev {
		c.prevPartial[partialKey(e.hashes)] = e
	}

	if evicted > 0 {
		richtext.Logger().Debug("frame cache retired sections",
			"evicted", evicted, "live", len(c.prev))
	}
}

// Len returns the number of distinct cached artifacts across both
// generations.
func (c *SectionCache[X, V]) Len() int {
	n := len(c.cur)
	for k := range c.prev {
		if _, dup := c.cur[k]; !dup {
			n++
		}
	}
	return n
}

// Stats returns a snapshot of cumulative statistics.
func (c *SectionCache[X, V]) Stats() Stats {
	return c.stats
}

// ResetStats zeroes the statistics counters.
func (c *SectionCache[X, V]) ResetStats() {
	c.stats = Stats{}
}
