// Package richtext models styled text sections for GPU text renderers.
//
// # Overview
//
// richtext is the input side of a text pipeline in the GoGPU ecosystem:
// it describes what to draw (sections of styled runs) and gives caches
// a cheap way to decide how much of the expensive work (layout,
// shaping, vertex generation) can be reused from the previous frame.
// It deliberately does no layout, shaping, or rasterization itself.
//
// # Quick Start
//
//	import "github.com/gogpu/richtext"
//
//	// One section, two styled runs sharing a layout.
//	s := richtext.NewSection().
//		WithScreenPosition(10, 10).
//		WithBounds(400, 200).
//		AddText(richtext.NewText("The last word was ")).
//		AddText(richtext.NewText("RED", richtext.WithColor(richtext.RGB(1, 0, 0))))
//
//	hs := s.Hashes()
//
// # Hash Decomposition
//
// A section's identity splits into independent hash streams: layout,
// geometry (position and bounds), text (content, fonts, scales), and
// extra (per-run styling payloads). A frame cache diffs the streams
// against last frame's and picks the cheapest refresh: nothing changed
// means reuse, only styling changed means re-tint the cached layout,
// anything else means lay out again. See Hashes, HashParts, and the
// framecache package.
//
// Floats fold into hashes through canonical bit patterns (OrderedFloat)
// so that equal sections always hash equal, NaNs included.
//
// # Payloads
//
// Runs carry a renderer-defined payload (the Extra type parameter)
// that layout never reads. The default Extra carries fill color,
// outline color, and depth. Custom payloads implement Payload.
//
// # Concurrency
//
// Sections, runs, and hashes are immutable values and safe to share.
// Builder methods return copies. fontmap.Collection is safe for
// concurrent use; framecache.SectionCache is not, matching its
// one-goroutine-per-frame role.
package richtext
