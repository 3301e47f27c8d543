package richtext

import "math"

// Point is a position in screen space, in pixels. Y grows downward.
type Point struct {
	X, Y float32
}

// Size is a width and height pair, in pixels.
type Size struct {
	W, H float32
}

// Unbounded returns the Size of a section that should never clip:
// both dimensions are +Inf.
func Unbounded() Size {
	inf := float32(math.Inf(1))
	return Size{W: inf, H: inf}
}

// SectionGeometry is the positioning half of a section: the anchor
// point and the box layout may fill. Layout engines that do not care
// about styling can take just this.
type SectionGeometry struct {
	ScreenPosition Point
	Bounds         Size
}
