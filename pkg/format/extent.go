package format

import "fmt"

// Extent is a width/height/depth triple. Depending on the caller it counts
// texels or blocks; the type does not track which.
type Extent struct {
	W, H, D uint32
}

// Ext is shorthand for Extent{w, h, d}.
func Ext(w, h, d uint32) Extent { return Extent{W: w, H: h, D: d} }

// Volume returns W*H*D.
func (e Extent) Volume() uint64 {
	return uint64(e.W) * uint64(e.H) * uint64(e.D)
}

// IsZero reports whether any component is zero.
func (e Extent) IsZero() bool {
	return e.W == 0 || e.H == 0 || e.D == 0
}

// Max returns the largest component.
func (e Extent) Max() uint32 {
	return max(e.W, e.H, e.D)
}

// CeilDiv divides componentwise, rounding up. A zero divisor component
// leaves that component unchanged.
func (e Extent) CeilDiv(b Extent) Extent {
	div := func(a, b uint32) uint32 {
		if b == 0 {
			return a
		}
		return (a + b - 1) / b
	}
	return Extent{W: div(e.W, b.W), H: div(e.H, b.H), D: div(e.D, b.D)}
}

// Mul multiplies componentwise.
func (e Extent) Mul(b Extent) Extent {
	return Extent{W: e.W * b.W, H: e.H * b.H, D: e.D * b.D}
}

// Add adds componentwise.
func (e Extent) Add(b Extent) Extent {
	return Extent{W: e.W + b.W, H: e.H + b.H, D: e.D + b.D}
}

// MultipleOf reports whether every component is a multiple of b's.
func (e Extent) MultipleOf(b Extent) bool {
	return b.W != 0 && b.H != 0 && b.D != 0 &&
		e.W%b.W == 0 && e.H%b.H == 0 && e.D%b.D == 0
}

// Within reports whether every component of e is below b's.
func (e Extent) Within(b Extent) bool {
	return e.W < b.W && e.H < b.H && e.D < b.D
}

// Halve returns the next mip extent: each selected component is halved and
// floored at 1.
func (e Extent) Halve(w, h, d bool) Extent {
	half := func(v uint32, on bool) uint32 {
		if !on {
			return v
		}
		return max(v/2, 1)
	}
	return Extent{W: half(e.W, w), H: half(e.H, h), D: half(e.D, d)}
}

func (e Extent) String() string {
	return fmt.Sprintf("%dx%dx%d", e.W, e.H, e.D)
}
