package core

import "math/bits"

// Set is a fixed-width bitmask over activation bits (see Graph.Bit).
// The zero value is the empty set. Set is a value type and trivially
// comparable, which makes it usable directly inside map keys.
type Set uint64

// Has reports whether bit b is present.
func (s Set) Has(b int) bool {
	return s&(1<<uint(b)) != 0
}

// With returns s with bit b added.
func (s Set) With(b int) Set {
	return s | 1<<uint(b)
}

// Without returns s with bit b removed.
func (s Set) Without(b int) Set {
	return s &^ (1 << uint(b))
}

// Len returns the number of bits present.
func (s Set) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Disjoint reports whether s and o share no bit.
func (s Set) Disjoint(o Set) bool {
	return s&o == 0
}

// Bits returns the present bits in ascending order.
func (s Set) Bits() []int {
	out := make([]int, 0, s.Len())
	for v := uint64(s); v != 0; v &= v - 1 {
		out = append(out, bits.TrailingZeros64(v))
	}

	return out
}

// IDs maps the present bits back to node IDs using g.
func (s Set) IDs(g *Graph) []string {
	out := make([]string, 0, s.Len())
	for _, b := range s.Bits() {
		if b < len(g.valves) {
			out = append(out, g.ids[g.valves[b]])
		}
	}

	return out
}
