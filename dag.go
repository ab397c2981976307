package mcx

import (
	"github.com/bits-and-blooms/bitset"
)

// Dependency layering. A gate cannot execute before earlier gates touching
// the same qubits; tracking the last layer used per qubit assigns every
// gate the earliest layer consistent with that order. The layer count is
// the circuit depth.

// BuildLayers groups gate indices into depth layers. Barriers occupy a
// layer of their own spanning the whole register.
func BuildLayers(c *Circuit) [][]int {
	frontier := make([]int, c.NumQubits) // next free layer per qubit
	var layers [][]int

	place := func(idx, layer int) {
		for len(layers) <= layer {
			layers = append(layers, nil)
		}
		layers[layer] = append(layers[layer], idx)
	}

	for i, g := range c.Gates {
		if g.Kind == KindBarrier {
			l := 0
			for q := range frontier {
				l = max(l, frontier[q])
			}
			place(i, l)
			for q := range frontier {
				frontier[q] = l + 1
			}
			continue
		}
		l := 0
		for _, q := range g.Qubits() {
			l = max(l, frontier[q])
		}
		place(i, l)
		for _, q := range g.Qubits() {
			frontier[q] = l + 1
		}
	}
	return layers
}

// LayerMasks returns, per layer, the set of qubits occupied in it. Used by
// renderers to lay out columns and by tests to check layer disjointness.
func LayerMasks(c *Circuit) []*bitset.BitSet {
	layers := BuildLayers(c)
	masks := make([]*bitset.BitSet, len(layers))
	for l, idxs := range layers {
		mask := bitset.New(uint(c.NumQubits))
		for _, i := range idxs {
			g := c.Gates[i]
			if g.Kind == KindBarrier {
				for q := 0; q < c.NumQubits; q++ {
					mask.Set(uint(q))
				}
				continue
			}
			mask.InPlaceUnion(g.footprint(c.NumQubits))
		}
		masks[l] = mask
	}
	return masks
}
