package mcx

import (
	"github.com/bits-and-blooms/bitset"
)

// Circuit is an ordered gate sequence over a fixed register. NumQubits
// covers the logical qubits plus any allocated ancillas; every gate must
// reference only in-range qubits.
type Circuit struct {
	NumQubits int
	Gates     []Gate
}

// Append adds gates to the end of the circuit.
func (c *Circuit) Append(gs ...Gate) {
	c.Gates = append(c.Gates, gs...)
}

// Width returns the total qubit count, ancillas included.
func (c *Circuit) Width() int { return c.NumQubits }

// Depth returns the length of the longest chain of gates connected by
// shared qubits. Gates on disjoint qubits share a layer.
func (c *Circuit) Depth() int { return len(BuildLayers(c)) }

// GateCounts tallies gates per kind. Barriers are not operations and are
// excluded.
func (c *Circuit) GateCounts() map[Kind]int {
	counts := make(map[Kind]int)
	for _, g := range c.Gates {
		if g.Kind == KindBarrier {
			continue
		}
		counts[g.Kind]++
	}
	return counts
}

// footprint returns the qubit mask of a gate, or nil for barriers.
func (g Gate) footprint(numQubits int) *bitset.BitSet {
	if g.Kind == KindBarrier {
		return nil
	}
	mask := bitset.New(uint(numQubits))
	for _, q := range g.Qubits() {
		mask.Set(uint(q))
	}
	return mask
}

// Validate checks every gate: qubit references resolve within the register
// and the control/target sets of each gate are disjoint.
func (c *Circuit) Validate() error {
	if c.NumQubits < 1 {
		return errInvalid("circuit has no qubits")
	}
	for i, g := range c.Gates {
		if g.Kind == KindBarrier {
			continue
		}
		seen := bitset.New(uint(c.NumQubits))
		for _, q := range g.Qubits() {
			if q < 0 || q >= c.NumQubits {
				return errInvalid("gate %d (%s) references qubit %d outside register of %d", i, g.Kind, q, c.NumQubits)
			}
			if seen.Test(uint(q)) {
				return errInvalid("gate %d (%s) references qubit %d twice", i, g.Kind, q)
			}
			seen.Set(uint(q))
		}
	}
	return nil
}
