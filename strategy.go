package mcx

import "math"

// Strategy identifies a decomposition algorithm. The declaration order is
// the planner's final tie-break order.
type Strategy uint8

const (
	// StrategyVChain cascades AND-reductions of the controls into a linear
	// ancilla chain, fires a single CX from the chain head onto the target
	// and uncomputes the chain. Pure form uses k-1 ancillas.
	StrategyVChain Strategy = iota
	// StrategyRecurse implements MCX without any clean ancilla, peeling
	// controls through controlled square roots of X and running every inner
	// multi-control on borrowed idle wires, split in halves.
	StrategyRecurse
	// StrategyLogTree reduces the controls through a balanced binary tree
	// of AND-reductions, trading more parallel ancilla writes for
	// logarithmic depth. Pure form uses k-1 ancillas across the levels.
	StrategyLogTree
)

var strategyNames = map[Strategy]string{
	StrategyVChain:  "v-chain",
	StrategyRecurse: "no-ancilla",
	StrategyLogTree: "log-tree",
}

func (s Strategy) String() string {
	if n, ok := strategyNames[s]; ok {
		return n
	}
	return "strategy(?)"
}

// PureAncillaFloor returns the ancilla count below which the strategy
// falls back to a hybrid form: clean ancillas absorb controls and the
// residual multi-control core runs on borrowed qubits.
func (s Strategy) PureAncillaFloor(k int) int {
	switch s {
	case StrategyVChain:
		return max(k-1, 0)
	case StrategyLogTree:
		return max((k+1)/2-1, 0)
	default:
		return 0
	}
}

// Emit produces an elementary-gate realization of MCX over the given
// qubits. Controls, target and ancillas must be pairwise disjoint; ancillas
// are assumed clean (|0⟩) and are returned to |0⟩ by construction. The
// degenerate arities short-circuit before any strategy logic: k=0 is an
// unconditional X, k=1 a CX, k=2 a Toffoli.
func (s Strategy) Emit(controls []int, target int, ancillas []int) ([]Gate, error) {
	switch len(controls) {
	case 0:
		return []Gate{X(target)}, nil
	case 1:
		return []Gate{CX(controls[0], target)}, nil
	case 2:
		return []Gate{CCX(controls[0], controls[1], target)}, nil
	}
	switch s {
	case StrategyVChain:
		if len(ancillas) < 1 {
			return nil, errInvalid("%s strategy needs at least one ancilla for %d controls", s, len(controls))
		}
		return emitVChain(controls, target, ancillas), nil
	case StrategyRecurse:
		return emitRecurse(controls, target), nil
	case StrategyLogTree:
		if len(ancillas) < 1 {
			return nil, errInvalid("%s strategy needs at least one ancilla for %d controls", s, len(controls))
		}
		return emitLogTree(controls, target, ancillas), nil
	}
	return nil, errInvalid("unknown strategy %d", uint8(s))
}

func reversed(seq []Gate) []Gate {
	out := make([]Gate, len(seq))
	for i, g := range seq {
		out[len(seq)-1-i] = g
	}
	return out
}

// emitVChain folds controls into a linear Toffoli chain. With fewer than
// k-1 ancillas the chain folds as many controls as it can and the residual
// multi-control fires on borrowed wires.
func emitVChain(controls []int, target int, anc []int) []Gate {
	k := len(controls)
	m := min(len(anc), k-1) // ancillas consumed by the chain

	chain := make([]Gate, 0, m)
	chain = append(chain, CCX(controls[0], controls[1], anc[0]))
	for j := 1; j < m; j++ {
		chain = append(chain, CCX(controls[j+1], anc[j-1], anc[j]))
	}

	var core []Gate
	if m == k-1 {
		core = []Gate{CX(anc[m-1], target)}
	} else {
		residual := append([]int{anc[m-1]}, controls[m+1:]...)
		borrowed := append(append([]int{}, controls[:m+1]...), anc[:m-1]...)
		core = mcxBorrowed(residual, target, borrowed)
	}

	seq := make([]Gate, 0, 2*len(chain)+len(core))
	seq = append(seq, chain...)
	seq = append(seq, core...)
	seq = append(seq, reversed(chain)...)
	return seq
}

// emitLogTree pair-reduces the controls level by level into ancillas,
// halving the effective control count per layer. When ancillas run out
// before the tree closes, the remaining effective controls fire on wires
// borrowed from the folded ones.
func emitLogTree(controls []int, target int, anc []int) []Gate {
	effective := append([]int{}, controls...)
	pool := anc

	var compute []Gate
	var folded []int
	for len(effective) > 1 && len(pool) > 0 {
		var next []int
		i := 0
		for i+1 < len(effective) && len(pool) > 0 {
			a := pool[0]
			pool = pool[1:]
			compute = append(compute, CCX(effective[i], effective[i+1], a))
			folded = append(folded, effective[i], effective[i+1])
			next = append(next, a)
			i += 2
		}
		next = append(next, effective[i:]...)
		effective = next
	}

	var core []Gate
	if len(effective) == 1 {
		core = []Gate{CX(effective[0], target)}
	} else {
		core = mcxBorrowed(effective, target, folded)
	}

	seq := make([]Gate, 0, 2*len(compute)+len(core))
	seq = append(seq, compute...)
	seq = append(seq, core...)
	seq = append(seq, reversed(compute)...)
	return seq
}

// emitRecurse realizes MCX on exactly k+1 wires. No free wire exists at the
// top, so controls are peeled one at a time through controlled roots of X:
//
//	C^m(X^{1/d}) = CV·(c,t)  MCX(rest→c)  CV†·(c,t)  MCX(rest→c)  C^{m-1}(V)(rest→t)
//
// with V = X^{1/2d}. Each inner MCX leaves the target and the already
// peeled controls idle, so it runs on borrowed wires. The controlled roots
// are exact (a phase on the control plus a controlled X-rotation), making
// the whole construction bit-exact rather than merely correct up to
// relative phase.
func emitRecurse(controls []int, target int) []Gate {
	cs := append([]int{}, controls...)
	var seq []Gate
	var peeled []int

	m := len(cs)
	denom := 1.0 // current gate is C^m(X^{1/denom})
	for m > 2 {
		c := cs[m-1]
		rd := denom * 2
		th := math.Pi / rd
		ph := th / 2

		borrow := append([]int{target}, peeled...)
		inner := mcxBorrowed(cs[:m-1], c, borrow)

		seq = append(seq, P(ph, c), CRX(th, c, target))
		seq = append(seq, inner...)
		seq = append(seq, P(-ph, c), CRX(-th, c, target))
		seq = append(seq, inner...)

		peeled = append(peeled, c)
		m--
		denom = rd
	}

	// Two controls left: C²(X^{1/denom}) via single-controlled roots.
	rd := denom * 2
	th := math.Pi / rd
	ph := th / 2
	c0, c1 := cs[0], cs[1]
	seq = append(seq,
		P(ph, c1), CRX(th, c1, target),
		CX(c0, c1),
		P(-ph, c1), CRX(-th, c1, target),
		CX(c0, c1),
		P(ph, c0), CRX(th, c0, target),
	)
	return seq
}

// mcxBorrowed emits t ^= AND(controls) using borrowed qubits in unknown
// states. Borrowed qubits are restored exactly for every input, so live
// wires qualify. With k-2 borrowed wires the linear double-sweep chain
// applies; with at least one, the control set splits in halves around the
// borrowed wire; with none, the exact no-ancilla ladder takes over.
func mcxBorrowed(controls []int, target int, borrowed []int) []Gate {
	k := len(controls)
	switch k {
	case 0:
		return []Gate{X(target)}
	case 1:
		return []Gate{CX(controls[0], target)}
	case 2:
		return []Gate{CCX(controls[0], controls[1], target)}
	}
	if len(borrowed) >= k-2 {
		return dirtyChain(controls, target, borrowed[:k-2])
	}
	if len(borrowed) >= 1 {
		b := borrowed[0]
		m1 := (k + 1) / 2
		c1 := controls[:m1]
		c2 := controls[m1:]

		// During the first-half gate the second half, the target and the
		// spare borrowed wires are all idle, and vice versa.
		borrowA := make([]int, 0, len(c2)+len(borrowed))
		borrowA = append(borrowA, c2...)
		borrowA = append(borrowA, target)
		borrowA = append(borrowA, borrowed[1:]...)
		half1 := mcxBorrowed(c1, b, borrowA)

		ctrl2 := append(append([]int{}, c2...), b)
		borrowB := append(append([]int{}, c1...), borrowed[1:]...)
		half2 := mcxBorrowed(ctrl2, target, borrowB)

		seq := make([]Gate, 0, 2*len(half1)+2*len(half2))
		seq = append(seq, half2...)
		seq = append(seq, half1...)
		seq = append(seq, half2...)
		seq = append(seq, half1...)
		return seq
	}
	return emitRecurse(controls, target)
}

// dirtyChain is the linear borrowed-ancilla chain: a double sweep of
// Toffolis that toggles the target by AND(controls) while cancelling every
// toggle on the borrowed wires. Requires len(anc) == k-2, k ≥ 3.
func dirtyChain(controls []int, target int, anc []int) []Gate {
	k := len(controls)

	top := CCX(controls[k-1], anc[k-3], target)
	var sweep []Gate
	for i := k - 4; i >= 0; i-- {
		sweep = append(sweep, CCX(controls[i+2], anc[i], anc[i+1]))
	}
	sweep = append(sweep, CCX(controls[0], controls[1], anc[0]))
	for i := 0; i <= k-4; i++ {
		sweep = append(sweep, CCX(controls[i+2], anc[i], anc[i+1]))
	}

	seq := make([]Gate, 0, 2+2*len(sweep))
	seq = append(seq, top)
	seq = append(seq, sweep...)
	seq = append(seq, top)
	seq = append(seq, sweep...)
	return seq
}
