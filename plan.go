package mcx

import (
	"fmt"
	"strings"
)

// Objective selects what the planner minimizes.
type Objective uint8

const (
	MinimizeDepth Objective = iota
	MinimizeGateCount // entangling-gate count
)

func (o Objective) String() string {
	switch o {
	case MinimizeDepth:
		return "depth"
	case MinimizeGateCount:
		return "entangling-gate-count"
	}
	return "objective(?)"
}

// Plan is the planner's output: the strategy, the clean ancillas it
// consumes, and sub-plans for the residual multi-control cores that run on
// borrowed wires. A plan is consumed once by Assemble.
type Plan struct {
	Strategy Strategy
	Ancillas int
	Sub      []*Plan
}

func (p *Plan) String() string {
	var sb strings.Builder
	p.write(&sb, 0)
	return sb.String()
}

func (p *Plan) write(sb *strings.Builder, indent int) {
	fmt.Fprintf(sb, "%s%s a=%d\n", strings.Repeat("  ", indent), p.Strategy, p.Ancillas)
	for _, s := range p.Sub {
		s.write(sb, indent+1)
	}
}

// treeDepth returns the plan tree's recursion depth, 1 for a leaf.
func (p *Plan) treeDepth() int {
	d := 0
	for _, s := range p.Sub {
		d = max(d, s.treeDepth())
	}
	return d + 1
}

// PlanMCX selects the (strategy, ancilla-count) pair of minimal cost under
// the objective within the width budget. maxWidth 0 means unbounded. Ties
// break toward fewer ancillas, then strategy declaration order, so two
// invocations with identical inputs return identical plans.
//
// Cost is measured, not guessed: each candidate is emitted over canonical
// qubit indices, expanded to the reference CX basis, and scored. This keeps
// the planner's ranking consistent with the metrics Assemble reports.
func PlanMCX(k, maxWidth int, objective Objective) (*Plan, error) {
	if k < 0 {
		return nil, errInvalid("control count %d is negative", k)
	}
	if maxWidth < 0 {
		return nil, errInvalid("max width %d is negative", maxWidth)
	}
	if maxWidth > 0 && k+1 > maxWidth {
		return nil, &InfeasibleWidthError{ControlCount: k, MaxWidth: maxWidth, RequiredMinimum: k + 1}
	}
	if k <= 2 {
		// Degenerate arities: a single X, CX or CCX; no search needed.
		return &Plan{Strategy: StrategyVChain}, nil
	}

	aMax := k - 1
	if maxWidth > 0 {
		aMax = min(aMax, maxWidth-k-1)
	}

	basis := DefaultBasis()
	var best *Plan
	bestCost := 0

	consider := func(s Strategy, a int) error {
		cost, err := candidateCost(s, k, a, objective, basis)
		if err != nil {
			return err
		}
		if best == nil || cost < bestCost ||
			(cost == bestCost && (a < best.Ancillas || (a == best.Ancillas && s < best.Strategy))) {
			best = buildPlan(s, k, a)
			bestCost = cost
		}
		return nil
	}

	if err := consider(StrategyRecurse, 0); err != nil {
		return nil, err
	}
	for a := 1; a <= aMax; a++ {
		if err := consider(StrategyVChain, a); err != nil {
			return nil, err
		}
		if err := consider(StrategyLogTree, a); err != nil {
			return nil, err
		}
	}

	logger.Debug().
		Int("controls", k).
		Int("maxWidth", maxWidth).
		Stringer("objective", objective).
		Stringer("strategy", best.Strategy).
		Int("ancillas", best.Ancillas).
		Int("cost", bestCost).
		Msg("mcx plan selected")
	return best, nil
}

// candidateCost scores one (strategy, ancilla-count) pair by emitting it
// over canonical indices and expanding into the reference basis.
func candidateCost(s Strategy, k, a int, objective Objective, basis Basis) (int, error) {
	controls := make([]int, k)
	for i := range controls {
		controls[i] = i
	}
	anc := make([]int, a)
	for i := range anc {
		anc[i] = k + 1 + i
	}
	seq, err := s.Emit(controls, k, anc)
	if err != nil {
		return 0, err
	}
	expanded, err := ExpandSequence(seq, basis)
	if err != nil {
		return 0, err
	}
	c := Circuit{NumQubits: k + 1 + a, Gates: expanded}
	if objective == MinimizeDepth {
		return c.Depth(), nil
	}
	count := 0
	for _, g := range expanded {
		if g.Kind.Entangling() {
			count++
		}
	}
	return count, nil
}

// buildPlan attaches the sub-plan describing the borrowed-wire core a
// hybrid emission will run.
func buildPlan(s Strategy, k, a int) *Plan {
	p := &Plan{Strategy: s, Ancillas: a}
	switch s {
	case StrategyRecurse:
		if k > 2 {
			p.Sub = []*Plan{borrowedPlan(k - 1)}
		}
	case StrategyVChain:
		if a < k-1 {
			p.Sub = []*Plan{borrowedPlan(k - a)}
		}
	case StrategyLogTree:
		if e := treeResidual(k, a); e > 1 {
			p.Sub = []*Plan{borrowedPlan(e)}
		}
	}
	return p
}

// borrowedPlan mirrors the halving mcxBorrowed performs, so the plan tree
// depth stays within ceil(log2 k) of the residual size.
func borrowedPlan(m int) *Plan {
	p := &Plan{Strategy: StrategyRecurse}
	if m > 2 {
		m1 := (m + 1) / 2
		p.Sub = []*Plan{borrowedPlan(m1), borrowedPlan(m - m1 + 1)}
	}
	return p
}

// treeResidual computes how many effective controls remain after the
// balanced tree consumes a ancillas, matching emitLogTree level by level.
func treeResidual(k, a int) int {
	e, pool := k, a
	for e > 1 && pool > 0 {
		f := min(pool, e/2)
		e -= f
		pool -= f
	}
	return e
}
