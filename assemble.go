package mcx

// Constraints bound a synthesis run. MaxWidth 0 means unbounded; Basis must
// name the gate set the output may use.
type Constraints struct {
	MaxWidth  int
	Objective Objective
	Basis     Basis
}

// Result is an assembled synthesis outcome: the flat circuit, the metrics
// the planner optimized, and the plan that produced it.
type Result struct {
	Circuit Circuit
	Depth   int
	Counts  map[Kind]int
	Plan    *Plan
}

// Synthesize plans and assembles an MCX over controls 0..k-1 and target k,
// with any ancillas appended above the target.
func Synthesize(k int, cons Constraints) (*Result, error) {
	if k < 0 {
		return nil, errInvalid("control count %d is negative", k)
	}
	if cons.Basis.Empty() {
		return nil, errInvalid("basis is empty")
	}
	if cons.MaxWidth < 0 {
		return nil, errInvalid("max width %d is negative", cons.MaxWidth)
	}
	if k >= 1 && !cons.Basis.HasEntangler() {
		return nil, &UnsupportedBasisError{Kind: KindMCX, Basis: cons.Basis}
	}

	plan, err := PlanMCX(k, cons.MaxWidth, cons.Objective)
	if err != nil {
		return nil, err
	}
	controls := make([]int, k)
	for i := range controls {
		controls[i] = i
	}
	return Assemble(plan, controls, k, cons.Basis)
}

// Assemble realizes a plan over concrete qubit indices. Ancillas are
// allocated contiguously above the highest referenced qubit, so the caller's
// wires keep their indices when the result is embedded in a larger register.
func Assemble(plan *Plan, controls []int, target int, basis Basis) (*Result, error) {
	if plan == nil {
		return nil, errInvalid("nil plan")
	}
	if basis.Empty() {
		return nil, errInvalid("basis is empty")
	}
	if target < 0 {
		return nil, errInvalid("target %d is negative", target)
	}

	top := target
	for _, c := range controls {
		if c < 0 {
			return nil, errInvalid("control %d is negative", c)
		}
		top = max(top, c)
	}

	anc := make([]int, plan.Ancillas)
	for i := range anc {
		anc[i] = top + 1 + i
	}

	raw, err := plan.Strategy.Emit(controls, target, anc)
	if err != nil {
		return nil, err
	}
	expanded, err := ExpandSequence(raw, basis)
	if err != nil {
		return nil, err
	}

	c := Circuit{NumQubits: top + 1 + plan.Ancillas, Gates: expanded}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	depth := c.Depth()
	logger.Debug().
		Int("qubits", c.NumQubits).
		Int("gates", len(c.Gates)).
		Int("depth", depth).
		Stringer("strategy", plan.Strategy).
		Msg("mcx assembled")
	return &Result{
		Circuit: c,
		Depth:   depth,
		Counts:  c.GateCounts(),
		Plan:    plan,
	}, nil
}
