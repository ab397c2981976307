package mcx

import "math"

// maxRewriteDepth bounds rule chaining. Every rule strictly moves toward
// elementary kinds, so a chain this long means the basis cannot be reached.
const maxRewriteDepth = 16

// ExpandToBasis rewrites g into an equivalent sequence whose kinds are all
// members of basis, exact up to global phase. Output already conformant to
// the basis is returned as-is, so the function is a fixed point on its own
// output. Barriers pass through untouched.
func ExpandToBasis(g Gate, basis Basis) ([]Gate, error) {
	if basis.Empty() {
		return nil, errInvalid("empty basis")
	}
	return expandGate(g, basis, 0)
}

// ExpandSequence expands every gate of seq into the basis, in order.
func ExpandSequence(seq []Gate, basis Basis) ([]Gate, error) {
	if basis.Empty() {
		return nil, errInvalid("empty basis")
	}
	out := make([]Gate, 0, len(seq))
	for _, g := range seq {
		sub, err := expandGate(g, basis, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}
	return out, nil
}

func expandGate(g Gate, basis Basis, depth int) ([]Gate, error) {
	if g.Kind == KindBarrier || basis.Contains(g.Kind) {
		return []Gate{g}, nil
	}
	if depth >= maxRewriteDepth {
		return nil, &UnsupportedBasisError{Kind: g.Kind, Basis: basis}
	}
	seq, ok := rewrite(g, basis)
	if !ok {
		return nil, &UnsupportedBasisError{Kind: g.Kind, Basis: basis}
	}
	var out []Gate
	for _, h := range seq {
		sub, err := expandGate(h, basis, depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}
	return out, nil
}

// rewrite maps one gate to an equivalent sequence over smaller kinds.
// Sequences are in temporal order (first gate applied first). Every rule
// is exact; the only global-phase slips are the P↔RZ substitutions, which
// are unobservable on a flat gate list.
func rewrite(g Gate, basis Basis) ([]Gate, bool) {
	t := g.Target
	switch g.Kind {
	case KindMCX:
		// Degenerate arities only; larger MCX goes through the planner.
		switch len(g.Controls) {
		case 0:
			return []Gate{X(t)}, true
		case 1:
			return []Gate{CX(g.Controls[0], t)}, true
		case 2:
			return []Gate{CCX(g.Controls[0], g.Controls[1], t)}, true
		}
		return nil, false

	case KindCCX:
		// Textbook T-count-7 Toffoli over {H, T, Tdg, CX}.
		a, b := g.Controls[0], g.Controls[1]
		return []Gate{
			H(t),
			CX(b, t), Tdg(t),
			CX(a, t), T(t),
			CX(b, t), Tdg(t),
			CX(a, t), T(b), T(t),
			CX(a, b), H(t),
			T(a), Tdg(b),
			CX(a, b),
		}, true

	case KindCX:
		if basis.Contains(KindCZ) {
			c := g.Controls[0]
			return []Gate{H(t), CZ(c, t), H(t)}, true
		}
		return nil, false

	case KindCZ:
		if basis.Contains(KindCX) {
			c := g.Controls[0]
			return []Gate{H(t), CX(c, t), H(t)}, true
		}
		return nil, false

	case KindCP:
		c, th := g.Controls[0], g.Param
		return []Gate{
			P(th/2, c),
			CX(c, t), P(-th/2, t),
			CX(c, t), P(th/2, t),
		}, true

	case KindCRX:
		// CRX = (I⊗H) · CRZ · (I⊗H), with CRZ as the two-CX sandwich.
		c, th := g.Controls[0], g.Param
		return []Gate{
			H(t),
			RZ(th/2, t), CX(c, t),
			RZ(-th/2, t), CX(c, t),
			H(t),
		}, true

	case KindT:
		return []Gate{P(math.Pi/4, t)}, true
	case KindTdg:
		return []Gate{P(-math.Pi/4, t)}, true
	case KindS:
		return []Gate{P(math.Pi/2, t)}, true
	case KindSdg:
		return []Gate{P(-math.Pi/2, t)}, true

	case KindP:
		return []Gate{RZ(g.Param, t)}, true
	case KindRZ:
		return []Gate{P(g.Param, t)}, true

	case KindX:
		return []Gate{H(t), P(math.Pi, t), H(t)}, true
	}
	return nil, false
}
