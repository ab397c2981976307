package mcx

import (
	"fmt"
	"strings"
)

// Kind identifies an elementary gate. The set is closed: strategies and
// rewrite rules dispatch on it directly rather than on gate objects.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindX
	KindH
	KindS
	KindSdg
	KindT
	KindTdg
	KindP   // phase gate, diag(1, e^{iθ})
	KindRZ  // z-rotation, diag(e^{-iθ/2}, e^{iθ/2})
	KindCX
	KindCZ
	KindCP  // controlled phase
	KindCRX // controlled x-rotation
	KindCCX
	KindMCX // multi-controlled X, unexpanded
	KindBarrier
)

var kindNames = map[Kind]string{
	KindX:       "x",
	KindH:       "h",
	KindS:       "s",
	KindSdg:     "sdg",
	KindT:       "t",
	KindTdg:     "tdg",
	KindP:       "p",
	KindRZ:      "rz",
	KindCX:      "cx",
	KindCZ:      "cz",
	KindCP:      "cp",
	KindCRX:     "crx",
	KindCCX:     "ccx",
	KindMCX:     "mcx",
	KindBarrier: "barrier",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Parameterized reports whether the kind carries a rotation angle.
func (k Kind) Parameterized() bool {
	switch k {
	case KindP, KindRZ, KindCP, KindCRX:
		return true
	}
	return false
}

// Entangling reports whether the kind acts on two or more qubits.
func (k Kind) Entangling() bool {
	switch k {
	case KindCX, KindCZ, KindCP, KindCRX, KindCCX, KindMCX:
		return true
	}
	return false
}

// Gate is one operation on the register. Controls is empty for uncontrolled
// gates; Target is the single acted-on qubit (-1 for barriers). Controls and
// target must be disjoint and in range, checked by Circuit.Validate.
type Gate struct {
	Kind     Kind
	Controls []int
	Target   int
	Param    float64
}

// Gate constructors. Strategies and rewrite rules build sequences from
// these rather than filling struct literals.

func X(target int) Gate   { return Gate{Kind: KindX, Target: target} }
func H(target int) Gate   { return Gate{Kind: KindH, Target: target} }
func S(target int) Gate   { return Gate{Kind: KindS, Target: target} }
func Sdg(target int) Gate { return Gate{Kind: KindSdg, Target: target} }
func T(target int) Gate   { return Gate{Kind: KindT, Target: target} }
func Tdg(target int) Gate { return Gate{Kind: KindTdg, Target: target} }

func P(theta float64, target int) Gate  { return Gate{Kind: KindP, Target: target, Param: theta} }
func RZ(theta float64, target int) Gate { return Gate{Kind: KindRZ, Target: target, Param: theta} }

func CX(control, target int) Gate {
	return Gate{Kind: KindCX, Controls: []int{control}, Target: target}
}

func CZ(control, target int) Gate {
	return Gate{Kind: KindCZ, Controls: []int{control}, Target: target}
}

func CP(theta float64, control, target int) Gate {
	return Gate{Kind: KindCP, Controls: []int{control}, Target: target, Param: theta}
}

func CRX(theta float64, control, target int) Gate {
	return Gate{Kind: KindCRX, Controls: []int{control}, Target: target, Param: theta}
}

func CCX(c1, c2, target int) Gate {
	return Gate{Kind: KindCCX, Controls: []int{c1, c2}, Target: target}
}

// MCX builds an unexpanded multi-controlled X. The synthesis entry points
// lower it; ExpandToBasis only accepts the degenerate arities (k ≤ 2).
func MCX(controls []int, target int) Gate {
	cs := make([]int, len(controls))
	copy(cs, controls)
	return Gate{Kind: KindMCX, Controls: cs, Target: target}
}

// Barrier spans the whole register; it orders layers without acting.
func Barrier() Gate { return Gate{Kind: KindBarrier, Target: -1} }

// Qubits returns the qubits the gate touches, controls first.
func (g Gate) Qubits() []int {
	if g.Kind == KindBarrier {
		return nil
	}
	qs := make([]int, 0, len(g.Controls)+1)
	qs = append(qs, g.Controls...)
	qs = append(qs, g.Target)
	return qs
}

func (g Gate) String() string {
	var sb strings.Builder
	sb.WriteString(g.Kind.String())
	if g.Kind.Parameterized() {
		fmt.Fprintf(&sb, "(%s)", FormatParam(g.Param))
	}
	if g.Kind == KindBarrier {
		return sb.String()
	}
	sb.WriteByte(' ')
	for i, c := range g.Controls {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "q[%d]", c)
	}
	if len(g.Controls) > 0 {
		sb.WriteString(", ")
	}
	fmt.Fprintf(&sb, "q[%d]", g.Target)
	return sb.String()
}
