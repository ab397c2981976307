package mcx

import (
	"sort"
	"strings"
)

// Basis is the set of gate kinds a target backend accepts. Synthesis output
// contains only kinds from the request's basis (barriers pass through).
type Basis struct {
	kinds map[Kind]struct{}
}

// NewBasis builds a basis from the given kinds. Duplicates are folded.
func NewBasis(kinds ...Kind) Basis {
	m := make(map[Kind]struct{}, len(kinds))
	for _, k := range kinds {
		m[k] = struct{}{}
	}
	return Basis{kinds: m}
}

// DefaultBasis is CNOT plus a universal single-qubit vocabulary. It is also
// the reference basis the planner measures candidate costs against.
func DefaultBasis() Basis {
	return NewBasis(KindX, KindH, KindT, KindTdg, KindS, KindSdg, KindP, KindRZ, KindCX)
}

// CZBasis targets backends whose entangler is CZ rather than CNOT.
func CZBasis() Basis {
	return NewBasis(KindX, KindH, KindP, KindRZ, KindCZ)
}

func (b Basis) Contains(k Kind) bool {
	_, ok := b.kinds[k]
	return ok
}

func (b Basis) Empty() bool { return len(b.kinds) == 0 }

// HasEntangler reports whether the basis can express any multi-qubit
// interaction. Without one, no decomposition of k ≥ 1 controls exists.
func (b Basis) HasEntangler() bool {
	for k := range b.kinds {
		if k.Entangling() {
			return true
		}
	}
	return false
}

// Kinds returns the member kinds in ascending order.
func (b Basis) Kinds() []Kind {
	out := make([]Kind, 0, len(b.kinds))
	for k := range b.kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (b Basis) String() string {
	names := make([]string, 0, len(b.kinds))
	for _, k := range b.Kinds() {
		names = append(names, k.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}
