package mcx

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestExpandToffoliExact(t *testing.T) {
	expanded, err := ExpandToBasis(CCX(0, 1, 2), DefaultBasis())
	require.NoError(t, err)
	for _, g := range expanded {
		require.True(t, DefaultBasis().Contains(g.Kind), "leaked %s", g.Kind)
	}
	requireSequencesAgree(t, 3, []Gate{CCX(0, 1, 2)}, expanded)

	// Phase-exact on superpositions too, not only on basis states: run both
	// after an H wall and compare amplitudes.
	s := NewStateVector(3)
	s.ApplySequence([]Gate{H(0), H(1), H(2), T(1)})
	direct := s.Clone()
	direct.Apply(CCX(0, 1, 2))
	s.ApplySequence(expanded)
	requireStatesEqual(t, direct, s)
}

func TestExpandFixedPoint(t *testing.T) {
	basis := DefaultBasis()
	seq := []Gate{H(0), CX(0, 1), T(1), P(math.Pi/8, 0), Barrier(), X(1)}

	once, err := ExpandSequence(seq, basis)
	require.NoError(t, err)
	require.Equal(t, seq, once)

	twice, err := ExpandSequence(once, basis)
	require.NoError(t, err)
	require.Equal(t, once, twice)
}

func TestExpandCXIntoCZBasis(t *testing.T) {
	basis := CZBasis()
	expanded, err := ExpandToBasis(CX(0, 1), basis)
	require.NoError(t, err)
	for _, g := range expanded {
		require.True(t, basis.Contains(g.Kind), "leaked %s", g.Kind)
	}
	requireSequencesAgree(t, 2, []Gate{CX(0, 1)}, expanded)
}

func TestExpandXWithoutX(t *testing.T) {
	basis := NewBasis(KindH, KindP, KindCX)
	expanded, err := ExpandToBasis(X(0), basis)
	require.NoError(t, err)
	requireSequencesAgree(t, 1, []Gate{X(0)}, expanded)
}

func TestExpandControlledRotations(t *testing.T) {
	basis := DefaultBasis()
	angles := []float64{math.Pi, math.Pi / 2, math.Pi / 8, -math.Pi / 4, 1.234}

	for _, th := range angles {
		cp, err := ExpandToBasis(CP(th, 0, 1), basis)
		require.NoError(t, err)
		requireSequencesAgree(t, 2, []Gate{CP(th, 0, 1)}, cp)

		crx, err := ExpandToBasis(CRX(th, 0, 1), basis)
		require.NoError(t, err)
		requireSequencesAgree(t, 2, []Gate{CRX(th, 0, 1)}, crx)
	}
}

func TestExpandControlledPhaseProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)
	properties.Property("expanded cp matches direct cp on a superposition", prop.ForAll(
		func(th float64) bool {
			expanded, err := ExpandToBasis(CP(th, 0, 1), DefaultBasis())
			if err != nil {
				return false
			}
			s := NewStateVector(2)
			s.ApplySequence([]Gate{H(0), H(1)})
			direct := s.Clone()
			direct.Apply(CP(th, 0, 1))
			s.ApplySequence(expanded)
			for i := range direct.Amplitudes {
				d := direct.Amplitudes[i] - s.Amplitudes[i]
				if math.Hypot(real(d), imag(d)) > 1e-9 {
					return false
				}
			}
			return true
		},
		gen.Float64Range(-2*math.Pi, 2*math.Pi),
	))
	properties.TestingRun(t)
}

func TestExpandDegenerateMCX(t *testing.T) {
	basis := DefaultBasis()

	e0, err := ExpandToBasis(MCX(nil, 0), basis)
	require.NoError(t, err)
	require.Equal(t, []Gate{X(0)}, e0)

	e1, err := ExpandToBasis(MCX([]int{0}, 1), basis)
	require.NoError(t, err)
	require.Equal(t, []Gate{CX(0, 1)}, e1)

	e2, err := ExpandToBasis(MCX([]int{0, 1}, 2), basis)
	require.NoError(t, err)
	requireSequencesAgree(t, 3, []Gate{CCX(0, 1, 2)}, e2)
}

func TestExpandUnsupported(t *testing.T) {
	var ube *UnsupportedBasisError

	// No entangler reachable.
	_, err := ExpandToBasis(CCX(0, 1, 2), NewBasis(KindX, KindH, KindP))
	require.ErrorAs(t, err, &ube)

	// Wide MCX has no rewrite rule; it must go through the planner.
	_, err = ExpandToBasis(MCX([]int{0, 1, 2}, 3), DefaultBasis())
	require.ErrorAs(t, err, &ube)
	require.Equal(t, KindMCX, ube.Kind)

	// Empty basis is an argument error, not a rewrite failure.
	var iae *InvalidArgumentError
	_, err = ExpandToBasis(X(0), Basis{})
	require.ErrorAs(t, err, &iae)
}
