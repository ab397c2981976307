package mcx

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestPlanDegenerateArities(t *testing.T) {
	for k := 0; k <= 2; k++ {
		plan, err := PlanMCX(k, 0, MinimizeDepth)
		require.NoError(t, err)
		require.Equal(t, StrategyVChain, plan.Strategy)
		require.Zero(t, plan.Ancillas)
		require.Empty(t, plan.Sub)
	}
}

func TestPlanInfeasibleWidth(t *testing.T) {
	_, err := PlanMCX(5, 3, MinimizeDepth)
	var iwe *InfeasibleWidthError
	require.ErrorAs(t, err, &iwe)
	require.Equal(t, 5, iwe.ControlCount)
	require.Equal(t, 3, iwe.MaxWidth)
	require.Equal(t, 6, iwe.RequiredMinimum)
}

func TestPlanInvalidArguments(t *testing.T) {
	var iae *InvalidArgumentError
	_, err := PlanMCX(-1, 0, MinimizeDepth)
	require.ErrorAs(t, err, &iae)
	_, err = PlanMCX(4, -2, MinimizeDepth)
	require.ErrorAs(t, err, &iae)
}

func TestPlanTightWidthForcesNoAncilla(t *testing.T) {
	// Width k+1 leaves no room for ancillas: only the no-ancilla recursion
	// remains admissible.
	plan, err := PlanMCX(14, 15, MinimizeDepth)
	require.NoError(t, err)
	require.Equal(t, StrategyRecurse, plan.Strategy)
	require.Zero(t, plan.Ancillas)
	require.NotEmpty(t, plan.Sub)
}

func TestPlanBoundedAncillaBudget(t *testing.T) {
	for _, obj := range []Objective{MinimizeDepth, MinimizeGateCount} {
		plan, err := PlanMCX(14, 20, obj)
		require.NoError(t, err)
		// Five spare wires beat the pure no-ancilla ladder under either
		// objective; a hybrid form must win.
		require.NotEqual(t, StrategyRecurse, plan.Strategy, "objective %s", obj)
		require.GreaterOrEqual(t, plan.Ancillas, 1)
		require.LessOrEqual(t, plan.Ancillas, 5)
	}
}

func TestPlanDeterminism(t *testing.T) {
	cases := []struct {
		k, w int
		obj  Objective
	}{
		{6, 0, MinimizeDepth},
		{6, 0, MinimizeGateCount},
		{9, 12, MinimizeDepth},
		{14, 20, MinimizeGateCount},
	}
	for _, tc := range cases {
		a, err := PlanMCX(tc.k, tc.w, tc.obj)
		require.NoError(t, err)
		b, err := PlanMCX(tc.k, tc.w, tc.obj)
		require.NoError(t, err)
		require.Equal(t, a, b, "k=%d w=%d %s", tc.k, tc.w, tc.obj)
	}
}

func TestPlanGateCountPrefersVChainHybrid(t *testing.T) {
	// With k-2 clean ancillas the chain folds all but two controls and the
	// core is a single Toffoli, the cheapest entangling count of any
	// candidate. The balanced tree matches it gate for gate and loses the
	// tie on declaration order.
	plan, err := PlanMCX(6, 0, MinimizeGateCount)
	require.NoError(t, err)
	require.Equal(t, StrategyVChain, plan.Strategy)
	require.Equal(t, 4, plan.Ancillas)
}

func TestPlanDepthPrefersLogTree(t *testing.T) {
	plan, err := PlanMCX(8, 0, MinimizeDepth)
	require.NoError(t, err)
	require.Equal(t, StrategyLogTree, plan.Strategy)
}

func TestPlanDepthMonotonicInWidth(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40

	properties := gopter.NewProperties(parameters)
	properties.Property("relaxing the width budget never increases depth", prop.ForAll(
		func(k, spare1, spare2 int) bool {
			w1 := k + 1 + spare1
			w2 := w1 + spare2

			r1, err := Synthesize(k, Constraints{MaxWidth: w1, Basis: DefaultBasis()})
			if err != nil {
				return false
			}
			r2, err := Synthesize(k, Constraints{MaxWidth: w2, Basis: DefaultBasis()})
			if err != nil {
				return false
			}
			return r2.Depth <= r1.Depth
		},
		gen.IntRange(3, 9),
		gen.IntRange(0, 5),
		gen.IntRange(0, 5),
	))
	properties.TestingRun(t)
}

func TestPlanWidthNeverExceeded(t *testing.T) {
	for k := 3; k <= 10; k++ {
		for _, w := range []int{k + 1, k + 2, k + 4, 2 * k} {
			plan, err := PlanMCX(k, w, MinimizeDepth)
			require.NoError(t, err)
			require.LessOrEqual(t, k+1+plan.Ancillas, w, "k=%d w=%d", k, w)
		}
	}
}

func TestPlanString(t *testing.T) {
	plan, err := PlanMCX(14, 15, MinimizeDepth)
	require.NoError(t, err)
	s := plan.String()
	require.Contains(t, s, "no-ancilla a=0")
	require.Greater(t, plan.treeDepth(), 1)
}

func TestBorrowedPlanDepthLogarithmic(t *testing.T) {
	p := borrowedPlan(64)
	// Halving: depth within ceil(log2 64) + 1 of the root.
	require.LessOrEqual(t, p.treeDepth(), 7)
}
