package mcx

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildLayersPacksDisjointGates(t *testing.T) {
	c := &Circuit{NumQubits: 3}
	c.Append(X(0), X(1), CX(0, 1), X(2))

	layers := BuildLayers(c)
	require.Len(t, layers, 2)
	require.ElementsMatch(t, []int{0, 1, 3}, layers[0])
	require.ElementsMatch(t, []int{2}, layers[1])
	require.Equal(t, 2, c.Depth())
}

func TestBuildLayersBarrierCutsAllWires(t *testing.T) {
	c := &Circuit{NumQubits: 2}
	c.Append(X(0), Barrier(), X(1))

	// Without the barrier both X gates would share layer 0.
	require.Equal(t, 3, c.Depth())
}

func TestLayerMasksAreDisjointWithinLayer(t *testing.T) {
	c := &Circuit{NumQubits: 4}
	c.Append(CX(0, 1), CX(2, 3), CCX(0, 2, 3), X(1))

	layers := BuildLayers(c)
	masks := LayerMasks(c)
	require.Len(t, masks, len(layers))
	for l, idxs := range layers {
		total := uint(0)
		for _, i := range idxs {
			if c.Gates[i].Kind == KindBarrier {
				continue
			}
			total += uint(len(c.Gates[i].Qubits()))
		}
		require.Equal(t, total, masks[l].Count(), "layer %d overlaps", l)
	}
}

func TestGateCountsExcludeBarriers(t *testing.T) {
	c := &Circuit{NumQubits: 2}
	c.Append(H(0), Barrier(), CX(0, 1), H(0))

	counts := c.GateCounts()
	require.Equal(t, map[Kind]int{KindH: 2, KindCX: 1}, counts)
}

func TestValidate(t *testing.T) {
	c := &Circuit{NumQubits: 2, Gates: []Gate{CX(0, 1)}}
	require.NoError(t, c.Validate())

	c = &Circuit{NumQubits: 2, Gates: []Gate{CX(0, 2)}}
	require.Error(t, c.Validate())

	c = &Circuit{NumQubits: 2, Gates: []Gate{CX(1, 1)}}
	require.Error(t, c.Validate())

	c = &Circuit{NumQubits: 0}
	require.Error(t, c.Validate())
}

func TestQASMOutput(t *testing.T) {
	c := &Circuit{NumQubits: 3}
	c.Append(H(0), CCX(0, 1, 2), CP(math.Pi/4, 0, 2), P(math.Pi/2, 1), Barrier())

	qasm := c.QASM()
	require.True(t, strings.HasPrefix(qasm, "OPENQASM 2.0;\n"))
	require.Contains(t, qasm, "include \"qelib1.inc\";")
	require.Contains(t, qasm, "qreg q[3];")
	require.Contains(t, qasm, "h q[0];")
	require.Contains(t, qasm, "ccx q[0], q[1], q[2];")
	require.Contains(t, qasm, "cu1(pi/4) q[0], q[2];")
	require.Contains(t, qasm, "u1(pi/2) q[1];")
	require.Contains(t, qasm, "barrier q[0], q[1], q[2];")
}

func TestQASMMCXSpelling(t *testing.T) {
	c := &Circuit{NumQubits: 5}
	c.Append(MCX([]int{0, 1, 2, 3}, 4))
	require.Contains(t, c.QASM(), "mcx q[0], q[1], q[2], q[3], q[4];")
}

func TestFormatParam(t *testing.T) {
	cases := []struct {
		val  float64
		want string
	}{
		{math.Pi, "pi"},
		{-math.Pi / 2, "-pi/2"},
		{math.Pi / 16, "pi/16"},
		{3 * math.Pi / 4, "3*pi/4"},
		{0.3, "0.3"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatParam(tc.val))
	}
}

func TestGateString(t *testing.T) {
	require.Equal(t, "ccx q[0], q[1], q[4]", CCX(0, 1, 4).String())
	require.Equal(t, "p(pi/8) q[2]", P(math.Pi/8, 2).String())
	require.Equal(t, "barrier", Barrier().String())
}
