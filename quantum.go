package mcx

import (
	"math"
	"math/cmplx"
)

type Complex = complex128

// StateVector is a dense amplitude vector over NumQubits qubits. It is the
// verification oracle: decompositions are checked against the direct MCX
// action by simulating both.
type StateVector struct {
	Amplitudes []Complex
	NumQubits  int
}

// NewStateVector returns |0...0⟩ over numQubits qubits.
func NewStateVector(numQubits int) *StateVector {
	n := 1 << numQubits
	amps := make([]Complex, n)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

// NewBasisState returns the computational basis state |bits⟩, qubit q
// reading bit q of bits.
func NewBasisState(numQubits int, bits uint64) *StateVector {
	n := 1 << numQubits
	amps := make([]Complex, n)
	amps[bits&uint64(n-1)] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

func (s *StateVector) Clone() *StateVector {
	amps := make([]Complex, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits}
}

// Apply applies one gate in place. Barriers are no-ops. MCX applies the
// direct truth-table action, which is what decompositions are tested
// against.
func (s *StateVector) Apply(g Gate) {
	switch g.Kind {
	case KindX:
		s.applyX(g.Target)
	case KindH:
		s.applyH(g.Target)
	case KindS:
		s.applyPhase(g.Target, math.Pi/2)
	case KindSdg:
		s.applyPhase(g.Target, -math.Pi/2)
	case KindT:
		s.applyPhase(g.Target, math.Pi/4)
	case KindTdg:
		s.applyPhase(g.Target, -math.Pi/4)
	case KindP:
		s.applyPhase(g.Target, g.Param)
	case KindRZ:
		s.applyRZ(g.Target, g.Param)
	case KindCX:
		s.applyCX(g.Controls[0], g.Target)
	case KindCZ:
		s.applyCZ(g.Controls[0], g.Target)
	case KindCP:
		s.applyCP(g.Controls[0], g.Target, g.Param)
	case KindCRX:
		s.applyCRX(g.Controls[0], g.Target, g.Param)
	case KindCCX:
		s.applyMCXDirect([]int{g.Controls[0], g.Controls[1]}, g.Target)
	case KindMCX:
		s.applyMCXDirect(g.Controls, g.Target)
	case KindBarrier:
	}
}

// ApplyCircuit applies every gate of c in order.
func (s *StateVector) ApplyCircuit(c *Circuit) {
	for _, g := range c.Gates {
		s.Apply(g)
	}
}

// ApplySequence applies every gate of seq in order.
func (s *StateVector) ApplySequence(seq []Gate) {
	for _, g := range seq {
		s.Apply(g)
	}
}

func (s *StateVector) applyX(q int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyH(q int) {
	hFactor := complex(1.0/math.Sqrt2, 0)
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			ai, aj := s.Amplitudes[i], s.Amplitudes[j]
			s.Amplitudes[i] = hFactor * (ai + aj)
			s.Amplitudes[j] = hFactor * (ai - aj)
		}
	}
}

func (s *StateVector) applyPhase(q int, theta float64) {
	n := len(s.Amplitudes)
	bit := 1 << q
	factor := cmplx.Exp(complex(0, theta))
	for i := 0; i < n; i++ {
		if i&bit != 0 {
			s.Amplitudes[i] *= factor
		}
	}
}

func (s *StateVector) applyRZ(q int, theta float64) {
	n := len(s.Amplitudes)
	bit := 1 << q
	phase := cmplx.Exp(complex(0, theta/2))
	for i := 0; i < n; i++ {
		if i&bit != 0 {
			s.Amplitudes[i] *= phase
		} else {
			s.Amplitudes[i] *= cmplx.Conj(phase)
		}
	}
}

func (s *StateVector) applyCX(control, target int) {
	n := len(s.Amplitudes)
	cBit := 1 << control
	tBit := 1 << target
	for i := 0; i < n; i++ {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyCZ(control, target int) {
	n := len(s.Amplitudes)
	cBit := 1 << control
	tBit := 1 << target
	for i := 0; i < n; i++ {
		if i&cBit != 0 && i&tBit != 0 {
			s.Amplitudes[i] *= -1
		}
	}
}

func (s *StateVector) applyCP(control, target int, theta float64) {
	n := len(s.Amplitudes)
	cBit := 1 << control
	tBit := 1 << target
	factor := cmplx.Exp(complex(0, theta))
	for i := 0; i < n; i++ {
		if i&cBit != 0 && i&tBit != 0 {
			s.Amplitudes[i] *= factor
		}
	}
}

func (s *StateVector) applyCRX(control, target int, theta float64) {
	n := len(s.Amplitudes)
	cBit := 1 << control
	tBit := 1 << target
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	for i := 0; i < n; i++ {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			ai, aj := s.Amplitudes[i], s.Amplitudes[j]
			s.Amplitudes[i] = c*ai + js*aj
			s.Amplitudes[j] = js*ai + c*aj
		}
	}
}

func (s *StateVector) applyMCXDirect(controls []int, target int) {
	n := len(s.Amplitudes)
	cMask := 0
	for _, c := range controls {
		cMask |= 1 << c
	}
	tBit := 1 << target
	for i := 0; i < n; i++ {
		if i&cMask == cMask && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

type QubitProbability struct {
	Prob0 float64
	Prob1 float64
}

// QubitProbabilities returns the marginal |0⟩/|1⟩ probabilities per qubit.
func (s *StateVector) QubitProbabilities() []QubitProbability {
	probs := make([]QubitProbability, s.NumQubits)
	for i, amp := range s.Amplitudes {
		prob := real(amp * cmplx.Conj(amp))
		for q := 0; q < s.NumQubits; q++ {
			if i&(1<<q) != 0 {
				probs[q].Prob1 += prob
			} else {
				probs[q].Prob0 += prob
			}
		}
	}
	return probs
}
