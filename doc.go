// Package mcx synthesizes multi-controlled-X gates into elementary gate
// circuits under width and basis constraints.
//
// The pipeline is plan then assemble: PlanMCX searches the strategy library
// (linear v-chain, no-ancilla recursion, logarithmic-depth tree, and their
// hybrids over borrowed wires) for the cheapest realization that fits the
// width budget, and Assemble emits the chosen plan over concrete qubits,
// rewrites it into the requested basis, and reports depth and gate counts.
// Synthesize bundles both for the common case of a fresh register.
//
// A dense state-vector simulator backs the test suite as the correctness
// oracle, and Circuit.QASM exports results as OpenQASM 2.0.
package mcx
