// Package powergraph implements the decomposition engine: the orchestrator
// that turns a (nodes, edges) input into a power graph via singleton
// seeding, greedy agglomerative clustering, two-sweep neighborhood
// expansion, and power-edge synthesis.
//
// Decompose runs to completion synchronously on the calling goroutine. It
// does no I/O and holds no lock: the PowerGraph value is exclusively owned
// by its caller for the duration of the call.
package powergraph
