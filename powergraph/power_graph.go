package powergraph

import (
	"github.com/nicholasyager/dagview/cluster"
	"github.com/nicholasyager/dagview/graph"
)

// MinSimilarity is the default agglomeration threshold: clusters are only
// merged, and neighborhood expansions only accepted, while their Jaccard
// similarity is at least this value.
const MinSimilarity = 0.25

// PowerGraph orchestrates the decomposition of a fixed (nodes, edges) input
// into power nodes and power edges. It is single-threaded, does no I/O, and
// is exclusively owned by its caller for the duration of Decompose.
type PowerGraph struct {
	nodes []graph.Node
	edges *graph.EdgeRepository

	clusters *cluster.Repository

	// MinSimilarity overrides the default agglomeration/expansion
	// threshold (MinSimilarity constant) for this instance. Zero means
	// "use the default" — set explicitly via WithMinSimilarity if a
	// driver needs a different cutoff.
	MinSimilarity float64

	PowerNodes []*PowerNode
	PowerEdges []*PowerEdge

	powerNodeIndex map[string]*PowerNode
	powerEdgeIndex map[string]bool

	decomposed bool

	onPhase func(phase string)
}

// Option configures a PowerGraph at construction time.
type Option func(*PowerGraph)

// WithMinSimilarity overrides the default MIN_SIMILARITY threshold used
// during agglomeration and neighborhood expansion.
func WithMinSimilarity(threshold float64) Option {
	return func(pg *PowerGraph) { pg.MinSimilarity = threshold }
}

// WithProgress registers a callback invoked once per phase, in order
// ("seed", "agglomerate", "expand", "synthesize"), as Decompose runs. It is
// the engine's only concession to an external caller wanting progress
// feedback; the engine does no I/O itself, and what the callback does is
// up to the caller.
func WithProgress(fn func(phase string)) Option {
	return func(pg *PowerGraph) { pg.onPhase = fn }
}

// New builds a PowerGraph over the given nodes and edges. Decompose has not
// yet run; PowerNodes and PowerEdges are empty until it does.
//
// Unknown edge endpoints (an edge referencing a node id absent from nodes)
// are accepted transparently, per the specification's malformed-input
// policy: the driver is responsible for validation if it wants any.
func New(nodes []graph.Node, edges []graph.Edge, opts ...Option) *PowerGraph {
	repo := graph.NewEdgeRepository()
	for _, e := range edges {
		repo.AddEdge(e)
	}

	pg := &PowerGraph{
		nodes:         nodes,
		edges:         repo,
		clusters:      cluster.NewRepository(),
		MinSimilarity: MinSimilarity,
	}
	for _, opt := range opts {
		opt(pg)
	}
	return pg
}

// Clusters returns every cluster discovered over the course of
// decomposition: singletons, agglomerative unions, and neighborhood
// expansions. Empty before Decompose runs.
func (pg *PowerGraph) Clusters() []*cluster.Cluster {
	return pg.clusters.All()
}

// Edges returns the original input edges.
func (pg *PowerGraph) Edges() []graph.Edge {
	return pg.edges.Edges()
}

// NodeCount returns the number of power nodes produced by the last
// Decompose call.
func (pg *PowerGraph) NodeCount() int {
	return len(pg.PowerNodes)
}

// EdgeCount returns the number of power edges produced by the last
// Decompose call.
func (pg *PowerGraph) EdgeCount() int {
	return len(pg.PowerEdges)
}

// CompressionRatio returns the number of power nodes divided by the number
// of input nodes (lower is more compact). Every input node's singleton is
// a power node, so after Decompose the ratio is at least 1. Returns 0 for
// an empty input graph.
func (pg *PowerGraph) CompressionRatio() float64 {
	if len(pg.nodes) == 0 {
		return 0
	}
	return float64(pg.NodeCount()) / float64(len(pg.nodes))
}

// threshold returns the effective MIN_SIMILARITY for this instance.
func (pg *PowerGraph) threshold() float64 {
	if pg.MinSimilarity <= 0 {
		return MinSimilarity
	}
	return pg.MinSimilarity
}

// Decompose runs the full four-phase decomposition algorithm, mutating
// PowerNodes and PowerEdges. It is a no-op on an empty input graph.
//
// Decompose is not idempotent: calling it twice on the same PowerGraph
// re-runs the whole pipeline from the already-populated cluster repository
// and appends to PowerNodes and PowerEdges again; callers that want a
// fresh run should build a new PowerGraph via New.
func (pg *PowerGraph) Decompose() {
	if len(pg.nodes) == 0 {
		return
	}

	pg.reportPhase("seed")
	working := pg.seedSingletons()
	pg.reportPhase("agglomerate")
	pg.agglomerate(working)
	pg.reportPhase("expand")
	pg.expandNeighborhoods()
	pg.reportPhase("synthesize")
	pg.synthesizePowerEdges()

	pg.decomposed = true
}

// reportPhase invokes the registered progress callback, if any.
func (pg *PowerGraph) reportPhase(phase string) {
	if pg.onPhase != nil {
		pg.onPhase(phase)
	}
}
