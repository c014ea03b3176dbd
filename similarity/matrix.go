package similarity

import (
	"container/heap"

	"github.com/nicholasyager/dagview/core"
)

// fixedPointScale converts a float64 similarity into a comparable integer
// sort key, per the source algorithm's (similarity * 10000) as integer
// convention — this avoids NaN/float-ordering surprises in the heap.
const fixedPointScale = 10000

// Matrix is an ordered collection of (UnorderedTuple, similarity) entries
// supporting upsert-by-pair, O(1) max retrieval, and removal of every entry
// mentioning a given cluster id. At most one entry is ever stored per
// unordered pair.
//
// Internally it is a container/heap max-heap keyed on a fixed-point
// similarity score, with a lexicographic tie-break on the pair's canonical
// key so that ordering is stable across identical insertion sequences even
// when two pairs share a similarity.
type Matrix struct {
	h         entryHeap
	byPair    map[core.UnorderedTuple]*entry
	byCluster map[string]map[core.UnorderedTuple]*entry
}

// NewMatrix builds an empty Matrix.
func NewMatrix() *Matrix {
	return &Matrix{
		byPair:    make(map[core.UnorderedTuple]*entry),
		byCluster: make(map[string]map[core.UnorderedTuple]*entry),
	}
}

// entry is one (pair, similarity) slot tracked by the heap; index is
// maintained by entryHeap.Swap so RemoveElement can locate it directly and
// remove it in O(log n).
type entry struct {
	pair  core.UnorderedTuple
	sim   float64
	key   int64
	index int
}

// SetSimilarity upserts the similarity for pair. If pair is already
// present, its value is replaced and the heap is re-ordered in place;
// otherwise a new entry is inserted.
//
// Complexity: O(log n).
func (m *Matrix) SetSimilarity(pair core.UnorderedTuple, sim float64) {
	if e, ok := m.byPair[pair]; ok {
		e.sim = sim
		e.key = int64(sim * fixedPointScale)
		heap.Fix(&m.h, e.index)
		return
	}

	e := &entry{pair: pair, sim: sim, key: int64(sim * fixedPointScale)}
	heap.Push(&m.h, e)
	m.byPair[pair] = e
	m.registerCluster(pair.One(), e)
	m.registerCluster(pair.Two(), e)
}

func (m *Matrix) registerCluster(id string, e *entry) {
	if _, ok := m.byCluster[id]; !ok {
		m.byCluster[id] = make(map[core.UnorderedTuple]*entry)
	}
	m.byCluster[id][e.pair] = e
}

// RemoveElement drops every entry whose pair mentions id.
//
// Complexity: O(d log n), d = number of entries mentioning id.
func (m *Matrix) RemoveElement(id string) {
	entries, ok := m.byCluster[id]
	if !ok {
		return
	}
	for pair, e := range entries {
		heap.Remove(&m.h, e.index)
		delete(m.byPair, pair)

		other := pair.One()
		if other == id {
			other = pair.Two()
		}
		if siblingEntries, ok := m.byCluster[other]; ok {
			delete(siblingEntries, pair)
		}
	}
	delete(m.byCluster, id)
}

// GetMaxSimilarity returns the highest-similarity entry, or ok=false if the
// matrix is empty.
//
// Complexity: O(1).
func (m *Matrix) GetMaxSimilarity() (pair core.UnorderedTuple, sim float64, ok bool) {
	if len(m.h) == 0 {
		return core.UnorderedTuple{}, 0, false
	}
	top := m.h[0]
	return top.pair, top.sim, true
}

// Len returns the number of entries currently stored.
func (m *Matrix) Len() int {
	return len(m.h)
}

// entryHeap implements container/heap.Interface over []*entry, ordered by
// descending fixed-point similarity with a lexicographic tie-break on the
// pair's canonical key.
type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key > h[j].key
	}
	return h[i].pair.Key() < h[j].pair.Key()
}

func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap) Push(x interface{}) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}
