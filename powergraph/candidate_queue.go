package powergraph

import "container/heap"

// candidateQueue is a container/heap max-heap over pending
// PowerEdgeCandidates, ordered by descending Size with ties broken by
// insertion order (stable), mirroring similarity.Matrix's use of the same
// standard-library heap pattern for a different ordering.
type candidateQueue struct {
	h candidateHeap
	n int
}

func newCandidateQueue() *candidateQueue {
	return &candidateQueue{}
}

// Push inserts c into the queue.
func (q *candidateQueue) Push(c PowerEdgeCandidate) {
	heap.Push(&q.h, &candidateEntry{c: c, seq: q.n})
	q.n++
}

// Pop removes and returns the candidate with the largest Size, or
// ok=false if the queue is empty.
func (q *candidateQueue) Pop() (PowerEdgeCandidate, bool) {
	if q.h.Len() == 0 {
		return PowerEdgeCandidate{}, false
	}
	e := heap.Pop(&q.h).(*candidateEntry)
	return e.c, true
}

// Len returns the number of pending candidates.
func (q *candidateQueue) Len() int {
	return q.h.Len()
}

type candidateEntry struct {
	c     PowerEdgeCandidate
	seq   int
	index int
}

type candidateHeap []*candidateEntry

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].c.Size != h[j].c.Size {
		return h[i].c.Size > h[j].c.Size
	}
	return h[i].seq < h[j].seq
}

func (h candidateHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *candidateHeap) Push(x interface{}) {
	e := x.(*candidateEntry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}
