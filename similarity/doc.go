// Package similarity implements Matrix, a max-similarity structure over
// cluster pairs: an ordered collection of (UnorderedTuple, similarity)
// entries supporting upsert-by-pair, removal by participating cluster id,
// and O(1) retrieval of the globally largest similarity.
//
// The implementation is a container/heap max-heap, adapted from the same
// pattern the module's teacher uses for Dijkstra's min-heap frontier, with
// three differences: max- rather than min-ordering, a symmetric pair key
// instead of a single vertex id, and a per-cluster index of entries so
// that RemoveElement removes each affected entry directly with heap.Remove
// instead of re-heapifying the whole structure.
package similarity
