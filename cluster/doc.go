// Package cluster defines Cluster — a pair of disjoint item/neighbor sets
// with a deterministic id — and Repository, an indexed collection of
// clusters that tracks pairwise overlap and a node→cluster neighbor index
// so the engine can restrict similarity recomputation to plausibly
// overlapping "sibling" clusters instead of scanning every stored cluster.
package cluster
