package core

// UnorderedTuple is a pair of string identifiers whose equality and hash
// are symmetric: UnorderedTuple(a, b) == UnorderedTuple(b, a). It is used
// as the key type in similarity.Matrix and for edge-pair deduplication.
//
// Construction canonicalizes the two components (lexicographically) so
// that every call site gets symmetric behavior for free, rather than
// re-deriving it at each comparison.
type UnorderedTuple struct {
	one, two string
}

// NewUnorderedTuple builds a canonical UnorderedTuple from a and b. The
// canonical form always orders the smaller string first, so (a,b) and
// (b,a) produce identical values.
func NewUnorderedTuple(a, b string) UnorderedTuple {
	if a <= b {
		return UnorderedTuple{one: a, two: b}
	}
	return UnorderedTuple{one: b, two: a}
}

// One returns the lexicographically smaller of the tuple's two elements.
func (t UnorderedTuple) One() string { return t.one }

// Two returns the lexicographically larger of the tuple's two elements.
func (t UnorderedTuple) Two() string { return t.two }

// Key returns a stable string form of the tuple, suitable for use as a map
// key or for lexicographic tie-breaking between pairs.
func (t UnorderedTuple) Key() string {
	return t.one + "\x00" + t.two
}

// Equal reports whether t and other denote the same unordered pair.
// Because both are constructed canonically, this is just field equality.
func (t UnorderedTuple) Equal(other UnorderedTuple) bool {
	return t == other
}
