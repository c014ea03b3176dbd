package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet_InsertIsIdempotent(t *testing.T) {
	s := NewSet("a")
	s.Insert("a")
	s.Insert("a")
	require.Equal(t, 1, s.Len())
	require.True(t, s.Contains("a"))
}

func TestSet_UnionIntersectionDifference(t *testing.T) {
	a := NewSet("1", "2", "3")
	b := NewSet("2", "3", "4")

	union := a.Union(b)
	require.ElementsMatch(t, []string{"1", "2", "3", "4"}, union.Slice())

	inter := a.Intersection(b)
	require.ElementsMatch(t, []string{"2", "3"}, inter.Slice())

	diff := a.Difference(b)
	require.ElementsMatch(t, []string{"1"}, diff.Slice())

	sym := a.SymmetricDifference(b)
	require.ElementsMatch(t, []string{"1", "4"}, sym.Slice())
}

func TestSet_AlgebraLaws(t *testing.T) {
	a := NewSet("x", "y", "z")
	b := NewSet("y", "z", "w")

	// Commutativity of union and intersection.
	require.True(t, a.Union(b).Equal(b.Union(a)))
	require.True(t, a.Intersection(b).Equal(b.Intersection(a)))

	// Idempotence: A ∪ A = A.
	require.True(t, a.Union(a).Equal(a))

	// A \ A = ∅.
	require.Equal(t, 0, a.Difference(a).Len())

	// |A ∪ B| = |A| + |B| - |A ∩ B|.
	require.Equal(t, a.Len()+b.Len()-a.Intersection(b).Len(), a.Union(b).Len())
}

func TestSet_IsSubsetOf(t *testing.T) {
	sub := NewSet("a", "b")
	sup := NewSet("a", "b", "c")

	require.True(t, sub.IsSubsetOf(sup))
	require.True(t, sub.IsProperSubsetOf(sup))
	require.False(t, sup.IsProperSubsetOf(sub))
	require.True(t, sup.IsSubsetOf(sup))
	require.False(t, sup.IsProperSubsetOf(sup))
}

func TestSet_Equal(t *testing.T) {
	a := NewSet("1", "2")
	b := NewSet("2", "1")
	require.True(t, a.Equal(b))

	c := NewSet("1", "2", "3")
	require.False(t, a.Equal(c))
}

func TestSet_KeyIsOrderIndependent(t *testing.T) {
	a := NewSet("b", "a", "c")
	b := NewSet("c", "b", "a")
	require.Equal(t, a.Key(), b.Key())
	require.Equal(t, "a-b-c", a.Key())
}

func TestSet_EmptySetDifferenceAndUnion(t *testing.T) {
	empty := NewSet()
	a := NewSet("a")

	require.Equal(t, 0, empty.Union(empty).Len())
	require.True(t, a.Union(empty).Equal(a))
	require.True(t, a.Difference(empty).Equal(a))
	require.Equal(t, 0, empty.Difference(a).Len())
}
