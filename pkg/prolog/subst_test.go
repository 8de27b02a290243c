package prolog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitutionIsPersistent(t *testing.T) {
	s0 := EmptySubstitution()
	s1 := s0.Bind("X", NewAtom("tom"))

	assert.Equal(t, 0, s0.Len(), "binding must not mutate the receiver")
	assert.Equal(t, 1, s1.Len())
	assert.Nil(t, s0.Walk("X"))
	assert.Equal(t, NewAtom("tom"), s1.Walk("X"))
}

func TestWalkFollowsChain(t *testing.T) {
	s := EmptySubstitution().
		Bind("X", NewVariable("Y")).
		Bind("Y", NewVariable("Z")).
		Bind("Z", NewAtom("tom"))

	assert.Equal(t, NewAtom("tom"), s.Walk("X"))
	assert.Nil(t, s.Walk("W"), "unbound variable walks to nil")
}

func TestApplyRebuildsStructure(t *testing.T) {
	s := EmptySubstitution().Bind("X", NewAtom("tom")).Bind("Y", NewAtom("bob"))

	term := NewCompound("parent", NewVariable("X"), NewVariable("Y"))
	got := s.Apply(term)

	assert.True(t, got.Equal(NewCompound("parent", NewAtom("tom"), NewAtom("bob"))))
}

func TestApplyIsIdempotent(t *testing.T) {
	s := EmptySubstitution().Bind("X", NewAtom("tom"))
	term := NewCompound("f", NewVariable("X"))

	once := s.Apply(term)
	twice := s.Apply(once)

	assert.True(t, once.Equal(twice))
}

func TestApplyOnLists(t *testing.T) {
	// Apply rewrites a partial list's tail in place; it does not flatten
	// a tail that resolves to another list, mirroring a direct
	// structural rewrite rather than a list-append operation. Unify
	// (tested in unify_test.go) is what produces an already-flat list
	// when a tail variable is bound during list unification.
	s := EmptySubstitution().Bind("T", NewList(NewAtom(int64(2)), NewAtom(int64(3))))
	term := NewPartialList([]Term{NewAtom(int64(1))}, NewVariable("T"))

	got := s.Apply(term).(*List)
	assert.Equal(t, 1, len(got.Elements()))
	assert.True(t, got.Elements()[0].Equal(NewAtom(int64(1))))
	assert.True(t, got.Tail().Equal(NewList(NewAtom(int64(2)), NewAtom(int64(3)))))
}
