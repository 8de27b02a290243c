package prolog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinsIsBuiltin(t *testing.T) {
	b := NewBuiltins()
	assert.True(t, b.IsBuiltin("="))
	assert.True(t, b.IsBuiltin("is"))
	assert.False(t, b.IsBuiltin("parent"))
}

func TestUnifyBuiltin(t *testing.T) {
	b := NewBuiltins()
	goal := NewCompound("=", NewVariable("X"), NewAtom("tom"))
	sols := b.Evaluate(goal, EmptySubstitution())
	require.Len(t, sols, 1)
	assert.True(t, sols[0].Apply(NewVariable("X")).Equal(NewAtom("tom")))
}

// TestIsBuiltinPreservesIntegerTyping covers spec.md scenario S4:
// `? (is X (+ (* 2 6) 2))` must bind X to the integer 14, not 14.0.
func TestIsBuiltinPreservesIntegerTyping(t *testing.T) {
	b := NewBuiltins()
	expr := NewCompound("+", NewCompound("*", NewAtom(int64(2)), NewAtom(int64(6))), NewAtom(int64(2)))
	goal := NewCompound("is", NewVariable("X"), expr)

	sols := b.Evaluate(goal, EmptySubstitution())
	require.Len(t, sols, 1)
	bound := sols[0].Apply(NewVariable("X")).(*Atom)
	assert.Equal(t, int64(14), bound.Value())
	assert.Equal(t, "14", bound.String())
}

func TestIsBuiltinDivisionAlwaysYieldsFloat(t *testing.T) {
	b := NewBuiltins()
	goal := NewCompound("is", NewVariable("X"), NewCompound("/", NewAtom(int64(4)), NewAtom(int64(2))))

	sols := b.Evaluate(goal, EmptySubstitution())
	require.Len(t, sols, 1)
	bound := sols[0].Apply(NewVariable("X")).(*Atom)
	assert.Equal(t, 2.0, bound.Value())
	assert.Equal(t, "2.0", bound.String())
}

func TestIsBuiltinDivisionByZeroFailsSoft(t *testing.T) {
	b := NewBuiltins()
	goal := NewCompound("is", NewVariable("X"), NewCompound("/", NewAtom(int64(1)), NewAtom(int64(0))))
	assert.Empty(t, b.Evaluate(goal, EmptySubstitution()))
}

func TestAtomNumberVarNonvarBuiltins(t *testing.T) {
	b := NewBuiltins()

	assert.Len(t, b.Evaluate(NewCompound("atom", NewAtom("tom")), EmptySubstitution()), 1)
	assert.Empty(t, b.Evaluate(NewCompound("atom", NewAtom(int64(1))), EmptySubstitution()))

	assert.Len(t, b.Evaluate(NewCompound("number", NewAtom(int64(1))), EmptySubstitution()), 1)
	assert.Empty(t, b.Evaluate(NewCompound("number", NewAtom("tom")), EmptySubstitution()))

	assert.Len(t, b.Evaluate(NewCompound("var", NewVariable("X")), EmptySubstitution()), 1)
	assert.Empty(t, b.Evaluate(NewCompound("var", NewAtom("tom")), EmptySubstitution()))

	assert.Len(t, b.Evaluate(NewCompound("nonvar", NewAtom("tom")), EmptySubstitution()), 1)
	assert.Empty(t, b.Evaluate(NewCompound("nonvar", NewVariable("X")), EmptySubstitution()))
}

func TestComparisonBuiltins(t *testing.T) {
	subst := EmptySubstitution()

	assert.Len(t, NewBuiltins().Evaluate(NewCompound("<", NewAtom(int64(1)), NewAtom(int64(2))), subst), 1)
	assert.Empty(t, NewBuiltins().Evaluate(NewCompound("<", NewAtom(int64(2)), NewAtom(int64(1))), subst))
	assert.Len(t, NewBuiltins().Evaluate(NewCompound(">=", NewAtom(int64(2)), NewAtom(int64(2))), subst), 1)
}

// TestNotUnifiableBuiltin covers spec.md scenario S6.
func TestNotUnifiableBuiltin(t *testing.T) {
	b := NewBuiltins()

	sols := b.Evaluate(NewCompound("/=", NewAtom("tom"), NewAtom("bob")), EmptySubstitution())
	assert.Len(t, sols, 1)

	sols = b.Evaluate(NewCompound("/=", NewAtom("tom"), NewAtom("tom")), EmptySubstitution())
	assert.Empty(t, sols)
}

func TestBuiltinArityMismatchFailsSoft(t *testing.T) {
	b := NewBuiltins()
	assert.Empty(t, b.Evaluate(NewCompound("=", NewAtom("tom")), EmptySubstitution()))
	assert.Empty(t, b.Evaluate(NewCompound("atom", NewAtom("tom"), NewAtom("bob")), EmptySubstitution()))
}
