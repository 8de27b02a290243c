package prolog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtomEquality(t *testing.T) {
	t.Run("same value atoms are equal", func(t *testing.T) {
		assert.True(t, NewAtom("tom").Equal(NewAtom("tom")))
		assert.True(t, NewAtom(int64(42)).Equal(NewAtom(int64(42))))
	})

	t.Run("different value atoms are not equal", func(t *testing.T) {
		assert.False(t, NewAtom("tom").Equal(NewAtom("bob")))
		assert.False(t, NewAtom(int64(1)).Equal(NewAtom(1.0)))
	})

	t.Run("string representation", func(t *testing.T) {
		assert.Equal(t, "tom", NewAtom("tom").String())
		assert.Equal(t, "42", NewAtom(int64(42)).String())
		assert.Equal(t, "3.5", NewAtom(3.5).String())
	})
}

func TestVariableEquality(t *testing.T) {
	assert.True(t, NewVariable("X").Equal(NewVariable("X")))
	assert.False(t, NewVariable("X").Equal(NewVariable("Y")))
	assert.True(t, NewVariable("X").IsVar())
	assert.False(t, NewAtom("x").IsVar())
}

func TestCompoundEquality(t *testing.T) {
	a := NewCompound("parent", NewAtom("tom"), NewVariable("X"))
	b := NewCompound("parent", NewAtom("tom"), NewVariable("X"))
	c := NewCompound("parent", NewAtom("tom"), NewVariable("Y"))
	d := NewCompound("child", NewAtom("tom"), NewVariable("X"))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "variable names are part of structural equality")
	assert.False(t, a.Equal(d), "different functor")
	assert.Equal(t, "(parent tom X)", a.String())
}

func TestListEquality(t *testing.T) {
	empty := NewList()
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, "[]", empty.String())

	l1 := NewList(NewAtom(int64(1)), NewAtom(int64(2)))
	l2 := NewList(NewAtom(int64(1)), NewAtom(int64(2)))
	assert.True(t, l1.Equal(l2))
	assert.Equal(t, "[1 2]", l1.String())

	withTail := NewPartialList([]Term{NewAtom(int64(1))}, NewVariable("T"))
	assert.Equal(t, "[1 | T]", withTail.String())
	assert.False(t, withTail.Equal(l1))
}

func TestCollectVariables(t *testing.T) {
	term := NewCompound("grandparent",
		NewVariable("X"),
		NewCompound("f", NewVariable("Y"), NewVariable("X")),
	)
	vars := CollectVariables(term)
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name()
	}
	assert.Equal(t, []string{"X", "Y"}, names)
}
