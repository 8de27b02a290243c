package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dagfinndybvig/microPROLOG/pkg/prolog"
)

func TestTextReporterSolutionWithVariables(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf)

	subst := prolog.EmptySubstitution().Bind("X", prolog.NewAtom("bob"))
	r.Solution([]*prolog.Variable{prolog.NewVariable("X")}, subst)

	assert.Equal(t, "X = bob\n", buf.String())
}

func TestTextReporterSolutionWithNoVariables(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf)

	r.Solution(nil, prolog.EmptySubstitution())
	assert.Equal(t, "yes\n", buf.String())
}

func TestTextReporterNoSolutions(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf)
	r.NoSolutions()
	assert.Equal(t, "no\n", buf.String())
}

func TestTextReporterNoMoreSolutions(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf)
	r.NoMoreSolutions()
	assert.Equal(t, "no more solutions\n", buf.String())
}
