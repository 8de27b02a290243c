package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/dagfinndybvig/microPROLOG/pkg/prolog"
)

// Reporter renders a solution stream's observable results to some
// user-facing surface. The REPL and the batch runner both drive one.
// It is kept deliberately minimal — spec.md places visualizers and
// world generation out of scope — so the only implementation here is
// a plain text one.
type Reporter interface {
	Solution(vars []*prolog.Variable, subst *prolog.Substitution)
	NoSolutions()
	NoMoreSolutions()
}

// TextReporter writes solutions as `Name = value` lines to an
// io.Writer, matching the REPL transcript format spec.md §6 implies.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter returns a Reporter that writes to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

func (r *TextReporter) Solution(vars []*prolog.Variable, subst *prolog.Substitution) {
	if len(vars) == 0 {
		fmt.Fprintln(r.w, "yes")
		return
	}
	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = v.Name() + " = " + subst.Apply(v).String()
	}
	fmt.Fprintln(r.w, strings.Join(parts, ", "))
}

func (r *TextReporter) NoSolutions() {
	fmt.Fprintln(r.w, "no")
}

func (r *TextReporter) NoMoreSolutions() {
	fmt.Fprintln(r.w, "no more solutions")
}
