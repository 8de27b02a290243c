// Package prolog implements the logic core of a small Prolog-family
// interpreter: terms, unification, substitution, a clause database,
// hygienic renaming, and a depth-first SLD resolution engine exposed
// as a lazy solution stream.
package prolog

import (
	"fmt"
	"strconv"
	"strings"
)

// Term is any value in the logic core's universe: an Atom, a Variable,
// a Compound, or a List. All four are immutable once constructed, so a
// Term may be shared freely across substitutions and search branches.
type Term interface {
	// String returns the surface-syntax rendering of the term.
	String() string

	// Equal reports structural equality, not unifiability.
	Equal(other Term) bool

	// IsVar reports whether this term is a Variable.
	IsVar() bool
}

// Atom is a scalar term: either a symbolic value (a string) or a
// numeric value (int64 or float64). Two atoms are equal iff their
// payloads compare equal with ==.
type Atom struct {
	value interface{}
}

// NewAtom wraps a string, int64, or float64 as an Atom. Any other
// payload type is accepted but will never compare equal to anything
// produced by the parser or arithmetic evaluator.
func NewAtom(value interface{}) *Atom {
	return &Atom{value: value}
}

// Value returns the underlying Go value (string, int64, or float64).
func (a *Atom) Value() interface{} { return a.value }

// IsSymbol reports whether the atom's payload is a string.
func (a *Atom) IsSymbol() bool {
	_, ok := a.value.(string)
	return ok
}

// IsNumber reports whether the atom's payload is numeric.
func (a *Atom) IsNumber() bool {
	switch a.value.(type) {
	case int64, float64:
		return true
	default:
		return false
	}
}

// Float64 returns the atom's numeric payload as a float64 and true, or
// 0 and false if the atom is not numeric.
func (a *Atom) Float64() (float64, bool) {
	switch v := a.value.(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func (a *Atom) String() string {
	switch v := a.value.(type) {
	case float64:
		s := strconv.FormatFloat(v, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Equal reports value equality between two atoms.
func (a *Atom) Equal(other Term) bool {
	o, ok := other.(*Atom)
	return ok && a.value == o.value
}

// IsVar always returns false for atoms.
func (a *Atom) IsVar() bool { return false }

// Variable is a logic variable identified by its display name.
// Uppercase-initial and underscore-initial names are variables per
// the surface syntax; identity is the name itself (see the renamer in
// rename.go for how clause-local variables are kept hygienic).
type Variable struct {
	name string
}

// NewVariable wraps a name as a Variable.
func NewVariable(name string) *Variable {
	return &Variable{name: name}
}

// Name returns the variable's display name.
func (v *Variable) Name() string { return v.name }

func (v *Variable) String() string { return v.name }

// Equal reports whether two variables share the same name. Name
// identity is the whole of variable identity in this representation
// (see SPEC_FULL.md §9 on the renaming-hygiene open question).
func (v *Variable) Equal(other Term) bool {
	o, ok := other.(*Variable)
	return ok && v.name == o.name
}

// IsVar always returns true for variables.
func (v *Variable) IsVar() bool { return true }

// Compound is a functor applied to an ordered tuple of argument terms.
// The functor may be the empty string only as the parser's rule
// encoding (see Parser.parseParenForm and parser.go's ClauseFromTerm).
type Compound struct {
	functor string
	args    []Term
}

// NewCompound builds a Compound from a functor and its arguments.
func NewCompound(functor string, args ...Term) *Compound {
	return &Compound{functor: functor, args: args}
}

// Functor returns the compound's functor.
func (c *Compound) Functor() string { return c.functor }

// Args returns the compound's arguments. Callers must not mutate the
// returned slice.
func (c *Compound) Args() []Term { return c.args }

// Arity returns the number of arguments.
func (c *Compound) Arity() int { return len(c.args) }

func (c *Compound) String() string {
	if len(c.args) == 0 {
		return "(" + c.functor + ")"
	}
	parts := make([]string, len(c.args))
	for i, a := range c.args {
		parts[i] = a.String()
	}
	return "(" + c.functor + " " + strings.Join(parts, " ") + ")"
}

// Equal reports structural equality: same functor, same arity, and
// pairwise-equal arguments.
func (c *Compound) Equal(other Term) bool {
	o, ok := other.(*Compound)
	if !ok || c.functor != o.functor || len(c.args) != len(o.args) {
		return false
	}
	for i := range c.args {
		if !c.args[i].Equal(o.args[i]) {
			return false
		}
	}
	return true
}

// IsVar always returns false for compounds.
func (c *Compound) IsVar() bool { return false }

// List is an ordered tuple of elements plus an optional tail. A proper
// list has a nil tail; an improper (partial) list has a non-nil tail,
// typically a Variable. The empty list is a List with no elements and
// no tail.
type List struct {
	elements []Term
	tail     Term // nil for a proper list
}

// NewList builds a proper list from the given elements.
func NewList(elements ...Term) *List {
	return &List{elements: elements}
}

// NewPartialList builds a list with a tail (e.g. the parsed form of
// `[H | T]`).
func NewPartialList(elements []Term, tail Term) *List {
	return &List{elements: elements, tail: tail}
}

// Elements returns the list's elements. Callers must not mutate the
// returned slice.
func (l *List) Elements() []Term { return l.elements }

// Tail returns the list's tail, or nil for a proper list.
func (l *List) Tail() Term { return l.tail }

// IsEmpty reports whether this is the empty list `[]`.
func (l *List) IsEmpty() bool { return len(l.elements) == 0 && l.tail == nil }

func (l *List) String() string {
	if l.IsEmpty() {
		return "[]"
	}
	parts := make([]string, len(l.elements))
	for i, e := range l.elements {
		parts[i] = e.String()
	}
	body := strings.Join(parts, " ")
	if l.tail != nil {
		if body == "" {
			return "[| " + l.tail.String() + "]"
		}
		return "[" + body + " | " + l.tail.String() + "]"
	}
	return "[" + body + "]"
}

// Equal reports structural equality: same elements pairwise, and
// equal tails (both nil, or both present and equal).
func (l *List) Equal(other Term) bool {
	o, ok := other.(*List)
	if !ok || len(l.elements) != len(o.elements) {
		return false
	}
	for i := range l.elements {
		if !l.elements[i].Equal(o.elements[i]) {
			return false
		}
	}
	if l.tail == nil || o.tail == nil {
		return l.tail == nil && o.tail == nil
	}
	return l.tail.Equal(o.tail)
}

// IsVar always returns false for lists.
func (l *List) IsVar() bool { return false }

// collectVariables appends every distinct Variable occurring in term
// to out, preserving first-occurrence order, using seen to dedupe by
// name.
func collectVariables(term Term, seen map[string]bool, out *[]*Variable) {
	switch t := term.(type) {
	case *Variable:
		if !seen[t.name] {
			seen[t.name] = true
			*out = append(*out, t)
		}
	case *Compound:
		for _, a := range t.args {
			collectVariables(a, seen, out)
		}
	case *List:
		for _, e := range t.elements {
			collectVariables(e, seen, out)
		}
		if t.tail != nil {
			collectVariables(t.tail, seen, out)
		}
	}
}

// CollectVariables returns every distinct Variable occurring in term,
// in first-occurrence order.
func CollectVariables(term Term) []*Variable {
	var out []*Variable
	collectVariables(term, make(map[string]bool), &out)
	return out
}
