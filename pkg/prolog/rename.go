package prolog

import (
	"strconv"
	"sync/atomic"
)

// Renamer produces fresh copies of clauses, replacing every variable
// with a uniquely-suffixed variable so that one clause can be reused
// across a proof without its variables colliding with the query's, or
// with those of an ancestor stack frame.
//
// The suffix counter is an atomic int64, not because any single proof
// is concurrent (spec.md §5 keeps SLD search strictly single-threaded)
// but because the batch query runner (internal/parallel) may have several
// proofs renaming clauses against the same engine at once; the counter
// has to stay globally unique across all of them.
type Renamer struct {
	counter int64
}

// NewRenamer returns a Renamer whose counter starts at zero.
func NewRenamer() *Renamer {
	return &Renamer{}
}

// Rename returns a fresh copy of clause in which every Variable X has
// been replaced by a Variable named X_k, where k is a counter value
// unique to this call and consistent within it (the same source name
// always maps to the same fresh name inside one Rename call). Atoms
// and the Compound/List structure are otherwise preserved.
func (r *Renamer) Rename(clause *Clause) *Clause {
	k := atomic.AddInt64(&r.counter, 1)
	suffix := "_" + strconv.FormatInt(k, 10)
	mapping := map[string]*Variable{}

	head := renameTerm(clause.Head, suffix, mapping)
	body := make([]Term, len(clause.Body))
	for i, g := range clause.Body {
		body[i] = renameTerm(g, suffix, mapping)
	}
	return &Clause{Head: head, Body: body}
}

func renameTerm(term Term, suffix string, mapping map[string]*Variable) Term {
	switch t := term.(type) {
	case *Atom:
		return t
	case *Variable:
		if fresh, ok := mapping[t.name]; ok {
			return fresh
		}
		fresh := NewVariable(t.name + suffix)
		mapping[t.name] = fresh
		return fresh
	case *Compound:
		args := make([]Term, len(t.args))
		for i, a := range t.args {
			args[i] = renameTerm(a, suffix, mapping)
		}
		return &Compound{functor: t.functor, args: args}
	case *List:
		elems := make([]Term, len(t.elements))
		for i, e := range t.elements {
			elems[i] = renameTerm(e, suffix, mapping)
		}
		var tail Term
		if t.tail != nil {
			tail = renameTerm(t.tail, suffix, mapping)
		}
		return &List{elements: elems, tail: tail}
	default:
		return term
	}
}
