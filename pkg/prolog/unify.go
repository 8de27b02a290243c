package prolog

// Unify attempts to make t1 and t2 structurally identical under subst,
// threading and returning a refined Substitution on success. It
// reports ok=false on failure, in which case the returned
// Substitution is meaningless and must be discarded — this is the
// engine's signal to prune the current search branch (spec.md §4.2,
// §4.6).
//
// Occurs-check is always performed: a variable is never bound to a
// term that (after walking) contains itself, so no cyclic term is
// ever admitted.
func Unify(t1, t2 Term, subst *Substitution) (*Substitution, bool) {
	t1 = walkTerm(t1, subst)
	t2 = walkTerm(t2, subst)

	if v1, ok := t1.(*Variable); ok {
		if v2, ok := t2.(*Variable); ok && v1.name == v2.name {
			return subst, true
		}
		if occurs(v1, t2, subst) {
			return subst, false
		}
		return subst.Bind(v1.name, t2), true
	}

	if v2, ok := t2.(*Variable); ok {
		if occurs(v2, t1, subst) {
			return subst, false
		}
		return subst.Bind(v2.name, t1), true
	}

	switch a1 := t1.(type) {
	case *Atom:
		a2, ok := t2.(*Atom)
		if !ok || a1.value != a2.value {
			return subst, false
		}
		return subst, true

	case *Compound:
		c2, ok := t2.(*Compound)
		if !ok || a1.functor != c2.functor || len(a1.args) != len(c2.args) {
			return subst, false
		}
		for i := range a1.args {
			var okArg bool
			subst, okArg = Unify(a1.args[i], c2.args[i], subst)
			if !okArg {
				return subst, false
			}
		}
		return subst, true

	case *List:
		l2, ok := t2.(*List)
		if !ok {
			return subst, false
		}
		return unifyLists(a1, l2, subst)

	default:
		return subst, false
	}
}

// walkTerm applies subst's walk to a variable, returning the term
// itself for any other shape. It does not recurse into compounds or
// lists — Unify re-walks each child as it reaches it, which keeps the
// algorithm from doing a full Apply before every comparison.
func walkTerm(t Term, subst *Substitution) Term {
	v, ok := t.(*Variable)
	if !ok {
		return t
	}
	bound := subst.Walk(v.name)
	if bound == nil {
		return v
	}
	return bound
}

// occurs reports whether v occurs in t (after walking t through
// subst), directly or nested inside a Compound/List.
func occurs(v *Variable, t Term, subst *Substitution) bool {
	t = walkTerm(t, subst)
	switch x := t.(type) {
	case *Variable:
		return x.name == v.name
	case *Compound:
		for _, a := range x.args {
			if occurs(v, a, subst) {
				return true
			}
		}
		return false
	case *List:
		for _, e := range x.elements {
			if occurs(v, e, subst) {
				return true
			}
		}
		if x.tail != nil {
			return occurs(v, x.tail, subst)
		}
		return false
	default:
		return false
	}
}

// unifyLists pairs up elements left-to-right up to the shorter list's
// length, then unifies whatever remains (extra elements plus tail) of
// each side against the other's tail, reconstructed as a List. Two
// empty lists with no tails unify trivially; an empty list with no
// tail never unifies with a nonempty list or a list with a tail.
func unifyLists(l1, l2 *List, subst *Substitution) (*Substitution, bool) {
	if l1.IsEmpty() || l2.IsEmpty() {
		return subst, l1.IsEmpty() && l2.IsEmpty()
	}

	n := len(l1.elements)
	if len(l2.elements) < n {
		n = len(l2.elements)
	}

	ok := true
	for i := 0; i < n; i++ {
		subst, ok = Unify(l1.elements[i], l2.elements[i], subst)
		if !ok {
			return subst, false
		}
	}

	rest1 := restAsTerm(l1.elements[n:], l1.tail)
	rest2 := restAsTerm(l2.elements[n:], l2.tail)
	return Unify(rest1, rest2, subst)
}

// restAsTerm reconstructs the remaining elements (with the original
// tail) as a single Term suitable for a final tail-to-tail Unify call.
func restAsTerm(elements []Term, tail Term) Term {
	if len(elements) == 0 {
		if tail != nil {
			return tail
		}
		return NewList()
	}
	return &List{elements: elements, tail: tail}
}
