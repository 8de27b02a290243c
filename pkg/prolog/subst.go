package prolog

// Substitution is a persistent mapping from variable names to terms.
// Bind returns a new Substitution; the receiver is left untouched,
// which is what lets each search branch hold its own binding set and
// makes backtracking as simple as discarding a branch's Substitution
// and trying the next alternative (see SPEC_FULL.md §9).
type Substitution struct {
	bindings map[string]Term
}

// EmptySubstitution returns a Substitution with no bindings.
func EmptySubstitution() *Substitution {
	return &Substitution{bindings: map[string]Term{}}
}

// Bind returns a new Substitution extending s with name bound to term.
// It does not reject a binding of a variable to itself; Unify screens
// that case before it calls Bind.
func (s *Substitution) Bind(name string, term Term) *Substitution {
	next := make(map[string]Term, len(s.bindings)+1)
	for k, v := range s.bindings {
		next[k] = v
	}
	next[name] = term
	return &Substitution{bindings: next}
}

// Walk chases the binding chain for name through variable-to-variable
// hops until it reaches a non-variable term or an unbound variable.
// It returns nil if name is unbound.
func (s *Substitution) Walk(name string) Term {
	term, ok := s.bindings[name]
	if !ok {
		return nil
	}
	for {
		v, isVar := term.(*Variable)
		if !isVar {
			return term
		}
		next, bound := s.bindings[v.name]
		if !bound {
			return term
		}
		term = next
	}
}

// Apply deep-rewrites term under s: atoms pass through unchanged,
// variables are walked (and the result recursively applied), and
// compounds/lists are rebuilt with every child applied. This
// terminates because the unifier's occurs-check forbids any bound
// cycle from existing in the first place.
func (s *Substitution) Apply(term Term) Term {
	switch t := term.(type) {
	case *Atom:
		return t
	case *Variable:
		bound := s.Walk(t.name)
		if bound == nil {
			return t
		}
		return s.Apply(bound)
	case *Compound:
		args := make([]Term, len(t.args))
		for i, a := range t.args {
			args[i] = s.Apply(a)
		}
		return &Compound{functor: t.functor, args: args}
	case *List:
		elems := make([]Term, len(t.elements))
		for i, e := range t.elements {
			elems[i] = s.Apply(e)
		}
		var tail Term
		if t.tail != nil {
			tail = s.Apply(t.tail)
		}
		return &List{elements: elems, tail: tail}
	default:
		return term
	}
}

// Len returns the number of bindings held by s.
func (s *Substitution) Len() int { return len(s.bindings) }
