package prolog

import "sync"

// Clause is a fact (empty Body) or a rule (non-empty Body). Head is
// always a Compound. Clauses are immutable once constructed.
type Clause struct {
	Head Term
	Body []Term
}

// IsFact reports whether the clause has no body goals.
func (c *Clause) IsFact() bool { return len(c.Body) == 0 }

func (c *Clause) String() string {
	if c.IsFact() {
		return c.Head.String()
	}
	s := "(" + c.Head.String()
	for _, g := range c.Body {
		s += " " + g.String()
	}
	return s + ")"
}

// clauseFunctor returns the indexing key for a clause head, or ""
// (never a legal functor on its own) when the head is not a Compound
// — which cannot happen for a well-formed Clause, but Retrieve's
// defensive fallback (spec.md §4.3) still applies to the equivalent
// case of an un-indexed goal.
func clauseFunctor(head Term) (string, bool) {
	c, ok := head.(*Compound)
	if !ok {
		return "", false
	}
	return c.Functor(), true
}

// Database stores clauses in insertion order — which is also proof
// search order — and indexes them by head functor for retrieval. It
// is grounded on the reference engine's persistent, functor-indexed
// pldb store, adapted to carry full clauses (head + body) rather than
// ground-only fact rows.
//
// Database's mutating methods take a lock so that a REPL's readline
// goroutine and a concurrently-running batch query job (see
// internal/parallel's RunBatch) cannot corrupt the index if they are
// ever misused concurrently. This does not relax the caller contract
// in SPEC_FULL.md §5: a query must still be fully drained or abandoned
// before mutating the database it reads from.
type Database struct {
	mu      sync.RWMutex
	clauses []*Clause
	index   map[string][]*Clause
}

// NewDatabase returns an empty database.
func NewDatabase() *Database {
	return &Database{index: map[string][]*Clause{}}
}

// Add appends clause to the database and its functor index.
func (db *Database) Add(clause *Clause) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.clauses = append(db.clauses, clause)
	if functor, ok := clauseFunctor(clause.Head); ok {
		db.index[functor] = append(db.index[functor], clause)
	}
}

// Retrieve returns the clauses that might unify with goal, in
// insertion order: the indexed bucket for goal's functor if goal is a
// Compound whose functor is indexed, otherwise the full clause list.
// That full-list fallback is a defensive one — the engine only ever
// calls Retrieve with a Compound goal — and it is intentionally not
// an empty result for an unindexed functor: an unknown predicate still
// gets every clause as a unification candidate, each of which fails
// the functor check in Unify, so the net effect is correctly zero
// solutions, just by a less targeted path than the indexed case.
func (db *Database) Retrieve(goal Term) []*Clause {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if c, ok := goal.(*Compound); ok {
		if bucket, indexed := db.index[c.Functor()]; indexed {
			return bucket
		}
	}
	return append([]*Clause(nil), db.clauses...)
}

// Retract removes the first clause whose head unifies with pattern
// under a fresh empty substitution, rebuilding the index afterward.
// Reports whether a clause was removed.
func (db *Database) Retract(pattern Term) bool {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, clause := range db.clauses {
		if _, ok := Unify(clause.Head, pattern, EmptySubstitution()); ok {
			db.clauses = append(db.clauses[:i], db.clauses[i+1:]...)
			db.rebuildIndexLocked()
			return true
		}
	}
	return false
}

// Clear empties the database.
func (db *Database) Clear() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.clauses = nil
	db.index = map[string][]*Clause{}
}

// Len returns the number of clauses currently stored.
func (db *Database) Len() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.clauses)
}

// Clauses returns a snapshot of all clauses in insertion order.
func (db *Database) Clauses() []*Clause {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return append([]*Clause(nil), db.clauses...)
}

func (db *Database) rebuildIndexLocked() {
	db.index = map[string][]*Clause{}
	for _, clause := range db.clauses {
		if functor, ok := clauseFunctor(clause.Head); ok {
			db.index[functor] = append(db.index[functor], clause)
		}
	}
}
