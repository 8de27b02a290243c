package prolog

// DefaultDepthLimit is the recursion-depth bound used when a caller
// does not supply one explicitly.
const DefaultDepthLimit = 1000

// Engine runs SLD resolution with chronological backtracking over a
// Database, producing solutions as a lazy Stream. Exactly one search
// is ever in flight per Engine.Solve call; the Engine itself holds no
// mutable search state between calls (the Renamer's counter is the
// only state carried across calls, and it is safe for concurrent use
// — see rename.go).
type Engine struct {
	db         *Database
	builtins   *Builtins
	renamer    *Renamer
	depthLimit int
}

// NewEngine returns an Engine over db with the default depth limit and
// the standard built-in registry.
func NewEngine(db *Database) *Engine {
	return &Engine{
		db:         db,
		builtins:   NewBuiltins(),
		renamer:    NewRenamer(),
		depthLimit: DefaultDepthLimit,
	}
}

// SetDepthLimit overrides the recursion-depth bound.
func (e *Engine) SetDepthLimit(limit int) { e.depthLimit = limit }

// Database returns the engine's underlying clause database.
func (e *Engine) Database() *Database { return e.db }

// Stream is a lazy, pull-based sequence of solutions, implemented as a
// cooperative producer goroutine: Solve starts one goroutine running
// the depth-first search and sends each solution on an unbuffered
// channel, blocking (suspended) until Next is called again. This is
// the coroutine-style producer spec.md §5 calls for — suspension
// points are exactly after a solution is emitted and at every
// recursive re-entry the consumer triggers by pulling the next value
// — so drawing only k solutions genuinely explores at most k+1
// depth-first branches past the last one taken (spec.md §8, property
// 7); nothing beyond the search for the next solution ever runs.
//
// A Stream not drained to completion holds one goroutine parked on a
// channel send; callers that stop early should call Close to release
// it (a zero-cost, resource-free cancellation per spec.md §5 — no
// external resource is held, only a goroutine that would otherwise
// leak).
type Stream struct {
	ch      chan *Substitution
	done    chan struct{}
	current *Substitution
}

// Next advances the stream, running the search until it produces a
// solution or exhausts every alternative. It returns false once no
// more solutions exist.
func (s *Stream) Next() bool {
	v, ok := <-s.ch
	if !ok {
		return false
	}
	s.current = v
	return true
}

// Solution returns the substitution most recently produced by Next.
func (s *Stream) Solution() *Substitution { return s.current }

// Close abandons the stream, letting its producer goroutine exit at
// its next suspension point instead of running the search to
// completion. Safe to call more than once, and safe to omit if the
// stream was drained to exhaustion (Next returned false).
func (s *Stream) Close() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

// Solve proves goals under subst and returns every solution as a lazy
// Stream. Depth-first, left-to-right, with no cut: clauses are tried
// in database insertion order and a rule's body goals execute before
// whatever goals followed the rule call (spec.md §4.6).
func (e *Engine) Solve(goals []Term, subst *Substitution) *Stream {
	s := &Stream{ch: make(chan *Substitution), done: make(chan struct{})}
	go func() {
		defer close(s.ch)
		e.solve(goals, subst, 0, s)
	}()
	return s
}

// Query is a convenience wrapper that solves a single goal starting
// from an empty substitution.
func (e *Engine) Query(goal Term) *Stream {
	return e.Solve([]Term{goal}, EmptySubstitution())
}

// solve performs one depth-first recursive step, emitting solutions
// on s.ch. It returns false as soon as the consumer has signaled
// abandonment via s.done, which unwinds the whole call stack without
// exploring any further alternative.
func (e *Engine) solve(goals []Term, subst *Substitution, depth int, s *Stream) bool {
	if depth > e.depthLimit {
		return true
	}

	if len(goals) == 0 {
		select {
		case s.ch <- subst:
			return true
		case <-s.done:
			return false
		}
	}

	goal := subst.Apply(goals[0])
	rest := goals[1:]

	if c, ok := goal.(*Compound); ok && e.builtins.IsBuiltin(c.Functor()) {
		for _, next := range e.builtins.Evaluate(goal, subst) {
			if !e.solve(rest, next, depth+1, s) {
				return false
			}
		}
		return true
	}

	for _, clause := range e.db.Retrieve(goal) {
		renamed := e.renamer.Rename(clause)
		next, ok := Unify(goal, renamed.Head, subst)
		if !ok {
			continue
		}
		newGoals := make([]Term, 0, len(renamed.Body)+len(rest))
		newGoals = append(newGoals, renamed.Body...)
		newGoals = append(newGoals, rest...)
		if !e.solve(newGoals, next, depth+1, s) {
			return false
		}
	}
	return true
}
