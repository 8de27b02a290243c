package parallel

import (
	"context"
	"sync"

	"github.com/dagfinndybvig/microPROLOG/pkg/prolog"
)

// Query is one independent query to run in a batch: a goal list (a
// conjunction, per spec.md's query syntax) and how many solutions to
// collect before moving on (0 means collect every solution).
type Query struct {
	Goals []prolog.Term
	Limit int
}

// Result is one query's outcome, tagged with its position in the
// original batch so results can be reported back in script order even
// though workers finish out of order.
type Result struct {
	Index     int
	Solutions []*prolog.Substitution
}

// RunBatch evaluates queries concurrently against db using a
// fixed-size Pool of the given width (0 = runtime.NumCPU()), and
// returns one Result per query, ordered by each query's original
// index regardless of completion order.
//
// db is read, never mutated: every query is solved by one shared
// *prolog.Engine over db, so all queries draw renamed-variable
// suffixes from the same Renamer counter.
// Callers must not add or retract clauses on db while RunBatch is in
// flight, the same contract spec.md §5 places on a single in-flight
// query.
func RunBatch(ctx context.Context, db *prolog.Database, queries []Query, workers int) ([]Result, error) {
	pool := NewPool(workers)
	defer pool.Shutdown()

	engine := prolog.NewEngine(db)
	results := make([]Result, len(queries))
	var wg sync.WaitGroup

	for i, q := range queries {
		i, q := i, q
		wg.Add(1)
		if err := pool.Submit(ctx, func() {
			defer wg.Done()
			results[i] = Result{Index: i, Solutions: solveOne(engine, q)}
		}); err != nil {
			wg.Done()
			return nil, err
		}
	}

	wg.Wait()
	return results, nil
}

func solveOne(engine *prolog.Engine, q Query) []*prolog.Substitution {
	stream := engine.Solve(q.Goals, prolog.EmptySubstitution())
	defer stream.Close()

	var out []*prolog.Substitution
	for stream.Next() {
		out = append(out, stream.Solution())
		if q.Limit > 0 && len(out) >= q.Limit {
			break
		}
	}
	return out
}
