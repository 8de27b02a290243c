// Package repl implements the interactive line-oriented shell spec.md
// §6 describes, plus the batch query runner and file loader built on
// top of it. None of this package's I/O participates in resolution
// semantics — it only assembles complete terms for the parser and
// iterates solution streams for display, exactly as spec.md's scope
// note requires.
package repl

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dagfinndybvig/microPROLOG/internal/config"
	"github.com/dagfinndybvig/microPROLOG/internal/parallel"
	"github.com/dagfinndybvig/microPROLOG/pkg/prolog"
)

const continuationPrompt = "... "

const helpText = `commands:
  help              show this message
  quit, exit        leave the interpreter
  listing           print every clause currently loaded
  clear             remove every clause
  consult <file>    load clauses from a file (alias: load)
  save <file>       write every clause to a file
  batch <file>      run each query in a file concurrently
  ?<goals>          pose a query, e.g. ?(parent tom X)
  <clause>.         assert a fact or rule, e.g. (parent tom bob).`

// lineSource is the subset of *readline.Instance the shell depends on,
// so tests can drive dispatch logic against a fake.
type lineSource interface {
	Readline() (string, error)
	SetPrompt(string)
	Close() error
}

// Shell is the interactive REPL: one database, queried through a fresh
// engine per query, and a readline-backed line source feeding the
// command dispatcher.
type Shell struct {
	cfg      *config.Config
	db       *prolog.Database
	reporter Reporter
	log      *logrus.Logger
	out      io.Writer
	rl       lineSource
}

// New constructs a Shell from cfg, creating its readline instance with
// history persisted to cfg.HistoryFile.
func New(cfg *config.Config, db *prolog.Database, out io.Writer) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, errors.Wrap(err, "initializing readline")
	}

	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return &Shell{
		cfg:      cfg,
		db:       db,
		reporter: NewTextReporter(out),
		log:      log,
		out:      out,
		rl:       rl,
	}, nil
}

// Close releases the readline instance.
func (s *Shell) Close() error { return s.rl.Close() }

// Run reads and dispatches lines until quit/exit or end of file.
func (s *Shell) Run() error {
	defer s.Close()
	for {
		s.rl.SetPrompt(s.cfg.Prompt)
		line, err := readLogicalInput(s.rl)
		if err == io.EOF {
			fmt.Fprintln(s.out, "")
			return nil
		}
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return err
		}

		done, err := s.dispatch(strings.TrimSpace(line))
		if err != nil {
			s.reportError(err)
		}
		if done {
			return nil
		}
	}
}

// readLogicalInput reads one line from src, and — per spec.md §6 —
// keeps reading continuation lines (with the "... " prompt) as long as
// the accumulated input starts with `(` and does not yet end in `.`.
func readLogicalInput(src lineSource) (string, error) {
	first, err := src.Readline()
	if err != nil {
		return "", err
	}

	trimmed := strings.TrimSpace(first)
	if !strings.HasPrefix(trimmed, "(") || strings.HasSuffix(trimmed, ".") {
		return first, nil
	}

	var b strings.Builder
	b.WriteString(first)
	src.SetPrompt(continuationPrompt)
	defer src.SetPrompt("")

	for {
		next, err := src.Readline()
		if err != nil {
			return b.String(), err
		}
		b.WriteString("\n")
		b.WriteString(next)
		if strings.HasSuffix(strings.TrimSpace(next), ".") {
			return b.String(), nil
		}
	}
}

// dispatch handles one complete logical input, reporting whether the
// shell should exit.
func (s *Shell) dispatch(line string) (bool, error) {
	switch {
	case line == "":
		return false, nil

	case line == "help":
		fmt.Fprintln(s.out, helpText)
		return false, nil

	case line == "quit" || line == "exit":
		return true, nil

	case line == "listing":
		s.listing()
		return false, nil

	case line == "clear":
		s.db.Clear()
		return false, nil

	case strings.HasPrefix(line, "consult "), strings.HasPrefix(line, "load "):
		path := strings.TrimSpace(strings.SplitN(line, " ", 2)[1])
		n, err := Consult(path, s.db)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "loaded %d clause(s)\n", n)
		return false, nil

	case strings.HasPrefix(line, "save "):
		path := strings.TrimSpace(strings.SplitN(line, " ", 2)[1])
		return false, Save(path, s.db)

	case strings.HasPrefix(line, "show "):
		// Visualization is out of scope (spec.md §1); show is
		// accepted syntactically but only reports what it would
		// have rendered.
		fmt.Fprintln(s.out, "show: no visualizer configured")
		return false, nil

	case strings.HasPrefix(line, "batch "):
		path := strings.TrimSpace(strings.SplitN(line, " ", 2)[1])
		return false, s.runBatchFile(path)

	case strings.HasPrefix(line, "?"):
		return false, s.runQuery(strings.TrimPrefix(line, "?"))

	default:
		clauseText := strings.TrimSuffix(strings.TrimSpace(line), ".")
		clause, err := prolog.ParseClauseText(clauseText)
		if err != nil {
			return false, err
		}
		s.db.Add(clause)
		return false, nil
	}
}

func (s *Shell) listing() {
	for _, clause := range s.db.Clauses() {
		fmt.Fprintln(s.out, clause.String()+".")
	}
}

func (s *Shell) runQuery(text string) error {
	goals, err := prolog.ParseQueryText(text)
	if err != nil {
		return err
	}

	engine := prolog.NewEngine(s.db)
	engine.SetDepthLimit(s.cfg.Depth)

	vars := CollectGoalVariables(goals)
	stream := engine.Solve(goals, prolog.EmptySubstitution())
	defer stream.Close()

	if !stream.Next() {
		s.reporter.NoSolutions()
		return nil
	}
	for {
		s.reporter.Solution(vars, stream.Solution())
		if !stream.Next() {
			s.reporter.NoMoreSolutions()
			return nil
		}
		if !confirmMore(s.rl) {
			return nil
		}
	}
}

// confirmMore asks the user, via src, whether to backtrack into the
// next already-computed solution: spec.md §7 prompts with `;` and
// treats any reply other than `n` as "show the next solution"; `n`
// (or EOF) stops the search without reporting NoMoreSolutions, since
// the stream may still hold solutions the user simply chose not to see.
func confirmMore(src lineSource) bool {
	src.SetPrompt("; ")
	defer src.SetPrompt("")
	line, err := src.Readline()
	if err != nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(line)) != "n"
}

// runBatchFile parses every query in path (one `?<goals>` line each,
// blank lines and `%` comments ignored) and runs them concurrently
// with the batch query runner, printing each query's solutions in the
// file's original order.
func (s *Shell) runBatchFile(path string) error {
	queries, err := parseBatchFile(path)
	if err != nil {
		return err
	}

	items := make([]parallel.Query, len(queries))
	for i, q := range queries {
		items[i] = parallel.Query{Goals: q}
	}

	results, err := parallel.RunBatch(context.Background(), s.db, items, s.cfg.Workers)
	if err != nil {
		return err
	}

	for _, r := range results {
		vars := CollectGoalVariables(queries[r.Index])
		fmt.Fprintf(s.out, "query %d:\n", r.Index+1)
		if len(r.Solutions) == 0 {
			s.reporter.NoSolutions()
			continue
		}
		for _, sol := range r.Solutions {
			s.reporter.Solution(vars, sol)
		}
	}
	return nil
}

// reportError prints the single-line diagnostic spec.md §7 requires
// for every ordinary user. The full causal chain (via pkg/errors'
// wrapping) only surfaces through the logrus entry, which is only
// emitted at Debug level — i.e. only under --verbose.
func (s *Shell) reportError(err error) {
	s.log.WithError(err).Debug("command failed")
	fmt.Fprintln(s.out, "error: "+err.Error())
}

// CollectGoalVariables returns the distinct variables across a
// conjunction of goals, in first-occurrence order, for display
// against a query's solution substitution.
func CollectGoalVariables(goals []prolog.Term) []*prolog.Variable {
	seen := map[string]bool{}
	var out []*prolog.Variable
	for _, g := range goals {
		for _, v := range prolog.CollectVariables(g) {
			if !seen[v.Name()] {
				seen[v.Name()] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// parseBatchFile reads one query per non-blank, non-comment line: a
// `?<goals>` line (the leading `?` is optional) for each independent
// query to run.
func parseBatchFile(path string) ([][]prolog.Term, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	var queries [][]prolog.Term
	for i, line := range strings.Split(string(raw), "\n") {
		trimmed := strings.TrimSpace(stripComments(line))
		if trimmed == "" {
			continue
		}
		trimmed = strings.TrimPrefix(trimmed, "?")
		goals, err := prolog.ParseQueryText(trimmed)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: line %d", path, i+1)
		}
		queries = append(queries, goals)
	}
	return queries, nil
}
