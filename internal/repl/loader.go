package repl

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/dagfinndybvig/microPROLOG/pkg/prolog"
)

// stripComments removes every `%` line comment, leaving the newlines
// in place so clause positions are still meaningful in error messages.
func stripComments(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if idx := strings.IndexByte(line, '%'); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return strings.Join(lines, "\n")
}

// splitClauses splits text on `.` clause terminators. A `.` counts as
// a terminator unless it is immediately followed by a digit, which is
// the same rule the tokenizer uses to recognize a decimal point inside
// a number literal — this keeps `3.5` intact while still splitting
// `(age tom 30).` after the closing paren.
func splitClauses(text string) []string {
	var clauses []string
	var buf strings.Builder

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '.' && (i+1 >= len(text) || !isDigitByte(text[i+1])) {
			clauses = append(clauses, buf.String())
			buf.Reset()
			continue
		}
		buf.WriteByte(c)
	}
	if strings.TrimSpace(buf.String()) != "" {
		clauses = append(clauses, buf.String())
	}
	return clauses
}

func isDigitByte(c byte) bool { return c >= '0' && c <= '9' }

// Consult reads path as a clause file (spec.md §6's file format: UTF-8
// text, one clause per logical statement terminated by `.`, `%` line
// comments, blank lines ignored) and adds every clause it parses to
// db, in file order. The first parse error aborts loading and is
// returned wrapped with the offending clause's file position.
func Consult(path string, db *prolog.Database) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrapf(err, "consulting %s", path)
	}

	chunks := splitClauses(stripComments(string(raw)))
	count := 0
	for i, chunk := range chunks {
		trimmed := strings.TrimSpace(chunk)
		if trimmed == "" {
			continue
		}
		clause, err := prolog.ParseClauseText(trimmed)
		if err != nil {
			return count, errors.Wrapf(err, "%s: clause %d", path, i+1)
		}
		db.Add(clause)
		count++
	}
	return count, nil
}

// Save writes every clause currently in db to path, one per line in
// the surface syntax, preceded by a header comment, matching spec.md
// §6's `save` format.
func Save(path string, db *prolog.Database) error {
	var b strings.Builder
	b.WriteString("% saved by microPROLOG, ")
	b.WriteString(strconv.Itoa(db.Len()))
	b.WriteString(" clause(s)\n")
	for _, clause := range db.Clauses() {
		b.WriteString(clause.String())
		b.WriteString(".\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}
