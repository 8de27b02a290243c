package prolog

import "fmt"

// Parser is a recursive-descent reader over a token slice, producing
// Terms for the Lisp-shaped surface syntax spec.md §4.7 and §6
// describe: atoms, variables, numbers, `(functor arg...)` compounds,
// the rule-as-compound encoding `((head) (body)...)`, and
// `[e1 ... | tail]` lists.
type Parser struct {
	tokens []token
	pos    int
}

// NewParser returns a Parser over already-lexed tokens.
func NewParser(tokens []token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) current() token { return p.tokens[p.pos] }

func (p *Parser) advance() { p.pos++ }

func (p *Parser) expect(kind tokenKind, what string) error {
	if p.current().kind != kind {
		return &ParseError{Message: fmt.Sprintf("expected %s, got %s", what, p.current())}
	}
	p.advance()
	return nil
}

// ParseTerm parses a single term starting at the current token.
func (p *Parser) ParseTerm() (Term, error) {
	switch p.current().kind {
	case tokAtom:
		v := p.current().value
		p.advance()
		return NewAtom(v), nil

	case tokVariable:
		v := p.current().value
		p.advance()
		return NewVariable(v), nil

	case tokNumber:
		v, err := parseNumber(p.current().value)
		if err != nil {
			return nil, err
		}
		p.advance()
		return NewAtom(v), nil

	case tokLParen:
		return p.parseParenForm()

	case tokLBracket:
		return p.parseList()

	default:
		return nil, &ParseError{Message: fmt.Sprintf("unexpected token: %s", p.current())}
	}
}

// parseParenForm parses `(functor arg1 arg2 ...)`, or — when the form
// immediately opens with another parenthesized form — the rule
// encoding `((head) (body1) (body2) ...)`, returned as a Compound with
// the empty-string functor whose arguments are the head and body
// clauses (spec.md §4.7, §9).
func (p *Parser) parseParenForm() (Term, error) {
	p.advance() // consume '('

	if p.current().kind == tokRParen {
		return nil, &ParseError{Message: "empty compound term"}
	}

	if p.current().kind == tokLParen {
		var args []Term
		for p.current().kind != tokRParen {
			if p.current().kind == tokEOF {
				return nil, &ParseError{Message: "unexpected end of input in compound term"}
			}
			arg, err := p.ParseTerm()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		p.advance() // consume ')'
		return NewCompound("", args...), nil
	}

	if p.current().kind != tokAtom {
		return nil, &ParseError{Message: fmt.Sprintf("compound functor must be an atom, got %s", p.current())}
	}
	functor := p.current().value
	p.advance()

	var args []Term
	for p.current().kind != tokRParen {
		if p.current().kind == tokEOF {
			return nil, &ParseError{Message: "unexpected end of input in compound term"}
		}
		arg, err := p.ParseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	p.advance() // consume ')'
	return NewCompound(functor, args...), nil
}

// parseList parses `[]`, `[e1 e2 ...]`, or `[e1 ... | tail]`.
func (p *Parser) parseList() (Term, error) {
	p.advance() // consume '['

	if p.current().kind == tokRBracket {
		p.advance()
		return NewList(), nil
	}

	var elements []Term
	var tail Term

	for {
		if p.current().kind == tokRBracket {
			break
		}
		if p.current().kind == tokPipe {
			p.advance()
			t, err := p.ParseTerm()
			if err != nil {
				return nil, err
			}
			tail = t
			break
		}
		if p.current().kind == tokEOF {
			return nil, &ParseError{Message: "unexpected end of input in list"}
		}
		e, err := p.ParseTerm()
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}

	if err := p.expect(tokRBracket, "]"); err != nil {
		return nil, err
	}
	return NewPartialList(elements, tail), nil
}

// ParseComplete parses a single term and requires the token stream to
// be exhausted afterward.
func (p *Parser) ParseComplete() (Term, error) {
	term, err := p.ParseTerm()
	if err != nil {
		return nil, err
	}
	if p.current().kind != tokEOF {
		return nil, &ParseError{Message: fmt.Sprintf("unexpected tokens after term: %s", p.current())}
	}
	return term, nil
}

// ParseTermText lexes and parses text as a single complete term.
func ParseTermText(text string) (Term, error) {
	tokens, err := lex(text)
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).ParseComplete()
}

// ParseQueryText lexes text and parses it as a sequence of goal terms
// — the conjunctive query syntax `(g1 ...) (g2 ...)` spec.md §6
// describes — returning each top-level term in order.
func ParseQueryText(text string) ([]Term, error) {
	tokens, err := lex(text)
	if err != nil {
		return nil, err
	}
	p := NewParser(tokens)
	var goals []Term
	for p.current().kind != tokEOF {
		goal, err := p.ParseTerm()
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	if len(goals) == 0 {
		return nil, &ParseError{Message: "empty query"}
	}
	return goals, nil
}

// ClauseFromTerm converts a parsed term into a Clause, applying the
// rule-as-compound convention: a Compound with the empty functor whose
// first argument is itself a Compound is a rule (that first argument
// is the head, the rest are body goals); anything else is a fact.
func ClauseFromTerm(term Term) *Clause {
	if c, ok := term.(*Compound); ok && c.Functor() == "" && len(c.Args()) > 0 {
		if head, ok := c.Args()[0].(*Compound); ok {
			return &Clause{Head: head, Body: append([]Term(nil), c.Args()[1:]...)}
		}
	}
	return &Clause{Head: term}
}

// ParseClauseText parses clauseText (the content of a clause with its
// trailing `.` already stripped) into a Clause.
func ParseClauseText(clauseText string) (*Clause, error) {
	term, err := ParseTermText(clauseText)
	if err != nil {
		return nil, err
	}
	return ClauseFromTerm(term), nil
}
