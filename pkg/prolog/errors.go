package prolog

// ParseError reports malformed surface syntax: an unexpected token, an
// unterminated compound or list, or a malformed number. Only the
// lexer's unexpected-character errors carry a byte position; parser
// errors name the offending token but not where it occurs. A
// ParseError never propagates out of the engine or unifier, only out
// of parsing.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string { return "parse error: " + e.Message }
