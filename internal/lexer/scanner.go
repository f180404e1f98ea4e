package lexer

// TokenScanner is the parser's view of a token source: a fallible pull
// interface with no rewind. The parser buffers its own one-token lookahead.
type TokenScanner interface {
	Read() (Token, error)
}

// Read makes the Lexer itself a TokenScanner, streaming tokens straight
// from the source text.
func (l *Lexer) Read() (Token, error) {
	return l.NextToken()
}

// SimpleTokenScanner serves tokens from a pre-lexed slice. Past the end it
// keeps producing EOF, matching the lexer's behavior on exhausted input.
type SimpleTokenScanner struct {
	tokens []Token

	pos int
}

func NewTokenScanner(tokens []Token) *SimpleTokenScanner {
	return &SimpleTokenScanner{
		tokens: tokens,
	}
}

func (s *SimpleTokenScanner) Read() (Token, error) {
	if s.pos >= len(s.tokens) {
		return Token{Kind: EOF, Value: EOF.String()}, nil
	}

	token := s.tokens[s.pos]
	s.pos++

	return token, nil
}
