package lexer

import (
	"fmt"
)

type LexError struct {
	Message string
}

func newUnexpectedError(unexpected byte) *LexError {
	return &LexError{
		Message: fmt.Sprintf("unexpected character: '%s'", string(unexpected)),
	}
}

func newUnterminatedCommentError() *LexError {
	return &LexError{
		Message: "unterminated comment: expected '}'",
	}
}

func (e *LexError) Error() string {
	return e.Message
}

// Lexer turns Pascal source text into tokens, one per NextToken call.
// Once the input is exhausted every further call yields EOF.
type Lexer struct {
	buf []byte
	pos int
}

func NewLexer(buf []byte) *Lexer {
	return &Lexer{
		buf: buf,
		pos: 0,
	}
}

// NextToken scans and returns the next token. After the end of input it
// keeps returning EOF tokens forever.
func (l *Lexer) NextToken() (Token, error) {
	for l.hasChars() {
		switch {
		case l.isCurrSkippable():
			l.advance()

		case l.read() == '{':
			l.advance()
			if err := l.skipComment(); err != nil {
				return Token{}, err
			}

		case l.isCurrDigit():
			return l.processNumber(), nil

		case l.isCurrIdentifier():
			return l.processIdentifier(), nil

		case l.isCurrPunctuation():
			return l.processPunctuation()

		default:
			return Token{}, newUnexpectedError(l.read())
		}
	}

	return Token{Kind: EOF, Value: EOF.String()}, nil
}

// Tokenize drains the input into a token slice ending with a single EOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	tokens := make([]Token, 0)

	for {
		token, err := l.NextToken()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, token)
		if token.Kind == EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) isCurrIdentifier() bool {
	return (l.read() >= 'a' && l.read() <= 'z') || (l.read() >= 'A' && l.read() <= 'Z') || l.read() == '_'
}

func (l *Lexer) isCurrDigit() bool {
	return l.read() >= '0' && l.read() <= '9'
}

func (l *Lexer) isCurrPunctuation() bool {
	switch l.read() {
	case '+', '-', '*', '/', '(', ')', ':', ';', '.', ',':
		return true
	}
	return false
}

func (l *Lexer) isCurrSkippable() bool {
	switch l.read() {
	case ' ', '\t', '\n', '\r':
		return true
	}

	return false
}

func (l *Lexer) skipComment() error {
	for l.hasChars() {
		if l.read() == '}' {
			l.advance()
			return nil
		}
		l.advance()
	}

	return newUnterminatedCommentError()
}

func (l *Lexer) processIdentifier() Token {
	identifierBuf := make([]byte, 0)
	identifierBuf = append(identifierBuf, l.read())
	l.advance()

	for l.hasChars() {
		if !l.isCurrIdentifier() && !l.isCurrDigit() {
			break
		}

		identifierBuf = append(identifierBuf, l.read())
		l.advance()
	}
	identifier := string(identifierBuf)

	if kind, ok := LookupKeyword(identifier); ok {
		return Token{
			Kind:  kind,
			Value: identifier,
		}
	}

	return Token{
		Kind:  IDENT,
		Value: identifier,
	}
}

func (l *Lexer) processNumber() Token {
	numberBuf := make([]byte, 0)
	numberBuf = append(numberBuf, l.read())
	l.advance()

	var isReal bool
	for l.hasChars() {
		if !isReal && l.read() == '.' {
			// Only a digit run after the dot makes it a decimal point.
			// A bare trailing dot belongs to the program terminator.
			if !l.hasNext() || !isDigit(l.next()) {
				break
			}

			isReal = true
			numberBuf = append(numberBuf, l.read())
			l.advance()
			continue
		}

		if !l.isCurrDigit() {
			break
		}

		numberBuf = append(numberBuf, l.read())
		l.advance()
	}

	if isReal {
		return Token{
			Kind:  REAL_CONST,
			Value: string(numberBuf),
		}
	}

	return Token{
		Kind:  INTEGER_CONST,
		Value: string(numberBuf),
	}
}

func (l *Lexer) processColon() Token {
	l.advance()
	if l.hasChars() && l.read() == '=' {
		l.advance()
		return Token{
			Kind:  ASSIGN,
			Value: ":=",
		}
	}

	return Token{
		Kind:  COLON,
		Value: ":",
	}
}

func (l *Lexer) processPunctuation() (Token, error) {
	switch ch := l.read(); ch {
	case ':':
		return l.processColon(), nil
	case '+':
		l.advance()
		return Token{Kind: PLUS, Value: "+"}, nil
	case '-':
		l.advance()
		return Token{Kind: MINUS, Value: "-"}, nil
	case '*':
		l.advance()
		return Token{Kind: MUL, Value: "*"}, nil
	case '/':
		l.advance()
		return Token{Kind: REAL_DIV, Value: "/"}, nil
	case '(':
		l.advance()
		return Token{Kind: LPAREN, Value: "("}, nil
	case ')':
		l.advance()
		return Token{Kind: RPAREN, Value: ")"}, nil
	case ';':
		l.advance()
		return Token{Kind: SEMI, Value: ";"}, nil
	case '.':
		l.advance()
		return Token{Kind: DOT, Value: "."}, nil
	case ',':
		l.advance()
		return Token{Kind: COMMA, Value: ","}, nil
	default:
		return Token{}, newUnexpectedError(ch)
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func (l *Lexer) hasChars() bool {
	return l.pos < len(l.buf)
}

func (l *Lexer) hasNext() bool {
	return l.pos+1 < len(l.buf)
}

func (l *Lexer) advance()   { l.pos++ }
func (l *Lexer) next() byte { return l.buf[l.pos+1] }
func (l *Lexer) read() byte { return l.buf[l.pos] }
