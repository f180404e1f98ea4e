package lexer

import (
	"fmt"
	"strings"
)

type TokenKind int

const (
	EOF TokenKind = iota

	INTEGER_CONST
	REAL_CONST

	IDENT

	PLUS     // +
	MINUS    // -
	MUL      // *
	REAL_DIV // /

	ASSIGN // :=

	LPAREN // (
	RPAREN // )

	SEMI  // ;
	COLON // :
	COMMA // ,
	DOT   // .

	PROGRAM
	VAR
	BEGIN
	END
	INTEGER
	REAL
	INTEGER_DIV // div
	PROCEDURE
)

func (tk TokenKind) String() string {
	switch tk {
	case EOF:
		return "EOF"
	case INTEGER_CONST:
		return "INTEGER_CONST"
	case REAL_CONST:
		return "REAL_CONST"
	case IDENT:
		return "IDENT"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case MUL:
		return "MUL"
	case REAL_DIV:
		return "REAL_DIV"
	case ASSIGN:
		return "ASSIGN"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case SEMI:
		return "SEMI"
	case COLON:
		return "COLON"
	case COMMA:
		return "COMMA"
	case DOT:
		return "DOT"
	case PROGRAM:
		return "PROGRAM"
	case VAR:
		return "VAR"
	case BEGIN:
		return "BEGIN"
	case END:
		return "END"
	case INTEGER:
		return "INTEGER"
	case REAL:
		return "REAL"
	case INTEGER_DIV:
		return "INTEGER_DIV"
	case PROCEDURE:
		return "PROCEDURE"
	default:
		panic(fmt.Sprintf("TokenKind.String(): received illegal token kind: %d", tk))
	}
}

// keywords maps the lower-cased spelling to its token kind.
// Pascal keywords are case-insensitive, so lookups fold first.
var keywords = map[string]TokenKind{
	"program":   PROGRAM,
	"var":       VAR,
	"begin":     BEGIN,
	"end":       END,
	"integer":   INTEGER,
	"real":      REAL,
	"div":       INTEGER_DIV,
	"procedure": PROCEDURE,
}

// LookupKeyword resolves an identifier spelling against the keyword set,
// case-insensitively. The second result reports whether it matched.
func LookupKeyword(name string) (TokenKind, bool) {
	kind, ok := keywords[strings.ToLower(name)]
	return kind, ok
}

type Token struct {
	Kind  TokenKind
	Value string
}

func (t Token) hasActualValue() bool {
	switch t.Kind {
	case INTEGER_CONST, REAL_CONST, IDENT:
		return true
	}

	return false
}

func (t Token) String() string {
	if !t.hasActualValue() {
		return fmt.Sprintf("%s()", t.Kind)
	}

	return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
}
