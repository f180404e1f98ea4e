// Package parser builds an AST from a token stream by recursive descent
// with one token of lookahead.
//
// Grammar, loosest binding first:
//
//	program        : PROGRAM variable SEMI block DOT
//	block          : declarations compound_statement
//	declarations   : (VAR (variable_declaration SEMI)*)* (PROCEDURE ID SEMI block SEMI)*
//	variable_declaration : ID (COMMA ID)* COLON type_spec
//	type_spec      : INTEGER | REAL
//	compound_statement : BEGIN statement_list END
//	statement_list : statement (SEMI statement)*
//	statement      : compound_statement | assignment_statement | empty
//	assignment_statement : variable ASSIGN expr
//	expr           : term ((PLUS | MINUS) term)*
//	term           : factor ((MUL | INTEGER_DIV | REAL_DIV) factor)*
//	factor         : (PLUS | MINUS) factor | INTEGER_CONST | REAL_CONST
//	               | LPAREN expr RPAREN | variable
//	variable       : ID
package parser

import (
	"fmt"
	"strconv"

	"paslite/internal/ast"
	"paslite/internal/lexer"
)

type UnexpectedExpectedError struct {
	Unexpected lexer.Token
	Expected   lexer.TokenKind
}

func (e *UnexpectedExpectedError) Error() string {
	return fmt.Sprintf("unexpected token: '%s', expected: '%s'", e.Unexpected, e.Expected)
}

type UnexpectedExpectedManyError struct {
	Unexpected lexer.Token
	Expected   []lexer.TokenKind
}

func (e *UnexpectedExpectedManyError) Error() string {
	expectedKinds := make([]string, len(e.Expected))
	for i, kind := range e.Expected {
		expectedKinds[i] = kind.String()
	}
	return fmt.Sprintf("unexpected token: '%s', expected one of: '%s'", e.Unexpected, expectedKinds)
}

type Parser struct {
	scanner lexer.TokenScanner

	curr lexer.Token
}

func NewParser(scanner lexer.TokenScanner) *Parser {
	return &Parser{
		scanner: scanner,
		curr:    lexer.Token{Kind: lexer.EOF, Value: lexer.EOF.String()},
	}
}

// Parse consumes the whole token stream and returns the program root.
// Anything left over after the closing DOT is an error.
func (p *Parser) Parse() (*ast.ProgramStmt, error) {
	if err := p.read(); err != nil {
		return nil, err
	}

	program, err := p.parseProgram()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.EOF); err != nil {
		return nil, err
	}

	return program, nil
}

// ParseExpression parses a bare expr with no PROGRAM wrapper. It is the
// entry point for standalone expression evaluation and does not require
// the stream to be exhausted.
func (p *Parser) ParseExpression() (ast.Expr, error) {
	if err := p.read(); err != nil {
		return nil, err
	}

	return p.parseExpr()
}

func (p *Parser) parseProgram() (*ast.ProgramStmt, error) {
	if err := p.expect(lexer.PROGRAM); err != nil {
		return nil, err
	}
	if err := p.read(); err != nil {
		return nil, err
	}

	name, err := p.parseVariable()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	if err := p.read(); err != nil {
		return nil, err
	}

	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.DOT); err != nil {
		return nil, err
	}
	if err := p.read(); err != nil {
		return nil, err
	}

	return &ast.ProgramStmt{
		Name:  name.Name,
		Block: block,
	}, nil
}

func (p *Parser) parseBlock() (*ast.BlockStmt, error) {
	declarations, err := p.parseDeclarations()
	if err != nil {
		return nil, err
	}

	compound, err := p.parseCompoundStatement()
	if err != nil {
		return nil, err
	}

	return &ast.BlockStmt{
		Declarations: declarations,
		Compound:     compound,
	}, nil
}

func (p *Parser) parseDeclarations() ([]ast.Stmt, error) {
	declarations := make([]ast.Stmt, 0)

	for p.curr.Kind == lexer.VAR {
		if err := p.read(); err != nil {
			return nil, err
		}

		for p.curr.Kind == lexer.IDENT {
			varDecls, err := p.parseVariableDeclaration()
			if err != nil {
				return nil, err
			}
			declarations = append(declarations, varDecls...)

			if err := p.expect(lexer.SEMI); err != nil {
				return nil, err
			}
			if err := p.read(); err != nil {
				return nil, err
			}
		}
	}

	for p.curr.Kind == lexer.PROCEDURE {
		if err := p.read(); err != nil {
			return nil, err
		}

		name, err := p.parseVariable()
		if err != nil {
			return nil, err
		}

		if err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		if err := p.read(); err != nil {
			return nil, err
		}

		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}

		if err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		if err := p.read(); err != nil {
			return nil, err
		}

		declarations = append(declarations, &ast.ProcDeclStmt{
			Name:  name.Name,
			Block: block,
		})
	}

	return declarations, nil
}

// One declaration line can introduce several variables; each becomes its
// own VarDeclStmt sharing the same type spec.
func (p *Parser) parseVariableDeclaration() ([]ast.Stmt, error) {
	variables := make([]*ast.VarExpr, 0, 1)

	variable, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	variables = append(variables, variable)

	for p.curr.Kind == lexer.COMMA {
		if err := p.read(); err != nil {
			return nil, err
		}

		variable, err := p.parseVariable()
		if err != nil {
			return nil, err
		}
		variables = append(variables, variable)
	}

	if err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	if err := p.read(); err != nil {
		return nil, err
	}

	typeSpec, err := p.parseTypeSpec()
	if err != nil {
		return nil, err
	}

	declarations := make([]ast.Stmt, 0, len(variables))
	for _, variable := range variables {
		declarations = append(declarations, &ast.VarDeclStmt{
			Variable: variable,
			Type:     &ast.TypeSpec{Kind: typeSpec},
		})
	}

	return declarations, nil
}

func (p *Parser) parseTypeSpec() (ast.TypeKind, error) {
	switch p.curr.Kind {
	case lexer.INTEGER:
		if err := p.read(); err != nil {
			return 0, err
		}
		return ast.IntegerType, nil
	case lexer.REAL:
		if err := p.read(); err != nil {
			return 0, err
		}
		return ast.RealType, nil
	default:
		return 0, &UnexpectedExpectedManyError{
			Unexpected: p.curr,
			Expected:   []lexer.TokenKind{lexer.INTEGER, lexer.REAL},
		}
	}
}

func (p *Parser) parseCompoundStatement() (*ast.CompoundStmt, error) {
	if err := p.expect(lexer.BEGIN); err != nil {
		return nil, err
	}
	if err := p.read(); err != nil {
		return nil, err
	}

	statements, err := p.parseStatementList()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.END); err != nil {
		return nil, err
	}
	if err := p.read(); err != nil {
		return nil, err
	}

	return &ast.CompoundStmt{Statements: statements}, nil
}

func (p *Parser) parseStatementList() ([]ast.Stmt, error) {
	statement, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	statements := []ast.Stmt{statement}
	for p.curr.Kind == lexer.SEMI {
		if err := p.read(); err != nil {
			return nil, err
		}

		statement, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, statement)
	}

	return statements, nil
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.curr.Kind {
	case lexer.BEGIN:
		return p.parseCompoundStatement()
	case lexer.IDENT:
		return p.parseAssignmentStatement()
	default:
		return &ast.NoOpStmt{}, nil
	}
}

func (p *Parser) parseAssignmentStatement() (*ast.AssignStmt, error) {
	variable, err := p.parseVariable()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	if err := p.read(); err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.AssignStmt{
		Variable: variable,
		Value:    value,
	}, nil
}

func (p *Parser) parseVariable() (*ast.VarExpr, error) {
	if err := p.expect(lexer.IDENT); err != nil {
		return nil, err
	}

	name := p.curr.Value
	if err := p.read(); err != nil {
		return nil, err
	}

	return &ast.VarExpr{Name: name}, nil
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	result, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.curr.Kind == lexer.PLUS || p.curr.Kind == lexer.MINUS {
		op := p.curr.Kind
		if err := p.read(); err != nil {
			return nil, err
		}

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}

		result = &ast.BinaryExpr{
			Left:  result,
			Op:    op,
			Right: right,
		}
	}

	return result, nil
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	result, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.curr.Kind == lexer.MUL || p.curr.Kind == lexer.INTEGER_DIV || p.curr.Kind == lexer.REAL_DIV {
		op := p.curr.Kind
		if err := p.read(); err != nil {
			return nil, err
		}

		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}

		result = &ast.BinaryExpr{
			Left:  result,
			Op:    op,
			Right: right,
		}
	}

	return result, nil
}

func (p *Parser) parseFactor() (ast.Expr, error) {
	switch p.curr.Kind {
	case lexer.PLUS, lexer.MINUS:
		op := p.curr.Kind
		if err := p.read(); err != nil {
			return nil, err
		}

		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}

		return &ast.UnaryExpr{
			Op:    op,
			Right: right,
		}, nil

	case lexer.INTEGER_CONST:
		value, err := strconv.ParseInt(p.curr.Value, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid integer constant '%s': %w", p.curr.Value, err)
		}
		if err := p.read(); err != nil {
			return nil, err
		}

		return &ast.IntegerExpr{Value: int32(value)}, nil

	case lexer.REAL_CONST:
		value, err := strconv.ParseFloat(p.curr.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid real constant '%s': %w", p.curr.Value, err)
		}
		if err := p.read(); err != nil {
			return nil, err
		}

		return &ast.RealExpr{Value: value}, nil

	case lexer.LPAREN:
		if err := p.read(); err != nil {
			return nil, err
		}

		nested, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		if err := p.read(); err != nil {
			return nil, err
		}

		return nested, nil

	case lexer.IDENT:
		return p.parseVariable()

	default:
		return nil, &UnexpectedExpectedManyError{
			Unexpected: p.curr,
			Expected: []lexer.TokenKind{
				lexer.PLUS,
				lexer.MINUS,
				lexer.INTEGER_CONST,
				lexer.REAL_CONST,
				lexer.LPAREN,
				lexer.IDENT,
			},
		}
	}
}

func (p *Parser) expect(kind lexer.TokenKind) error {
	if p.curr.Kind != kind {
		return &UnexpectedExpectedError{
			Unexpected: p.curr,
			Expected:   kind,
		}
	}

	return nil
}

func (p *Parser) read() error {
	token, err := p.scanner.Read()
	if err != nil {
		return err
	}

	p.curr = token
	return nil
}
