package parser

import (
	"errors"
	"reflect"
	"testing"

	"paslite/internal/ast"
	"paslite/internal/lexer"
)

func parseExpr(t *testing.T, input string) ast.Expr {
	t.Helper()

	expression, err := NewParser(lexer.NewLexer([]byte(input))).ParseExpression()
	if err != nil {
		t.Fatalf("ParseExpression(%q) error: %v", input, err)
	}
	return expression
}

func parseProgram(t *testing.T, input string) *ast.ProgramStmt {
	t.Helper()

	program, err := NewParser(lexer.NewLexer([]byte(input))).Parse()
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", input, err)
	}
	return program
}

func TestParseSimpleConstant(t *testing.T) {
	scanner := lexer.NewTokenScanner([]lexer.Token{
		{Kind: lexer.INTEGER_CONST, Value: "4"},
		{Kind: lexer.EOF, Value: "EOF"},
	})

	got, err := NewParser(scanner).ParseExpression()
	if err != nil {
		t.Fatalf("ParseExpression() error: %v", err)
	}

	want := &ast.IntegerExpr{Value: 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseExpression() = %#v, want %#v", got, want)
	}
}

func TestAdditionIsLeftAssociative(t *testing.T) {
	got := parseExpr(t, "1 + 2 + 3 + 4")

	want := &ast.BinaryExpr{
		Left: &ast.BinaryExpr{
			Left: &ast.BinaryExpr{
				Left:  &ast.IntegerExpr{Value: 1},
				Op:    lexer.PLUS,
				Right: &ast.IntegerExpr{Value: 2},
			},
			Op:    lexer.PLUS,
			Right: &ast.IntegerExpr{Value: 3},
		},
		Op:    lexer.PLUS,
		Right: &ast.IntegerExpr{Value: 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tree = %#v, want %#v", got, want)
	}
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	got := parseExpr(t, "1 * (2 + 3 * 4)")

	want := &ast.BinaryExpr{
		Left: &ast.IntegerExpr{Value: 1},
		Op:   lexer.MUL,
		Right: &ast.BinaryExpr{
			Left: &ast.IntegerExpr{Value: 2},
			Op:   lexer.PLUS,
			Right: &ast.BinaryExpr{
				Left:  &ast.IntegerExpr{Value: 3},
				Op:    lexer.MUL,
				Right: &ast.IntegerExpr{Value: 4},
			},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tree = %#v, want %#v", got, want)
	}
}

func TestDivisionOperatorsStayDistinct(t *testing.T) {
	got := parseExpr(t, "7 div 2 / 4")

	want := &ast.BinaryExpr{
		Left: &ast.BinaryExpr{
			Left:  &ast.IntegerExpr{Value: 7},
			Op:    lexer.INTEGER_DIV,
			Right: &ast.IntegerExpr{Value: 2},
		},
		Op:    lexer.REAL_DIV,
		Right: &ast.IntegerExpr{Value: 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tree = %#v, want %#v", got, want)
	}
}

func TestUnaryChain(t *testing.T) {
	got := parseExpr(t, "- - + 5")

	want := &ast.UnaryExpr{
		Op: lexer.MINUS,
		Right: &ast.UnaryExpr{
			Op: lexer.MINUS,
			Right: &ast.UnaryExpr{
				Op:    lexer.PLUS,
				Right: &ast.IntegerExpr{Value: 5},
			},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tree = %#v, want %#v", got, want)
	}
}

func TestParseFullProgram(t *testing.T) {
	code := `PROGRAM test;
	VAR
	   a, b : INTEGER;
	   y    : REAL;
	BEGIN
	    BEGIN
	        a := 2;
	        b := 10 * a + 10 * a div 4
	    END;
	    y := 20 / 7 + 3.14;
	END.`

	got := parseProgram(t, code)

	want := &ast.ProgramStmt{
		Name: "test",
		Block: &ast.BlockStmt{
			Declarations: []ast.Stmt{
				&ast.VarDeclStmt{
					Variable: &ast.VarExpr{Name: "a"},
					Type:     &ast.TypeSpec{Kind: ast.IntegerType},
				},
				&ast.VarDeclStmt{
					Variable: &ast.VarExpr{Name: "b"},
					Type:     &ast.TypeSpec{Kind: ast.IntegerType},
				},
				&ast.VarDeclStmt{
					Variable: &ast.VarExpr{Name: "y"},
					Type:     &ast.TypeSpec{Kind: ast.RealType},
				},
			},
			Compound: &ast.CompoundStmt{
				Statements: []ast.Stmt{
					&ast.CompoundStmt{
						Statements: []ast.Stmt{
							&ast.AssignStmt{
								Variable: &ast.VarExpr{Name: "a"},
								Value:    &ast.IntegerExpr{Value: 2},
							},
							&ast.AssignStmt{
								Variable: &ast.VarExpr{Name: "b"},
								Value: &ast.BinaryExpr{
									Left: &ast.BinaryExpr{
										Left:  &ast.IntegerExpr{Value: 10},
										Op:    lexer.MUL,
										Right: &ast.VarExpr{Name: "a"},
									},
									Op: lexer.PLUS,
									Right: &ast.BinaryExpr{
										Left: &ast.BinaryExpr{
											Left:  &ast.IntegerExpr{Value: 10},
											Op:    lexer.MUL,
											Right: &ast.VarExpr{Name: "a"},
										},
										Op:    lexer.INTEGER_DIV,
										Right: &ast.IntegerExpr{Value: 4},
									},
								},
							},
						},
					},
					&ast.AssignStmt{
						Variable: &ast.VarExpr{Name: "y"},
						Value: &ast.BinaryExpr{
							Left: &ast.BinaryExpr{
								Left:  &ast.IntegerExpr{Value: 20},
								Op:    lexer.REAL_DIV,
								Right: &ast.IntegerExpr{Value: 7},
							},
							Op:    lexer.PLUS,
							Right: &ast.RealExpr{Value: 3.14},
						},
					},
					&ast.NoOpStmt{},
				},
			},
		},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("tree = %#v, want %#v", got, want)
	}
}

// Repeated VAR sections are valid syntax; rejecting a re-declared name is
// the symbol table's job, so the parser must let such programs through.
func TestParseRepeatedVarSections(t *testing.T) {
	code := `PROGRAM twice;
	VAR x, y : INTEGER;
	VAR y : REAL;
	BEGIN
	    x := 1
	END.`

	got := parseProgram(t, code)

	want := []ast.Stmt{
		&ast.VarDeclStmt{
			Variable: &ast.VarExpr{Name: "x"},
			Type:     &ast.TypeSpec{Kind: ast.IntegerType},
		},
		&ast.VarDeclStmt{
			Variable: &ast.VarExpr{Name: "y"},
			Type:     &ast.TypeSpec{Kind: ast.IntegerType},
		},
		&ast.VarDeclStmt{
			Variable: &ast.VarExpr{Name: "y"},
			Type:     &ast.TypeSpec{Kind: ast.RealType},
		},
	}
	if !reflect.DeepEqual(got.Block.Declarations, want) {
		t.Errorf("declarations = %#v, want %#v", got.Block.Declarations, want)
	}
}

func TestParseProcedureDeclaration(t *testing.T) {
	code := `PROGRAM withProc;
	VAR x : INTEGER;
	PROCEDURE noop;
	BEGIN
	END;
	BEGIN
	    x := 1
	END.`

	got := parseProgram(t, code)

	if len(got.Block.Declarations) != 2 {
		t.Fatalf("declarations = %d, want 2", len(got.Block.Declarations))
	}

	proc, ok := got.Block.Declarations[1].(*ast.ProcDeclStmt)
	if !ok {
		t.Fatalf("declarations[1] is %T, want *ast.ProcDeclStmt", got.Block.Declarations[1])
	}
	if proc.Name != "noop" {
		t.Errorf("procedure name = %q, want %q", proc.Name, "noop")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing program keyword", "BEGIN END."},
		{"missing final dot", "PROGRAM p; BEGIN END"},
		{"missing closing paren", "PROGRAM p; BEGIN x := (1 + 2 END."},
		{"missing assign", "PROGRAM p; BEGIN x 2 END."},
		{"eof inside expression", "PROGRAM p; BEGIN x := 1 +"},
		{"bad type spec", "PROGRAM p; VAR x : STRING; BEGIN END."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser(lexer.NewLexer([]byte(tt.input))).Parse()
			if err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.input)
			}
		})
	}
}

func TestTrailingTokensAfterProgram(t *testing.T) {
	_, err := NewParser(lexer.NewLexer([]byte("PROGRAM p; BEGIN END. extra"))).Parse()
	if err == nil {
		t.Fatal("expected error for trailing tokens after the final dot")
	}

	var unexpected *UnexpectedExpectedError
	if !errors.As(err, &unexpected) {
		t.Fatalf("error type = %T, want *UnexpectedExpectedError", err)
	}
	if unexpected.Expected != lexer.EOF {
		t.Errorf("expected kind = %s, want EOF", unexpected.Expected)
	}
}

func TestExpressionEntryPointSkipsProgramWrapper(t *testing.T) {
	got := parseExpr(t, "1 + 2")

	want := &ast.BinaryExpr{
		Left:  &ast.IntegerExpr{Value: 1},
		Op:    lexer.PLUS,
		Right: &ast.IntegerExpr{Value: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tree = %#v, want %#v", got, want)
	}
}

func TestLexErrorSurfacesThroughParse(t *testing.T) {
	_, err := NewParser(lexer.NewLexer([]byte("PROGRAM p; BEGIN x := 1 ? 2 END."))).Parse()
	if err == nil {
		t.Fatal("expected lexical error to propagate through Parse")
	}

	var lexErr *lexer.LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("error type = %T, want *lexer.LexError", err)
	}
}
