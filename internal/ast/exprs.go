package ast

import "paslite/internal/lexer"

type IntegerExpr struct {
	Value int32
}

type RealExpr struct {
	Value float64
}

type VarExpr struct {
	Name string
}

// BinaryExpr covers PLUS, MINUS, MUL, INTEGER_DIV and REAL_DIV. Integer
// and real division stay distinct operator kinds from the token stream on;
// the interpreter never infers the division flavor from operand types.
type BinaryExpr struct {
	Left  Expr
	Op    lexer.TokenKind
	Right Expr
}

type UnaryExpr struct {
	Op    lexer.TokenKind
	Right Expr
}

func (*IntegerExpr) AstNode() {}
func (*RealExpr) AstNode()    {}
func (*VarExpr) AstNode()     {}
func (*BinaryExpr) AstNode()  {}
func (*UnaryExpr) AstNode()   {}

func (*IntegerExpr) ExprNode() {}
func (*RealExpr) ExprNode()    {}
func (*VarExpr) ExprNode()     {}
func (*BinaryExpr) ExprNode()  {}
func (*UnaryExpr) ExprNode()   {}
