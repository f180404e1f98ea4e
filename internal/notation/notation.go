// Package notation renders expression trees as alternative textual
// notations for the REPL. It handles expression-shaped nodes only.
package notation

import (
	"fmt"
	"strconv"

	"paslite/internal/ast"
	"paslite/internal/lexer"
)

func operator(op lexer.TokenKind) string {
	switch op {
	case lexer.PLUS:
		return "+"
	case lexer.MINUS:
		return "-"
	case lexer.MUL:
		return "*"
	case lexer.INTEGER_DIV:
		return "div"
	case lexer.REAL_DIV:
		return "/"
	default:
		panic(fmt.Sprintf("notation: received illegal operator kind: %s", op))
	}
}

// RPN renders an expression in reverse-Polish notation.
func RPN(node ast.Expr) string {
	switch n := node.(type) {
	case *ast.IntegerExpr:
		return strconv.FormatInt(int64(n.Value), 10)
	case *ast.RealExpr:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)
	case *ast.VarExpr:
		return n.Name
	case *ast.BinaryExpr:
		return fmt.Sprintf("%s %s %s", RPN(n.Left), RPN(n.Right), operator(n.Op))
	case *ast.UnaryExpr:
		if n.Op == lexer.MINUS {
			return fmt.Sprintf("0 %s -", RPN(n.Right))
		}
		return RPN(n.Right)
	default:
		panic(fmt.Sprintf("notation: received illegal expression node: %T", node))
	}
}

// SExpr renders an expression in Lisp-style S-expression notation.
func SExpr(node ast.Expr) string {
	switch n := node.(type) {
	case *ast.IntegerExpr:
		return strconv.FormatInt(int64(n.Value), 10)
	case *ast.RealExpr:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)
	case *ast.VarExpr:
		return n.Name
	case *ast.BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", operator(n.Op), SExpr(n.Left), SExpr(n.Right))
	case *ast.UnaryExpr:
		if n.Op == lexer.MINUS {
			return fmt.Sprintf("(- %s)", SExpr(n.Right))
		}
		return SExpr(n.Right)
	default:
		panic(fmt.Sprintf("notation: received illegal expression node: %T", node))
	}
}
