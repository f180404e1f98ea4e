// Package interp evaluates a validated tree. Two mutually recursive walks
// share the work: EvalExpression computes numeric values for
// expression-shaped nodes, execute runs statement-shaped ones. Handing a
// node to the wrong walk is a runtime error, never a silent no-op.
package interp

import (
	"fmt"
	"strings"

	"paslite/internal/ast"
	"paslite/internal/lexer"
	"paslite/internal/symbols"
)

type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func newNotDefinedError(name string) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf("'%s' not defined", name)}
}

func newInvalidNodeError(node ast.Node, walk string) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf("invalid node in %s: %T", walk, node)}
}

func newIntegerDivisionByZeroError() *RuntimeError {
	return &RuntimeError{Message: "integer division by zero"}
}

type Interpreter struct {
	// GlobalScope maps case-folded variable names to their current
	// values. It survives across Interpret calls on the same instance.
	GlobalScope map[string]Value

	// SymbolTable holds the table built by the last Interpret call,
	// exposed for introspection.
	SymbolTable *symbols.SymbolTable

	verboseSymbolTable bool
}

func NewInterpreter(verboseSymbolTable bool) *Interpreter {
	return &Interpreter{
		GlobalScope:        make(map[string]Value),
		verboseSymbolTable: verboseSymbolTable,
	}
}

// Interpret validates the program against a fresh symbol table and then
// executes it. A semantic failure aborts before any statement runs.
func (i *Interpreter) Interpret(node ast.Node) error {
	table, err := symbols.Build(node, i.verboseSymbolTable)
	if err != nil {
		return err
	}
	i.SymbolTable = table

	return i.execute(node)
}

// EvalExpression computes the value of an expression-shaped node.
// Variable lookups that precede any assignment fail explicitly rather
// than defaulting to zero.
func (i *Interpreter) EvalExpression(node ast.Node) (Value, error) {
	switch n := node.(type) {
	case *ast.IntegerExpr:
		return NewInteger(n.Value), nil

	case *ast.RealExpr:
		return NewReal(n.Value), nil

	case *ast.VarExpr:
		value, ok := i.GlobalScope[strings.ToLower(n.Name)]
		if !ok {
			return Value{}, newNotDefinedError(n.Name)
		}
		return value, nil

	case *ast.UnaryExpr:
		nested, err := i.EvalExpression(n.Right)
		if err != nil {
			return Value{}, err
		}
		switch n.Op {
		case lexer.PLUS:
			return nested, nil
		case lexer.MINUS:
			return nested.Neg(), nil
		default:
			return Value{}, &RuntimeError{Message: fmt.Sprintf("invalid unary operator: %s", n.Op)}
		}

	case *ast.BinaryExpr:
		left, err := i.EvalExpression(n.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := i.EvalExpression(n.Right)
		if err != nil {
			return Value{}, err
		}

		switch n.Op {
		case lexer.PLUS:
			return left.Add(right), nil
		case lexer.MINUS:
			return left.Sub(right), nil
		case lexer.MUL:
			return left.Mul(right), nil
		case lexer.INTEGER_DIV:
			// Truncates both sides to integer. Division by zero
			// fails fast instead of panicking.
			if right.AsInt() == 0 {
				return Value{}, newIntegerDivisionByZeroError()
			}
			return NewInteger(left.AsInt() / right.AsInt()), nil
		case lexer.REAL_DIV:
			// Widens both sides; IEEE-754 semantics apply, so a
			// zero divisor yields Inf or NaN without error.
			return NewReal(left.AsReal() / right.AsReal()), nil
		default:
			return Value{}, &RuntimeError{
				Message: fmt.Sprintf("invalid binary operator: %s", n.Op),
			}
		}

	default:
		return Value{}, newInvalidNodeError(node, "expression")
	}
}

func (i *Interpreter) execute(node ast.Node) error {
	switch n := node.(type) {
	case *ast.ProgramStmt:
		return i.execute(n.Block)

	case *ast.BlockStmt:
		for _, declaration := range n.Declarations {
			if err := i.execute(declaration); err != nil {
				return err
			}
		}
		return i.execute(n.Compound)

	case *ast.CompoundStmt:
		for _, statement := range n.Statements {
			if err := i.execute(statement); err != nil {
				return err
			}
		}
		return nil

	case *ast.AssignStmt:
		value, err := i.EvalExpression(n.Value)
		if err != nil {
			return err
		}
		i.GlobalScope[strings.ToLower(n.Variable.Name)] = value
		return nil

	case *ast.VarDeclStmt, *ast.TypeSpec, *ast.ProcDeclStmt, *ast.NoOpStmt:
		// Declarations were discharged during the symbol table pass;
		// procedures are accepted but inert in this version.
		return nil

	default:
		return newInvalidNodeError(node, "program")
	}
}
