// Package symbols implements the semantic validation pass: one pre-order
// walk over a parsed tree that registers built-in types and declared
// variables, and rejects programs that reference anything undeclared.
package symbols

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tliron/commonlog"

	"paslite/internal/ast"
)

var log = commonlog.GetLogger("paslite.symbols")

type SemanticError struct {
	Message string
}

func (e *SemanticError) Error() string {
	return e.Message
}

func newUnknownTypeError(name string) *SemanticError {
	return &SemanticError{Message: fmt.Sprintf("unknown type: '%s'", name)}
}

func newUnknownVariableError(name string) *SemanticError {
	return &SemanticError{Message: fmt.Sprintf("unknown variable: '%s'", name)}
}

func newDuplicateIdentifierError(name string) *SemanticError {
	return &SemanticError{Message: fmt.Sprintf("duplicate identifier: '%s'", name)}
}

// SymbolTable is a single flat scope keyed case-insensitively. This
// language version has no nesting; the global scope is the only scope.
type SymbolTable struct {
	symbols map[string]Symbol

	verbose bool
}

// Build seeds the two built-in type symbols and walks the whole tree.
// The interpreter must not run against a tree this rejected. With verbose
// set, every define and lookup is traced through the logger.
func Build(node ast.Node, verbose bool) (*SymbolTable, error) {
	table := &SymbolTable{
		symbols: make(map[string]Symbol),
		verbose: verbose,
	}

	if err := table.define(&BuiltInSymbol{Name: ast.IntegerType.String()}); err != nil {
		return nil, err
	}
	if err := table.define(&BuiltInSymbol{Name: ast.RealType.String()}); err != nil {
		return nil, err
	}

	if err := table.walk(node); err != nil {
		return nil, err
	}

	return table, nil
}

// Lookup resolves a name case-insensitively.
func (st *SymbolTable) Lookup(name string) (Symbol, bool) {
	if st.verbose {
		log.Infof("lookup: %s", name)
	}

	symbol, ok := st.symbols[strings.ToLower(name)]
	return symbol, ok
}

// Symbols returns every registered symbol, sorted by key, for display.
func (st *SymbolTable) Symbols() []Symbol {
	keys := make([]string, 0, len(st.symbols))
	for key := range st.symbols {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]Symbol, 0, len(keys))
	for _, key := range keys {
		out = append(out, st.symbols[key])
	}
	return out
}

func (st *SymbolTable) define(symbol Symbol) error {
	if st.verbose {
		log.Infof("define: %s", symbol)
	}

	key := strings.ToLower(symbol.SymbolKey())
	if _, ok := st.symbols[key]; ok {
		return newDuplicateIdentifierError(symbol.SymbolKey())
	}

	st.symbols[key] = symbol
	return nil
}

func (st *SymbolTable) walk(node ast.Node) error {
	switch n := node.(type) {
	case *ast.ProgramStmt:
		return st.walk(n.Block)

	case *ast.BlockStmt:
		for _, declaration := range n.Declarations {
			if err := st.walk(declaration); err != nil {
				return err
			}
		}
		return st.walk(n.Compound)

	case *ast.VarDeclStmt:
		typeName := n.Type.Kind.String()
		if _, ok := st.Lookup(typeName); !ok {
			return newUnknownTypeError(typeName)
		}
		if _, ok := st.Lookup(n.Variable.Name); ok {
			return newDuplicateIdentifierError(n.Variable.Name)
		}
		return st.define(&VarSymbol{
			Name: n.Variable.Name,
			Type: typeName,
		})

	case *ast.ProcDeclStmt:
		// Accepted but not validated in this version.
		return nil

	case *ast.CompoundStmt:
		for _, statement := range n.Statements {
			if err := st.walk(statement); err != nil {
				return err
			}
		}
		return nil

	case *ast.AssignStmt:
		if err := st.walk(n.Value); err != nil {
			return err
		}
		// Assignment never declares; the target must already exist.
		if _, ok := st.Lookup(n.Variable.Name); !ok {
			return newUnknownVariableError(n.Variable.Name)
		}
		return nil

	case *ast.VarExpr:
		if _, ok := st.Lookup(n.Name); !ok {
			return newUnknownVariableError(n.Name)
		}
		return nil

	case *ast.BinaryExpr:
		if err := st.walk(n.Left); err != nil {
			return err
		}
		return st.walk(n.Right)

	case *ast.UnaryExpr:
		return st.walk(n.Right)

	case *ast.IntegerExpr, *ast.RealExpr, *ast.TypeSpec, *ast.NoOpStmt:
		return nil

	default:
		return &SemanticError{Message: fmt.Sprintf("invalid node: %T", node)}
	}
}
