package ast

import "fmt"

type TypeKind int

const (
	IntegerType TypeKind = iota
	RealType
)

func (tk TypeKind) String() string {
	switch tk {
	case IntegerType:
		return "INTEGER"
	case RealType:
		return "REAL"
	default:
		panic(fmt.Sprintf("TypeKind.String(): received illegal type kind: %d", tk))
	}
}

// TypeSpec is the declared type in a variable declaration. It appears in
// the tree as a statement-shaped node but performs no runtime action; its
// role is discharged entirely during the symbol table pass.
type TypeSpec struct {
	Kind TypeKind
}

func (*TypeSpec) AstNode()  {}
func (*TypeSpec) StmtNode() {}
