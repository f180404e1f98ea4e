// Package ast defines the node types produced by the parser. A tree is
// built once, read by the symbol table and the interpreter, and never
// mutated: every node owns its children exclusively.
package ast

type Node interface {
	AstNode()
}

type Stmt interface {
	Node
	StmtNode()
}

type Expr interface {
	Node
	ExprNode()
}
