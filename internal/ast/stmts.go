package ast

type ProgramStmt struct {
	Name  string
	Block *BlockStmt
}

type BlockStmt struct {
	Declarations []Stmt
	Compound     *CompoundStmt
}

type VarDeclStmt struct {
	Variable *VarExpr
	Type     *TypeSpec
}

// ProcDeclStmt is parsed and walked by the symbol table, but the
// interpreter does not execute procedures.
type ProcDeclStmt struct {
	Name  string
	Block *BlockStmt
}

type CompoundStmt struct {
	Statements []Stmt
}

type AssignStmt struct {
	Variable *VarExpr
	Value    Expr
}

// NoOpStmt is the empty statement, e.g. before END or a stray semicolon.
type NoOpStmt struct{}

func (*ProgramStmt) AstNode()  {}
func (*BlockStmt) AstNode()    {}
func (*VarDeclStmt) AstNode()  {}
func (*ProcDeclStmt) AstNode() {}
func (*CompoundStmt) AstNode() {}
func (*AssignStmt) AstNode()   {}
func (*NoOpStmt) AstNode()     {}

func (*ProgramStmt) StmtNode()  {}
func (*BlockStmt) StmtNode()    {}
func (*VarDeclStmt) StmtNode()  {}
func (*ProcDeclStmt) StmtNode() {}
func (*CompoundStmt) StmtNode() {}
func (*AssignStmt) StmtNode()   {}
func (*NoOpStmt) StmtNode()     {}
