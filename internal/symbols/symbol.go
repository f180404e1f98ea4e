package symbols

import "fmt"

// Symbol is either a built-in type marker or a declared variable. Symbols
// are immutable once defined.
type Symbol interface {
	SymbolKey() string
	String() string
}

type BuiltInSymbol struct {
	Name string
}

func (s *BuiltInSymbol) SymbolKey() string {
	return s.Name
}

func (s *BuiltInSymbol) String() string {
	return s.Name
}

type VarSymbol struct {
	Name string
	Type string
}

func (s *VarSymbol) SymbolKey() string {
	return s.Name
}

func (s *VarSymbol) String() string {
	return fmt.Sprintf("<%s:%s>", s.Name, s.Type)
}
