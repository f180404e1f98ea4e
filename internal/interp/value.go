package interp

import (
	"fmt"
	"strconv"
)

type ValueKind int

const (
	IntegerKind ValueKind = iota
	RealKind
)

// Value is the two-variant numeric produced by expression evaluation:
// a 32-bit integer or a 64-bit real.
type Value struct {
	Kind ValueKind

	Int  int32
	Real float64
}

func NewInteger(i int32) Value {
	return Value{Kind: IntegerKind, Int: i}
}

func NewReal(r float64) Value {
	return Value{Kind: RealKind, Real: r}
}

// AsInt truncates toward zero when the value is a real.
func (v Value) AsInt() int32 {
	if v.Kind == RealKind {
		return int32(v.Real)
	}
	return v.Int
}

func (v Value) AsReal() float64 {
	if v.Kind == IntegerKind {
		return float64(v.Int)
	}
	return v.Real
}

// Add applies the promotion rule: two integers stay integer, any real
// operand widens the result to real. Sub and Mul behave the same way.
func (v Value) Add(rhs Value) Value {
	if v.Kind == IntegerKind && rhs.Kind == IntegerKind {
		return NewInteger(v.Int + rhs.Int)
	}
	return NewReal(v.AsReal() + rhs.AsReal())
}

func (v Value) Sub(rhs Value) Value {
	if v.Kind == IntegerKind && rhs.Kind == IntegerKind {
		return NewInteger(v.Int - rhs.Int)
	}
	return NewReal(v.AsReal() - rhs.AsReal())
}

func (v Value) Mul(rhs Value) Value {
	if v.Kind == IntegerKind && rhs.Kind == IntegerKind {
		return NewInteger(v.Int * rhs.Int)
	}
	return NewReal(v.AsReal() * rhs.AsReal())
}

func (v Value) Neg() Value {
	if v.Kind == IntegerKind {
		return NewInteger(-v.Int)
	}
	return NewReal(-v.Real)
}

func (v Value) String() string {
	switch v.Kind {
	case IntegerKind:
		return strconv.FormatInt(int64(v.Int), 10)
	case RealKind:
		return strconv.FormatFloat(v.Real, 'g', -1, 64)
	default:
		panic(fmt.Sprintf("Value.String(): received illegal value kind: %d", v.Kind))
	}
}
