// ==============================================================================================
// FILE: object/object.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: Defines the runtime value system of the language: the tagged
//          union described in the data model (Nil, Bool, Number, String,
//          Callable) plus the interfaces required to interact with them.
// ==============================================================================================

package object

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/glint-lang/glint/ast"
)

// Kind identifies which variant of the value union a Value holds.
type Kind string

const (
	NIL_VAL      Kind = "NIL"
	BOOLEAN_VAL  Kind = "BOOLEAN"
	INTEGER_VAL  Kind = "INTEGER"
	FLOAT_VAL    Kind = "FLOAT"
	STRING_VAL   Kind = "STRING"
	FUNCTION_VAL Kind = "FUNCTION"
	BUILTIN_VAL  Kind = "BUILTIN"
)

// Value is the interface every runtime value implements.
type Value interface {
	Kind() Kind
	Inspect() string // print() rendering
}

// ==============================================================================================
// PRIMITIVES
// ==============================================================================================

type Nil struct{}

func (n *Nil) Kind() Kind      { return NIL_VAL }
func (n *Nil) Inspect() string { return "nil" }

type Bool struct {
	Value bool
}

func (b *Bool) Kind() Kind { return BOOLEAN_VAL }
func (b *Bool) Inspect() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Integer and Float are the two concrete representations of the unified
// "Number" variant from the data model: distinct Go types so arithmetic can
// special-case the division quirk, but == treats them as one family (see
// ValuesEqual).
type Integer struct {
	Value int64
}

func (i *Integer) Kind() Kind      { return INTEGER_VAL }
func (i *Integer) Inspect() string { return numberString(float64(i.Value)) }

type Float struct {
	Value float64
}

func (f *Float) Kind() Kind      { return FLOAT_VAL }
func (f *Float) Inspect() string { return numberString(f.Value) }

// numberString renders a number the way print does: the shortest decimal
// form, with no forced ".0" suffix for whole values.
func numberString(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.HasSuffix(s, ".0") {
		s = strings.TrimSuffix(s, ".0")
	}
	return s
}

// AsFloat returns the numeric value of a Number-family Value. ok is false
// for anything else.
func AsFloat(v Value) (f float64, ok bool) {
	switch n := v.(type) {
	case *Integer:
		return float64(n.Value), true
	case *Float:
		return n.Value, true
	default:
		return 0, false
	}
}

func IsNumber(v Value) bool {
	_, ok := AsFloat(v)
	return ok
}

// NumberFromLexeme builds the Integer or Float variant for a number
// literal, keyed off its source spelling: a lexeme containing '.' is a
// Float, everything else is an Integer. value is the already-parsed
// float64 magnitude.
func NumberFromLexeme(lexeme string, value float64) Value {
	if strings.Contains(lexeme, ".") {
		return &Float{Value: value}
	}
	return &Integer{Value: int64(value)}
}

type String struct {
	Value string
}

func (s *String) Kind() Kind      { return STRING_VAL }
func (s *String) Inspect() string { return s.Value }

// ==============================================================================================
// CALLABLES
// ==============================================================================================

// Function is a user-defined closure: the body it was declared with, plus
// the environment in effect at its definition site.
type Function struct {
	Definition *ast.FunctionStmt
	Env        *Environment
}

func (f *Function) Kind() Kind { return FUNCTION_VAL }
func (f *Function) Inspect() string {
	return fmt.Sprintf("<fn %s>", f.Definition.Name.Value)
}

// Builtin wraps a native Go function as a callable value (the clock
// built-in, see builtins.go).
type Builtin struct {
	Name string
	Fn   func(args []Value) (Value, error)
}

func (b *Builtin) Kind() Kind      { return BUILTIN_VAL }
func (b *Builtin) Inspect() string { return fmt.Sprintf("<native fn %s>", b.Name) }

// ==============================================================================================
// SHARED SINGLETONS
// ==============================================================================================

// Singletons so truthy/equality checks and nil/bool literals don't allocate
// on every evaluation.
var (
	NilValue   = &Nil{}
	TrueValue  = &Bool{Value: true}
	FalseValue = &Bool{Value: false}
)

func NativeBool(b bool) *Bool {
	if b {
		return TrueValue
	}
	return FalseValue
}

// IsTruthy implements the truthiness rule: Nil and false are falsy,
// everything else (including 0 and "") is truthy.
func IsTruthy(v Value) bool {
	switch val := v.(type) {
	case *Nil:
		return false
	case *Bool:
		return val.Value
	default:
		return true
	}
}

// ValuesEqual implements the equality rule from the data model:
// same-variant structural equality, with Integer and Float treated as one
// "Number" family. Cross-type comparisons are false.
func ValuesEqual(a, b Value) bool {
	if af, aok := AsFloat(a); aok {
		if bf, bok := AsFloat(b); bok {
			return af == bf
		}
		return false
	}

	switch av := a.(type) {
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *Bool:
		bv, ok := b.(*Bool)
		return ok && av.Value == bv.Value
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *Function:
		bv, ok := b.(*Function)
		return ok && av == bv
	case *Builtin:
		bv, ok := b.(*Builtin)
		return ok && av == bv
	default:
		return false
	}
}
