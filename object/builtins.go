// ==============================================================================================
// FILE: object/builtins.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: The language's lone built-in: a clock, bound into the global
//          environment at startup. See spec.md §4.3 "Built-ins".
// ==============================================================================================

package object

import "time"

// Builtins lists the native functions bound into every global environment.
var Builtins = []struct {
	Name    string
	Builtin *Builtin
}{
	{
		Name: "clock",
		Builtin: &Builtin{
			Name: "clock",
			Fn: func(args []Value) (Value, error) {
				return &Integer{Value: time.Now().Unix()}, nil
			},
		},
	},
}

// NewGlobalEnvironment returns a fresh environment with every built-in
// already bound.
func NewGlobalEnvironment() *Environment {
	env := NewEnvironment()
	for _, b := range Builtins {
		env.DeclareWith(b.Name, b.Builtin)
	}
	return env
}
