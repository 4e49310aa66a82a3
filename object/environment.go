// ==============================================================================================
// FILE: object/environment.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: Implements the lexically-scoped environment chain: a mapping
//          from name to mutable cell, with an optional link to an enclosing
//          scope. Declaration binds into the innermost environment
//          unconditionally (shadowing allowed); assignment writes into the
//          cell a lookup finds (no implicit declaration).
// ==============================================================================================

package object

// cell is a named mutable slot. Keeping it as its own heap object (instead
// of storing Values directly in the map) is what lets a closure and the
// scope it was captured from alias the same storage: copying an
// environment's map copies the cell pointers, not the values inside them.
type cell struct {
	value Value
}

// Environment is one link in the scope chain.
type Environment struct {
	store map[string]*cell
	outer *Environment
}

// NewEnvironment creates the global environment.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]*cell)}
}

// NewEnclosedEnvironment creates a child scope for a block or call frame,
// chained to outer.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]*cell), outer: outer}
}

// Declare creates a fresh cell for name in this environment, initialized to
// Nil, unconditionally shadowing any cell of the same name in an outer
// scope.
func (e *Environment) Declare(name string) {
	e.store[name] = &cell{value: NilValue}
}

// DeclareWith is Declare followed immediately by an initializing store; it
// exists so `var x = expr;` can evaluate expr before the cell exists
// without exposing a half-declared name to expr itself.
func (e *Environment) DeclareWith(name string, v Value) {
	e.store[name] = &cell{value: v}
}

// Get walks the chain innermost-out and returns the value held in the
// first cell found.
func (e *Environment) Get(name string) (Value, bool) {
	if c, ok := e.store[name]; ok {
		return c.value, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Assign writes v into the cell that a lookup for name would find. It does
// not declare: assigning an undeclared name fails.
func (e *Environment) Assign(name string, v Value) bool {
	if c, ok := e.store[name]; ok {
		c.value = v
		return true
	}
	if e.outer != nil {
		return e.outer.Assign(name, v)
	}
	return false
}
