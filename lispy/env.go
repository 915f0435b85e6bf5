package lispy

import "sort"

// Env represents a scope: bindings of symbols plus the enclosing scope.
// The global environment has no outer scope.
type Env struct {
	vars  map[*Sym]Value
	outer *Env
}

// NewEnv binds each of params to the value at the same position of args
// in a new scope inside outer (which may be nil).
func NewEnv(params []*Sym, args []Value, outer *Env) (*Env, error) {
	if len(params) != len(args) {
		return nil, &ArityError{paramList(params), len(params), len(args)}
	}
	vars := make(map[*Sym]Value, len(params))
	for i, p := range params {
		vars[p] = args[i]
	}
	return &Env{vars, outer}, nil
}

// NewGlobalEnv constructs an empty scope with no outer scope.
func NewGlobalEnv() *Env {
	return &Env{make(map[*Sym]Value), nil}
}

// Outer returns the enclosing scope, or nil for the global one.
func (env *Env) Outer() *Env {
	return env.outer
}

// Find returns the innermost scope, starting at env, which binds sym.
func (env *Env) Find(sym *Sym) (*Env, error) {
	for e := env; e != nil; e = e.outer {
		if _, ok := e.vars[sym]; ok {
			return e, nil
		}
	}
	return nil, &UnboundError{sym}
}

// Lookup retrieves the value of sym.
func (env *Env) Lookup(sym *Sym) (Value, error) {
	e, err := env.Find(sym)
	if err != nil {
		return nil, err
	}
	return e.vars[sym], nil
}

// Set replaces the value of an existing binding of sym
// in the scope which owns it.
func (env *Env) Set(sym *Sym, value Value) error {
	e, err := env.Find(sym)
	if err != nil {
		return err
	}
	e.vars[sym] = value
	return nil
}

// Define binds sym to value in env itself, never in an outer scope.
func (env *Env) Define(sym *Sym, value Value) {
	env.vars[sym] = value
}

// Names returns the sorted names bound in env itself.
func (env *Env) Names() []string {
	s := make([]string, 0, len(env.vars))
	for sym := range env.vars {
		s = append(s, sym.Name)
	}
	sort.Strings(s)
	return s
}

// paramList returns params as a list, for error messages.
func paramList(params []*Sym) *Cell {
	result := Nil
	for i := len(params) - 1; i >= 0; i-- {
		result = &Cell{params[i], result}
	}
	return result
}
