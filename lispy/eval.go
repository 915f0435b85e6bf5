package lispy

import "runtime"

// DefaultMaxDepth is the default limit of nested evaluations.
const DefaultMaxDepth = 10000

// evaluator holds the state of one top-level evaluation.
type evaluator struct {
	maxDepth int
	depth    int
}

// Eval evaluates expression in env and returns the result and nil.
// If an error happens, it returns nil and the error.
func Eval(expression Value, env *Env) (Value, error) {
	return EvalDepth(expression, env, DefaultMaxDepth)
}

// EvalDepth is Eval which fails with ErrStackOverflow
// when evaluations nest deeper than maxDepth.
func EvalDepth(expression Value, env *Env, maxDepth int) (result Value, err error) {
	ev := &evaluator{maxDepth: maxDepth}
	defer func() {
		if e := recover(); e != nil {
			result, err = nil, recovered(e)
		}
	}()
	return ev.eval(expression, env), nil
}

// eval evaluates x in env. It panics with an error on failure.
func (ev *evaluator) eval(x Value, env *Env) Value {
	ev.depth++
	if ev.depth > ev.maxDepth {
		panic(ErrStackOverflow)
	}
	var result Value
	switch v := x.(type) {
	case *Sym:
		value, err := env.Lookup(v)
		if err != nil {
			panic(err)
		}
		result = value
	case *Cell:
		if v == Nil {
			panic(&TypeError{"apply", v, ErrNotProcedure})
		}
		if f, ok := v.Car.(*Sym); ok && f.IsKeyword {
			result = specialForms[f](ev, v, env)
		} else {
			result = ev.apply(v, env)
		}
	default: // numbers, procedures etc.
		result = x
	}
	ev.depth--
	return result
}

// apply evaluates (fn arg1 ... argN) in env.
// The operator is evaluated first, then the arguments from left to right.
func (ev *evaluator) apply(x *Cell, env *Env) Value {
	fn := ev.eval(x.Car, env)
	args := Nil
	p := &args
	for j := x.Cdr; j != Nil; j = j.Cdr {
		c := &Cell{ev.eval(j.Car, env), Nil}
		*p = c
		p = &c.Cdr
	}
	return ev.call(fn, args)
}

// call applies fn to the evaluated args.
func (ev *evaluator) call(fn Value, args *Cell) Value {
	switch f := fn.(type) {
	case *Primitive:
		return ev.callPrimitive(f, args)
	case *Closure:
		env, err := NewEnv(f.Params, args.Slice(), f.Env)
		if err != nil {
			if ae, ok := err.(*ArityError); ok {
				ae.Proc = f
			}
			panic(err)
		}
		return ev.eval(f.Body, env)
	}
	panic(&TypeError{"apply", fn, ErrNotProcedure})
}

// callPrimitive checks the number of args and calls f.
// A Go runtime failure in f becomes a TypeError of f.
func (ev *evaluator) callPrimitive(f *Primitive, args *Cell) Value {
	n := args.Len()
	if (f.Arity >= 0 && n != f.Arity) || (f.Arity < 0 && n < -f.Arity-1) {
		panic(&ArityError{f, f.Arity, n})
	}
	defer func() {
		if e := recover(); e != nil {
			if re, ok := e.(runtime.Error); ok {
				panic(&TypeError{f.Name, nil, re})
			}
			panic(e)
		}
	}()
	if f.HigherOrder != nil {
		return f.HigherOrder(ev.call, args)
	}
	return f.Fn(args)
}
