package lispy

// fsubr represents the evaluation of a special form x in env.
type fsubr = func(ev *evaluator, x *Cell, env *Env) Value

// specialForms maps each expression keyword to its evaluation.
// The set is fixed; user bindings never shadow these keywords
// at the head of a list.
var specialForms map[*Sym]fsubr

func init() {
	specialForms = map[*Sym]fsubr{
		Quote_:  quote_,
		If_:     if_,
		Define_: define_,
		SetQ_:   setQ_,
		Lambda_: lambda_,
	}
}

func badForm(form *Sym, msg string, x Value) *StructureError {
	return &StructureError{form, msg, x}
}

// (quote e)
func quote_(ev *evaluator, x *Cell, env *Env) Value {
	if x.Len() != 2 {
		panic(badForm(Quote_, "expected (quote e)", x))
	}
	return x.Nth(1)
}

// (if test conseq alt)
func if_(ev *evaluator, x *Cell, env *Env) Value {
	if x.Len() != 4 {
		panic(badForm(If_, "expected (if test conseq alt)", x))
	}
	rest := x.Cdr
	if Truthy(ev.eval(rest.Car, env)) {
		return ev.eval(rest.Cdr.Car, env)
	}
	return ev.eval(rest.Cdr.Cdr.Car, env)
}

// (define v e) or (define (f param...) e)
func define_(ev *evaluator, x *Cell, env *Env) Value {
	if x.Len() != 3 {
		panic(badForm(Define_, "expected (define v e)", x))
	}
	switch s := x.Nth(1).(type) {
	case *Sym:
		env.Define(s, ev.eval(x.Nth(2), env))
		return Void
	case *Cell:
		if s != Nil {
			if fsymbol, ok := s.Car.(*Sym); ok {
				params := paramSyms(Define_, s.Cdr, x)
				env.Define(fsymbol, &Closure{params, x.Nth(2), env})
				return Void
			}
		}
	}
	panic(badForm(Define_, "not definable", x))
}

// (set! v e)
func setQ_(ev *evaluator, x *Cell, env *Env) Value {
	if x.Len() != 3 {
		panic(badForm(SetQ_, "expected (set! v e)", x))
	}
	sym, ok := x.Nth(1).(*Sym)
	if !ok {
		panic(badForm(SetQ_, "not a symbol", x))
	}
	value := ev.eval(x.Nth(2), env)
	if err := env.Set(sym, value); err != nil {
		panic(err)
	}
	return Void
}

// (lambda (param...) e)
func lambda_(ev *evaluator, x *Cell, env *Env) Value {
	if x.Len() != 3 {
		panic(badForm(Lambda_, "expected (lambda (v...) e)", x))
	}
	params, ok := x.Nth(1).(*Cell)
	if !ok {
		panic(badForm(Lambda_, "parameters must be a list", x))
	}
	return &Closure{paramSyms(Lambda_, params, x), x.Nth(2), env}
}

// paramSyms returns the elements of params, all of which must be symbols.
func paramSyms(form *Sym, params *Cell, x *Cell) []*Sym {
	result := make([]*Sym, 0, params.Len())
	for j := params; j != Nil; j = j.Cdr {
		sym, ok := j.Car.(*Sym)
		if !ok {
			panic(badForm(form, "parameter is not a symbol", x))
		}
		result = append(result, sym)
	}
	return result
}
