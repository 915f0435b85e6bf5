package lispy

// Provider supplies named values for a global environment,
// e.g. a library of math functions.
type Provider interface {
	Bindings() map[string]Value
}

// Bindings is a Provider of a fixed set of values.
type Bindings map[string]Value

func (b Bindings) Bindings() map[string]Value { return b }

// Interpreter represents an instance of the language with its own
// global environment.  Definitions made through one interpreter are
// never visible to another.
type Interpreter struct {
	Global   *Env
	MaxDepth int
}

// New constructs an interpreter whose global environment is
// StandardEnv(providers...).
func New(providers ...Provider) *Interpreter {
	return &Interpreter{StandardEnv(providers...), DefaultMaxDepth}
}

// Eval evaluates x in the global environment.
func (in *Interpreter) Eval(x Value) (Value, error) {
	return EvalDepth(x, in.Global, in.MaxDepth)
}

// EvalString evaluates every expression of src in order and returns
// the value of the last one.  It returns Void if src has no expression.
func (in *Interpreter) EvalString(src string) (Value, error) {
	exps, err := ParseAll(src)
	if err != nil {
		return nil, err
	}
	var result Value = Void
	for _, x := range exps {
		result, err = in.Eval(x)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
