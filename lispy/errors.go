package lispy

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF while reading")
	ErrUnexpectedClose = errors.New("unexpected )")
	ErrTrailingTokens  = errors.New("unexpected tokens after expression")

	ErrWrongType       = errors.New("wrong type argument")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrIntegerOverflow = errors.New("integer overflow")
	ErrNotProcedure    = errors.New("not a procedure")

	// ErrStackOverflow is returned when evaluation nests deeper than
	// the interpreter's MaxDepth. It is not a language-level error.
	ErrStackOverflow = errors.New("maximum recursion depth exceeded")
)

// SyntaxError represents a malformed token stream.
type SyntaxError struct {
	Err  error  // ErrUnexpectedEOF, ErrUnexpectedClose or ErrTrailingTokens
	Near string // the offending token, if any
	Line int    // 1-based line number, or 0 if unknown
}

func (err *SyntaxError) Error() string {
	s := "syntax error: " + err.Err.Error()
	if err.Near != "" {
		s += fmt.Sprintf(": %q", err.Near)
	}
	if err.Line > 0 {
		s += fmt.Sprintf(" -- line %d", err.Line)
	}
	return s
}

func (err *SyntaxError) Unwrap() error { return err.Err }

// UnboundError represents a reference to a symbol with no binding.
type UnboundError struct {
	Sym *Sym
}

func (err *UnboundError) Error() string {
	return "unbound variable: " + err.Sym.String()
}

// StructureError represents a special form of the wrong shape.
type StructureError struct {
	Form    *Sym
	Message string
	Expr    Value
}

func (err *StructureError) Error() string {
	return fmt.Sprintf("bad %s: %s: %s", err.Form.Name, err.Message, Str(err.Expr))
}

// ArityError represents a call with the wrong number of arguments.
// A negative Want means -(n+1), i.e. at least n arguments.
type ArityError struct {
	Proc Value
	Want int
	Got  int
}

func (err *ArityError) Error() string {
	want := strconv.Itoa(err.Want)
	if err.Want < 0 {
		want = "at least " + strconv.Itoa(-err.Want-1)
	}
	return fmt.Sprintf("%s: expected %s argument(s), got %d",
		Str(err.Proc), want, err.Got)
}

// TypeError represents a primitive applied to values it cannot handle.
type TypeError struct {
	Op  string
	Arg Value // may be nil
	Err error
}

func (err *TypeError) Error() string {
	if err.Arg == nil {
		return fmt.Sprintf("%s: %v", err.Op, err.Err)
	}
	return fmt.Sprintf("%s: %v: %s", err.Op, err.Err, Str(err.Arg))
}

func (err *TypeError) Unwrap() error { return err.Err }

// wrongType panics with a TypeError for op applied to x.
func wrongType(op string, x Value) {
	panic(&TypeError{op, x, ErrWrongType})
}

// IsIncomplete reports whether err says that the input ended
// in the middle of an expression.
func IsIncomplete(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se) && se.Err == ErrUnexpectedEOF
}

// recovered converts a value caught by recover into an error.
// Go runtime failures inside primitives count as type errors.
func recovered(e interface{}) error {
	switch x := e.(type) {
	case runtime.Error:
		return &TypeError{"runtime", nil, x}
	case error:
		return x
	default:
		return fmt.Errorf("%v", x)
	}
}
