/*
  Lispy in Go: a small Scheme-like expression evaluator for embedding.

  The Cell, Sym and Reader types follow the Scheme in Go interpreter
  (https://github.com/nukata/scheme-in-go).
*/
package lispy

import (
	"strconv"
	"strings"
	"sync"
)

const Version = 0.10

// Value is any datum of the language.
// It is one of Integer, Float, Bool, *Sym, *Cell, *Primitive, *Closure
// or Void.
type Value interface {
	String() string
}

// Integer represents an exact whole number.
type Integer int64

func (x Integer) String() string {
	return strconv.FormatInt(int64(x), 10)
}

// Float represents an approximate real number.
type Float float64

func (x Float) String() string {
	return Str(x)
}

// Bool represents the result of a comparison or a predicate.
type Bool bool

func (x Bool) String() string {
	if x {
		return "#t"
	}
	return "#f"
}

type void struct{}

func (void) String() string { return "#void" }

// Void is the value of (define v e) and (set! v e).
// It should not be printed.
var Void Value = void{}

// Truthy reports whether x counts as true in a test.
// #f, 0, 0.0, () and Void are false.
func Truthy(x Value) bool {
	switch v := x.(type) {
	case Bool:
		return bool(v)
	case Integer:
		return v != 0
	case Float:
		return v != 0
	case *Cell:
		return v != Nil
	case void:
		return false
	}
	return true
}

//----------------------------------------------------------------------

// Cell represents a cons cell of a proper list.
// &Cell{car, cdr} works as the "cons" operation.
type Cell struct {
	Car Value
	Cdr *Cell
}

// Nil represents the empty list ().
var Nil *Cell = nil

// j.String() returns a textual representation of the list j.
func (j *Cell) String() string {
	return Str(j)
}

// List(e1, ..., eN) builds a list (e1 ... eN).
func List(j ...Value) *Cell {
	result := Nil
	p := &result
	for _, v := range j {
		x := &Cell{v, Nil}
		*p = x
		p = &x.Cdr
	}
	return result
}

// j.Len() returns the number of elements of j.
func (j *Cell) Len() int {
	n := 0
	for ; j != Nil; j = j.Cdr {
		n++
	}
	return n
}

// j.Slice() returns the elements of j as a slice.
func (j *Cell) Slice() []Value {
	var s []Value
	for ; j != Nil; j = j.Cdr {
		s = append(s, j.Car)
	}
	return s
}

// j.Nth(n) returns the element of j at index n.
func (j *Cell) Nth(n int) Value {
	for ; n > 0; n-- {
		j = j.Cdr
	}
	return j.Car
}

// FoldL combines acc with each element of j from the left.
func (j *Cell) FoldL(acc Value, fn func(Value, Value) Value) Value {
	for ; j != Nil; j = j.Cdr {
		acc = fn(acc, j.Car)
	}
	return acc
}

// CompareAll reports whether fn holds for every adjacent pair of j.
func (j *Cell) CompareAll(fn func(Value, Value) bool) bool {
	for ; j != Nil && j.Cdr != Nil; j = j.Cdr {
		if !fn(j.Car, j.Cdr.Car) {
			return false
		}
	}
	return true
}

//----------------------------------------------------------------------

// Sym represents a symbol or a keyword.
// &Sym{name, false} constructs a symbol which is not interned.
type Sym struct {
	Name      string
	IsKeyword bool
}

// symbols interns symbols by name for every interpreter of the process.
var symbols = struct {
	sync.RWMutex
	m map[string]*Sym
}{m: make(map[string]*Sym)}

// NewSym returns the interned symbol for name.
func NewSym(name string) *Sym {
	return NewSym2(name, false)
}

// NewSym2 returns the interned symbol for name, making it a keyword
// if isKeyword is true and name has not been interned yet.
func NewSym2(name string, isKeyword bool) *Sym {
	symbols.RLock()
	sym := symbols.m[name]
	symbols.RUnlock()
	if sym != nil {
		return sym
	}
	symbols.Lock()
	defer symbols.Unlock()
	if sym = symbols.m[name]; sym == nil {
		sym = &Sym{name, isKeyword}
		symbols.m[name] = sym
	}
	return sym
}

// IsInterned reports whether sym is the one in the symbol table.
func (sym *Sym) IsInterned() bool {
	symbols.RLock()
	defer symbols.RUnlock()
	return symbols.m[sym.Name] == sym
}

// sym.String() returns a textual representation of sym.
func (sym *Sym) String() string {
	if sym.IsInterned() {
		return sym.Name
	}
	return "#:" + sym.Name
}

// Expression keywords

var Define_ = NewSym2("define", true)
var If_ = NewSym2("if", true)
var Lambda_ = NewSym2("lambda", true)
var Quote_ = NewSym2("quote", true)
var SetQ_ = NewSym2("set!", true)

//----------------------------------------------------------------------

// Subr represents the body of an intrinsic subroutine.
// It receives the already evaluated arguments.
type Subr = func(args *Cell) Value

// Caller applies a procedure to evaluated arguments
// within the evaluation in progress.
type Caller = func(fn Value, args *Cell) Value

// Primitive represents a host-supplied procedure.
// Arity is the exact number of arguments, or -(n+1) for
// n or more arguments.
type Primitive struct {
	Name  string
	Arity int
	Fn    Subr

	// HigherOrder, if not nil, is called instead of Fn with a Caller
	// for the procedures among its arguments.
	HigherOrder func(call Caller, args *Cell) Value
}

// NewPrimitive constructs a primitive named name.
func NewPrimitive(name string, arity int, fn Subr) *Primitive {
	return &Primitive{Name: name, Arity: arity, Fn: fn}
}

// p.String() returns "#<primitive name>".
func (p *Primitive) String() string {
	return "#<primitive " + p.Name + ">"
}

// Closure represents a user-defined procedure.
type Closure struct {
	Params []*Sym
	Body   Value
	Env    *Env
}

// fn.String() returns "#<lambda (params...) body>".
func (fn *Closure) String() string {
	s := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		s[i] = p.String()
	}
	return "#<lambda (" + strings.Join(s, " ") + ") " + Str(fn.Body) + ">"
}

// IsProcedure reports whether x can be applied.
func IsProcedure(x Value) bool {
	switch x.(type) {
	case *Primitive, *Closure:
		return true
	}
	return false
}
