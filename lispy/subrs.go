package lispy

import (
	"runtime"

	"github.com/google/uuid"
)

// Subrs

func car_(x *Cell) Value {
	j, ok := x.Car.(*Cell)
	if !ok || j == Nil {
		wrongType("car", x.Car)
	}
	return j.Car
}

// (cdr '()) is () as well.
func cdr_(x *Cell) Value {
	j, ok := x.Car.(*Cell)
	if !ok {
		wrongType("cdr", x.Car)
	}
	if j == Nil {
		return Nil
	}
	return j.Cdr
}

func cons_(x *Cell) Value {
	obj1, obj2 := x.Car, x.Cdr.Car
	j, ok := obj2.(*Cell)
	if !ok {
		wrongType("cons", obj2)
	}
	return &Cell{obj1, j}
}

func list_(x *Cell) Value {
	return x
}

// append_ concatenates lists.  The last list is shared, not copied.
func append_(x *Cell) Value {
	if x == Nil {
		return Nil
	}
	car, tail := x.Car, x.Cdr
	list, ok := car.(*Cell)
	if !ok {
		wrongType("append", car)
	}
	if tail == Nil {
		return list
	}
	return append2Lists(list, append_(tail).(*Cell))
}

func append2Lists(list *Cell, obj *Cell) *Cell {
	result := Nil
	p := &result
	for j := list; j != Nil; j = j.Cdr {
		x := &Cell{j.Car, Nil}
		*p = x
		p = &x.Cdr
	}
	*p = obj
	return result
}

func length_(x *Cell) Value {
	j, ok := x.Car.(*Cell)
	if !ok {
		wrongType("length", x.Car)
	}
	return Integer(j.Len())
}

func listP_(x *Cell) Value {
	_, ok := x.Car.(*Cell)
	return Bool(ok)
}

func nullP_(x *Cell) Value {
	j, ok := x.Car.(*Cell)
	return Bool(ok && j == Nil)
}

func numberP_(x *Cell) Value {
	return Bool(IsNumber(x.Car))
}

func symbolP_(x *Cell) Value {
	_, ok := x.Car.(*Sym)
	return Bool(ok)
}

func procedureP_(x *Cell) Value {
	return Bool(IsProcedure(x.Car))
}

func not_(x *Cell) Value {
	return Bool(!Truthy(x.Car))
}

func eq_(x *Cell) Value {
	return Bool(x.Car == x.Cdr.Car)
}

func equal_(x *Cell) Value {
	return Bool(x.CompareAll(Equal))
}

// (begin e1 ... eN) returns eN; its arguments are already evaluated.
func begin_(x *Cell) Value {
	for x.Cdr != Nil {
		x = x.Cdr
	}
	return x.Car
}

// (map f list1 ... listN) applies f to the elements of the lists
// position by position and stops at the end of the shortest list.
func map_(call Caller, x *Cell) Value {
	fn := x.Car
	lists := make([]*Cell, 0, 2)
	for j := x.Cdr; j != Nil; j = j.Cdr {
		list, ok := j.Car.(*Cell)
		if !ok {
			wrongType("map", j.Car)
		}
		lists = append(lists, list)
	}
	result := Nil
	p := &result
	for {
		args := Nil
		q := &args
		for i, list := range lists {
			if list == Nil {
				return result
			}
			a := &Cell{list.Car, Nil}
			*q = a
			q = &a.Cdr
			lists[i] = list.Cdr
		}
		y := &Cell{call(fn, args), Nil}
		*p = y
		p = &y.Cdr
	}
}

// (gensym) returns a fresh symbol which is not interned.
func gensym_(x *Cell) Value {
	return &Sym{"g" + uuid.New().String(), false}
}

// builtIns returns the primitives of the global environment.
func builtIns() []*Primitive {
	c := NewPrimitive
	return []*Primitive{
		c("+", -1, plus_),
		c("-", -2, minus_),
		c("*", -1, star_),
		c("/", -2, slash_),
		c("truediv", -2, truediv_),
		c(">", -2, greaterThan_),
		c("<", -2, lessThan_),
		c(">=", -2, greaterThanOrEqual_),
		c("<=", -2, lessThanOrEqual_),
		c("=", -2, equal_),
		c("abs", 1, abs_),
		c("append", -1, append_),
		c("begin", -2, begin_),
		c("car", 1, car_),
		c("cdr", 1, cdr_),
		c("cons", 2, cons_),
		c("eq?", 2, eq_),
		c("equal", 2, equal_),
		c("length", 1, length_),
		c("list", -1, list_),
		c("list?", 1, listP_),
		{Name: "map", Arity: -3, HigherOrder: map_},
		c("max", -2, max_),
		c("min", -2, min_),
		c("not", 1, not_),
		c("null?", 1, nullP_),
		c("number?", 1, numberP_),
		c("procedure?", 1, procedureP_),
		c("round", -2, round_),
		c("symbol?", 1, symbolP_),
		c("gensym", 0, gensym_),
	}
}

// StandardEnv constructs a global environment which contains the
// bindings of providers and then the built-in primitives.
// A built-in wins over a provider binding of the same name.
func StandardEnv(providers ...Provider) *Env {
	env := NewGlobalEnv()
	for _, p := range providers {
		for name, value := range p.Bindings() {
			env.Define(NewSym(name), value)
		}
	}
	for _, p := range builtIns() {
		env.Define(NewSym(p.Name), p)
	}
	env.Define(NewSym("*version*"), List(Float(Version),
		NewSym(runtime.Version()),
		NewSym(runtime.GOOS+"/"+runtime.GOARCH)))
	return env
}
