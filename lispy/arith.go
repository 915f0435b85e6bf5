package lispy

import (
	"math"
	"math/big"
	"strconv"

	"github.com/nukata/goarith"
)

// Exact converts an Integer into an arbitrary precision number.
func Exact(x Integer) goarith.Number {
	return goarith.AsNumber(big.NewInt(int64(x)))
}

// FromExact converts an exact result back into an Integer.
// It panics with ErrIntegerOverflow if n does not fit in 64 bits.
func FromExact(op string, n goarith.Number) Integer {
	i, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		panic(&TypeError{op, nil, ErrIntegerOverflow})
	}
	return Integer(i)
}

// ToFloat converts a number into float64.
// It panics with a TypeError for op if x is not a number.
func ToFloat(op string, x Value) float64 {
	switch v := x.(type) {
	case Integer:
		return float64(v)
	case Float:
		return float64(v)
	}
	wrongType(op, x)
	return 0
}

// IsNumber reports whether x is an Integer or a Float.
func IsNumber(x Value) bool {
	switch x.(type) {
	case Integer, Float:
		return true
	}
	return false
}

func isNaN(x Value) bool {
	f, ok := x.(Float)
	return ok && math.IsNaN(float64(f))
}

// arith2 combines two numbers.  Two integers are combined exactly by
// exact; any other pair of numbers is combined as float64 by inexact.
func arith2(op string, a, b Value,
	exact func(x, y goarith.Number) goarith.Number,
	inexact func(x, y float64) float64) Value {
	x, xok := a.(Integer)
	y, yok := b.(Integer)
	if xok && yok {
		return FromExact(op, exact(Exact(x), Exact(y)))
	}
	return Float(inexact(ToFloat(op, a), ToFloat(op, b)))
}

func add(a, b Value) Value {
	return arith2("+", a, b,
		func(x, y goarith.Number) goarith.Number { return x.Add(y) },
		func(x, y float64) float64 { return x + y })
}

func sub(a, b Value) Value {
	return arith2("-", a, b,
		func(x, y goarith.Number) goarith.Number { return x.Sub(y) },
		func(x, y float64) float64 { return x - y })
}

func mul(a, b Value) Value {
	return arith2("*", a, b,
		func(x, y goarith.Number) goarith.Number { return x.Mul(y) },
		func(x, y float64) float64 { return x * y })
}

// floorDiv returns a // b, rounding the quotient toward negative infinity.
func floorDiv(a, b Value) Value {
	x, xok := a.(Integer)
	y, yok := b.(Integer)
	if xok && yok {
		if y == 0 {
			panic(&TypeError{"/", nil, ErrDivisionByZero})
		}
		if x == math.MinInt64 && y == -1 {
			panic(&TypeError{"/", nil, ErrIntegerOverflow})
		}
		q := x / y
		if x%y != 0 && (x < 0) != (y < 0) {
			q--
		}
		return q
	}
	fx, fy := ToFloat("/", a), ToFloat("/", b)
	if fy == 0 {
		panic(&TypeError{"/", nil, ErrDivisionByZero})
	}
	return Float(math.Floor(fx / fy))
}

// trueDiv returns a / b as a Float.
func trueDiv(a, b Value) Value {
	fx, fy := ToFloat("truediv", a), ToFloat("truediv", b)
	if fy == 0 {
		panic(&TypeError{"truediv", nil, ErrDivisionByZero})
	}
	return Float(fx / fy)
}

// Compare returns -1, 0 or +1 as a is less than, equal to or
// greater than b.  Mixed integers and floats compare exactly by value.
// Neither a nor b may be NaN.
func Compare(op string, a, b Value) int {
	x, xok := a.(Integer)
	y, yok := b.(Integer)
	if xok && yok {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}
	return bigFloat(op, a).Cmp(bigFloat(op, b))
}

// bigFloat converts a number into a big.Float without rounding.
func bigFloat(op string, x Value) *big.Float {
	switch v := x.(type) {
	case Integer:
		return new(big.Float).SetInt64(int64(v))
	case Float:
		return big.NewFloat(float64(v))
	}
	wrongType(op, x)
	return nil
}

// Equal reports whether a and b are the same value: numbers by value,
// lists element by element and anything else by identity.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Integer, Float:
		if !IsNumber(b) || isNaN(a) || isNaN(b) {
			return false
		}
		return Compare("equal", a, b) == 0
	case *Cell:
		y, ok := b.(*Cell)
		if !ok {
			return false
		}
		for x != Nil && y != Nil {
			if !Equal(x.Car, y.Car) {
				return false
			}
			x, y = x.Cdr, y.Cdr
		}
		return x == Nil && y == Nil
	}
	return a == b
}

//----------------------------------------------------------------------

func plus_(x *Cell) Value {
	return x.FoldL(Integer(0), add)
}

func star_(x *Cell) Value {
	return x.FoldL(Integer(1), mul)
}

func minus_(x *Cell) Value {
	if x.Cdr == Nil {
		return sub(Integer(0), x.Car)
	}
	return x.Cdr.FoldL(x.Car, sub)
}

func slash_(x *Cell) Value {
	if x.Cdr == Nil {
		return floorDiv(Integer(1), x.Car)
	}
	return x.Cdr.FoldL(x.Car, floorDiv)
}

func truediv_(x *Cell) Value {
	if x.Cdr == Nil {
		return trueDiv(Integer(1), x.Car)
	}
	return x.Cdr.FoldL(x.Car, trueDiv)
}

// compareAll checks that every argument is a number and then
// that cmp holds for each adjacent pair.  NaN satisfies nothing.
func compareAll(op string, x *Cell, cmp func(int) bool) Value {
	for j := x; j != Nil; j = j.Cdr {
		if !IsNumber(j.Car) {
			wrongType(op, j.Car)
		}
	}
	return Bool(x.CompareAll(func(a, b Value) bool {
		if isNaN(a) || isNaN(b) {
			return false
		}
		return cmp(Compare(op, a, b))
	}))
}

func lessThan_(x *Cell) Value {
	return compareAll("<", x, func(c int) bool { return c < 0 })
}

func greaterThan_(x *Cell) Value {
	return compareAll(">", x, func(c int) bool { return c > 0 })
}

func lessThanOrEqual_(x *Cell) Value {
	return compareAll("<=", x, func(c int) bool { return c <= 0 })
}

func greaterThanOrEqual_(x *Cell) Value {
	return compareAll(">=", x, func(c int) bool { return c >= 0 })
}

func abs_(x *Cell) Value {
	switch v := x.Car.(type) {
	case Integer:
		n := Exact(v)
		if n.Cmp(Exact(0)) < 0 {
			n = Exact(0).Sub(n)
		}
		return FromExact("abs", n)
	case Float:
		return Float(math.Abs(float64(v)))
	}
	wrongType("abs", x.Car)
	return nil
}

// (round x) rounds half to even and returns an Integer.
// (round x n) rounds to n decimal places.
func round_(x *Cell) Value {
	if x.Cdr == Nil {
		switch v := x.Car.(type) {
		case Integer:
			return v
		case Float:
			return floatToInteger("round", math.RoundToEven(float64(v)))
		}
		wrongType("round", x.Car)
	}
	if x.Cdr.Cdr != Nil {
		panic(&ArityError{NewSym("round"), 2, x.Len()})
	}
	digits, ok := x.Cdr.Car.(Integer)
	if !ok {
		wrongType("round", x.Cdr.Car)
	}
	switch v := x.Car.(type) {
	case Integer:
		if digits >= 0 {
			return v
		}
		return roundInteger(v, digits)
	case Float:
		f := float64(v)
		if digits >= 0 {
			p := math.Pow(10, float64(digits))
			if math.IsInf(p, 0) || math.IsInf(f*p, 0) {
				return v // too few digits to round off
			}
			return Float(math.RoundToEven(f*p) / p)
		}
		p := math.Pow(10, float64(-digits))
		if math.IsInf(p, 0) {
			return Float(math.Copysign(0, f))
		}
		return Float(math.RoundToEven(f/p) * p)
	}
	wrongType("round", x.Car)
	return nil
}

// roundInteger rounds v half to even at 10**(-digits), digits < 0.
func roundInteger(v, digits Integer) Value {
	if digits < -18 {
		return Integer(0)
	}
	m := Integer(1)
	for i := digits; i < 0; i++ {
		m *= 10
	}
	q := floorDiv(v, m).(Integer)
	r := v - q*m
	if 2*r > m || (2*r == m && q%2 != 0) {
		q++
	}
	return FromExact("round", Exact(q).Mul(Exact(m)))
}

// floatToInteger converts an integral float64 into an Integer.
func floatToInteger(op string, f float64) Integer {
	if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		panic(&TypeError{op, Float(f), ErrIntegerOverflow})
	}
	return Integer(f)
}

// extreme returns the first argument x for which better(x, y) holds
// against every other y.  Nothing is better than NaN or worse than it.
func extreme(op string, x *Cell, better func(int) bool) Value {
	result := x.Car
	if !IsNumber(result) {
		wrongType(op, result)
	}
	for j := x.Cdr; j != Nil; j = j.Cdr {
		if !IsNumber(j.Car) {
			wrongType(op, j.Car)
		}
		if isNaN(j.Car) || isNaN(result) {
			continue
		}
		if better(Compare(op, j.Car, result)) {
			result = j.Car
		}
	}
	return result
}

func max_(x *Cell) Value {
	return extreme("max", x, func(c int) bool { return c > 0 })
}

func min_(x *Cell) Value {
	return extreme("min", x, func(c int) bool { return c < 0 })
}
