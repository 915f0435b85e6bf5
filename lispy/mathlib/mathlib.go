// Package mathlib supplies math functions and constants to a lispy
// global environment, in the manner of Python's math module.
package mathlib

import (
	"math"
	"math/big"

	"github.com/nukata/goarith"
	"github.com/nukata/lispy-in-go/lispy"
)

// Library is a lispy.Provider of the math bindings.
type Library struct{}

// Bindings returns the math bindings by name.
func (Library) Bindings() map[string]lispy.Value {
	m := map[string]lispy.Value{
		"pi":  lispy.Float(math.Pi),
		"e":   lispy.Float(math.E),
		"tau": lispy.Float(2 * math.Pi),
		"inf": lispy.Float(math.Inf(1)),
		"nan": lispy.Float(math.NaN()),
	}
	for name, fn := range unary {
		m[name] = float1(name, fn)
	}
	for name, fn := range binary {
		m[name] = float2(name, fn)
	}
	for name, fn := range integral {
		m[name] = toInteger(name, fn)
	}
	for name, fn := range predicates {
		m[name] = predicate(name, fn)
	}
	m["log"] = lispy.NewPrimitive("log", -2, log_)
	m["factorial"] = lispy.NewPrimitive("factorial", 1, factorial_)
	m["gcd"] = lispy.NewPrimitive("gcd", -1, gcd_)
	return m
}

var unary = map[string]func(float64) float64{
	"acos":    math.Acos,
	"acosh":   math.Acosh,
	"asin":    math.Asin,
	"asinh":   math.Asinh,
	"atan":    math.Atan,
	"atanh":   math.Atanh,
	"cos":     math.Cos,
	"cosh":    math.Cosh,
	"degrees": func(x float64) float64 { return x * 180 / math.Pi },
	"erf":     math.Erf,
	"erfc":    math.Erfc,
	"exp":     math.Exp,
	"expm1":   math.Expm1,
	"fabs":    math.Abs,
	"gamma":   math.Gamma,
	"lgamma": func(x float64) float64 {
		y, _ := math.Lgamma(x)
		return y
	},
	"log10":   math.Log10,
	"log1p":   math.Log1p,
	"log2":    math.Log2,
	"radians": func(x float64) float64 { return x * math.Pi / 180 },
	"sin":     math.Sin,
	"sinh":    math.Sinh,
	"sqrt":    math.Sqrt,
	"tan":     math.Tan,
	"tanh":    math.Tanh,
}

var binary = map[string]func(float64, float64) float64{
	"atan2":     math.Atan2,
	"copysign":  math.Copysign,
	"fmod":      math.Mod,
	"hypot":     math.Hypot,
	"ldexp":     func(x, i float64) float64 { return math.Ldexp(x, int(i)) },
	"pow":       math.Pow,
	"remainder": math.Remainder,
}

var integral = map[string]func(float64) float64{
	"ceil":  math.Ceil,
	"floor": math.Floor,
	"trunc": math.Trunc,
}

var predicates = map[string]func(float64) bool{
	"isnan":    math.IsNaN,
	"isinf":    func(x float64) bool { return math.IsInf(x, 0) },
	"isfinite": func(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) },
}

func float1(name string, fn func(float64) float64) *lispy.Primitive {
	return lispy.NewPrimitive(name, 1, func(x *lispy.Cell) lispy.Value {
		return lispy.Float(fn(lispy.ToFloat(name, x.Car)))
	})
}

func float2(name string, fn func(float64, float64) float64) *lispy.Primitive {
	return lispy.NewPrimitive(name, 2, func(x *lispy.Cell) lispy.Value {
		a, b := lispy.ToFloat(name, x.Car), lispy.ToFloat(name, x.Cdr.Car)
		return lispy.Float(fn(a, b))
	})
}

// toInteger makes a primitive which rounds a number by fn.
// An Integer argument is returned as it is.
func toInteger(name string, fn func(float64) float64) *lispy.Primitive {
	return lispy.NewPrimitive(name, 1, func(x *lispy.Cell) lispy.Value {
		if n, ok := x.Car.(lispy.Integer); ok {
			return n
		}
		f := fn(lispy.ToFloat(name, x.Car))
		if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			panic(&lispy.TypeError{Op: name, Arg: x.Car, Err: lispy.ErrIntegerOverflow})
		}
		return lispy.Integer(f)
	})
}

func predicate(name string, fn func(float64) bool) *lispy.Primitive {
	return lispy.NewPrimitive(name, 1, func(x *lispy.Cell) lispy.Value {
		return lispy.Bool(fn(lispy.ToFloat(name, x.Car)))
	})
}

// (log x) is the natural logarithm; (log x base) is log x / log base.
func log_(x *lispy.Cell) lispy.Value {
	a := lispy.ToFloat("log", x.Car)
	switch x.Len() {
	case 1:
		return lispy.Float(math.Log(a))
	case 2:
		base := lispy.ToFloat("log", x.Cdr.Car)
		return lispy.Float(math.Log(a) / math.Log(base))
	}
	panic(&lispy.ArityError{Proc: lispy.NewSym("log"), Want: 2, Got: x.Len()})
}

// (factorial n) computes n! exactly; it fails if the result
// does not fit in an Integer.
func factorial_(x *lispy.Cell) lispy.Value {
	n, ok := x.Car.(lispy.Integer)
	if !ok || n < 0 {
		panic(&lispy.TypeError{Op: "factorial", Arg: x.Car, Err: lispy.ErrWrongType})
	}
	result := lispy.Exact(1)
	for i := lispy.Integer(2); i <= n; i++ {
		result = result.Mul(lispy.Exact(i))
		if result.Cmp(lispy.Exact(math.MaxInt64)) > 0 {
			break // FromExact reports the overflow.
		}
	}
	return lispy.FromExact("factorial", result)
}

// (gcd n...) is the greatest common divisor of the integers; (gcd) is 0.
func gcd_(x *lispy.Cell) lispy.Value {
	result := new(big.Int)
	for j := x; j != lispy.Nil; j = j.Cdr {
		n, ok := j.Car.(lispy.Integer)
		if !ok {
			panic(&lispy.TypeError{Op: "gcd", Arg: j.Car, Err: lispy.ErrWrongType})
		}
		result.GCD(nil, nil, result, big.NewInt(int64(n)))
	}
	return lispy.FromExact("gcd", goarith.AsNumber(result))
}
