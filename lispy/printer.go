package lispy

import (
	"math"
	"strconv"
	"strings"
)

// Str(x) returns a textual representation of x which reads back
// as an equal value when x is a number, a symbol or a list of them.
func Str(x Value) string {
	switch v := x.(type) {
	case *Cell:
		if v == Nil {
			return "()"
		}
		s := make([]string, 0, 10)
		for j := v; j != Nil; j = j.Cdr {
			s = append(s, Str(j.Car))
		}
		return "(" + strings.Join(s, " ") + ")"
	case Float:
		return strFloat(float64(v))
	case nil:
		return "#<nil>"
	}
	return x.String()
}

// strFloat renders f so that it never reads back as an Integer.
func strFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	var s string
	if a := math.Abs(f); a >= 1e16 || (a != 0 && a < 1e-4) {
		s = strconv.FormatFloat(f, 'e', -1, 64)
	} else {
		s = strconv.FormatFloat(f, 'f', -1, 64)
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
