package lispy

import (
	"errors"
	"reflect"
	"testing"
)

func TestEnvFind(t *testing.T) {
	x, y := NewSym("x"), NewSym("y")
	global := NewGlobalEnv()
	global.Define(x, Integer(1))
	global.Define(y, Integer(2))
	local, err := NewEnv([]*Sym{x}, []Value{Integer(10)}, global)
	if err != nil {
		t.Fatal(err)
	}

	if e, err := local.Find(x); err != nil || e != local {
		t.Errorf("Find(x) = %p, %v; want the local scope", e, err)
	}
	if e, err := local.Find(y); err != nil || e != global {
		t.Errorf("Find(y) = %p, %v; want the global scope", e, err)
	}
	if v, _ := local.Lookup(x); v != Integer(10) {
		t.Errorf("Lookup(x) = %v, want 10", v)
	}
	if v, _ := local.Lookup(y); v != Integer(2) {
		t.Errorf("Lookup(y) = %v, want 2", v)
	}
	if local.Outer() != global || global.Outer() != nil {
		t.Error("wrong outer scopes")
	}
}

func TestEnvUnbound(t *testing.T) {
	z := NewSym("z")
	local, _ := NewEnv(nil, nil, NewGlobalEnv())
	for _, err := range []error{
		func() error { _, err := local.Find(z); return err }(),
		func() error { _, err := local.Lookup(z); return err }(),
		local.Set(z, Integer(1)),
	} {
		var ue *UnboundError
		if !errors.As(err, &ue) || ue.Sym != z {
			t.Errorf("err = %v, want unbound z", err)
		}
	}
}

func TestEnvSetAndDefine(t *testing.T) {
	y := NewSym("y")
	global := NewGlobalEnv()
	global.Define(y, Integer(5))
	local, _ := NewEnv(nil, nil, global)

	// Set replaces the binding where it lives.
	if err := local.Set(y, Integer(6)); err != nil {
		t.Fatal(err)
	}
	if v, _ := global.Lookup(y); v != Integer(6) {
		t.Errorf("global y = %v, want 6", v)
	}
	if names := local.Names(); len(names) != 0 {
		t.Errorf("local names = %v, want none", names)
	}

	// Define shadows it in the local scope only.
	local.Define(y, Integer(7))
	if v, _ := local.Lookup(y); v != Integer(7) {
		t.Errorf("local y = %v, want 7", v)
	}
	if v, _ := global.Lookup(y); v != Integer(6) {
		t.Errorf("global y = %v, want 6", v)
	}
}

func TestNewEnvArity(t *testing.T) {
	_, err := NewEnv([]*Sym{NewSym("a"), NewSym("b")}, []Value{Integer(1)}, nil)
	var ae *ArityError
	if !errors.As(err, &ae) || ae.Want != 2 || ae.Got != 1 {
		t.Errorf("err = %v, want an arity error", err)
	}
}

func TestEnvNames(t *testing.T) {
	env := NewGlobalEnv()
	for _, name := range []string{"b", "a", "c"} {
		env.Define(NewSym(name), Integer(0))
	}
	if got, want := env.Names(), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
}
