package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/nukata/lispy-in-go/lispy"
	"github.com/peterh/liner"
)

func writeFile(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunFile(t *testing.T) {
	path := writeFile(t, "ok.lsp", "(define x 2)\n(define y\n  (* x 21)) (define z (+ y 1))\n")
	in := lispy.New()
	if err := runFile(in, path); err != nil {
		t.Fatal(err)
	}
	for name, want := range map[string]lispy.Value{"y": lispy.Integer(42), "z": lispy.Integer(43)} {
		if v, err := in.Global.Lookup(lispy.NewSym(name)); err != nil || v != want {
			t.Errorf("%s = %v, %v; want %v", name, v, err, want)
		}
	}
}

func TestRunFileErrors(t *testing.T) {
	in := lispy.New()
	path := writeFile(t, "bad.lsp", "(define a 1)\n(car a)\n(define b 2)\n")
	err := runFile(in, path)
	var te *lispy.TypeError
	if !errors.As(err, &te) || !strings.Contains(err.Error(), path) {
		t.Errorf("err = %v, want a type error naming %s", err, path)
	}
	if _, err := in.Global.Lookup(lispy.NewSym("b")); err == nil {
		t.Error("evaluation went on after the error")
	}

	path = writeFile(t, "open.lsp", "(define a\n")
	if err := runFile(in, path); !lispy.IsIncomplete(err) {
		t.Errorf("err = %v, want an incomplete expression", err)
	}

	if err := runFile(in, filepath.Join(t.TempDir(), "missing.lsp")); err == nil {
		t.Error("no error for a missing file")
	}
}

func TestMainExitStatus(t *testing.T) {
	ok := writeFile(t, "ok.lsp", "(define (sq x) (* x x)) (sq (sqrt 2))")
	bad := writeFile(t, "bad.lsp", "(undefined-procedure 1)")
	cases := []struct {
		args []string
		want int
	}{
		{[]string{"lispy", ok}, 0},
		{[]string{"lispy", ok, bad}, 1},
		{[]string{"lispy", "-e", "(+ 1 2)"}, 0},
		{[]string{"lispy", "-e", "(+ 1"}, 1},
		{[]string{"lispy", "-depth", "50", "-e", "(begin (define (f n) (f n)) (f 0))"}, 1},
		{[]string{"lispy", "-no-such-flag"}, 2},
	}
	for _, c := range cases {
		if got := Main(c.args); got != c.want {
			t.Errorf("Main(%q) = %d, want %d", c.args, got, c.want)
		}
	}
}

func TestComplete(t *testing.T) {
	env := lispy.NewGlobalEnv()
	for _, name := range []string{"car", "cdr", "cons", "list", "list?"} {
		env.Define(lispy.NewSym(name), lispy.Integer(0))
	}
	cases := []struct {
		line string
		want []string
	}{
		{"(c", []string{"(car", "(cdr", "(cons"}},
		{"(map (lambda (x) (li", []string{"(map (lambda (x) (list", "(map (lambda (x) (list?"}},
		{"(co", []string{"(cons"}},
		{"(", nil},
		{"(zz", nil},
	}
	for _, c := range cases {
		if got := complete(env, c.line); !reflect.DeepEqual(got, c.want) {
			t.Errorf("complete(%q) = %q, want %q", c.line, got, c.want)
		}
	}
}

// scriptedPrompter answers prompts from a fixed list of lines and errors.
type scriptedPrompter struct {
	inputs  []interface{} // string or error
	prompts []string
}

func (sp *scriptedPrompter) Prompt(prompt string) (string, error) {
	sp.prompts = append(sp.prompts, prompt)
	if len(sp.inputs) == 0 {
		return "", io.EOF
	}
	in := sp.inputs[0]
	sp.inputs = sp.inputs[1:]
	if err, ok := in.(error); ok {
		return "", err
	}
	return in.(string), nil
}

func TestReadExpression(t *testing.T) {
	sp := &scriptedPrompter{inputs: []interface{}{
		"(+ 1", liner.ErrPromptAborted,
		"(+ 2", "3)",
	}}
	cases := []struct {
		src string
		ok  bool
	}{
		{"", true},
		{"(+ 2\n3)", true},
		{"", false},
	}
	for _, c := range cases {
		if src, ok := readExpression(sp); src != c.src || ok != c.ok {
			t.Errorf("readExpression() = %q, %v; want %q, %v", src, ok, c.src, c.ok)
		}
	}
	want := []string{promptMain, promptCont, promptMain, promptCont, promptMain}
	if !reflect.DeepEqual(sp.prompts, want) {
		t.Errorf("prompts = %q, want %q", sp.prompts, want)
	}
}
