/*
  Lispy in Go: the command line front end.

  lispy [-depth N] [-e expression] [file ...]

  Each file is evaluated in order; "-" or no file at all begins the
  interactive Read-Eval-Print Loop.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/nukata/lispy-in-go/lispy"
	"github.com/nukata/lispy-in-go/lispy/mathlib"
	"github.com/peterh/liner"
)

const (
	historyFile = ".lispy_history"
	promptMain  = "lispy> "
	promptCont  = "...... "
)

var logger = log.New(os.Stderr, "lispy: ", 0)

// Main runs the interpreter with the command line args and
// returns the exit status.  It ignores args[0].
func Main(args []string) int {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	depth := fs.Int("depth", lispy.DefaultMaxDepth, "maximum depth of nested evaluation")
	expr := fs.String("e", "", "evaluate `expression` and print its value")
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}

	in := lispy.New(mathlib.Library{})
	in.MaxDepth = *depth

	if *expr != "" {
		x, err := in.EvalString(*expr)
		if err != nil {
			logger.Println(err)
			return 1
		}
		printValue(x)
		return 0
	}

	files := fs.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, fileName := range files {
		if fileName == "-" {
			readEvalPrintLoop(in)
			fmt.Println("Goodbye")
			continue
		}
		if err := runFile(in, fileName); err != nil {
			logger.Println(err)
			return 1
		}
	}
	return 0
}

// runFile evaluates the expressions of a file one by one.
func runFile(in *lispy.Interpreter, fileName string) error {
	file, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer file.Close()
	rr := lispy.NewReader(file)
	for {
		x, err := rr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", fileName, err)
		}
		if _, err := in.Eval(x); err != nil {
			return fmt.Errorf("%s: %w", fileName, err)
		}
	}
}

// printValue prints x unless it is Void.
func printValue(x lispy.Value) {
	if x != lispy.Void {
		fmt.Println(lispy.Str(x))
	}
}

// Read-Eval-Print Loop of the interpreter
func readEvalPrintLoop(in *lispy.Interpreter) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(func(line string) []string {
		return complete(in.Global, line)
	})

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		src, ok := readExpression(ln)
		if !ok {
			fmt.Println()
			return
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		x, err := in.EvalString(src)
		if err != nil {
			fmt.Println(err)
			continue
		}
		printValue(x)
	}
}

// prompter reads a line of input after showing a prompt.
// *liner.State is one.
type prompter interface {
	Prompt(prompt string) (string, error)
}

// readExpression reads lines until they make complete expressions.
// On Ctrl-C it returns "" to discard the pending lines.
// It returns false at the end of input.
func readExpression(ln prompter) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		src := b.String()
		if _, err := lispy.ParseAll(src); lispy.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}

// complete returns the global names which complete the last word of line.
func complete(env *lispy.Env, line string) []string {
	i := strings.LastIndexAny(line, " \t()") + 1
	prefix, word := line[:i], line[i:]
	if word == "" {
		return nil
	}
	var result []string
	for _, name := range env.Names() {
		if strings.HasPrefix(name, word) {
			result = append(result, prefix+name)
		}
	}
	return result
}

func main() {
	os.Exit(Main(os.Args))
}
