package lispy

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// parenPadder surrounds each parenthesis with spaces.
var parenPadder = strings.NewReplacer("(", " ( ", ")", " ) ")

// Tokenize splits text into tokens.
// "(" and ")" are always tokens of their own.
func Tokenize(text string) []string {
	return strings.Fields(parenPadder.Replace(text))
}

// Atom classifies a token as an Integer, a Float or a Symbol, in this order.
func Atom(token string) Value {
	if n, err := strconv.ParseInt(token, 10, 64); err == nil {
		return Integer(n)
	}
	f, err := strconv.ParseFloat(token, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return Float(f) // 1e400 reads as inf
	}
	return NewSym(token)
}

// readFrom reads an expression from the front of tokens and
// drops the tokens it has consumed.
// It panics with a *SyntaxError on a malformed token stream.
func readFrom(tokens *[]string) Value {
	if len(*tokens) == 0 {
		panic(&SyntaxError{Err: ErrUnexpectedEOF})
	}
	token := (*tokens)[0]
	*tokens = (*tokens)[1:]
	switch token {
	case "(": // (a b c)
		result := Nil
		p := &result
		for {
			if len(*tokens) == 0 {
				panic(&SyntaxError{Err: ErrUnexpectedEOF})
			}
			if (*tokens)[0] == ")" {
				*tokens = (*tokens)[1:]
				return result
			}
			x := &Cell{readFrom(tokens), Nil}
			*p = x
			p = &x.Cdr
		}
	case ")":
		panic(&SyntaxError{Err: ErrUnexpectedClose})
	default:
		return Atom(token)
	}
}

// read is readFrom with the panic turned into an error.
func read(tokens *[]string) (result Value, err error) {
	defer func() {
		if e := recover(); e != nil {
			result, err = nil, recovered(e)
		}
	}()
	return readFrom(tokens), nil
}

// trailing returns the error for tokens left over after one expression.
func trailing(tokens []string) error {
	if tokens[0] == ")" {
		return &SyntaxError{Err: ErrUnexpectedClose}
	}
	return &SyntaxError{Err: ErrTrailingTokens, Near: tokens[0]}
}

// Parse reads exactly one expression from text.
// Any token after the expression is a syntax error.
func Parse(text string) (Value, error) {
	tokens := Tokenize(text)
	x, err := read(&tokens)
	if err != nil {
		return nil, err
	}
	if len(tokens) > 0 {
		return nil, trailing(tokens)
	}
	return x, nil
}

// ParseAll reads every expression of text in order.
func ParseAll(text string) ([]Value, error) {
	tokens := Tokenize(text)
	result := make([]Value, 0, 1)
	for len(tokens) > 0 {
		x, err := read(&tokens)
		if err != nil {
			return nil, err
		}
		result = append(result, x)
	}
	return result, nil
}

//----------------------------------------------------------------------

// Reader represents a reader of expressions from a stream of lines.
// An expression may span several lines and a line may hold
// several expressions.
type Reader struct {
	scanner *bufio.Scanner
	tokens  []string // tokens read but not consumed yet
	lineNo  int      // the current line number
}

// NewReader constructs a reader which will read expressions from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Read reads an expression and returns it and nil.
// If the input runs out between expressions, it returns nil and io.EOF.
// After a syntax error, the rest of the pending tokens are discarded.
func (rr *Reader) Read() (Value, error) {
	for len(rr.tokens) == 0 {
		if !rr.readLine() {
			if err := rr.scanner.Err(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
	}
	for {
		tokens := rr.tokens
		x, err := read(&tokens)
		if err == nil {
			rr.tokens = tokens
			return x, nil
		}
		if IsIncomplete(err) && rr.readLine() {
			continue
		}
		if serr := rr.scanner.Err(); serr != nil {
			return nil, serr
		}
		rr.tokens = nil
		if se, ok := err.(*SyntaxError); ok {
			se.Line = rr.lineNo
		}
		return nil, err
	}
}

// readLine appends the tokens of the next line to rr.tokens.
// It returns false if there is no more line.
func (rr *Reader) readLine() bool {
	if !rr.scanner.Scan() {
		return false
	}
	rr.lineNo++
	rr.tokens = append(rr.tokens, Tokenize(rr.scanner.Text())...)
	return true
}
