package main

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotAnalyzed is returned by the IR generator when it meets an expression
// that semantic analysis has not validated.
var ErrNotAnalyzed = errors.New("error: AST has not been semantically analyzed")

// LexicalError reports an unrecognized character. The lexer skips it and
// continues, so these only ever appear inside an ErrorCollection.
type LexicalError struct {
	Char rune
	Line int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("error: illegal character '%c' on line %d", e.Char, e.Line)
}

// SyntaxError aborts a parse. Token is empty when AtEOF is set.
type SyntaxError struct {
	Token string
	Line  int
	AtEOF bool
}

func (e *SyntaxError) Error() string {
	if e.AtEOF {
		return fmt.Sprintf("error: syntax error at end of input on line %d", e.Line)
	}
	return fmt.Sprintf("error: syntax error at token '%s' on line %d", e.Token, e.Line)
}

// SemanticErrorKind classifies a SemanticError.
type SemanticErrorKind int

const (
	DuplicateSymbol SemanticErrorKind = iota + 1
	UndeclaredIdentifier
	UndeclaredFunction
	TypeMismatch
	ArityMismatch
	NotCallable
)

func (k SemanticErrorKind) String() string {
	switch k {
	case DuplicateSymbol:
		return "DuplicateSymbol"
	case UndeclaredIdentifier:
		return "UndeclaredIdentifier"
	case UndeclaredFunction:
		return "UndeclaredFunction"
	case TypeMismatch:
		return "TypeMismatch"
	case ArityMismatch:
		return "ArityMismatch"
	case NotCallable:
		return "NotCallable"
	default:
		return fmt.Sprintf("SemanticErrorKind(%d)", int(k))
	}
}

// SemanticError is the first failure found by the analyzer.
type SemanticError struct {
	Kind SemanticErrorKind
	Name string // offending symbol, or operator for TypeMismatch on an operation
	Line int

	// ArityMismatch only.
	Expected int
	Found    int

	// TypeMismatch only: the type that was found.
	Type Type
}

func (e *SemanticError) Error() string {
	var msg string
	switch e.Kind {
	case DuplicateSymbol:
		msg = fmt.Sprintf("symbol '%s' already declared in this scope", e.Name)
	case UndeclaredIdentifier:
		msg = fmt.Sprintf("identifier '%s' not declared", e.Name)
	case UndeclaredFunction:
		msg = fmt.Sprintf("function '%s' not declared", e.Name)
	case TypeMismatch:
		msg = fmt.Sprintf("type mismatch in '%s': expected %s, found %s", e.Name, TypeNumeric, e.Type)
	case ArityMismatch:
		msg = fmt.Sprintf("function '%s' called with wrong number of arguments: expected %d, found %d", e.Name, e.Expected, e.Found)
	case NotCallable:
		msg = fmt.Sprintf("function '%s' used as a value", e.Name)
	default:
		msg = fmt.Sprintf("%s for '%s'", e.Kind, e.Name)
	}
	if e.Line > 0 {
		return fmt.Sprintf("error: %s on line %d", msg, e.Line)
	}
	return "error: " + msg
}

// ErrorCollection accumulates diagnostics that do not stop processing.
type ErrorCollection struct {
	errs []error
}

func (c *ErrorCollection) Add(err error) {
	c.errs = append(c.errs, err)
}

func (c *ErrorCollection) HasErrors() bool {
	return c != nil && len(c.errs) > 0
}

func (c *ErrorCollection) Count() int {
	if c == nil {
		return 0
	}
	return len(c.errs)
}

// Errors returns the collected diagnostics in the order they were reported.
func (c *ErrorCollection) Errors() []error {
	if c == nil {
		return nil
	}
	return c.errs
}

// String joins all diagnostics, one per line.
func (c *ErrorCollection) String() string {
	var lines []string
	for _, err := range c.Errors() {
		lines = append(lines, err.Error())
	}
	return strings.Join(lines, "\n")
}
