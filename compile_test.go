package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestCompile(t *testing.T) {
	res, err := Compile("function f(x) = x^2\ny = f(3)")
	be.Err(t, err, nil)
	be.Equal(t, res.Diagnostics.HasErrors(), false)
	be.Equal(t, res.Tokens[len(res.Tokens)-1].Type, TokenType(EOF))
	be.Equal(t, res.AST.Kind, NodeProgram)
	be.True(t, res.Symbols.LookupGlobal("y") != nil)
	be.Equal(t, res.Signatures["f"], []string{"x"})
	be.Equal(t, FormatInstructions(res.Instructions),
		"(LABEL, _, _, FUNC_f)\n"+
			"(^, x, 2, t1)\n"+
			"(RETURN, t1, _, _)\n"+
			"(END_FUNC, _, _, f)\n"+
			"(PARAM, 3, _, _)\n"+
			"(CALL, f, 1, t2)\n"+
			"(=, t2, _, y)\n")
}

func TestCompileReportsCounts(t *testing.T) {
	res, err := Compile("function f(x) = x^2\nfunction g(y) = f(y) + 1\nz = g(2)")
	be.Err(t, err, nil)
	be.Equal(t, res.Temps, 4)
	be.Equal(t, res.Labels, 2)

	res, err = Compile("a = 1")
	be.Err(t, err, nil)
	be.Equal(t, res.Temps, 0)
	be.Equal(t, res.Labels, 0)
}

func TestCompileSyntaxError(t *testing.T) {
	res, err := Compile("a = (1")
	var syntaxErr *SyntaxError
	be.True(t, errors.As(err, &syntaxErr))
	be.True(t, syntaxErr.AtEOF)
	be.True(t, len(res.Tokens) > 0)
	be.True(t, res.AST == nil)
	be.True(t, res.Instructions == nil)
}

func TestCompileSemanticErrorProducesNoCode(t *testing.T) {
	res, err := Compile("a = 1\nb = a + c")
	var semErr *SemanticError
	be.True(t, errors.As(err, &semErr))
	be.Equal(t, semErr.Kind, UndeclaredIdentifier)
	be.Equal(t, semErr.Line, 2)
	be.True(t, res.AST != nil)
	be.True(t, res.Instructions == nil)
	be.True(t, res.Signatures == nil)
}

func TestCompileRecoversFromLexicalErrors(t *testing.T) {
	res, err := Compile("a = 2 # + 3")
	be.Err(t, err, nil)
	be.Equal(t, res.Diagnostics.Count(), 1)
	be.Equal(t, res.Diagnostics.String(), "error: illegal character '#' on line 1")
	be.Equal(t, FormatInstructions(res.Instructions), "(+, 2, 3, t1)\n(=, t1, _, a)\n")
}

func TestCompileReportsBothLexicalAndSyntaxErrors(t *testing.T) {
	res, err := Compile("a = 2 $\n3")
	var syntaxErr *SyntaxError
	be.True(t, errors.As(err, &syntaxErr))
	be.Equal(t, syntaxErr.Token, "3")
	be.Equal(t, syntaxErr.Line, 2)
	be.Equal(t, res.Diagnostics.Count(), 1)
}

func TestCompileAll(t *testing.T) {
	sources := []string{
		"a = 1 + 2",
		"b = x",
		"function f(x) = x * x\nc = f(4) + 1",
		"d = (1 + 2) * 3",
	}

	results, err := CompileAll(context.Background(), sources, 2)
	be.Err(t, err, nil)
	be.Equal(t, len(results), len(sources))

	be.Err(t, results[0].Err, nil)
	be.Equal(t, FormatInstructions(results[0].Result.Instructions),
		"(+, 1, 2, t1)\n(=, t1, _, a)\n")

	var semErr *SemanticError
	be.True(t, errors.As(results[1].Err, &semErr))
	be.Equal(t, semErr.Name, "x")

	// Each job numbers its temporaries from t1.
	be.Err(t, results[2].Err, nil)
	be.Equal(t, results[2].Result.Instructions[1], Instruction{
		Op: OpMul, Arg1: Name("x"), Arg2: Name("x"), Result: Temp(1),
	})
	be.Err(t, results[3].Err, nil)
	be.Equal(t, results[3].Result.Instructions[0].Result, Temp(1))
}

func TestCompileAllMatchesSequentialCompile(t *testing.T) {
	var sources []string
	for i := range 50 {
		sources = append(sources, fmt.Sprintf("function f%d(x) = x^%d\ny = f%d(%d) - %d", i, i, i, i, i))
	}

	results, err := CompileAll(context.Background(), sources, 0)
	be.Err(t, err, nil)

	for i, source := range sources {
		want, err := Compile(source)
		be.Err(t, err, nil)
		be.Err(t, results[i].Err, nil)
		be.Equal(t, FormatInstructions(results[i].Result.Instructions), FormatInstructions(want.Instructions))
		be.True(t, strings.HasPrefix(FormatInstructions(results[i].Result.Instructions),
			fmt.Sprintf("(LABEL, _, _, FUNC_f%d)\n", i)))
	}
}

func TestCompileAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := CompileAll(ctx, []string{"a = 1", "b = 2"}, 1)
	be.True(t, errors.Is(err, context.Canceled))
	be.Equal(t, len(results), 2)
}

func TestCompileAllEmpty(t *testing.T) {
	results, err := CompileAll(context.Background(), nil, 4)
	be.Err(t, err, nil)
	be.Equal(t, len(results), 0)
}
