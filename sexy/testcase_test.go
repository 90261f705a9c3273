package sexy

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

const fence = "```"

func TestExtractTestCases_BasicTest(t *testing.T) {
	markdown := `# Arithmetic

## Test: addition
` + fence + `calc-program
a = 2 + 3
` + fence + `
` + fence + `ir
(ir ("+" 2 3 t1) ("=" t1 nil "a"))
` + fence + `

## Test: subtraction
` + fence + `calc-expr
1 - 2
` + fence + `
` + fence + `ast
(binary "-" (integer 1) (integer 2))
` + fence

	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 2)

	tc1 := testCases[0]
	be.Equal(t, tc1.Name, "addition")
	be.Equal(t, tc1.Input, "a = 2 + 3")
	be.Equal(t, tc1.InputType, InputTypeCalcProgram)
	be.Equal(t, len(tc1.Assertions), 1)
	be.Equal(t, tc1.Assertions[0].Type, AssertionTypeIR)
	be.Equal(t, tc1.Assertions[0].ParsedSexy.String(), `(ir ("+" 2 3 t1) ("=" t1 nil "a"))`)

	tc2 := testCases[1]
	be.Equal(t, tc2.Name, "subtraction")
	be.Equal(t, tc2.Input, "1 - 2")
	be.Equal(t, tc2.InputType, InputTypeCalcExpr)
	be.Equal(t, tc2.Assertions[0].Type, AssertionTypeAST)
	be.Equal(t, tc2.Assertions[0].Content, `(binary "-" (integer 1) (integer 2))`)
}

func TestExtractTestCases_MultipleAssertions(t *testing.T) {
	markdown := `## Test: everything
` + fence + `calc-program
y = z
` + fence + `
` + fence + `tokens
(tokens (identifier "y") (operator "=") (identifier "z") (eof))
` + fence + `
` + fence + `compile-error
identifier 'z' not declared
` + fence

	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 1)

	tc := testCases[0]
	be.Equal(t, len(tc.Assertions), 2)
	be.Equal(t, tc.Assertions[0].Type, AssertionTypeTokens)
	be.True(t, tc.Assertions[0].ParsedSexy != nil)
	be.Equal(t, tc.Assertions[1].Type, AssertionTypeCompileError)
	be.Equal(t, tc.Assertions[1].Content, "identifier 'z' not declared")
	be.True(t, tc.Assertions[1].ParsedSexy == nil)
}

func TestExtractTestCases_MultiLineInput(t *testing.T) {
	markdown := `## Test: two statements
` + fence + `calc-program
a = 1
b = a
` + fence + `
` + fence + `lex-errors
` + fence

	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, testCases[0].Input, "a = 1\nb = a")
	be.Equal(t, testCases[0].Assertions[0].Type, AssertionTypeLexErrors)
	be.Equal(t, testCases[0].Assertions[0].Content, "")
}

func TestExtractTestCases_EmptyInput(t *testing.T) {
	markdown := `## Test: empty program
` + fence + `calc-program
` + fence + `
` + fence + `compile-error
end of input
` + fence

	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, testCases[0].Input, "")
	be.Equal(t, testCases[0].InputType, InputTypeCalcProgram)
}

func TestExtractTestCases_EmptyFile(t *testing.T) {
	testCases, err := ExtractTestCases("")
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 0)
}

func TestExtractTestCases_NoTestCases(t *testing.T) {
	markdown := `# Notes

Plain prose, and an untagged block:

` + fence + `
a = 1
` + fence

	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 0)
}

func TestExtractTestCases_Errors(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		contains string
	}{
		{
			"unknown fence outside test",
			fence + "go\nfunc main() {}\n" + fence,
			"unknown fence language 'go' found outside of test case",
		},
		{
			"known fence outside test",
			"# Title\n\n" + fence + "ir\n(ir)\n" + fence,
			"line 4: ir fence found outside of test case",
		},
		{
			"unknown fence inside test",
			"## Test: t\n" + fence + "calc-program\na = 1\n" + fence + "\n" + fence + "python\nprint(1)\n" + fence,
			"unknown fence language 'python' in test 't'",
		},
		{
			"invalid sexy",
			"## Test: bad\n" + fence + "calc-expr\n1\n" + fence + "\n" + fence + "ast\n(integer 1\n" + fence,
			"failed to parse Sexy assertion in test 'bad'",
		},
		{
			"missing input",
			"## Test: no input\n" + fence + "ast\n(integer 1)\n" + fence,
			"test 'no input' has no input fence",
		},
		{
			"missing assertion",
			"## Test: no assertions\n" + fence + "calc-expr\n1\n" + fence,
			"test 'no assertions' has no assertion fences",
		},
		{
			"multiple inputs",
			"## Test: twice\n" + fence + "calc-expr\n1\n" + fence + "\n" + fence + "calc-expr\n2\n" + fence,
			"multiple input fences found in test 'twice'",
		},
		{
			"error in second test",
			"## Test: first\n" + fence + "calc-expr\n1\n" + fence + "\n" + fence + "ast\n(integer 1)\n" + fence +
				"\n\n## Test: second\n" + fence + "ast\n(integer 1)\n" + fence,
			"test 'second' has no input fence",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ExtractTestCases(test.markdown)
			be.True(t, err != nil)
			be.True(t, strings.Contains(err.Error(), test.contains))
		})
	}
}

func TestExtractTestCases_IgnoresOtherHeadings(t *testing.T) {
	markdown := `# Functions

Some description.

## Test: call
` + fence + `calc-program
function f(x) = x
c = f(1)
` + fence + `
` + fence + `ir
(ir ... ("CALL" "f" 1 t1) ("=" t1 nil "c"))
` + fence + `

## Notes

Nothing here.
`

	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 1)
	be.Equal(t, testCases[0].Name, "call")
	be.Equal(t, testCases[0].Assertions[0].ParsedSexy.Items[1].Type, NodeEllipsis)
}
