package main

// CompileResult collects everything one compilation produced. Fields after
// a failure are left at whatever stage was reached; Instructions is nil
// whenever parsing or analysis failed.
type CompileResult struct {
	Tokens       []Token
	Diagnostics  *ErrorCollection
	AST          *ASTNode
	Symbols      *SymbolTable
	Instructions []Instruction
	Signatures   map[string][]string

	// Temporaries and labels allocated by the generator.
	Temps  int
	Labels int
}

// Compile runs the whole pipeline over source with a fresh analyzer and
// generator. Lexical diagnostics are recovered and reported in the result;
// a syntax or semantic error stops the pipeline before IR generation.
func Compile(source string) (*CompileResult, error) {
	result := &CompileResult{}
	result.Tokens, result.Diagnostics = Tokenize(source)

	ast, err := Parse(result.Tokens)
	if err != nil {
		return result, err
	}
	result.AST = ast

	analyzer := NewAnalyzer()
	result.Symbols = analyzer.Symbols()
	if err := analyzer.Analyze(ast); err != nil {
		return result, err
	}

	gen := NewGenerator()
	code, err := gen.Generate(ast)
	if err != nil {
		return result, err
	}
	result.Instructions = code
	result.Signatures = gen.Signatures()
	result.Temps, result.Labels = gen.Counts()
	return result, nil
}
