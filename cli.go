package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"
	"strings"
)

func showUsage() {
	fmt.Fprintf(os.Stderr, `funcalc - A compiler front end for a tiny language of numeric functions

Usage:
    funcalc <command> [arguments]

Commands:
    tokens <file>          Print the token stream of a file
    ast <file>             Parse a file and print its syntax tree
    check <file>           Parse and analyze a file
    ir [-j N] <file>...    Compile files to three-address code
    eval <code>            Compile inline code and print its instructions
    help                   Show this help message

A file argument of "-" reads standard input.

Examples:
    funcalc ir examples/area.calc
    funcalc ir -j 4 a.calc b.calc c.calc
    funcalc eval 'function f(x) = x^2  y = f(3)'
    funcalc check myfile.calc

Use "funcalc <command> -h" for more information about a command.
`)
}

// readSource reads a file argument, treating "-" as standard input.
func readSource(filename string) (string, error) {
	if filename == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading standard input: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("reading file %s: %w", filename, err)
	}
	return string(data), nil
}

// newFlagSet builds a subcommand flag set with the shared -v flag.
func newFlagSet(name, usage, summary string) (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	verbose := fs.Bool("v", false, "Show verbose compilation details")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: funcalc %s\n", usage)
		fmt.Fprintf(os.Stderr, "%s\n\n", summary)
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	return fs, verbose
}

// singleFileArg parses args and returns the one positional argument.
func singleFileArg(fs *flag.FlagSet, args []string, what string) string {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one %s argument\n", what)
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func mustReadSource(filename string) string {
	source, err := readSource(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %v\n", err)
		os.Exit(1)
	}
	return source
}

// reportDiagnostics prints recovered lexical errors and reports whether there
// were any.
func reportDiagnostics(filename string, diagnostics *ErrorCollection) bool {
	if !diagnostics.HasErrors() {
		return false
	}
	fmt.Fprintf(os.Stderr, "Lexical errors in %s:\n%s\n", filename, diagnostics.String())
	return true
}

func tokensCommand(args []string) {
	fs, verbose := newFlagSet("tokens", "tokens [-v] <file>", "Print the token stream of a file")
	filename := singleFileArg(fs, args, "file")

	if *verbose {
		fmt.Printf("Tokenizing %s...\n", filename)
	}

	tokens, diagnostics := Tokenize(mustReadSource(filename))
	for _, tok := range tokens {
		fmt.Printf("%d\t%s\t%q\n", tok.Line, tok.Category(), tok.Literal)
	}
	if reportDiagnostics(filename, diagnostics) {
		os.Exit(1)
	}
}

func astCommand(args []string) {
	fs, verbose := newFlagSet("ast", "ast [-v] <file>", "Parse a file and print its syntax tree")
	filename := singleFileArg(fs, args, "file")

	if *verbose {
		fmt.Printf("Parsing %s...\n", filename)
	}

	tokens, diagnostics := Tokenize(mustReadSource(filename))
	failed := reportDiagnostics(filename, diagnostics)

	ast, err := Parse(tokens)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parsing failed in %s: %v\n", filename, err)
		os.Exit(1)
	}
	fmt.Println(ToSExpr(ast))
	if failed {
		os.Exit(1)
	}
}

func checkCommand(args []string) {
	fs, verbose := newFlagSet("check", "check [-v] <file>", "Parse and analyze a file")
	filename := singleFileArg(fs, args, "file")

	if *verbose {
		fmt.Printf("Checking %s...\n", filename)
	}

	tokens, diagnostics := Tokenize(mustReadSource(filename))
	if reportDiagnostics(filename, diagnostics) {
		os.Exit(1)
	}

	ast, err := Parse(tokens)
	if err != nil {
		fmt.Printf("Parsing errors in %s:\n%v\n", filename, err)
		os.Exit(1)
	}

	analyzer := NewAnalyzer()
	if err := analyzer.Analyze(ast); err != nil {
		fmt.Printf("Semantic errors in %s:\n%v\n", filename, err)
		os.Exit(1)
	}

	fmt.Printf("%s: no errors found\n", filename)

	if *verbose {
		for _, sym := range analyzer.Symbols().Symbols(GlobalScope) {
			if sym.Kind == SymbolFunction {
				fmt.Printf("  %s %s/%d (line %d)\n", sym.Kind, sym.Name, sym.ParamCount, sym.Line)
			} else {
				fmt.Printf("  %s %s (line %d)\n", sym.Kind, sym.Name, sym.Line)
			}
		}
	}
}

func irCommand(args []string) {
	fs, verbose := newFlagSet("ir", "ir [-j N] [-v] <file>...", "Compile files to three-address code")
	jobs := fs.Int("j", runtime.NumCPU(), "Maximum number of files compiled at once")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: expected at least one file argument\n")
		fs.Usage()
		os.Exit(1)
	}

	filenames := fs.Args()
	sources := make([]string, len(filenames))
	for i, filename := range filenames {
		sources[i] = mustReadSource(filename)
	}

	if *verbose {
		fmt.Printf("Compiling %d file(s) with up to %d job(s)...\n", len(filenames), *jobs)
	}

	results, err := CompileAll(context.Background(), sources, *jobs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Compilation aborted: %v\n", err)
		os.Exit(1)
	}

	failed := false
	for i, res := range results {
		filename := filenames[i]
		if len(filenames) > 1 {
			fmt.Printf("== %s\n", filename)
		}
		if res.Result != nil && reportDiagnostics(filename, res.Result.Diagnostics) {
			failed = true
		}
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "Compilation failed in %s: %v\n", filename, res.Err)
			failed = true
			continue
		}
		fmt.Print(FormatInstructions(res.Result.Instructions))
		if *verbose {
			printCounts(len(res.Result.Instructions), res.Result.Temps, res.Result.Labels)
			printSignatures(res.Result.Signatures)
		}
	}
	if failed {
		os.Exit(1)
	}
}

func evalCommand(args []string) {
	fs, verbose := newFlagSet("eval", "eval [-v] <code>", "Compile inline code and print its instructions")
	code := singleFileArg(fs, args, "code")

	if *verbose {
		fmt.Printf("Compiling: %s\n", code)
	}

	gen := NewGenerator()
	tokens, diagnostics := Tokenize(code)
	failed := reportDiagnostics("<eval>", diagnostics)

	ast, err := Parse(tokens)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Compilation failed: %v\n", err)
		os.Exit(1)
	}
	if err := NewAnalyzer().Analyze(ast); err != nil {
		fmt.Fprintf(os.Stderr, "Compilation failed: %v\n", err)
		os.Exit(1)
	}
	instructions, err := gen.Generate(ast)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Compilation failed: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("AST: %s\n", ToSExpr(ast))
	}
	fmt.Print(FormatInstructions(instructions))
	if *verbose {
		temps, labels := gen.Counts()
		printCounts(len(instructions), temps, labels)
		printSignatures(gen.Signatures())
	}
	if failed {
		os.Exit(1)
	}
}

func printCounts(instructions, temps, labels int) {
	fmt.Printf("%d instruction(s), %d temporary(ies), %d label(s)\n", instructions, temps, labels)
}

func printSignatures(signatures map[string][]string) {
	names := make([]string, 0, len(signatures))
	for name := range signatures {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Printf("function %s(%s)\n", name, strings.Join(signatures[name], ", "))
	}
}

func main() {
	if len(os.Args) < 2 {
		showUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "tokens":
		tokensCommand(args)
	case "ast":
		astCommand(args)
	case "check":
		checkCommand(args)
	case "ir":
		irCommand(args)
	case "eval":
		evalCommand(args)
	case "help", "-h", "--help":
		showUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		showUsage()
		os.Exit(1)
	}
}
