package main

import "fmt"

// Type is the static type of an expression. The language has exactly one
// value type; TypeUnknown marks nodes that have not been checked.
type Type int

const (
	TypeUnknown Type = iota
	TypeNumeric
)

func (t Type) String() string {
	switch t {
	case TypeNumeric:
		return "NUMERIC"
	default:
		return "UNKNOWN"
	}
}

// Analyzer checks an AST against a chain of scopes. The symbol table is
// owned by one Analyzer; give each compilation its own instance.
type Analyzer struct {
	symbols *SymbolTable
}

// NewAnalyzer creates an analyzer with an empty global scope.
func NewAnalyzer() *Analyzer {
	return &Analyzer{symbols: NewSymbolTable()}
}

// Symbols exposes the symbol table populated by Analyze.
func (a *Analyzer) Symbols() *SymbolTable {
	return a.symbols
}

// Analyze validates the tree rooted at root, annotating expression nodes
// with their type and resolved symbol. The first failure aborts the walk
// and is returned as a *SemanticError.
func (a *Analyzer) Analyze(root *ASTNode) error {
	if root == nil {
		return fmt.Errorf("error: nothing to analyze")
	}
	return a.checkStatement(root)
}

func (a *Analyzer) checkStatement(node *ASTNode) error {
	switch node.Kind {
	case NodeProgram, NodeStatements:
		for _, child := range node.Children {
			if err := a.checkStatement(child); err != nil {
				return err
			}
		}
		return nil

	case NodeAssign:
		return a.checkAssignment(node)

	case NodeFunction:
		return a.checkFunctionDecl(node)

	case NodeEmpty:
		return nil

	case NodeBinary, NodeUnary, NodeLiteral, NodeIdent, NodeCall:
		_, err := a.checkExpression(node)
		return err

	case NodeIdentList, NodeExprList:
		return fmt.Errorf("error: %s is not a statement", node.Kind)

	default:
		return fmt.Errorf("error: unknown node kind %q", node.Kind)
	}
}

func (a *Analyzer) checkAssignment(node *ASTNode) error {
	target := node.Children[0]
	exprType, err := a.checkExpression(node.Children[1])
	if err != nil {
		return err
	}

	// Reassignment is allowed; only the first declaration of a name counts.
	sym := a.symbols.LookupGlobal(target.String)
	if sym == nil {
		sym, err = a.symbols.InsertIn(GlobalScope, target.String, SymbolVariable, SymbolDetails{
			Type: TypeNumeric,
			Line: target.Line,
		})
		if err != nil {
			return err
		}
	}
	target.Symbol = sym
	target.TypeAST = TypeNumeric

	if exprType != TypeNumeric {
		return &SemanticError{Kind: TypeMismatch, Name: target.String, Line: node.Line, Type: exprType}
	}
	return nil
}

func (a *Analyzer) checkFunctionDecl(node *ASTNode) error {
	nameNode := node.Children[0]
	params := listItems(node.Children[1])
	body := node.Children[2]
	name := nameNode.String

	if a.symbols.LookupGlobal(name) != nil {
		return &SemanticError{Kind: DuplicateSymbol, Name: name, Line: nameNode.Line}
	}

	// Parameters live in a scope parented directly at global, whatever
	// scope was active before.
	paramScope := a.symbols.NewScope(GlobalScope)
	a.symbols.SetCurrent(paramScope)
	defer a.symbols.SetCurrent(GlobalScope)

	for _, param := range params {
		sym, err := a.symbols.Insert(param.String, SymbolVariable, SymbolDetails{
			Type: TypeNumeric,
			Line: param.Line,
		})
		if err != nil {
			return err
		}
		param.Symbol = sym
		param.TypeAST = TypeNumeric
	}

	// Registered before the body is checked so the body can call it.
	fn, err := a.symbols.InsertIn(GlobalScope, name, SymbolFunction, SymbolDetails{
		Type:       TypeNumeric,
		ParamCount: len(params),
		ParamScope: paramScope,
		Line:       nameNode.Line,
	})
	if err != nil {
		return err
	}
	nameNode.Symbol = fn
	nameNode.TypeAST = TypeNumeric

	bodyType, err := a.checkExpression(body)
	if err != nil {
		return err
	}
	if bodyType != TypeNumeric {
		return &SemanticError{Kind: TypeMismatch, Name: name, Line: body.Line, Type: bodyType}
	}
	return nil
}

// checkExpression returns the type of node and records it on the node.
func (a *Analyzer) checkExpression(node *ASTNode) (Type, error) {
	var typ Type
	var err error

	switch node.Kind {
	case NodeLiteral:
		typ = TypeNumeric

	case NodeIdent:
		typ, err = a.checkIdent(node)

	case NodeBinary:
		typ, err = a.checkOperands(node, node.Children[0], node.Children[1])

	case NodeUnary:
		typ, err = a.checkOperands(node, node.Children[0])

	case NodeCall:
		typ, err = a.checkCall(node)

	default:
		return TypeUnknown, fmt.Errorf("error: %s is not an expression", node.Kind)
	}

	if err != nil {
		return TypeUnknown, err
	}
	node.TypeAST = typ
	return typ, nil
}

func (a *Analyzer) checkIdent(node *ASTNode) (Type, error) {
	sym := a.symbols.Lookup(node.String)
	if sym == nil {
		return TypeUnknown, &SemanticError{Kind: UndeclaredIdentifier, Name: node.String, Line: node.Line}
	}
	if sym.Kind == SymbolFunction {
		return TypeUnknown, &SemanticError{Kind: NotCallable, Name: node.String, Line: node.Line}
	}
	node.Symbol = sym
	return sym.Type, nil
}

// checkOperands requires every operand of an operator node to be numeric.
func (a *Analyzer) checkOperands(node *ASTNode, operands ...*ASTNode) (Type, error) {
	for _, operand := range operands {
		typ, err := a.checkExpression(operand)
		if err != nil {
			return TypeUnknown, err
		}
		if typ != TypeNumeric {
			return TypeUnknown, &SemanticError{Kind: TypeMismatch, Name: node.Op, Line: node.Line, Type: typ}
		}
	}
	return TypeNumeric, nil
}

func (a *Analyzer) checkCall(node *ASTNode) (Type, error) {
	callee := node.Children[0]
	args := listItems(node.Children[1])

	fn := a.symbols.LookupGlobal(callee.String)
	if fn == nil || fn.Kind != SymbolFunction {
		return TypeUnknown, &SemanticError{Kind: UndeclaredFunction, Name: callee.String, Line: callee.Line}
	}
	if len(args) != fn.ParamCount {
		return TypeUnknown, &SemanticError{
			Kind:     ArityMismatch,
			Name:     callee.String,
			Line:     node.Line,
			Expected: fn.ParamCount,
			Found:    len(args),
		}
	}
	for _, arg := range args {
		typ, err := a.checkExpression(arg)
		if err != nil {
			return TypeUnknown, err
		}
		if typ != TypeNumeric {
			return TypeUnknown, &SemanticError{Kind: TypeMismatch, Name: callee.String, Line: arg.Line, Type: typ}
		}
	}
	callee.Symbol = fn
	callee.TypeAST = TypeNumeric
	node.Symbol = fn
	return TypeNumeric, nil
}
