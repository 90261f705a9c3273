package main

import "fmt"

// Generator lowers a validated AST to three-address code. Its counters are
// reset on every Generate call and belong to this instance alone; concurrent
// compilations need one Generator each.
type Generator struct {
	code       []Instruction
	temps      int
	labels     int
	signatures map[string][]string
}

func NewGenerator() *Generator {
	return &Generator{signatures: map[string][]string{}}
}

// Generate walks root and returns the instructions in execution order.
// Temporaries are numbered from t1 in every run.
func (g *Generator) Generate(root *ASTNode) ([]Instruction, error) {
	g.code = nil
	g.temps = 0
	g.labels = 0
	g.signatures = map[string][]string{}

	if root == nil {
		return nil, fmt.Errorf("error: nothing to generate")
	}
	if err := g.emitStatement(root); err != nil {
		return nil, err
	}
	return g.code, nil
}

// Signatures maps each function declared in the last run to its parameter
// names, in declaration order.
func (g *Generator) Signatures() map[string][]string {
	return g.signatures
}

func (g *Generator) newTemp() Operand {
	g.temps++
	return Temp(g.temps)
}

// newLabel allocates the entry label of a function. Function names are
// globally unique, so the label is too.
func (g *Generator) newLabel(function string) Operand {
	g.labels++
	return LabelOp(functionLabel(function))
}

// Counts reports how many temporaries and labels the last run allocated.
func (g *Generator) Counts() (temps, labels int) {
	return g.temps, g.labels
}

func (g *Generator) emit(op Opcode, arg1, arg2, result Operand) {
	g.code = append(g.code, Instruction{Op: op, Arg1: arg1, Arg2: arg2, Result: result})
}

// functionLabel is the entry label of a function.
func functionLabel(name string) string {
	return "FUNC_" + name
}

func (g *Generator) emitStatement(node *ASTNode) error {
	switch node.Kind {
	case NodeProgram, NodeStatements:
		for _, child := range node.Children {
			if err := g.emitStatement(child); err != nil {
				return err
			}
		}
		return nil

	case NodeAssign:
		value, err := g.emitExpression(node.Children[1])
		if err != nil {
			return err
		}
		g.emit(OpCopy, value, None(), Name(node.Children[0].String))
		return nil

	case NodeFunction:
		return g.emitFunction(node)

	case NodeEmpty, NodeIdentList, NodeExprList:
		return nil

	case NodeBinary, NodeUnary, NodeLiteral, NodeIdent, NodeCall:
		_, err := g.emitExpression(node)
		return err

	default:
		return fmt.Errorf("error: unknown node kind %q", node.Kind)
	}
}

func (g *Generator) emitFunction(node *ASTNode) error {
	nameNode := node.Children[0]
	if nameNode.Symbol == nil {
		return ErrNotAnalyzed
	}
	name := nameNode.String

	params := []string{}
	for _, param := range listItems(node.Children[1]) {
		params = append(params, param.String)
	}
	g.signatures[name] = params

	g.emit(OpLabel, None(), None(), g.newLabel(name))
	result, err := g.emitExpression(node.Children[2])
	if err != nil {
		return err
	}
	g.emit(OpReturn, result, None(), None())
	g.emit(OpEndFunc, None(), None(), Name(name))
	return nil
}

// emitExpression emits the instructions computing node and returns the
// operand holding its value. Literals and identifiers emit nothing.
func (g *Generator) emitExpression(node *ASTNode) (Operand, error) {
	if node.TypeAST == TypeUnknown {
		return None(), ErrNotAnalyzed
	}

	switch node.Kind {
	case NodeLiteral:
		return Lit(node.Number), nil

	case NodeIdent:
		return Name(node.String), nil

	case NodeBinary:
		left, err := g.emitExpression(node.Children[0])
		if err != nil {
			return None(), err
		}
		right, err := g.emitExpression(node.Children[1])
		if err != nil {
			return None(), err
		}
		result := g.newTemp()
		g.emit(Opcode(node.Op), left, right, result)
		return result, nil

	case NodeUnary:
		operand, err := g.emitExpression(node.Children[0])
		if err != nil {
			return None(), err
		}
		// Negation is lowered to subtraction from zero.
		result := g.newTemp()
		g.emit(OpSub, IntLit(0), operand, result)
		return result, nil

	case NodeCall:
		var args []Operand
		for _, arg := range listItems(node.Children[1]) {
			value, err := g.emitExpression(arg)
			if err != nil {
				return None(), err
			}
			args = append(args, value)
		}
		for _, arg := range args {
			g.emit(OpParam, arg, None(), None())
		}
		result := g.newTemp()
		g.emit(OpCall, Name(node.Children[0].String), IntLit(len(args)), result)
		return result, nil

	default:
		return None(), fmt.Errorf("error: %s is not an expression", node.Kind)
	}
}
