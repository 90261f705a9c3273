package main

// NodeKind represents different types of AST nodes
type NodeKind string

const (
	NodeProgram    NodeKind = "NodeProgram"
	NodeStatements NodeKind = "NodeStatements"
	NodeAssign     NodeKind = "NodeAssign"
	NodeFunction   NodeKind = "NodeFunction"
	NodeBinary     NodeKind = "NodeBinary"
	NodeUnary      NodeKind = "NodeUnary"
	NodeLiteral    NodeKind = "NodeLiteral"
	NodeIdent      NodeKind = "NodeIdent"
	NodeCall       NodeKind = "NodeCall"
	NodeIdentList  NodeKind = "NodeIdentList"
	NodeExprList   NodeKind = "NodeExprList"
	NodeEmpty      NodeKind = "NodeEmpty"
)

// ASTNode represents a node in the Abstract Syntax Tree.
//
// Child layout per kind:
//
//	NodeProgram:    [NodeStatements]
//	NodeStatements: [statement...]
//	NodeAssign:     [NodeIdent target, value]
//	NodeFunction:   [NodeIdent name, NodeIdentList | NodeEmpty, body]
//	NodeBinary:     [left, right]
//	NodeUnary:      [operand]
//	NodeCall:       [NodeIdent callee, NodeExprList | NodeEmpty]
//	NodeIdentList:  [NodeIdent...]
//	NodeExprList:   [expression...]
type ASTNode struct {
	Kind NodeKind
	// NodeIdent:
	String string
	// NodeLiteral:
	Number Number
	// NodeBinary, NodeUnary:
	Op       string
	Children []*ASTNode
	Line     int

	// Filled in by semantic analysis.
	TypeAST Type
	Symbol  *Symbol
}

// NumberKind distinguishes integer from floating-point literals.
type NumberKind int

const (
	NumberInt NumberKind = iota
	NumberFloat
)

// Number is a numeric literal in canonical text form.
type Number struct {
	Kind NumberKind
	Text string
}

func (n Number) String() string {
	return n.Text
}

// IntNumber builds an integer Number from its canonical text.
func IntNumber(text string) Number {
	return Number{Kind: NumberInt, Text: text}
}

// FloatNumber builds a floating-point Number from its canonical text.
func FloatNumber(text string) Number {
	return Number{Kind: NumberFloat, Text: text}
}

// listItems returns the members of an IdentList or ExprList, or nil for
// NodeEmpty.
func listItems(node *ASTNode) []*ASTNode {
	if node == nil || node.Kind == NodeEmpty {
		return nil
	}
	return node.Children
}

// Statements returns the top-level statements of a program node.
func (n *ASTNode) Statements() []*ASTNode {
	if n.Kind != NodeProgram || len(n.Children) == 0 {
		return nil
	}
	return n.Children[0].Children
}
