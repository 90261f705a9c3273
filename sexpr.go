package main

import "strconv"

// ToSExpr converts an AST node to s-expression string representation
func ToSExpr(node *ASTNode) string {
	if node == nil {
		return "nil"
	}
	switch node.Kind {
	case NodeProgram:
		return "(program " + joinSExpr(node.Children) + ")"
	case NodeStatements:
		return listSExpr("statements", node.Children)
	case NodeAssign:
		return "(assign " + joinSExpr(node.Children) + ")"
	case NodeFunction:
		return "(function " + joinSExpr(node.Children) + ")"
	case NodeIdentList:
		return listSExpr("params", node.Children)
	case NodeExprList:
		return listSExpr("args", node.Children)
	case NodeEmpty:
		return "(empty)"
	case NodeBinary:
		left := ToSExpr(node.Children[0])
		right := ToSExpr(node.Children[1])
		return "(binary " + strconv.Quote(node.Op) + " " + left + " " + right + ")"
	case NodeUnary:
		operand := ToSExpr(node.Children[0])
		return "(unary " + strconv.Quote(node.Op) + " " + operand + ")"
	case NodeLiteral:
		return numberSExpr(node.Number)
	case NodeIdent:
		return "(ident " + strconv.Quote(node.String) + ")"
	case NodeCall:
		return "(call " + joinSExpr(node.Children) + ")"
	default:
		return "(unknown " + strconv.Quote(string(node.Kind)) + ")"
	}
}

func joinSExpr(nodes []*ASTNode) string {
	result := ""
	for i, child := range nodes {
		if i > 0 {
			result += " "
		}
		result += ToSExpr(child)
	}
	return result
}

func listSExpr(head string, nodes []*ASTNode) string {
	if len(nodes) == 0 {
		return "(" + head + ")"
	}
	return "(" + head + " " + joinSExpr(nodes) + ")"
}

func numberSExpr(n Number) string {
	if n.Kind == NumberFloat {
		return "(float " + strconv.Quote(n.Text) + ")"
	}
	return "(integer " + n.Text + ")"
}

// OperandToSExpr renders temporaries as bare symbols (t1), names as strings,
// labels as (label "...") and the empty operand as nil.
func OperandToSExpr(o Operand) string {
	switch o.Kind {
	case OperandTemp:
		return o.String()
	case OperandLiteral:
		if o.Number.Kind == NumberFloat {
			return numberSExpr(o.Number)
		}
		return o.Number.Text
	case OperandName:
		return strconv.Quote(o.Name)
	case OperandLabel:
		return "(label " + strconv.Quote(o.Name) + ")"
	default:
		return "nil"
	}
}

// IRToSExpr renders an instruction list as (ir (op a1 a2 result)...).
func IRToSExpr(code []Instruction) string {
	result := "(ir"
	for _, in := range code {
		result += " (" + strconv.Quote(string(in.Op)) +
			" " + OperandToSExpr(in.Arg1) +
			" " + OperandToSExpr(in.Arg2) +
			" " + OperandToSExpr(in.Result) + ")"
	}
	return result + ")"
}

// TokensToSExpr renders tokens as (tokens (category "literal")...). The
// trailing EOF token renders as (eof).
func TokensToSExpr(tokens []Token) string {
	result := "(tokens"
	for _, tok := range tokens {
		if tok.Type == EOF {
			result += " (eof)"
			continue
		}
		result += " (" + string(tok.Category()) + " " + strconv.Quote(tok.Literal) + ")"
	}
	return result + ")"
}
