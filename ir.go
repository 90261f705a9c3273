package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Opcode tags an instruction. Arithmetic instructions use the source
// operator symbol.
type Opcode string

const (
	OpAdd     Opcode = "+"
	OpSub     Opcode = "-"
	OpMul     Opcode = "*"
	OpDiv     Opcode = "/"
	OpPow     Opcode = "^"
	OpCopy    Opcode = "="
	OpLabel   Opcode = "LABEL"
	OpReturn  Opcode = "RETURN"
	OpEndFunc Opcode = "END_FUNC"
	OpParam   Opcode = "PARAM"
	OpCall    Opcode = "CALL"
)

// OperandKind says which field of an Operand is meaningful.
type OperandKind int

const (
	OperandNone OperandKind = iota
	OperandTemp
	OperandLiteral
	OperandName
	OperandLabel
)

// Operand is one field of a three-address instruction.
type Operand struct {
	Kind   OperandKind
	Temp   int    // OperandTemp: 1-based temporary number
	Number Number // OperandLiteral
	Name   string // OperandName, OperandLabel
}

// None is the empty operand.
func None() Operand { return Operand{} }

// Temp references temporary tN.
func Temp(n int) Operand { return Operand{Kind: OperandTemp, Temp: n} }

// Lit wraps a literal value.
func Lit(n Number) Operand { return Operand{Kind: OperandLiteral, Number: n} }

// IntLit is a shorthand for an integer literal operand.
func IntLit(v int) Operand { return Lit(IntNumber(strconv.Itoa(v))) }

// Name references a source-level variable or function.
func Name(name string) Operand { return Operand{Kind: OperandName, Name: name} }

// LabelOp references an instruction-stream label.
func LabelOp(label string) Operand { return Operand{Kind: OperandLabel, Name: label} }

func (o Operand) IsNone() bool {
	return o.Kind == OperandNone
}

func (o Operand) String() string {
	switch o.Kind {
	case OperandTemp:
		return "t" + strconv.Itoa(o.Temp)
	case OperandLiteral:
		return o.Number.String()
	case OperandName, OperandLabel:
		return o.Name
	default:
		return "_"
	}
}

// Instruction is a three-address instruction: at most two sources and one
// destination.
type Instruction struct {
	Op     Opcode
	Arg1   Operand
	Arg2   Operand
	Result Operand
}

func (in Instruction) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s)", in.Op, in.Arg1, in.Arg2, in.Result)
}

// FormatInstructions renders one instruction per line.
func FormatInstructions(code []Instruction) string {
	var b strings.Builder
	for _, in := range code {
		b.WriteString(in.String())
		b.WriteByte('\n')
	}
	return b.String()
}
