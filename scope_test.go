package main

import (
	"errors"
	"testing"

	"github.com/nalgeon/be"
)

func TestSymbolTableGlobalScope(t *testing.T) {
	st := NewSymbolTable()
	be.Equal(t, st.Current(), GlobalScope)
	be.Equal(t, st.Parent(GlobalScope), NoScope)
	be.True(t, st.Lookup("x") == nil)
}

func TestSymbolTableInsertAndLookup(t *testing.T) {
	st := NewSymbolTable()
	sym, err := st.Insert("x", SymbolVariable, SymbolDetails{Type: TypeNumeric, Line: 3})
	be.Err(t, err, nil)
	be.Equal(t, sym.Name, "x")
	be.Equal(t, sym.Kind, SymbolVariable)
	be.Equal(t, sym.Type, TypeNumeric)
	be.Equal(t, sym.Line, 3)
	be.Equal(t, sym.ParamScope, NoScope)

	be.True(t, st.Lookup("x") == sym)
	be.True(t, st.LookupGlobal("x") == sym)
}

func TestSymbolTableDuplicateInSameScope(t *testing.T) {
	st := NewSymbolTable()
	_, err := st.Insert("x", SymbolVariable, SymbolDetails{Line: 1})
	be.Err(t, err, nil)

	_, err = st.Insert("x", SymbolFunction, SymbolDetails{Line: 2})
	var semErr *SemanticError
	be.True(t, errors.As(err, &semErr))
	be.Equal(t, semErr.Kind, DuplicateSymbol)
	be.Equal(t, semErr.Name, "x")
	be.Equal(t, semErr.Line, 2)

	// The original entry survives.
	be.Equal(t, st.Lookup("x").Kind, SymbolVariable)
}

func TestSymbolTableShadowing(t *testing.T) {
	st := NewSymbolTable()
	global, _ := st.Insert("x", SymbolVariable, SymbolDetails{Type: TypeNumeric})

	inner := st.NewScope(GlobalScope)
	be.Equal(t, st.Parent(inner), GlobalScope)
	st.SetCurrent(inner)

	local, err := st.Insert("x", SymbolVariable, SymbolDetails{Type: TypeNumeric})
	be.Err(t, err, nil)
	be.True(t, st.Lookup("x") == local)
	be.True(t, st.LookupGlobal("x") == global)
	be.True(t, st.LookupFrom(GlobalScope, "x") == global)

	st.SetCurrent(GlobalScope)
	be.True(t, st.Lookup("x") == global)
}

func TestSymbolTableLookupWalksParents(t *testing.T) {
	st := NewSymbolTable()
	g, _ := st.Insert("g", SymbolVariable, SymbolDetails{})
	outer := st.NewScope(GlobalScope)
	inner := st.NewScope(outer)
	o, _ := st.InsertIn(outer, "o", SymbolVariable, SymbolDetails{})

	be.True(t, st.LookupFrom(inner, "g") == g)
	be.True(t, st.LookupFrom(inner, "o") == o)
	be.True(t, st.LookupFrom(GlobalScope, "o") == nil)
	be.True(t, st.LookupFrom(inner, "missing") == nil)
}

func TestSymbolTableFunctionDetails(t *testing.T) {
	st := NewSymbolTable()
	params := st.NewScope(GlobalScope)
	fn, err := st.InsertIn(GlobalScope, "f", SymbolFunction, SymbolDetails{
		Type:       TypeNumeric,
		ParamCount: 2,
		ParamScope: params,
		Line:       5,
	})
	be.Err(t, err, nil)
	be.Equal(t, fn.Kind, SymbolFunction)
	be.Equal(t, fn.ParamCount, 2)
	be.Equal(t, fn.ParamScope, params)
	be.Equal(t, fn.Kind.String(), "function")
	be.Equal(t, SymbolVariable.String(), "variable")
}

func TestSymbolTableSymbolsSorted(t *testing.T) {
	st := NewSymbolTable()
	for _, name := range []string{"c", "a", "b"} {
		_, err := st.Insert(name, SymbolVariable, SymbolDetails{})
		be.Err(t, err, nil)
	}

	var names []string
	for _, sym := range st.Symbols(GlobalScope) {
		names = append(names, sym.Name)
	}
	be.Equal(t, names, []string{"a", "b", "c"})

	empty := st.NewScope(GlobalScope)
	be.Equal(t, len(st.Symbols(empty)), 0)
}
