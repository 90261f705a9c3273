package main

import "sort"

// ScopeID addresses a scope inside a SymbolTable.
type ScopeID int

const (
	NoScope     ScopeID = -1
	GlobalScope ScopeID = 0
)

// SymbolKind distinguishes variables from functions.
type SymbolKind int

const (
	SymbolVariable SymbolKind = iota
	SymbolFunction
)

func (k SymbolKind) String() string {
	if k == SymbolFunction {
		return "function"
	}
	return "variable"
}

// SymbolDetails carries the optional parts of a symbol at insertion time.
type SymbolDetails struct {
	Type       Type
	ParamCount int     // functions only
	ParamScope ScopeID // functions only
	Line       int
}

// Symbol is one named entry in a scope.
type Symbol struct {
	Name string
	Kind SymbolKind
	Type Type
	Line int

	// Functions only. ParamScope is meaningful only while the function's
	// own declaration is being checked.
	ParamCount int
	ParamScope ScopeID
}

// Scope maps names to symbols and links to its parent by index.
type Scope struct {
	Parent  ScopeID
	symbols map[string]*Symbol
}

// SymbolTable is an arena of scopes. Index 0 is always the global scope.
type SymbolTable struct {
	scopes  []Scope
	current ScopeID
}

// NewSymbolTable creates a table holding only an empty global scope, which
// is also the current scope.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		scopes:  []Scope{{Parent: NoScope, symbols: map[string]*Symbol{}}},
		current: GlobalScope,
	}
}

// NewScope allocates an empty scope whose parent is parent.
func (st *SymbolTable) NewScope(parent ScopeID) ScopeID {
	st.scopes = append(st.scopes, Scope{Parent: parent, symbols: map[string]*Symbol{}})
	return ScopeID(len(st.scopes) - 1)
}

func (st *SymbolTable) Current() ScopeID {
	return st.current
}

func (st *SymbolTable) SetCurrent(id ScopeID) {
	st.current = id
}

// Insert declares name in the current scope. A name already present in the
// current scope is a DuplicateSymbol error; names in parent scopes are not
// checked, so shadowing is allowed.
func (st *SymbolTable) Insert(name string, kind SymbolKind, details SymbolDetails) (*Symbol, error) {
	return st.InsertIn(st.current, name, kind, details)
}

// InsertIn declares name in scope id, with the same duplicate rule as Insert.
func (st *SymbolTable) InsertIn(id ScopeID, name string, kind SymbolKind, details SymbolDetails) (*Symbol, error) {
	scope := &st.scopes[id]
	if _, exists := scope.symbols[name]; exists {
		return nil, &SemanticError{Kind: DuplicateSymbol, Name: name, Line: details.Line}
	}
	paramScope := details.ParamScope
	if kind != SymbolFunction {
		paramScope = NoScope
	}
	sym := &Symbol{
		Name:       name,
		Kind:       kind,
		Type:       details.Type,
		Line:       details.Line,
		ParamCount: details.ParamCount,
		ParamScope: paramScope,
	}
	scope.symbols[name] = sym
	return sym, nil
}

// Lookup resolves name from the current scope outward to the global scope.
func (st *SymbolTable) Lookup(name string) *Symbol {
	return st.LookupFrom(st.current, name)
}

// LookupGlobal resolves name in the global scope only.
func (st *SymbolTable) LookupGlobal(name string) *Symbol {
	return st.LookupFrom(GlobalScope, name)
}

// LookupFrom resolves name starting at scope id and following parent links.
func (st *SymbolTable) LookupFrom(id ScopeID, name string) *Symbol {
	for id != NoScope {
		scope := &st.scopes[id]
		if sym, ok := scope.symbols[name]; ok {
			return sym
		}
		id = scope.Parent
	}
	return nil
}

// Parent returns the parent of scope id, or NoScope for the global scope.
func (st *SymbolTable) Parent(id ScopeID) ScopeID {
	return st.scopes[id].Parent
}

// Symbols returns the symbols declared directly in scope id, sorted by name.
func (st *SymbolTable) Symbols(id ScopeID) []*Symbol {
	scope := &st.scopes[id]
	symbols := make([]*Symbol, 0, len(scope.symbols))
	for _, sym := range scope.symbols {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i].Name < symbols[j].Name
	})
	return symbols
}
