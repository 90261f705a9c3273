package main

// TokenType is the type of token (identifier, operator, literal, etc.).
type TokenType string

// Definition of token types
const (
	EOF = "EOF"

	// Identifiers + literals
	IDENT = "IDENT" // x, area, _tmp1
	INT   = "INT"   // 12345
	FLOAT = "FLOAT" // 3.14

	// Operators
	ASSIGN   = "="
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"
	CARET    = "^"

	// Delimiters
	COMMA  = ","
	LPAREN = "("
	RPAREN = ")"

	FUNCTION = "FUNCTION"
)

// TokenCategory is the coarse classification of a token.
type TokenCategory string

const (
	CategoryIdentifier  TokenCategory = "identifier"
	CategoryInteger     TokenCategory = "integer"
	CategoryFloat       TokenCategory = "float"
	CategoryOperator    TokenCategory = "operator"
	CategoryPunctuation TokenCategory = "punctuation"
	CategoryKeyword     TokenCategory = "keyword"
	CategoryEOF         TokenCategory = "eof"
)

// keywords maps reserved words to their token types.
var keywords = map[string]TokenType{
	"function": FUNCTION,
}

// Token is one lexeme. Literal holds the source text, except for numbers,
// where it holds the canonical spelling (see canonicalInt, canonicalFloat).
type Token struct {
	Type    TokenType
	Literal string
	Line    int
}

// Category maps the token onto identifier, integer, float, operator,
// punctuation, keyword or eof.
func (t Token) Category() TokenCategory {
	switch t.Type {
	case IDENT:
		return CategoryIdentifier
	case INT:
		return CategoryInteger
	case FLOAT:
		return CategoryFloat
	case ASSIGN, PLUS, MINUS, ASTERISK, SLASH, CARET:
		return CategoryOperator
	case COMMA, LPAREN, RPAREN:
		return CategoryPunctuation
	case FUNCTION:
		return CategoryKeyword
	default:
		return CategoryEOF
	}
}
