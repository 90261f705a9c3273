package main

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Lexer scans source text into tokens. Each Lexer owns its position, line
// counter and diagnostics, so independent sources can be scanned in parallel.
type Lexer struct {
	input string
	pos   int
	line  int

	// Errors holds recovered lexical diagnostics.
	Errors *ErrorCollection
}

// NewLexer creates a lexer positioned at the start of input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		line:   1,
		Errors: &ErrorCollection{},
	}
}

// Tokenize scans the whole source and returns its tokens, terminated by a
// single EOF token. Illegal characters are reported in the returned
// collection and skipped; tokenization itself never fails.
func Tokenize(source string) ([]Token, *ErrorCollection) {
	l := NewLexer(source)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			break
		}
	}
	return tokens, l.Errors
}

// NextToken scans and returns the next token. After the input is exhausted
// it keeps returning EOF.
func (l *Lexer) NextToken() Token {
	for {
		l.skipWhitespace()
		if l.pos >= len(l.input) {
			return Token{Type: EOF, Line: l.line}
		}

		c := l.input[l.pos]
		switch c {
		case '=':
			return l.single(ASSIGN)
		case '+':
			return l.single(PLUS)
		case '-':
			return l.single(MINUS)
		case '*':
			return l.single(ASTERISK)
		case '/':
			return l.single(SLASH)
		case '^':
			return l.single(CARET)
		case ',':
			return l.single(COMMA)
		case '(':
			return l.single(LPAREN)
		case ')':
			return l.single(RPAREN)
		}

		if isLetter(c) {
			lit := l.readIdentifier()
			typ, ok := keywords[lit]
			if !ok {
				typ = IDENT
			}
			return Token{Type: typ, Literal: lit, Line: l.line}
		}
		if isDigit(c) {
			return l.readNumber()
		}

		// Report and drop exactly one character, then keep scanning. Bytes
		// that are not valid UTF-8 decode as RuneError of width 1.
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		l.Errors.Add(&LexicalError{Char: r, Line: l.line})
		l.pos += size
	}
}

func (l *Lexer) single(typ TokenType) Token {
	tok := Token{Type: typ, Literal: l.input[l.pos : l.pos+1], Line: l.line}
	l.pos++
	return tok
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t':
		case '\n':
			l.line++
		default:
			return
		}
		l.pos++
	}
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for l.pos < len(l.input) && (isLetter(l.input[l.pos]) || isDigit(l.input[l.pos])) {
		l.pos++
	}
	return l.input[start:l.pos]
}

// readNumber tries digits '.' digits first and falls back to digits, so a
// float is never split into an integer and a stray '.'.
func (l *Lexer) readNumber() Token {
	start := l.pos
	end := l.scanDigits(start)
	if end+1 < len(l.input) && l.input[end] == '.' && isDigit(l.input[end+1]) {
		end = l.scanDigits(end + 1)
		l.pos = end
		return Token{Type: FLOAT, Literal: canonicalFloat(l.input[start:end]), Line: l.line}
	}
	l.pos = end
	return Token{Type: INT, Literal: canonicalInt(l.input[start:end]), Line: l.line}
}

func (l *Lexer) scanDigits(from int) int {
	for from < len(l.input) && isDigit(l.input[from]) {
		from++
	}
	return from
}

// canonicalInt drops leading zeros. Integer literals are kept as text so
// arbitrarily long literals survive without overflow.
func canonicalInt(text string) string {
	trimmed := strings.TrimLeft(text, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// canonicalFloat prints the shortest round-trip form with at least one
// fractional digit: "3.140" becomes "3.14", "2.00" becomes "2.0".
func canonicalFloat(text string) string {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return text
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
