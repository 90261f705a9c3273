package main

// Parser builds an AST from a token slice. It stops at the first token that
// fits no production.
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a parser over tokens. A missing trailing EOF token is
// tolerated.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses a whole program. On a syntax error it returns nil and a
// *SyntaxError; no partial tree is ever returned.
func Parse(tokens []Token) (*ASTNode, error) {
	return NewParser(tokens).ParseProgram()
}

// current returns the token under the cursor, synthesizing EOF past the end.
func (p *Parser) current() Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	line := 1
	if len(p.tokens) > 0 {
		line = p.tokens[len(p.tokens)-1].Line
	}
	return Token{Type: EOF, Line: line}
}

func (p *Parser) advance() Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes a token of the given type or fails on the current token.
func (p *Parser) expect(typ TokenType) (Token, error) {
	tok := p.current()
	if tok.Type != typ {
		return Token{}, unexpected(tok)
	}
	return p.advance(), nil
}

func unexpected(tok Token) *SyntaxError {
	if tok.Type == EOF {
		return &SyntaxError{Line: tok.Line, AtEOF: true}
	}
	return &SyntaxError{Token: tok.Literal, Line: tok.Line}
}

// ParseProgram parses one or more juxtaposed statements up to EOF.
func (p *Parser) ParseProgram() (*ASTNode, error) {
	first := p.current()
	var statements []*ASTNode
	for {
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
		if p.current().Type == EOF {
			break
		}
	}
	list := &ASTNode{Kind: NodeStatements, Children: statements, Line: first.Line}
	return &ASTNode{Kind: NodeProgram, Children: []*ASTNode{list}, Line: first.Line}, nil
}

// ParseStatement parses an assignment or a function declaration.
func (p *Parser) ParseStatement() (*ASTNode, error) {
	switch p.current().Type {
	case IDENT:
		return p.parseAssignment()
	case FUNCTION:
		return p.parseFunctionDecl()
	default:
		return nil, unexpected(p.current())
	}
}

// assignment := identifier '=' expression
func (p *Parser) parseAssignment() (*ASTNode, error) {
	name := p.advance()
	if _, err := p.expect(ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	target := &ASTNode{Kind: NodeIdent, String: name.Literal, Line: name.Line}
	return &ASTNode{
		Kind:     NodeAssign,
		Children: []*ASTNode{target, value},
		Line:     name.Line,
	}, nil
}

// functionDecl := 'function' identifier '(' paramList ')' '=' expression
func (p *Parser) parseFunctionDecl() (*ASTNode, error) {
	keyword := p.advance()
	name, err := p.expect(IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(ASSIGN); err != nil {
		return nil, err
	}
	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	ident := &ASTNode{Kind: NodeIdent, String: name.Literal, Line: name.Line}
	return &ASTNode{
		Kind:     NodeFunction,
		Children: []*ASTNode{ident, params, body},
		Line:     keyword.Line,
	}, nil
}

// paramList := identifier (',' identifier)* | empty
func (p *Parser) parseParamList() (*ASTNode, error) {
	start := p.current()
	if start.Type == RPAREN {
		return &ASTNode{Kind: NodeEmpty, Line: start.Line}, nil
	}
	var params []*ASTNode
	for {
		tok, err := p.expect(IDENT)
		if err != nil {
			return nil, err
		}
		params = append(params, &ASTNode{Kind: NodeIdent, String: tok.Literal, Line: tok.Line})
		if p.current().Type != COMMA {
			break
		}
		p.advance()
	}
	return &ASTNode{Kind: NodeIdentList, Children: params, Line: start.Line}, nil
}

// argList := expression (',' expression)* | empty
func (p *Parser) parseArgList() (*ASTNode, error) {
	start := p.current()
	if start.Type == RPAREN {
		return &ASTNode{Kind: NodeEmpty, Line: start.Line}, nil
	}
	var args []*ASTNode
	for {
		arg, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.current().Type != COMMA {
			break
		}
		p.advance()
	}
	return &ASTNode{Kind: NodeExprList, Children: args, Line: start.Line}, nil
}

// Binary operator precedence levels, low to high.
const (
	precNone = iota
	precAdditive
	precMultiplicative
	precPower
)

// precedence returns the binding power of a binary operator token, or
// precNone if the token is not a binary operator.
func precedence(tokenType TokenType) int {
	switch tokenType {
	case PLUS, MINUS:
		return precAdditive
	case ASTERISK, SLASH:
		return precMultiplicative
	case CARET:
		return precPower
	default:
		return precNone
	}
}

func isRightAssociative(tokenType TokenType) bool {
	return tokenType == CARET
}

// ParseExpression parses an expression and returns an AST node
func (p *Parser) ParseExpression() (*ASTNode, error) {
	return p.parseExpressionWithPrecedence(precAdditive)
}

// parseExpressionWithPrecedence implements precedence climbing
func (p *Parser) parseExpressionWithPrecedence(minPrec int) (*ASTNode, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		opTok := p.current()
		prec := precedence(opTok.Type)
		if prec == precNone || prec < minPrec {
			break
		}
		p.advance()

		// Right-associative operators recurse at the same level so that
		// a^b^c groups as a^(b^c).
		next := prec + 1
		if isRightAssociative(opTok.Type) {
			next = prec
		}
		right, err := p.parseExpressionWithPrecedence(next)
		if err != nil {
			return nil, err
		}

		left = &ASTNode{
			Kind:     NodeBinary,
			Op:       opTok.Literal,
			Children: []*ASTNode{left, right},
			Line:     opTok.Line,
		}
	}

	return left, nil
}

// parseUnary handles prefix negation. Negation sits at the additive level:
// its operand absorbs tighter operators (-x^2 is -(x^2), -a*b is -(a*b)) but
// stops before + and - (-a+b is (-a)+b).
func (p *Parser) parseUnary() (*ASTNode, error) {
	if p.current().Type != MINUS {
		return p.parsePrimary()
	}
	opTok := p.advance()
	operand, err := p.parseExpressionWithPrecedence(precAdditive + 1)
	if err != nil {
		return nil, err
	}
	return &ASTNode{
		Kind:     NodeUnary,
		Op:       opTok.Literal,
		Children: []*ASTNode{operand},
		Line:     opTok.Line,
	}, nil
}

// parsePrimary handles literals, identifiers, calls and parentheses.
func (p *Parser) parsePrimary() (*ASTNode, error) {
	tok := p.current()
	switch tok.Type {
	case INT:
		p.advance()
		return &ASTNode{Kind: NodeLiteral, Number: IntNumber(tok.Literal), Line: tok.Line}, nil

	case FLOAT:
		p.advance()
		return &ASTNode{Kind: NodeLiteral, Number: FloatNumber(tok.Literal), Line: tok.Line}, nil

	case IDENT:
		p.advance()
		ident := &ASTNode{Kind: NodeIdent, String: tok.Literal, Line: tok.Line}
		if p.current().Type != LPAREN {
			return ident, nil
		}
		p.advance()
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return &ASTNode{
			Kind:     NodeCall,
			Children: []*ASTNode{ident, args},
			Line:     tok.Line,
		}, nil

	case LPAREN:
		p.advance()
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, unexpected(tok)
	}
}
