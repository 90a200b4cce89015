package internal

// parser stores parser data
type parser struct {
	current int
	tokens  []Token

	// last node id handed out
	lastID int

	diags *Diagnostics
}

// parseError unwinds the productions back to parse
type parseError struct {
	err error
}

// Parse builds an expression tree from tokens. The first syntax error stops
// the parse and is returned, no partial tree is returned with it.
func Parse(tokens []Token) (Expr, error) {
	return ParseInto(tokens, NewDiagnostics())
}

// ParseInto parses tokens reporting the syntax error to diags
func ParseInto(tokens []Token, diags *Diagnostics) (Expr, error) {
	p := &parser{
		tokens: terminated(tokens),
		diags:  diags,
	}
	return p.parse()
}

// terminated makes sure the parser never runs past an EOF token. The input
// slice isn't modified.
func terminated(tokens []Token) []Token {
	if len(tokens) != 0 && tokens[len(tokens)-1].Type == EOF {
		return tokens
	}
	line := 1
	if len(tokens) != 0 {
		line = tokens[len(tokens)-1].Line
	}
	out := make([]Token, len(tokens), len(tokens)+1)
	copy(out, tokens)
	return append(out, Token{Type: EOF, Line: line})
}

func (p *parser) parse() (expr Expr, err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(parseError)
			if !ok {
				panic(r)
			}
			expr, err = nil, pe.err
		}
	}()

	expr = p.expression()

	if !p.isAtEnd() {
		found := p.peek()
		p.fatalError(&ExpectedTokenError{
			Expected: EOF,
			Found:    found,
			Line:     found.Line,
			Message:  "Expect end of expression.",
		})
	}

	return expr, nil
}

func (p *parser) fatalError(err error) {
	p.diags.report(err)
	panic(parseError{err: err})
}

func (p *parser) newID() int {
	p.lastID++
	return p.lastID
}

func (p *parser) expression() Expr {
	return p.equality()
}

func (p *parser) equality() Expr {
	expr := p.comparison()
	for p.match(BANG_EQUAL, EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &BinaryExpr{
			id:       p.newID(),
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *parser) comparison() Expr {
	expr := p.term()
	for p.match(GREATER, GREATER_EQUAL, LESS, LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &BinaryExpr{
			id:       p.newID(),
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *parser) term() Expr {
	expr := p.factor()
	for p.match(MINUS, PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = &BinaryExpr{
			id:       p.newID(),
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *parser) factor() Expr {
	expr := p.unary()
	for p.match(SLASH, STAR) {
		operator := p.previous()
		right := p.unary()
		expr = &BinaryExpr{
			id:       p.newID(),
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *parser) unary() Expr {
	if p.match(BANG, MINUS) {
		operator := p.previous()
		right := p.unary()
		return &UnaryExpr{
			id:       p.newID(),
			Operator: operator,
			Right:    right,
		}
	}
	return p.primary()
}

func (p *parser) primary() Expr {
	if p.match(FALSE) {
		return &LiteralExpr{id: p.newID(), Value: false}
	}
	if p.match(TRUE) {
		return &LiteralExpr{id: p.newID(), Value: true}
	}
	if p.match(NIL) {
		return &LiteralExpr{id: p.newID(), Value: nil}
	}
	if p.match(NUMBER, STRING) {
		return &LiteralExpr{id: p.newID(), Value: p.previous().Literal}
	}
	if p.match(LEFT_PAREN) {
		expr := p.expression()
		p.consume(RIGHT_PAREN, "Expect ')' after expression.")
		return &GroupingExpr{id: p.newID(), Expression: expr}
	}

	found := p.peek()
	p.fatalError(&ExpectedExpressionError{Found: found, Line: found.Line})
	return nil
}

func (p *parser) consume(tk TokenType, message string) Token {
	if p.check(tk) {
		return p.advance()
	}

	found := p.peek()
	p.fatalError(&ExpectedTokenError{
		Expected: tk,
		Found:    found,
		Line:     found.Line,
		Message:  message,
	})
	return Token{}
}

func (p *parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...TokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(token TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == token
}

func (p *parser) peek() Token {
	return p.tokens[p.current]
}

func (p *parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().Type == EOF
}
