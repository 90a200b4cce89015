package internal

import (
	"strconv"
	"unicode/utf8"
)

type lexer struct {
	source  string
	start   int
	current int
	line    int

	// line where the current lexeme started
	startLine int

	tokens []Token
	diags  *Diagnostics
}

// Scan converts source into tokens. Lexical errors don't stop the scan: they
// are collected in the returned Diagnostics and the tokens still end in EOF.
func Scan(source string) ([]Token, *Diagnostics) {
	diags := NewDiagnostics()
	return ScanInto(source, diags), diags
}

// ScanInto scans source reporting errors to diags
func ScanInto(source string, diags *Diagnostics) []Token {
	l := &lexer{
		source: source,
		line:   1,
		tokens: make([]Token, 0),
		diags:  diags,
	}
	return l.scan()
}

func (l *lexer) scan() []Token {
	for !l.isAtEnd() {
		l.start = l.current
		l.startLine = l.line
		l.scanToken()
	}
	l.tokens = append(l.tokens, Token{
		Type:   EOF,
		Lexeme: "",
		Line:   l.line,
	})
	return l.tokens
}

func (l *lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(LEFT_PAREN, nil)
	case ')':
		l.emit(RIGHT_PAREN, nil)
	case '{':
		l.emit(LEFT_BRACE, nil)
	case '}':
		l.emit(RIGHT_BRACE, nil)
	case ',':
		l.emit(COMMA, nil)
	case '.':
		l.emit(DOT, nil)
	case '-':
		l.emit(MINUS, nil)
	case '+':
		l.emit(PLUS, nil)
	case ';':
		l.emit(SEMICOLON, nil)
	case '*':
		l.emit(STAR, nil)
	case '!':
		if l.match('=') {
			l.emit(BANG_EQUAL, nil)
		} else {
			l.emit(BANG, nil)
		}
	case '=':
		if l.match('=') {
			l.emit(EQUAL_EQUAL, nil)
		} else {
			l.emit(EQUAL, nil)
		}
	case '<':
		if l.match('=') {
			l.emit(LESS_EQUAL, nil)
		} else {
			l.emit(LESS, nil)
		}
	case '>':
		if l.match('=') {
			l.emit(GREATER_EQUAL, nil)
		} else {
			l.emit(GREATER, nil)
		}
	case '/':
		if l.match('/') {
			// The newline is left for the main loop so the line gets counted
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		} else if l.match('*') {
			l.blockComment()
		} else {
			l.emit(SLASH, nil)
		}

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':

	case '\n':
		l.line++

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			l.diags.report(&UnexpectedCharacterError{Line: l.line, Char: c})
		}
	}
}

// blockComment skips until the first "*/". Comments don't nest.
func (l *lexer) blockComment() {
	for !l.isAtEnd() {
		if l.peek() == '*' && l.peekNext() == '/' {
			l.current += 2
			return
		}
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}
}

func (l *lexer) string() {
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.diags.report(&UnterminatedStringError{Line: l.line})
		return
	}

	// Consume ending "
	l.advance()

	l.emit(STRING, l.source[l.start+1:l.current-1])
}

func (l *lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	// A trailing '.' without digits is left for the next token
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	literal, _ := strconv.ParseFloat(l.source[l.start:l.current], 64)

	l.emit(NUMBER, literal)
}

func (l *lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	identifier := l.source[l.start:l.current]

	tokenType, ok := LookupKeyword(identifier)
	if !ok {
		tokenType = IDENTIFIER
	}

	l.emit(tokenType, nil)
}

func (l *lexer) advance() rune {
	c, size := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += size
	return c
}

func (l *lexer) match(c rune) bool {
	if l.isAtEnd() || rune(l.source[l.current]) != c {
		return false
	}
	l.current++
	return true
}

func (l *lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	return rune(l.source[l.current])
}

func (l *lexer) peekNext() rune {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return rune(l.source[l.current+1])
}

func (l *lexer) emit(token TokenType, literal interface{}) {
	l.tokens = append(l.tokens, Token{
		Type:    token,
		Lexeme:  l.source[l.start:l.current],
		Literal: literal,
		Line:    l.startLine,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}
