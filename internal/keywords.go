package internal

import "sync"

var (
	keywordsOnce sync.Once
	keywords     map[string]TokenType
)

func keywordTable() map[string]TokenType {
	keywordsOnce.Do(func() {
		keywords = map[string]TokenType{
			"and":    AND,
			"class":  CLASS,
			"else":   ELSE,
			"false":  FALSE,
			"for":    FOR,
			"fun":    FUN,
			"if":     IF,
			"nil":    NIL,
			"or":     OR,
			"print":  PRINT,
			"return": RETURN,
			"super":  SUPER,
			"this":   THIS,
			"true":   TRUE,
			"var":    VAR,
			"while":  WHILE,
		}
	})
	return keywords
}

// LookupKeyword returns the token type of a reserved word
func LookupKeyword(spelling string) (TokenType, bool) {
	tokenType, ok := keywordTable()[spelling]
	return tokenType, ok
}
