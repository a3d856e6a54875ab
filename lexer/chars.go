package lexer

import (
	"strings"
)

const (
	spaceChars  = " \t\n\r\f\v"
	symbolChars = "=;|,-*[]{}()"
)

func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func IsLower(c byte) bool {
	return 'a' <= c && c <= 'z'
}

func IsUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

func IsAlpha(c byte) bool {
	return IsLower(c) || IsUpper(c)
}

func IsAlnum(c byte) bool {
	return IsAlpha(c) || IsDigit(c)
}

func IsSpace(c byte) bool {
	return strings.IndexByte(spaceChars, c) >= 0
}

// IsSymbol reports whether c is a single-character ISO EBNF symbol.
func IsSymbol(c byte) bool {
	return strings.IndexByte(symbolChars, c) >= 0
}
