package output

import (
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

type TokenKind int

const (
	SymbolToken TokenKind = iota // braces, brackets, colons, commas, whitespace
	KeyToken
	StringToken
	NumberToken
	TrueToken
	FalseToken
	NullToken
)

func (k TokenKind) String() string {
	switch k {
	case KeyToken:
		return "Key"
	case StringToken:
		return "String"
	case NumberToken:
		return "Number"
	case TrueToken:
		return "True"
	case FalseToken:
		return "False"
	case NullToken:
		return "Null"
	default:
		return "Symbol"
	}
}

// Token is a lexeme of JSON text together with its classification.
type Token struct {
	Kind TokenKind
	Text string
}

// Width 0 keeps every array expanded, one element per line.
var prettyOptions = pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// formatJSON re-indents body. It reports false when body is not valid JSON.
func formatJSON(body string) (string, bool) {
	if !gjson.Valid(body) {
		return "", false
	}
	return string(pretty.PrettyOptions([]byte(body), &prettyOptions)), true
}

// TokenizeJSON splits JSON text into lexemes without parsing it. It steps over
// the input one code point at a time and never fails: anything it does not
// recognize becomes a one-rune SymbolToken, so joining the Text of all tokens
// gives back s unchanged.
func TokenizeJSON(s string) []Token {
	var tokens []Token
	for i := 0; i < len(s); {
		start := i
		var kind TokenKind
		switch {
		case s[i] == '"':
			i = scanString(s, i)
			if followedByColon(s, i) {
				kind = KeyToken
			} else {
				kind = StringToken
			}
		case isDigit(s[i]) || (s[i] == '-' && i+1 < len(s) && isDigit(s[i+1])):
			i = scanNumber(s, i)
			kind = NumberToken
		case strings.HasPrefix(s[i:], "true"):
			i += len("true")
			kind = TrueToken
		case strings.HasPrefix(s[i:], "false"):
			i += len("false")
			kind = FalseToken
		case strings.HasPrefix(s[i:], "null"):
			i += len("null")
			kind = NullToken
		default:
			_, size := utf8.DecodeRuneInString(s[i:])
			i += size
			kind = SymbolToken
		}
		tokens = append(tokens, Token{Kind: kind, Text: s[start:i]})
	}
	return tokens
}

// scanString returns the offset just past the string starting at s[i] == '"'.
// A backslash takes the following rune verbatim. Unterminated strings run to
// the end of s.
func scanString(s string, i int) int {
	i++
	for i < len(s) {
		switch s[i] {
		case '\\':
			i++
			if i < len(s) {
				_, size := utf8.DecodeRuneInString(s[i:])
				i += size
			}
		case '"':
			return i + 1
		default:
			_, size := utf8.DecodeRuneInString(s[i:])
			i += size
		}
	}
	return len(s)
}

func scanNumber(s string, i int) int {
	i++
	for i < len(s) && isNumberChar(s[i]) {
		i++
	}
	return i
}

func followedByColon(s string, i int) bool {
	for i < len(s) && isWhitespace(s[i]) {
		i++
	}
	return i < len(s) && s[i] == ':'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isNumberChar(c byte) bool {
	return isDigit(c) || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-'
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}
