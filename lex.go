package scicalc

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind classifies a lexical token. The kind is decided once, during
// tokenization; no downstream stage re-inspects token text to classify it.
type TokenKind int

const (
	// TokenNone is the zero kind. It never appears in a token sequence.
	TokenNone TokenKind = iota
	// TokenNumber is a decimal number, optionally with a fractional part and
	// an E scientific-notation marker.
	TokenNumber
	// TokenOperator is an arithmetic, postfix, or combinatorial operator.
	TokenOperator
	// TokenFunc is a named unary function such as sin or sqrt.
	TokenFunc
	// TokenConst is a named constant, pi or e.
	TokenConst
	// TokenLeftParen and TokenRightParen group expressions.
	TokenLeftParen
	TokenRightParen
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNumber:
		return "Number"
	case TokenOperator:
		return "Operator"
	case TokenFunc:
		return "Func"
	case TokenConst:
		return "Const"
	case TokenLeftParen:
		return "LeftParen"
	case TokenRightParen:
		return "RightParen"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is a single lexical token. Text is the canonical spelling: display
// glyphs are folded to their ASCII operator during tokenization, and the π
// glyph becomes the constant pi.
type Token struct {
	Kind TokenKind
	Text string
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text
}

// runeTokens maps single-rune lexemes to their token. Both the ASCII and the
// calculator-display glyph of each operator are accepted.
var runeTokens = map[rune]Token{
	'+': {TokenOperator, "+"},
	'-': {TokenOperator, "-"},
	'−': {TokenOperator, "-"},
	'*': {TokenOperator, "*"},
	'×': {TokenOperator, "*"},
	'/': {TokenOperator, "/"},
	'÷': {TokenOperator, "/"},
	'^': {TokenOperator, "^"},
	'!': {TokenOperator, "!"},
	'%': {TokenOperator, "%"},
	'(': {TokenLeftParen, "("},
	')': {TokenRightParen, ")"},
	'π': {TokenConst, "pi"},
}

// wordTokens lists the named lexemes, longest first so that multi-character
// names win over their prefixes (asin before sin, sin before e).
var wordTokens = []Token{
	{TokenFunc, "asin"},
	{TokenFunc, "acos"},
	{TokenFunc, "atan"},
	{TokenFunc, "sqrt"},
	{TokenOperator, "nCr"},
	{TokenOperator, "nPr"},
	{TokenFunc, "sin"},
	{TokenFunc, "cos"},
	{TokenFunc, "tan"},
	{TokenFunc, "abs"},
	{TokenFunc, "log"},
	{TokenFunc, "ln"},
	{TokenConst, "pi"},
	{TokenConst, "e"},
}

// Tokenize splits src into lexical tokens. Runes that begin no recognized
// lexeme are dropped, so tokenization never fails; structural problems
// surface later, during evaluation. Empty or all-junk input yields an empty
// sequence.
func Tokenize(src string) []Token {
	var toks []Token
	for i := 0; i < len(src); {
		r, sz := utf8.DecodeRuneInString(src[i:])
		if unicode.IsSpace(r) {
			i += sz
			continue
		}
		if '0' <= r && r <= '9' || r == '.' {
			text, n := scanNumber(src[i:])
			toks = append(toks, Token{TokenNumber, text})
			i += n
			continue
		}
		if tok, ok := runeTokens[r]; ok {
			toks = append(toks, tok)
			i += sz
			continue
		}
		if tok, n, ok := matchWord(src[i:]); ok {
			toks = append(toks, tok)
			i += n
			continue
		}
		i += sz
	}
	return toks
}

// scanNumber scans a number at the start of s and reports its text and byte
// length. An upper-case E directly following the digits starts a
// scientific-notation exponent, but only when digits follow it; otherwise
// the E is left for the next token.
func scanNumber(s string) (string, int) {
	i := 0
	dot := false
	for i < len(s) {
		c := s[i]
		if '0' <= c && c <= '9' {
			i++
			continue
		}
		if c == '.' && !dot {
			dot = true
			i++
			continue
		}
		break
	}
	if i < len(s) && s[i] == 'E' {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && '0' <= s[j] && s[j] <= '9' {
			for j < len(s) && '0' <= s[j] && s[j] <= '9' {
				j++
			}
			i = j
		}
	}
	return s[:i], i
}

// matchWord matches the longest named lexeme at the start of s.
func matchWord(s string) (Token, int, bool) {
	for _, w := range wordTokens {
		if strings.HasPrefix(s, w.Text) {
			return w, len(w.Text), true
		}
	}
	return Token{}, 0, false
}
