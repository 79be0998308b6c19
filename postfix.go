package scicalc

// opInfo describes the binding behavior and arity of an operator.
type opInfo struct {
	// prec is the precedence rank. Higher is more binding.
	prec int
	// rightAssoc indicates right-associativity.
	rightAssoc bool
	// arity is the number of operands the operator consumes.
	arity int
}

// opTable is the precedence and associativity table for every operator the
// tokenizer can produce, plus the unary sign pseudo-functions the converter
// introduces. Parentheses, numbers, and constants are structural and have no
// entry; named unary functions all share the funcInfo rank.
var opTable = map[string]opInfo{
	"+":   {1, false, 2},
	"-":   {1, false, 2},
	"*":   {2, false, 2},
	"/":   {2, false, 2},
	"%":   {2, false, 2},
	"^":   {3, true, 2},
	"!":   {4, false, 1},
	"nCr": {4, false, 2},
	"nPr": {4, false, 2},
	"neg": {5, false, 1},
	"pos": {5, false, 1},
}

// funcInfo is the rank shared by the named unary functions. They bind
// tighter than everything else so that they apply eagerly to their argument.
var funcInfo = opInfo{5, false, 1}

// info returns the opInfo for an operator or function token.
func info(tok Token) opInfo {
	if tok.Kind == TokenFunc {
		if in, ok := opTable[tok.Text]; ok {
			// Unary sign tokens introduced by the converter.
			return in
		}
		return funcInfo
	}
	return opTable[tok.Text]
}

// yields reports whether the operator on top of the stack must be popped to
// the output before cur is pushed.
func yields(top Token, cur opInfo) bool {
	ti := info(top)
	if ti.prec != cur.prec {
		return ti.prec > cur.prec
	}
	return !cur.rightAssoc
}

// unaryContext reports whether a + or - following prev is a unary sign
// rather than a binary operator. The zero Token marks the start of input.
func unaryContext(prev Token) bool {
	switch prev.Kind {
	case TokenNumber, TokenConst, TokenRightParen:
		return false
	case TokenOperator:
		// A postfix factorial completes its operand, so a sign after it is
		// binary: 3!-2 subtracts.
		return prev.Text != "!"
	default:
		return true
	}
}

// ToPostfix reorders an infix token sequence into postfix form using the
// shunting-yard algorithm. It is total: any token sequence converts, and
// structural problems such as unbalanced parentheses travel through as
// leftover parenthesis tokens that the evaluator rejects.
func ToPostfix(tokens []Token) []Token {
	var out []Token
	var stack []Token
	var prev Token
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNumber, TokenConst:
			out = append(out, tok)
		case TokenFunc, TokenLeftParen:
			stack = append(stack, tok)
		case TokenRightParen:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TokenLeftParen {
					// A function directly under the parenthesis binds to the
					// group it just closed.
					if len(stack) > 0 && stack[len(stack)-1].Kind == TokenFunc {
						out = append(out, stack[len(stack)-1])
						stack = stack[:len(stack)-1]
					}
					break
				}
				out = append(out, top)
			}
		case TokenOperator:
			cur := tok
			if (tok.Text == "+" || tok.Text == "-") && unaryContext(prev) {
				name := "pos"
				if tok.Text == "-" {
					name = "neg"
				}
				cur = Token{Kind: TokenFunc, Text: name}
				stack = append(stack, cur)
				prev = tok
				continue
			}
			in := opTable[cur.Text]
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == TokenLeftParen || !yields(top, in) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, cur)
		}
		prev = tok
	}
	for len(stack) > 0 {
		out = append(out, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}
	return out
}
