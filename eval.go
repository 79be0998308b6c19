package scicalc

import (
	"math"
	"strconv"
)

// AngleMode selects the unit trigonometric operators interpret their
// operands in.
type AngleMode int

const (
	// Degrees is the calculator default.
	Degrees AngleMode = iota
	Radians
	Gradians
)

func (m AngleMode) String() string {
	switch m {
	case Degrees:
		return "deg"
	case Radians:
		return "rad"
	case Gradians:
		return "grad"
	default:
		return "AngleMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// toRadians converts an angle in the given unit to radians.
func toRadians(x float64, mode AngleMode) float64 {
	switch mode {
	case Degrees:
		return x * math.Pi / 180
	case Gradians:
		return x * math.Pi / 200
	default:
		return x
	}
}

// fromRadians converts an angle in radians to the given unit.
func fromRadians(x float64, mode AngleMode) float64 {
	switch mode {
	case Degrees:
		return x * 180 / math.Pi
	case Gradians:
		return x * 200 / math.Pi
	default:
		return x
	}
}

// constValue resolves a named constant.
func constValue(name string) float64 {
	if name == "pi" {
		return math.Pi
	}
	return math.E
}

// EvalPostfix evaluates a postfix token sequence with an operand stack. It
// is a pure function of the sequence and the angle mode; the first failing
// operation aborts the evaluation with its error.
func EvalPostfix(postfix []Token, mode AngleMode) (float64, error) {
	var stack []float64
	for _, tok := range postfix {
		switch tok.Kind {
		case TokenNumber:
			v, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil {
				return 0, &SyntaxError{Reason: "invalid number " + strconv.Quote(tok.Text)}
			}
			stack = append(stack, v)
		case TokenConst:
			stack = append(stack, constValue(tok.Text))
		case TokenFunc:
			if len(stack) < 1 {
				return 0, &SyntaxError{Reason: "missing operand for " + tok.Text}
			}
			r, err := applyUnary(tok.Text, stack[len(stack)-1], mode)
			if err != nil {
				return 0, err
			}
			stack[len(stack)-1] = r
		case TokenOperator:
			if opTable[tok.Text].arity == 1 {
				if len(stack) < 1 {
					return 0, &SyntaxError{Reason: "missing operand for " + tok.Text}
				}
				r, err := applyUnary(tok.Text, stack[len(stack)-1], mode)
				if err != nil {
					return 0, err
				}
				stack[len(stack)-1] = r
				continue
			}
			if len(stack) < 2 {
				return 0, &SyntaxError{Reason: "missing operand for " + tok.Text}
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			r, err := applyBinary(tok.Text, a, b)
			if err != nil {
				return 0, err
			}
			stack[len(stack)-1] = r
		default:
			// Parenthesis tokens reach the evaluator only when the input
			// failed to balance.
			return 0, &SyntaxError{Reason: "unbalanced parenthesis"}
		}
	}
	if len(stack) != 1 {
		return 0, &SyntaxError{Reason: strconv.Itoa(len(stack)) + " values left after evaluation"}
	}
	return stack[0], nil
}
