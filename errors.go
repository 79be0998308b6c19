package scicalc

import "strconv"

// ErrorKind identifies one of the calculator's failure classes. Every error
// produced by an evaluation carries exactly one kind; errors are terminal
// and never wrapped between stages.
type ErrorKind int

const (
	// ErrSyntax is a malformed token sequence: operand underflow, unbalanced
	// parentheses, or more than one value left after evaluation.
	ErrSyntax ErrorKind = iota
	// ErrDomain is a mathematically undefined input to an operation.
	ErrDomain
	// ErrDivideByZero is a divisor or modulus within epsilon of zero.
	ErrDivideByZero
	// ErrOverflow is a result that is not representable as a finite float64.
	ErrOverflow
)

func (k ErrorKind) String() string {
	switch k {
	case ErrSyntax:
		return "Syntax"
	case ErrDomain:
		return "Domain"
	case ErrDivideByZero:
		return "DivideByZero"
	case ErrOverflow:
		return "Overflow"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// CalcError is implemented by every error the engine produces.
type CalcError interface {
	error
	// Kind returns the failure class of the error.
	Kind() ErrorKind
}

// SyntaxError indicates a token sequence that does not form an expression.
type SyntaxError struct {
	// Reason describes what was wrong with the sequence.
	Reason string
}

func (err *SyntaxError) Error() string {
	return "syntax error: " + err.Reason
}

func (err *SyntaxError) Kind() ErrorKind {
	return ErrSyntax
}

// DomainError indicates an operand outside the domain of an operation.
type DomainError struct {
	// X is the out-of-domain operand.
	X float64
	// Func is the operator or function that rejected it.
	Func string
}

func (err *DomainError) Error() string {
	return strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain of " + err.Func
}

func (err *DomainError) Kind() ErrorKind {
	return ErrDomain
}

// DivideByZeroError indicates a division or modulo whose divisor is within
// epsilon of zero.
type DivideByZeroError struct {
	// Op is "/" or "%".
	Op string
}

func (err *DivideByZeroError) Error() string {
	if err.Op == "%" {
		return "modulo by zero"
	}
	return "division by zero"
}

func (err *DivideByZeroError) Kind() ErrorKind {
	return ErrDivideByZero
}

// OverflowError indicates a result that is not a finite float64.
type OverflowError struct {
	// Func is the operator or function whose result overflowed.
	Func string
}

func (err *OverflowError) Error() string {
	return "result of " + err.Func + " overflows"
}

func (err *OverflowError) Kind() ErrorKind {
	return ErrOverflow
}

var (
	_ CalcError = (*SyntaxError)(nil)
	_ CalcError = (*DomainError)(nil)
	_ CalcError = (*DivideByZeroError)(nil)
	_ CalcError = (*OverflowError)(nil)
)
