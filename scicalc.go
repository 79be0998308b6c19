package scicalc

// Config carries the read-only settings for one evaluation. The engine keeps
// no state of its own, so concurrent evaluations with separate Configs do
// not interfere.
type Config struct {
	// AngleMode is the unit trigonometric operators work in.
	AngleMode AngleMode
	// DisplayMode selects the rendering of the result.
	DisplayMode DisplayMode
	// FixDecimals is the digit count for Fix, Sci, and Eng modes.
	FixDecimals int
}

// Result is the outcome of a successful evaluation.
type Result struct {
	// Value is the computed number.
	Value float64
	// Display is Value rendered under the Config's display settings.
	Display string
}

// EvaluateExpression tokenizes, converts, and evaluates a raw calculator
// expression and renders the result. It accepts both ASCII operators and the
// calculator display glyphs (×, ÷, −, π, the E notation marker). An
// expression with no recognizable tokens evaluates to zero. On failure the
// returned error is one of the CalcError types and the Result is zero.
func EvaluateExpression(raw string, cfg Config) (Result, error) {
	tokens := Tokenize(raw)
	if len(tokens) == 0 {
		return Result{Value: 0, Display: Format(0, cfg.DisplayMode, cfg.FixDecimals)}, nil
	}
	v, err := EvalPostfix(ToPostfix(tokens), cfg.AngleMode)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: v, Display: Format(v, cfg.DisplayMode, cfg.FixDecimals)}, nil
}
