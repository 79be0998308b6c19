package scicalc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/calclab/scicalc"
)

func almost(got, want float64) bool {
	if want == 0 {
		return math.Abs(got) < 1e-12
	}
	return math.Abs(got-want) < 1e-9*math.Max(1, math.Abs(want))
}

func evalIn(t *testing.T, src string, mode scicalc.AngleMode) float64 {
	t.Helper()
	r, err := scicalc.EvaluateExpression(src, scicalc.Config{AngleMode: mode})
	if err != nil {
		t.Fatalf("evaluating %q: %v", src, err)
	}
	return r.Value
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"num", "1", 1},
		{"decimal", "2.5", 2.5},
		{"sci-marker", "1.5E3", 1500},
		{"empty", "", 0},
		{"junk-only", "@ # $", 0},
		{"add", "4+5+6", 15},
		{"sub", "4-5-6", -7},
		{"mul", "4*5*6", 120},
		{"div", "8/4/2", 1},
		{"mod", "10%3", 1},
		{"precedence", "2 + 3 × 4", 14},
		{"parens", "(2 + 3) × 4", 20},
		{"pow-right-assoc", "2^3^2", 512},
		{"pow-grouped", "(2^3)^2", 64},
		{"glyph-div", "5 ÷ 2", 2.5},
		{"glyph-minus", "7−10", -3},
		{"neg", "-5+3", -2},
		{"pos", "+5", 5},
		{"neg-exponent", "2^-1", 0.5},
		{"neg-binds-tighter-than-pow", "-2^2", 4},
		{"neg-in-product", "2*-3", -6},
		{"double-neg", "--5", 5},
		{"fact", "5!", 120},
		{"fact-zero", "0!", 1},
		{"fact-after-pow", "2^3!", 64},
		{"fact-then-sub", "3!-2", 4},
		{"sqrt", "sqrt(16)", 4},
		{"sqrt-of-sum", "sqrt(2+2)", 2},
		{"abs", "abs(0-3)", 3},
		{"abs-neg", "abs(-3)", 3},
		{"log", "log(1000)", 3},
		{"ln-e", "ln(e)", 1},
		{"pi", "2*π", 2 * math.Pi},
		{"ncr", "5 nCr 2", 10},
		{"ncr-all", "5nCr5", 1},
		{"ncr-zero", "5nCr0", 1},
		{"ncr-over", "3 nCr 5", 0},
		{"ncr-big", "52 nCr 5", 2598960},
		{"npr", "5 nPr 2", 20},
		{"npr-over", "3 nPr 5", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := evalIn(t, c.src, scicalc.Radians)
			if !almost(got, c.want) {
				t.Errorf("evaluating %q: want %g, got %g", c.src, c.want, got)
			}
		})
	}
}

func TestEvaluateTrig(t *testing.T) {
	cases := []struct {
		name string
		src  string
		mode scicalc.AngleMode
		want float64
	}{
		{"sin-deg", "sin(30)", scicalc.Degrees, 0.5},
		{"cos-deg", "cos(60)", scicalc.Degrees, 0.5},
		{"tan-deg", "tan(45)", scicalc.Degrees, 1},
		{"sin-rad", "sin(π/6)", scicalc.Radians, 0.5},
		{"cos-rad", "cos(0)", scicalc.Radians, 1},
		{"sin-grad", "sin(100)", scicalc.Gradians, 1},
		{"asin-deg", "asin(1)", scicalc.Degrees, 90},
		{"acos-deg", "acos(0)", scicalc.Degrees, 90},
		{"atan-deg", "atan(1)", scicalc.Degrees, 45},
		{"asin-rad", "asin(1)", scicalc.Radians, math.Pi / 2},
		{"atan-grad", "atan(1)", scicalc.Gradians, 50},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := evalIn(t, c.src, c.mode)
			if !almost(got, c.want) {
				t.Errorf("evaluating %q in %v: want %g, got %g", c.src, c.mode, c.want, got)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind scicalc.ErrorKind
	}{
		{"sqrt-negative", "sqrt(-1)", scicalc.ErrDomain},
		{"asin-above", "asin(2)", scicalc.ErrDomain},
		{"acos-below", "acos(-1.5)", scicalc.ErrDomain},
		{"log-zero", "log(0)", scicalc.ErrDomain},
		{"log-negative", "log(-10)", scicalc.ErrDomain},
		{"ln-zero", "ln(0)", scicalc.ErrDomain},
		{"fact-negative", "(-1)!", scicalc.ErrDomain},
		{"fact-fraction", "1.5!", scicalc.ErrDomain},
		{"ncr-fraction", "4 nCr 1.5", scicalc.ErrDomain},
		{"npr-negative", "5 nPr -2", scicalc.ErrDomain},
		{"div-zero", "5 / 0", scicalc.ErrDivideByZero},
		{"div-tiny", "1/0.00000000001", scicalc.ErrDivideByZero},
		{"mod-zero", "5 % 0", scicalc.ErrDivideByZero},
		{"fact-overflow", "171!", scicalc.ErrOverflow},
		{"pow-overflow", "10^400", scicalc.ErrOverflow},
		{"pow-nan", "(-1)^0.5", scicalc.ErrOverflow},
		{"dangling-op", "2+", scicalc.ErrSyntax},
		{"leading-op", "*2", scicalc.ErrSyntax},
		{"two-operands", "2 3", scicalc.ErrSyntax},
		{"open-paren", "(2+3", scicalc.ErrSyntax},
		{"bare-function", "sin", scicalc.ErrSyntax},
		{"bare-dot", ".", scicalc.ErrSyntax},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := scicalc.EvaluateExpression(c.src, scicalc.Config{})
			if err == nil {
				t.Fatalf("evaluating %q gave no error", c.src)
			}
			var ce scicalc.CalcError
			if !errors.As(err, &ce) {
				t.Fatalf("evaluating %q: %#v is not a CalcError", c.src, err)
			}
			if ce.Kind() != c.kind {
				t.Errorf("evaluating %q: want %v error, got %v (%v)", c.src, c.kind, ce.Kind(), err)
			}
		})
	}
}

func TestCombinationSymmetry(t *testing.T) {
	for n := 0.0; n <= 20; n++ {
		for r := 0.0; r <= n; r++ {
			cfg := scicalc.Config{}
			lhs, err := scicalc.EvaluateExpression(fmtNCR(n, r), cfg)
			if err != nil {
				t.Fatal(err)
			}
			rhs, err := scicalc.EvaluateExpression(fmtNCR(n, n-r), cfg)
			if err != nil {
				t.Fatal(err)
			}
			if lhs.Value != rhs.Value {
				t.Errorf("nCr(%g,%g) = %g but nCr(%g,%g) = %g", n, r, lhs.Value, n, n-r, rhs.Value)
			}
		}
	}
}

func fmtNCR(n, r float64) string {
	return scicalc.Format(n, scicalc.Fix, 0) + " nCr " + scicalc.Format(r, scicalc.Fix, 0)
}

func BenchmarkEvaluateExpression(b *testing.B) {
	b.ReportAllocs()
	cfg := scicalc.Config{AngleMode: scicalc.Degrees, DisplayMode: scicalc.Norm}
	for i := 0; i < b.N; i++ {
		if _, err := scicalc.EvaluateExpression("sin(30) + sqrt(2)^2 * (1 + 2/3)", cfg); err != nil {
			b.Fatal(err)
		}
	}
}
