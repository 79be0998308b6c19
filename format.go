package scicalc

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DisplayMode selects how a result is rendered.
type DisplayMode int

const (
	// Norm is decimal notation for moderate magnitudes, scientific
	// notation outside them.
	Norm DisplayMode = iota
	// Fix is fixed-point with an exact number of decimals.
	Fix
	// Sci is scientific notation.
	Sci
	// Eng is scientific notation with the exponent a multiple of 3.
	Eng
)

func (m DisplayMode) String() string {
	switch m {
	case Norm:
		return "norm"
	case Fix:
		return "fix"
	case Sci:
		return "sci"
	case Eng:
		return "eng"
	default:
		return "DisplayMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ErrorToken is the display string for a value that is not a finite number.
const ErrorToken = "Error"

// normSigDigits caps NORM-mode precision so that representation noise like
// trailing .0000000001 never reaches the display.
const normSigDigits = 10

// Format renders a computed value for display. Non-finite values render as
// ErrorToken and magnitudes below epsilon render as "0" regardless of mode.
// decimals is clamped to 0 through 9.
func Format(v float64, mode DisplayMode, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrorToken
	}
	if math.Abs(v) < epsilon {
		return "0"
	}
	if decimals < 0 {
		decimals = 0
	} else if decimals > 9 {
		decimals = 9
	}
	switch mode {
	case Fix:
		return decimal.NewFromFloat(v).StringFixed(int32(decimals))
	case Sci:
		return strconv.FormatFloat(v, 'e', decimals, 64)
	case Eng:
		return formatEng(v, decimals)
	default:
		return formatNorm(v)
	}
}

// formatEng renders v with the exponent floored to a multiple of 3 and the
// mantissa scaled to match, so the mantissa lies in [1, 1000).
func formatEng(v float64, decimals int) string {
	exp := int(math.Floor(math.Log10(math.Abs(v))))
	if exp%3 != 0 {
		exp -= (exp%3 + 3) % 3
	}
	mant := v / math.Pow(10, float64(exp))
	// Rounding at the display precision can carry the mantissa to 1000.
	scale := math.Pow(10, float64(decimals))
	mant = math.Round(mant*scale) / scale
	if math.Abs(mant) >= 1000 {
		mant /= 1000
		exp += 3
	}
	return strconv.FormatFloat(mant, 'f', decimals, 64) + "e" + strconv.Itoa(exp)
}

// formatNorm renders v in decimal notation when its magnitude lies within
// [1e-10, 1e10], capped at normSigDigits significant digits with trailing
// zeros trimmed, and in scientific notation above that range. Magnitudes
// below epsilon never reach here; Format clamps them to "0".
func formatNorm(v float64) string {
	abs := math.Abs(v)
	if abs > 1e10 {
		return strconv.FormatFloat(v, 'e', normSigDigits-1, 64)
	}
	exp := int(math.Floor(math.Log10(abs)))
	prec := normSigDigits - 1 - exp
	if prec < 0 {
		prec = 0
	}
	return trimZeros(strconv.FormatFloat(v, 'f', prec, 64))
}

// trimZeros removes a trailing run of fractional zeros, and the decimal
// point itself when nothing follows it.
func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
