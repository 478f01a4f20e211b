package ratio

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Ratio type is a representation of an exact rational number.
// The zero value is the numeric value of 1.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A ratio is a pair of arbitrary-precision signed integers:
//
//   - Numerator: the dividend of the fraction.
//   - Denominator: the divisor of the fraction, which may be 0.
//
// Ratios are not normalized.
// The pair is kept exactly as it was produced, so 1/2, 2/4 and -1/-2 are
// different representations of the same number.
// Only [Ratio.Reduce] and [Ratio.Mul] divide out common factors, and no
// operation moves the sign from the denominator to the numerator.
type Ratio struct {
	num *bint // the numerator, nil means 1
	den *bint // the denominator, nil means 1
}

var (
	errDivisionByZero = errors.New("division by zero")
	errInvalidRatio   = errors.New("invalid ratio")
	errSpecialValue   = errors.New("special value")
)

var (
	One  = Of(1, 1) // One represents the ratio 1/1, it is equal to Ratio{}.
	Zero = Of(0, 1) // Zero represents the ratio 0/1.
)

// Layout of an IEEE 754 binary64 value.
const (
	float64SignShift = 63
	float64ExpShift  = 52
	float64ExpMask   = 0x7ff
	float64FracBits  = 52
	float64FracMask  = 1<<float64FracBits - 1
	float64Bias      = 1023
	float64MinExp    = 1 - float64Bias // exponent of subnormal numbers
)

// newRatio takes ownership of num and den.
func newRatio(num, den *bint) Ratio {
	return Ratio{num: num, den: den}
}

// New returns a ratio equal to num / den.
// A nil argument is treated as 1, so New(nil, nil) is equal to [One].
// New copies both integers and neither reduces the fraction nor validates
// the denominator.
func New(num, den *big.Int) Ratio {
	n, d := new(bint), new(bint)
	if num == nil {
		n.setInt64(1)
	} else {
		n.setBint((*bint)(num))
	}
	if den == nil {
		d.setInt64(1)
	} else {
		d.setBint((*bint)(den))
	}
	return newRatio(n, d)
}

// Of returns a ratio equal to num / den.
// Both integers are widened to arbitrary precision without loss,
// the fraction is not reduced.
func Of[T constraints.Integer](num, den T) Ratio {
	return newRatio(newBintFromInteger(num), newBintFromInteger(den))
}

// NewFromFloat64 returns the ratio that is exactly equal to the binary
// floating-point value f, not to the decimal number f was written as.
// For example, 0.1 converts to 3602879701896397/36028797018963968.
//
// The value is reconstructed from the bits of f as
//
//	(-1)^sign * (1 + fraction / 2^52) * 2^(exponent - 1023)
//
// NewFromFloat64 always assumes the implicit leading 1 of normal numbers.
// Zero and subnormal numbers (exponent 0) are therefore decoded as if they
// were normal, and infinities and NaNs (exponent 2047) as large finite values.
// Use [NewFromFloat64Strict] to convert these values correctly.
func NewFromFloat64(f float64) Ratio {
	bits := math.Float64bits(f)
	neg := bits>>float64SignShift == 1
	exp := int(bits>>float64ExpShift&float64ExpMask) - float64Bias
	frac := bits & float64FracMask
	return decompose(neg, One, frac, exp)
}

// NewFromFloat64Strict is similar to [NewFromFloat64], but it handles
// zeros and subnormal numbers exactly.
// Negative zero is converted to 0/1.
//
// NewFromFloat64Strict returns an error if f is NaN or an infinity.
func NewFromFloat64Strict(f float64) (Ratio, error) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return Ratio{}, fmt.Errorf("converting %v: %w", f, errSpecialValue)
	case f == 0:
		return Zero, nil
	}
	bits := math.Float64bits(f)
	if bits>>float64ExpShift&float64ExpMask != 0 {
		return NewFromFloat64(f), nil
	}
	// Subnormal numbers have no implicit leading 1
	neg := bits>>float64SignShift == 1
	frac := bits & float64FracMask
	return decompose(neg, Zero, frac, float64MinExp), nil
}

// decompose calculates (-1)^neg * (lead + frac / 2^52) * 2^exp.
// Fraction bits are added one at a time, starting from the most
// significant one, which is worth 1/2.
func decompose(neg bool, lead Ratio, frac uint64, exp int) Ratio {
	r := lead
	for i := 1; i <= float64FracBits; i++ {
		if frac>>(float64FracBits-i)&1 == 0 {
			continue
		}
		r = r.Add(newRatio(newBintFromInt64(1), newBintFromPow2(i)))
	}
	switch {
	case exp > 0:
		r = r.Mul(newRatio(newBintFromPow2(exp), newBintFromInt64(1)))
	case exp < 0:
		r = r.Mul(newRatio(newBintFromInt64(1), newBintFromPow2(-exp)))
	}
	if neg {
		r = r.Neg()
	}
	return r
}

// Parse converts a string in the form returned by [Ratio.String] to a ratio.
// The input string must consist of two signed decimal integers separated by
// a single slash:
//
//	1/2
//	-3/4
//	5/-6
//	7/0
//
// Parse does not reduce the fraction, so Parse(r.String()) reproduces
// both integers of r.
// Parse returns an error if the string does not have this form.
func Parse(s string) (Ratio, error) {
	ns, ds, ok := strings.Cut(s, "/")
	if !ok {
		return Ratio{}, fmt.Errorf("parsing %q: missing separator: %w", s, errInvalidRatio)
	}
	num, ok := parseBint(ns)
	if !ok {
		return Ratio{}, fmt.Errorf("parsing %q: invalid numerator %q: %w", s, ns, errInvalidRatio)
	}
	den, ok := parseBint(ds)
	if !ok {
		return Ratio{}, fmt.Errorf("parsing %q: invalid denominator %q: %w", s, ds, errInvalidRatio)
	}
	return newRatio(num, den), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding ratios.
func MustParse(s string) Ratio {
	r, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return r
}

func (r Ratio) numer() *bint {
	if r.num == nil {
		return bintOne
	}
	return r.num
}

func (r Ratio) denom() *bint {
	if r.den == nil {
		return bintOne
	}
	return r.den
}

// Num returns a copy of the numerator of r.
func (r Ratio) Num() *big.Int {
	return r.numer().bigInt()
}

// Denom returns a copy of the denominator of r.
func (r Ratio) Denom() *big.Int {
	return r.denom().bigInt()
}

// IsZero returns true if the numerator of r is 0.
// The denominator is not taken into account, so 0/0 is zero as well.
func (r Ratio) IsZero() bool {
	return r.numer().sign() == 0
}

// IsInf returns true if the denominator of r is 0.
// No arithmetic method checks for this case, see [Ratio.Reduce] and
// [Ratio.Add] for the consequences.
func (r Ratio) IsInf() bool {
	return r.denom().sign() == 0
}

// Reduce returns r with the numerator and the denominator divided by their
// greatest common divisor.
// The sign of the denominator is preserved, so 2/-4 reduces to 1/-2.
// A ratio with a zero denominator reduces to 1/0 or -1/0.
//
// Reduce panics if both the numerator and the denominator are 0.
func (r Ratio) Reduce() Ratio {
	num, den := r.numer(), r.denom()
	g := getBint()
	defer putBint(g)
	g.gcd(num, den)
	if g.sign() == 0 {
		panic(fmt.Sprintf("%q.Reduce() failed: %v", r, errDivisionByZero))
	}
	n, d := new(bint), new(bint)
	n.quo(num, g)
	d.quo(den, g)
	return newRatio(n, d)
}

// Neg returns r with the opposite sign of the numerator.
func (r Ratio) Neg() Ratio {
	n, d := new(bint), new(bint)
	n.neg(r.numer())
	d.setBint(r.denom())
	return newRatio(n, d)
}

// Add returns the sum of r and e.
// Both numerators are scaled to the least common multiple of the
// denominators, which becomes the denominator of the sum.
// The result is not reduced.
//
// Add panics if the denominator of r or e is 0.
func (r Ratio) Add(e Ratio) Ratio {
	f, err := addOrSub(r, e, false)
	if err != nil {
		panic(fmt.Sprintf("%q.Add(%q) failed: %v", r, e, err))
	}
	return f
}

// Sub returns the difference of r and e.
// As with [Ratio.Add], the denominator of the difference is the least common
// multiple of the denominators and the result is not reduced.
//
// Sub panics if the denominator of r or e is 0.
func (r Ratio) Sub(e Ratio) Ratio {
	f, err := addOrSub(r, e, true)
	if err != nil {
		panic(fmt.Sprintf("%q.Sub(%q) failed: %v", r, e, err))
	}
	return f
}

func addOrSub(r, e Ratio, sub bool) (Ratio, error) {
	rnum, rden := r.numer(), r.denom()
	enum, eden := e.numer(), e.denom()
	if rden.sign() == 0 || eden.sign() == 0 {
		return Ratio{}, errDivisionByZero
	}

	// Common denominator
	factor := new(bint)
	factor.lcm(rden, eden)

	// Scaled numerators
	x := getBint()
	defer putBint(x)
	x.quo(factor, rden)
	x.mul(x, rnum)
	y := getBint()
	defer putBint(y)
	y.quo(factor, eden)
	y.mul(y, enum)

	num := new(bint)
	if sub {
		num.sub(x, y)
	} else {
		num.add(x, y)
	}
	return newRatio(num, factor), nil
}

// MulRaw returns the product of r and e without reducing it.
// Chained calls grow both integers quickly, see [Ratio.Mul].
func (r Ratio) MulRaw(e Ratio) Ratio {
	n, d := new(bint), new(bint)
	n.mul(r.numer(), e.numer())
	d.mul(r.denom(), e.denom())
	return newRatio(n, d)
}

// Mul returns the reduced product of r and e.
// It is equal to r.MulRaw(e).Reduce().
//
// Mul panics if the product has both the numerator and the denominator
// equal to 0.
func (r Ratio) Mul(e Ratio) Ratio {
	return r.MulRaw(e).Reduce()
}

// Float64 returns the nearest float64 to the numerator divided by
// the nearest float64 to the denominator.
// The result is an approximation, and it can be far from the exact value
// when either integer is too large for a float64.
// A zero denominator gives an infinity or NaN.
func (r Ratio) Float64() float64 {
	return r.numer().float64() / r.denom().float64()
}

// String implements the [fmt.Stringer] interface and returns the ratio
// as the numerator and the denominator separated by a slash.
// Both integers are written in signed decimal form without reduction:
//
//	1/2
//	-1/2
//	2/-4
//	1/0
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Ratio) String() string {
	var b strings.Builder
	b.WriteString(r.numer().string())
	b.WriteByte('/')
	b.WriteString(r.denom().string())
	return b.String()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (r *Ratio) UnmarshalText(text []byte) error {
	var err error
	*r, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Ratio.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Ratio) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -1/2
//	%q:    "-1/2"
//
// Width is supported by all verbs, the '-' flag pads on the right.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (r Ratio) Format(state fmt.State, verb rune) {
	s := r.String()

	// Quotes
	if verb == 'q' || verb == 'Q' {
		s = strconv.Quote(s)
	}

	// Padding
	if w, ok := state.Width(); ok && w > len(s) {
		pad := strings.Repeat(" ", w-len(s))
		if state.Flag('-') {
			s = s + pad
		} else {
			s = pad + s
		}
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V':
		state.Write([]byte(s))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(ratio.Ratio="))
		state.Write([]byte(s))
		state.Write([]byte(")"))
	}
}
