package ratio

import "fmt"

// MustNewFromFloat64Strict is like [NewFromFloat64Strict] but panics if f
// is NaN or an infinity.
func MustNewFromFloat64Strict(f float64) Ratio {
	r, err := NewFromFloat64Strict(f)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromFloat64Strict(%v) failed: %v", f, err))
	}
	return r
}
