package ratio_test

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"

	"github.com/govalues/ratio"
)

func harmonic(n int) ratio.Ratio {
	h := ratio.Zero
	for k := 1; k <= n; k++ {
		h = h.Add(ratio.Of(1, k))
	}
	return h
}

// This example calculates the 10th harmonic number 1 + 1/2 + ... + 1/10.
// Every addition brings the terms to the least common multiple of the
// denominators, so the running denominator is lcm(1, ..., k) and no
// precision is lost along the way.
func Example_harmonicNumber() {
	h := harmonic(10)
	fmt.Println(h)
	fmt.Println(h.Float64())
	// Output:
	// 7381/2520
	// 2.9289682539682538
}

// This example shows why 0.1 + 0.2 != 0.3 in binary floating-point
// arithmetic.
// Converting the operands exactly reveals that the float sum is rounded
// to a neighbour of the exact sum, and that neither of them is the float 0.3.
func Example_floatError() {
	a, b := 0.1, 0.2
	exact := ratio.NewFromFloat64(a).Add(ratio.NewFromFloat64(b))
	fmt.Println(exact)
	fmt.Println(ratio.NewFromFloat64(a + b))
	fmt.Println(ratio.NewFromFloat64(0.3))
	// Output:
	// 10808639105689191/36028797018963968
	// 1351079888211149/4503599627370496
	// 5404319552844595/18014398509481984
}

func ExampleNew() {
	fmt.Println(ratio.New(big.NewInt(2), big.NewInt(4)))
	fmt.Println(ratio.New(big.NewInt(-3), nil))
	fmt.Println(ratio.New(nil, nil))
	// Output:
	// 2/4
	// -3/1
	// 1/1
}

func ExampleOf() {
	fmt.Println(ratio.Of(1, 2))
	fmt.Println(ratio.Of(int8(-6), int8(8)))
	fmt.Println(ratio.Of(uint64(math.MaxUint64), uint64(1)))
	// Output:
	// 1/2
	// -6/8
	// 18446744073709551615/1
}

func ExampleNewFromFloat64() {
	fmt.Println(ratio.NewFromFloat64(0.5))
	fmt.Println(ratio.NewFromFloat64(-2))
	fmt.Println(ratio.NewFromFloat64(0.1))
	fmt.Println(ratio.NewFromFloat64(1.25e2))
	// Output:
	// 1/2
	// -2/1
	// 3602879701896397/36028797018963968
	// 125/1
}

func ExampleNewFromFloat64Strict() {
	fmt.Println(ratio.NewFromFloat64Strict(0))
	fmt.Println(ratio.NewFromFloat64Strict(0.75))
	fmt.Println(ratio.NewFromFloat64Strict(math.Inf(1)))
	// Output:
	// 0/1 <nil>
	// 3/4 <nil>
	// 1/1 converting +Inf: special value
}

func ExampleParse() {
	fmt.Println(ratio.Parse("-2/4"))
	fmt.Println(ratio.Parse("1/0"))
	fmt.Println(ratio.Parse("0.5"))
	// Output:
	// -2/4 <nil>
	// 1/0 <nil>
	// 1/1 parsing "0.5": missing separator: invalid ratio
}

func ExampleMustParse() {
	fmt.Println(ratio.MustParse("6/-9"))
	// Output: 6/-9
}

func ExampleRatio_Num() {
	r := ratio.MustParse("-6/9")
	fmt.Println(r.Num(), r.Denom())
	// Output: -6 9
}

func ExampleRatio_Denom() {
	r := ratio.MustParse("6/-9")
	fmt.Println(r.Denom())
	// Output: -9
}

func ExampleRatio_IsZero() {
	fmt.Println(ratio.Of(0, 7).IsZero())
	fmt.Println(ratio.Of(0, 0).IsZero())
	fmt.Println(ratio.Of(1, 7).IsZero())
	// Output:
	// true
	// true
	// false
}

func ExampleRatio_IsInf() {
	fmt.Println(ratio.Of(1, 0).IsInf())
	fmt.Println(ratio.Of(1, 7).IsInf())
	// Output:
	// true
	// false
}

func ExampleRatio_Reduce() {
	fmt.Println(ratio.Of(2, 4).Reduce())
	fmt.Println(ratio.Of(-6, 9).Reduce())
	fmt.Println(ratio.Of(6, -9).Reduce())
	fmt.Println(ratio.Of(5, 0).Reduce())
	// Output:
	// 1/2
	// -2/3
	// 2/-3
	// 1/0
}

func ExampleRatio_Add() {
	r := ratio.Of(1, 2)
	fmt.Println(r.Add(ratio.Of(1, 3)))
	fmt.Println(r.Add(ratio.Of(1, 2)))
	// Output:
	// 5/6
	// 2/2
}

func ExampleRatio_Sub() {
	r := ratio.Of(1, 2)
	fmt.Println(r.Sub(ratio.Of(1, 3)))
	fmt.Println(r.Sub(ratio.Of(3, 4)))
	// Output:
	// 1/6
	// -1/4
}

func ExampleRatio_Neg() {
	fmt.Println(ratio.Of(1, 2).Neg())
	fmt.Println(ratio.Of(1, -2).Neg())
	// Output:
	// -1/2
	// -1/-2
}

func ExampleRatio_MulRaw() {
	fmt.Println(ratio.Of(3, 4).MulRaw(ratio.Of(2, 3)))
	// Output: 6/12
}

func ExampleRatio_Mul() {
	fmt.Println(ratio.Of(3, 4).Mul(ratio.Of(2, 3)))
	// Output: 1/2
}

func ExampleRatio_Float64() {
	fmt.Println(ratio.Of(1, 3).Float64())
	fmt.Println(ratio.Of(-5, 4).Float64())
	fmt.Println(ratio.Of(1, 0).Float64())
	// Output:
	// 0.3333333333333333
	// -1.25
	// +Inf
}

func ExampleRatio_String() {
	fmt.Println(ratio.Of(1, 2).Neg().String())
	fmt.Println(ratio.Of(4, 1).String())
	// Output:
	// -1/2
	// 4/1
}

func ExampleRatio_Format() {
	r := ratio.Of(-1, 2)
	fmt.Printf("%v\n", r)
	fmt.Printf("%q\n", r)
	fmt.Printf("%8v|\n", r)
	fmt.Printf("%-8v|\n", r)
	// Output:
	// -1/2
	// "-1/2"
	//     -1/2|
	// -1/2    |
}

func ExampleRatio_MarshalText() {
	type Share struct {
		Owner    string      `json:"owner"`
		Fraction ratio.Ratio `json:"fraction"`
	}
	data, err := json.Marshal(Share{Owner: "alice", Fraction: ratio.Of(1, 3)})
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))
	// Output: {"owner":"alice","fraction":"1/3"}
}

func ExampleRatio_UnmarshalText() {
	var r ratio.Ratio
	err := r.UnmarshalText([]byte("-3/9"))
	fmt.Println(r, err)
	// Output: -3/9 <nil>
}
