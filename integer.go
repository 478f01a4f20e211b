package ratio

import (
	"math/big"
	"sync"

	"golang.org/x/exp/constraints"
)

// bint (Big INTeger) is a wrapper around big.Int.
type bint big.Int

// bintOne is a shared 1, it must never be used as a receiver.
var bintOne = newBintFromInt64(1)

func newBintFromInt64(x int64) *bint {
	z := new(bint)
	z.setInt64(x)
	return z
}

// newBintFromInteger widens an integer of any fixed width to *big.Int.
func newBintFromInteger[T constraints.Integer](x T) *bint {
	z := new(bint)
	if x < 0 {
		z.setInt64(int64(x))
	} else {
		z.setUint64(uint64(x))
	}
	return z
}

// newBintFromPow2 creates a *big.Int equal to 2^power.
// If power is negative, the result is unpredictable.
func newBintFromPow2(power int) *bint {
	z := new(bint)
	z.lsh(bintOne, power)
	return z
}

// parseBint converts a signed decimal string to *big.Int.
func parseBint(s string) (*bint, bool) {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, false
	}
	return (*bint)(z), true
}

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

func (z *bint) string() string {
	return (*big.Int)(z).String()
}

// float64 returns the float64 value nearest to z.
func (z *bint) float64() float64 {
	f, _ := (*big.Int)(z).Float64()
	return f
}

// bigInt returns a copy of z that the caller is free to modify.
func (z *bint) bigInt() *big.Int {
	return new(big.Int).Set((*big.Int)(z))
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setInt64(x int64) {
	(*big.Int)(z).SetInt64(x)
}

func (z *bint) setUint64(x uint64) {
	(*big.Int)(z).SetUint64(x)
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

// sub calculates z = x - y.
func (z *bint) sub(x, y *bint) {
	(*big.Int)(z).Sub((*big.Int)(x), (*big.Int)(y))
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// neg calculates z = -x.
func (z *bint) neg(x *bint) {
	(*big.Int)(z).Neg((*big.Int)(x))
}

// abs calculates z = |x|.
func (z *bint) abs(x *bint) {
	(*big.Int)(z).Abs((*big.Int)(x))
}

// quo calculates z = x / y, truncated towards zero.
// quo panics if y is 0.
func (z *bint) quo(x, y *bint) {
	(*big.Int)(z).Quo((*big.Int)(x), (*big.Int)(y))
}

// rem calculates z = x % y, where the sign of z follows x.
// rem panics if y is 0.
func (z *bint) rem(x, y *bint) {
	(*big.Int)(z).Rem((*big.Int)(x), (*big.Int)(y))
}

// lsh (Left Shift) calculates z = x * 2^shift.
func (z *bint) lsh(x *bint, shift int) {
	(*big.Int)(z).Lsh((*big.Int)(x), uint(shift))
}

// gcd calculates the greatest common divisor z of x and y
// using the Euclidean algorithm.
// The result is never negative, gcd(x, 0) = |x| and gcd(0, 0) = 0.
func (z *bint) gcd(x, y *bint) {
	a := getBint()
	defer putBint(a)
	b := getBint()
	defer putBint(b)
	r := getBint()
	defer putBint(r)
	a.setBint(x)
	b.setBint(y)
	for b.sign() != 0 {
		r.rem(a, b)
		a, b, r = b, r, a
	}
	z.abs(a)
}

// lcm calculates the least common multiple z = x / gcd(x, y) * y.
// The sign of z follows the signs of x and y, lcm(x, 0) = 0.
// lcm panics if both x and y are 0.
func (z *bint) lcm(x, y *bint) {
	g := getBint()
	defer putBint(g)
	g.gcd(x, y)
	q := getBint()
	defer putBint(q)
	q.quo(x, g)
	z.mul(q, y)
}

// pool is a cache of reusable *big.Int instances.
var pool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return pool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	pool.Put(b)
}
