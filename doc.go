/*
Package ratio implements immutable exact rational numbers.
It is specifically designed for recovering the exact value behind a binary
floating-point number and for computing with fractions without rounding.

# Representation

[Ratio] is a struct with two fields:

  - Numerator: an arbitrary-precision signed integer.
  - Denominator: an arbitrary-precision signed integer, which may be 0.

The numerical value of a ratio is Numerator / Denominator.

Ratios are not normalized.
The same value can have multiple representations, for example 1/2, 2/4,
and -1/-2 all represent one half.
Arithmetic operations keep whatever representation their algorithm produces,
and only [Ratio.Reduce] and [Ratio.Mul] divide out common factors.
The sign of the denominator is never moved to the numerator.

The zero value of [Ratio] is the ratio 1/1.

# Conversions

The package provides methods for converting ratios:

  - from/to string:
    [Parse], [Ratio.String], [Ratio.Format].
  - from/to float64:
    [NewFromFloat64], [NewFromFloat64Strict], [Ratio.Float64].
  - from integers:
    [New], [Of].

The conversion from float64 is exact.
The bits of the float are split into the sign, the biased exponent, and
the 52-bit significand, and the ratio is rebuilt as the sum of powers of two
they encode.
For example, 0.1 is converted to 3602879701896397/36028797018963968,
not to 1/10.

[NewFromFloat64] assumes the implicit leading 1 of [normal numbers] for every
input, which makes it wrong for zeros, [subnormal numbers], infinities, and
NaNs.
[NewFromFloat64Strict] handles zeros and subnormal numbers exactly and
returns an error for the special values.

The conversion to float64 is approximate.
[Ratio.Float64] converts the numerator and the denominator to float64
separately, so ratios with very large integers can lose precision or
overflow.

# Operations

  - [Ratio.Add], [Ratio.Sub]:
    The denominator of the result is the least common multiple of the
    denominators, and the result is not reduced.
  - [Ratio.MulRaw]:
    Multiplies numerators and denominators without reduction.
  - [Ratio.Mul]:
    Multiplies and reduces the product.
  - [Ratio.Neg]:
    Negates the numerator.
  - [Ratio.Reduce]:
    Divides both integers by their greatest common divisor, computed with
    the Euclidean algorithm.

Unreduced results can grow without bound when operations are chained.
Callers should reduce ratios explicitly when the size of the integers matters.

# Errors

Arithmetic operations do not validate their arguments, and ratios with
a zero denominator can be created freely.
[Ratio.IsInf] reports this case, but no operation consults it.
The following operations panic instead of returning garbage:

  - [Ratio.Add] and [Ratio.Sub] panic if either denominator is 0.
  - [Ratio.Reduce] and [Ratio.Mul] panic if the result would be 0/0.

[Parse] and [NewFromFloat64Strict] return errors for invalid input.

[normal numbers]: https://en.wikipedia.org/wiki/Normal_number_(computing)
[subnormal numbers]: https://en.wikipedia.org/wiki/Subnormal_number
*/
package ratio
