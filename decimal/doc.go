// Package decimal provides a fixed point base 10 number.
//
// The equation for a decimal number is:
//
//	number = (-1)^sign * value * 10^scale
//
// Where number is the fixed point number, value is an unscaled
// unsigned integer, and scale is a base 10 exponent. For example:
//
//	5.75    = + 575  * 10^-2
//	-0.4375 = - 4375 * 10^-4
//
// The sign is carried outside the value so that "-0" is representable;
// the floating point formats downstream distinguish negative zero and
// a parsed sign must survive a zero magnitude.
//
// Parsing accepts plain and scientific notation:
//
//	[+-] digits [. digits] [(e|E) [+-] digits]
//
// and is exact: no binary intermediate is involved, so "0.1" is held
// as 1 * 10^-1, not as the nearest host float.
//
// FromRat goes the other way, from a rational p/q back to decimal
// text. That conversion is exact precisely when q divides some power
// of ten, i.e. q = 2^a * 5^b. Every finite value decoded from a
// binary floating point pattern has q = 2^a, so decoded values always
// render exactly (if sometimes long: the smallest single precision
// subnormal needs 149 fractional digits).
package decimal
