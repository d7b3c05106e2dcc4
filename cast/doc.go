// Package cast converts loosely typed values into fixed-width integers.
//
// Integer inputs go through [safemath], so a value that does not fit the
// target type is reported instead of silently wrapping. Strings and floats are
// parsed into an int64 by [cast] and then narrowed by [safemath] the same way.
// A few inputs are rejected outright: nil, booleans, empty strings and floats
// with a fractional part.
package cast
