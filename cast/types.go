package cast

import (
	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// Integer is an alias for [safemath.Integer].
type Integer = safemath.Integer

// Int is a constraint that matches the integer types supported by both
// [cast.ToE] and [safemath.ConvertAny].
type Int interface {
	cast.Basic
	safemath.Integer
}
