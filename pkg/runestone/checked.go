package runestone

import (
	"math"

	"lukechampine.com/uint128"
)

// checkedAdd returns a+b and whether the sum fits in 128 bits.
func checkedAdd(a, b uint128.Uint128) (uint128.Uint128, bool) {
	sum := a.AddWrap(b)
	return sum, sum.Cmp(a) >= 0
}

// checkedMul returns a*b and whether the product fits in 128 bits.
func checkedMul(a, b uint128.Uint128) (uint128.Uint128, bool) {
	if a.IsZero() || b.IsZero() {
		return uint128.Zero, true
	}
	if b.Cmp(uint128.Max.Div(a)) > 0 {
		return uint128.Zero, false
	}
	return a.MulWrap(b), true
}

func toUint64(v uint128.Uint128) (uint64, bool) {
	return v.Lo, v.Hi == 0
}

func toUint32(v uint128.Uint128) (uint32, bool) {
	if v.Hi != 0 || v.Lo > math.MaxUint32 {
		return 0, false
	}
	return uint32(v.Lo), true
}

func toUint8(v uint128.Uint128) (uint8, bool) {
	if v.Hi != 0 || v.Lo > math.MaxUint8 {
		return 0, false
	}
	return uint8(v.Lo), true
}
