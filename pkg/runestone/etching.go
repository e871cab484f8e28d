package runestone

import (
	"lukechampine.com/uint128"
)

const (
	// MaxDivisibility is the largest number of decimal places a rune may
	// display.
	MaxDivisibility uint8 = 38

	// MaxSpacers is the widest spacers bitmask, one bit between each pair
	// of letters of a 28 letter name.
	MaxSpacers uint32 = 0b00000111_11111111_11111111_11111111
)

// Terms are the open minting rules of a rune. Nil fields are unset.
type Terms struct {
	// Amount minted per mint transaction.
	Amount *uint128.Uint128
	// Cap is the number of mints allowed.
	Cap *uint128.Uint128
	// HeightStart and HeightEnd bound minting by absolute block height.
	HeightStart *uint64
	HeightEnd   *uint64
	// OffsetStart and OffsetEnd bound minting relative to the etching
	// block.
	OffsetStart *uint64
	OffsetEnd   *uint64
}

// Etching creates a new rune. A nil Rune asks the protocol to assign a
// reserved name.
type Etching struct {
	Divisibility *uint8
	Premine      *uint128.Uint128
	Rune         *Rune
	Spacers      *uint32
	Symbol       *rune
	Terms        *Terms
	Turbo        bool
}

// Supply returns premine + cap * amount, and false if it overflows 128 bits.
func (e *Etching) Supply() (uint128.Uint128, bool) {
	premine := valueOrZero(e.Premine)

	var capacity, amount uint128.Uint128
	if e.Terms != nil {
		capacity = valueOrZero(e.Terms.Cap)
		amount = valueOrZero(e.Terms.Amount)
	}

	minted, ok := checkedMul(capacity, amount)
	if !ok {
		return uint128.Zero, false
	}
	return checkedAdd(premine, minted)
}

func valueOrZero(v *uint128.Uint128) uint128.Uint128 {
	if v == nil {
		return uint128.Zero
	}
	return *v
}
