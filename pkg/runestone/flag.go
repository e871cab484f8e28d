package runestone

import (
	"lukechampine.com/uint128"
)

// Flag is a bit position in the flags field.
type Flag uint8

const (
	// FlagEtching marks a message that etches a rune.
	FlagEtching Flag = 0
	// FlagTerms marks an etching with open minting terms.
	FlagTerms Flag = 1
	// FlagTurbo opts the etched rune into future protocol changes.
	FlagTurbo Flag = 2
	// FlagCenotaph is never recognized, so setting it makes a cenotaph.
	FlagCenotaph Flag = 127
)

func (f Flag) mask() uint128.Uint128 {
	return uint128.From64(1).Lsh(uint(f))
}

// set turns the flag on in flags.
func (f Flag) set(flags *uint128.Uint128) {
	*flags = flags.Or(f.mask())
}

// take reports whether the flag is on in flags and clears it.
func (f Flag) take(flags *uint128.Uint128) bool {
	mask := f.mask()
	present := !flags.And(mask).IsZero()
	*flags = flags.And(mask.Xor(uint128.Max))
	return present
}
