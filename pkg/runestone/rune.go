package runestone

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
	"lukechampine.com/uint128"
)

const (
	// maxRuneName is the spelling of the largest 128-bit value, whose
	// successor cannot be computed by the encoding loop.
	maxRuneName = "BCGDENLQRQWDSLRUGSNLBTMFIJAV"

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// subsidyHalvingInterval drives the name unlock schedule on every
	// network, regardless of the network's own reduction interval.
	subsidyHalvingInterval = 210_000
)

var (
	// reservedRune is the first rune assigned by the protocol to etchings
	// that do not name their rune, AAAAAAAAAAAAAAAAAAAAAAAAAAA.
	reservedRune = uint128.New(18016373645310469078, 347072867592939878)

	// runeSteps[i] is the value of the first rune with i+1 letters.
	runeSteps = func() [28]uint128.Uint128 {
		var steps [28]uint128.Uint128
		for i := 1; i < len(steps); i++ {
			steps[i] = steps[i-1].Mul64(26).Add64(26)
		}
		return steps
	}()
)

// Rune is the 128-bit numeric form of a rune name.
type Rune uint128.Uint128

// NewRune returns the rune with the given numeric value.
func NewRune(n uint128.Uint128) Rune {
	return Rune(n)
}

// N returns the numeric value of the rune.
func (r Rune) N() uint128.Uint128 {
	return uint128.Uint128(r)
}

// IsReserved reports whether r falls in the range assigned to unnamed
// etchings.
func (r Rune) IsReserved() bool {
	return r.N().Cmp(reservedRune) >= 0
}

// ReservedRune returns the rune assigned to an unnamed etching in
// transaction tx of block. The sum cannot overflow for any block and tx.
func ReservedRune(block uint64, tx uint32) Rune {
	offset := uint128.From64(block).Lsh(32).Or64(uint64(tx))
	return Rune(reservedRune.Add(offset))
}

// Commitment returns the little-endian bytes of the rune with trailing zero
// bytes stripped, as committed to in the etching's commit transaction.
func (r Rune) Commitment() []byte {
	var buf [16]byte
	r.N().PutBytes(buf[:])

	end := len(buf)
	for end > 0 && buf[end-1] == 0 {
		end--
	}
	return append([]byte(nil), buf[:end]...)
}

// String returns the bijective base-26 spelling of the rune.
func (r Rune) String() string {
	n := r.N()
	if n.Equals(uint128.Max) {
		return maxRuneName
	}

	n = n.Add64(1)
	var letters []byte
	for !n.IsZero() {
		q, rem := n.Sub64(1).QuoRem64(26)
		letters = append(letters, alphabet[rem])
		n = q
	}

	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}
	return string(letters)
}

// ParseRune parses the spelling of a rune name.
func ParseRune(s string) (Rune, error) {
	x := uint128.Zero
	var ok bool
	for i, c := range s {
		if i > 0 {
			if x, ok = checkedAdd(x, uint128.From64(1)); !ok {
				return Rune{}, runeError(ErrNameRange,
					"name out of range")
			}
		}
		if x, ok = checkedMul(x, uint128.From64(26)); !ok {
			return Rune{}, runeError(ErrNameRange, "name out of range")
		}
		if c < 'A' || c > 'Z' {
			return Rune{}, runeError(ErrInvalidCharacter,
				fmt.Sprintf("invalid character `%c`", c))
		}
		if x, ok = checkedAdd(x, uint128.From64(uint64(c-'A'))); !ok {
			return Rune{}, runeError(ErrNameRange, "name out of range")
		}
	}
	return Rune(x), nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Rune) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rune) UnmarshalText(text []byte) error {
	parsed, err := ParseRune(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// firstRuneHeight returns the height at which names start unlocking on the
// given network.
func firstRuneHeight(params *chaincfg.Params) uint32 {
	switch params.Net {
	case wire.MainNet:
		return subsidyHalvingInterval * 4
	case wire.TestNet3:
		return subsidyHalvingInterval * 12
	default:
		return 0
	}
}

// MinimumAtHeight returns the smallest rune that may be etched at height.
// Names unlock one letter at a time over the halving interval that starts at
// the network's first rune height, from 13 letters down to a single letter.
func MinimumAtHeight(params *chaincfg.Params, height uint32) Rune {
	offset := uint64(height) + 1

	interval := uint64(subsidyHalvingInterval / 12)
	start := uint64(firstRuneHeight(params))
	end := start + subsidyHalvingInterval

	if offset < start {
		return Rune(runeSteps[12])
	}
	if offset >= end {
		return Rune(uint128.Zero)
	}

	progress := offset - start
	length := 12 - progress/interval

	upper := runeSteps[length]
	lower := runeSteps[length-1]
	remainder := progress % interval

	drop := upper.Sub(lower).Mul64(remainder).Div64(interval)
	return Rune(upper.Sub(drop))
}
