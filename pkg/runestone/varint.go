package runestone

import (
	"lukechampine.com/uint128"
)

// maxVarintLen is the number of 7-bit groups needed to hold a 128-bit value.
const maxVarintLen = 19

// AppendVarint appends the LEB128 encoding of n to buf and returns the
// extended buffer.
func AppendVarint(buf []byte, n uint128.Uint128) []byte {
	for n.Hi != 0 || n.Lo > 0x7f {
		buf = append(buf, byte(n.Lo&0x7f)|0x80)
		n = n.Rsh(7)
	}
	return append(buf, byte(n.Lo))
}

// DecodeVarint decodes a single LEB128 value from the front of buf and
// returns it along with the number of bytes consumed.
func DecodeVarint(buf []byte) (uint128.Uint128, int, error) {
	var n uint128.Uint128
	for i, b := range buf {
		if i >= maxVarintLen {
			return uint128.Zero, 0, runeError(ErrVarintOverlong,
				"varint longer than 19 bytes")
		}

		value := uint64(b & 0x7f)

		// The last group may only carry the two bits left of 128.
		if i == maxVarintLen-1 && value&0x7c != 0 {
			return uint128.Zero, 0, runeError(ErrVarintOverflow,
				"varint overflows 128 bits")
		}

		n = n.Or(uint128.From64(value).Lsh(uint(7 * i)))

		if b&0x80 == 0 {
			return n, i + 1, nil
		}
	}

	return uint128.Zero, 0, runeError(ErrVarintUnterminated,
		"varint is unterminated")
}

// decodeIntegers decodes a payload made entirely of varints.
func decodeIntegers(payload []byte) ([]uint128.Uint128, error) {
	var integers []uint128.Uint128
	for i := 0; i < len(payload); {
		integer, length, err := DecodeVarint(payload[i:])
		if err != nil {
			return nil, err
		}
		integers = append(integers, integer)
		i += length
	}
	return integers, nil
}
