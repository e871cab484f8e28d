package runestone

import (
	"lukechampine.com/uint128"
)

// Tag is the key of a field in a runestone message. Even tags must be
// understood by a decoder, so an unknown even tag makes a cenotaph. Unknown
// odd tags are ignored.
type Tag uint8

const (
	// TagBody ends the fields. Every integer after it belongs to an edict.
	TagBody Tag = 0
	// TagFlags carries the Flag bits.
	TagFlags Tag = 2
	// TagRune is the etched name.
	TagRune Tag = 4
	// TagPremine is the amount allocated to the etcher.
	TagPremine Tag = 6
	// TagCap is the number of mints allowed.
	TagCap Tag = 8
	// TagAmount is the amount created per mint.
	TagAmount Tag = 10
	// TagHeightStart and TagHeightEnd bound minting by block height.
	TagHeightStart Tag = 12
	TagHeightEnd   Tag = 14
	// TagOffsetStart and TagOffsetEnd bound minting relative to the
	// etching block.
	TagOffsetStart Tag = 16
	TagOffsetEnd   Tag = 18
	// TagMint is the block and tx of the rune to mint.
	TagMint Tag = 20
	// TagPointer is the output receiving unallocated runes.
	TagPointer Tag = 22
	// TagCenotaph is never recognized, so it always makes a cenotaph.
	TagCenotaph Tag = 126

	// TagDivisibility is the number of decimal places.
	TagDivisibility Tag = 1
	// TagSpacers is the spacers bitmask of the etched name.
	TagSpacers Tag = 3
	// TagSymbol is the currency symbol as a unicode scalar.
	TagSymbol Tag = 5
	// TagNop is reserved and ignored.
	TagNop Tag = 127
)

func (t Tag) value() uint128.Uint128 {
	return uint128.From64(uint64(t))
}

// fields holds the queued values of every tag read before the body.
type fields map[uint128.Uint128][]uint128.Uint128

// hasEvenTag reports whether an even tag is still queued.
func (f fields) hasEvenTag() bool {
	for tag := range f {
		if tag.Lo&1 == 0 {
			return true
		}
	}
	return false
}

// takeTag reads the first n values queued under tag and converts them with
// with. The values are only consumed when the conversion succeeds, and the
// tag is dropped once its queue is empty. A nil result means the field is
// absent or invalid.
func takeTag[T any](f fields, tag Tag, n int,
	with func([]uint128.Uint128) (T, bool)) *T {

	key := tag.value()
	queue, ok := f[key]
	if !ok || len(queue) < n {
		return nil
	}

	value, ok := with(queue[:n])
	if !ok {
		return nil
	}

	if queue = queue[n:]; len(queue) == 0 {
		delete(f, key)
	} else {
		f[key] = queue
	}
	return &value
}

// encode appends one (tag, value) pair per value.
func (t Tag) encode(payload []byte, values ...uint128.Uint128) []byte {
	for _, v := range values {
		payload = AppendVarint(payload, t.value())
		payload = AppendVarint(payload, v)
	}
	return payload
}

// encodeOption appends the pair only when value is set.
func (t Tag) encodeOption(payload []byte, value *uint128.Uint128) []byte {
	if value == nil {
		return payload
	}
	return t.encode(payload, *value)
}

// widen converts an optional field to the wire integer type.
func widen[T any](v *T, f func(T) uint128.Uint128) *uint128.Uint128 {
	if v == nil {
		return nil
	}
	n := f(*v)
	return &n
}

func from64[T ~uint8 | ~uint32 | ~uint64 | ~int32](v T) uint128.Uint128 {
	return uint128.From64(uint64(v))
}
