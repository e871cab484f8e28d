package runestone

import (
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestTagParity(t *testing.T) {
	t.Parallel()

	mandatory := []Tag{TagBody, TagFlags, TagRune, TagPremine, TagCap,
		TagAmount, TagHeightStart, TagHeightEnd, TagOffsetStart,
		TagOffsetEnd, TagMint, TagPointer, TagCenotaph}
	for _, tag := range mandatory {
		require.Zero(t, tag%2, "tag %d", tag)
	}

	advisory := []Tag{TagDivisibility, TagSpacers, TagSymbol, TagNop}
	for _, tag := range advisory {
		require.Equal(t, Tag(1), tag%2, "tag %d", tag)
	}
}

func TestTakeTag(t *testing.T) {
	t.Parallel()

	f := fields{
		TagMint.value(): {uint128.From64(1), uint128.From64(2), uint128.From64(3)},
	}

	id := takeTag(f, TagMint, 2, func(v []uint128.Uint128) (RuneID, bool) {
		return RuneID{Block: v[0].Lo, Tx: uint32(v[1].Lo)}, true
	})
	require.Equal(t, &RuneID{Block: 1, Tx: 2}, id)
	require.Equal(t, []uint128.Uint128{uint128.From64(3)}, f[TagMint.value()])

	// A short queue is absent and stays queued.
	id = takeTag(f, TagMint, 2, func(v []uint128.Uint128) (RuneID, bool) {
		return RuneID{}, true
	})
	require.Nil(t, id)
	require.Len(t, f[TagMint.value()], 1)
	require.True(t, f.hasEvenTag())

	// A failed conversion leaves the values in place.
	rejected := takeTag(f, TagMint, 1, func(v []uint128.Uint128) (uint64, bool) {
		return 0, false
	})
	require.Nil(t, rejected)
	require.Len(t, f[TagMint.value()], 1)

	// The tag disappears with its last value.
	last := takeTag(f, TagMint, 1, first)
	require.Equal(t, uint128.From64(3), *last)
	require.NotContains(t, f, TagMint.value())
	require.False(t, f.hasEvenTag())

	// Missing tags are absent.
	require.Nil(t, takeTag(f, TagPointer, 1, first))
}

func TestFieldsHasEvenTag(t *testing.T) {
	t.Parallel()

	f := fields{
		TagNop.value():       {uint128.Zero},
		uint128.From64(1001): {uint128.Zero},
		uint128.New(1, 1):    {uint128.Zero},
	}
	require.False(t, f.hasEvenTag())

	f[uint128.New(0, 1)] = []uint128.Uint128{uint128.Zero}
	require.True(t, f.hasEvenTag())
}

func TestTagEncode(t *testing.T) {
	t.Parallel()

	payload := TagMint.encode(nil, uint128.From64(1), uint128.From64(300))
	require.Equal(t, []byte{20, 1, 20, 0xac, 0x02}, payload)

	payload = TagPointer.encodeOption(payload, nil)
	require.Equal(t, []byte{20, 1, 20, 0xac, 0x02}, payload)

	v := uint128.From64(7)
	payload = TagPointer.encodeOption(payload, &v)
	require.Equal(t, []byte{20, 1, 20, 0xac, 0x02, 22, 7}, payload)
}

func TestFlag(t *testing.T) {
	t.Parallel()

	var flags uint128.Uint128
	FlagEtching.set(&flags)
	FlagTurbo.set(&flags)
	require.Equal(t, uint128.From64(0b101), flags)

	require.False(t, FlagTerms.take(&flags))
	require.True(t, FlagEtching.take(&flags))
	require.False(t, FlagEtching.take(&flags))
	require.Equal(t, uint128.From64(0b100), flags)
	require.True(t, FlagTurbo.take(&flags))
	require.True(t, flags.IsZero())

	FlagCenotaph.set(&flags)
	require.Equal(t, uint128.New(0, 1<<63), flags)
	require.True(t, FlagCenotaph.take(&flags))
	require.True(t, flags.IsZero())
}
