package runestone

import (
	"testing"

	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestMessageFromIntegers(t *testing.T) {
	t.Parallel()

	tx := testTx(2, nil)

	tests := []struct {
		name     string
		integers []uint128.Uint128
		flaw     Flaw
		edicts   []Edict
		fields   fields
	}{
		{
			name:   "empty",
			fields: fields{},
		},
		{
			name:     "fields only",
			integers: ints(2, 1, 4, 5, 2, 3),
			fields: fields{
				TagFlags.value(): ints(1, 3),
				TagRune.value():  ints(5),
			},
		},
		{
			name:     "truncated field",
			integers: ints(2, 1, 4),
			flaw:     FlawTruncatedField,
			fields: fields{
				TagFlags.value(): ints(1),
			},
		},
		{
			name:     "edicts are delta encoded",
			integers: ints(0, 1, 2, 10, 0, 0, 3, 20, 1, 2, 0, 30, 2),
			edicts: []Edict{
				{ID: RuneID{1, 2}, Amount: uint128.From64(10), Output: 0},
				{ID: RuneID{1, 5}, Amount: uint128.From64(20), Output: 1},
				{ID: RuneID{3, 0}, Amount: uint128.From64(30), Output: 2},
			},
			fields: fields{},
		},
		{
			name:     "fields before body",
			integers: ints(22, 1, 0, 1, 1, 5, 0),
			edicts: []Edict{
				{ID: RuneID{1, 1}, Amount: uint128.From64(5), Output: 0},
			},
			fields: fields{
				TagPointer.value(): ints(1),
			},
		},
		{
			name:     "body tag in value position",
			integers: ints(22, 0),
			fields: fields{
				TagPointer.value(): ints(0),
			},
		},
		{
			name:     "trailing integers keep parsed edicts",
			integers: ints(0, 1, 1, 5, 0, 1, 1),
			flaw:     FlawTrailingIntegers,
			edicts: []Edict{
				{ID: RuneID{1, 1}, Amount: uint128.From64(5), Output: 0},
			},
			fields: fields{},
		},
		{
			name:     "invalid edict id",
			integers: ints(0, 0, 1, 5, 0),
			flaw:     FlawEdictRuneID,
			fields:   fields{},
		},
		{
			name:     "edict output past split",
			integers: ints(0, 1, 1, 5, 3),
			flaw:     FlawEdictOutput,
			fields:   fields{},
		},
		{
			name:     "edict output split",
			integers: ints(0, 1, 1, 5, 2),
			edicts: []Edict{
				{ID: RuneID{1, 1}, Amount: uint128.From64(5), Output: 2},
			},
			fields: fields{},
		},
		{
			name:     "first edict flaw stops the body",
			integers: ints(0, 1, 1, 5, 0, 0, 0, 5, 9, 1, 1, 5, 0),
			flaw:     FlawEdictOutput,
			edicts: []Edict{
				{ID: RuneID{1, 1}, Amount: uint128.From64(5), Output: 0},
			},
			fields: fields{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(tt *testing.T) {
			msg := messageFromIntegers(tx, tc.integers)
			require.Equal(tt, tc.flaw, msg.flaw)
			require.Equal(tt, tc.edicts, msg.edicts)
			require.Equal(tt, tc.fields, msg.fields)
		})
	}
}

func TestMessageEdictOutputUsesOutputCount(t *testing.T) {
	t.Parallel()

	integers := ints(0, 1, 1, 5, 4)

	msg := messageFromIntegers(testTx(4, nil), integers)
	require.Equal(t, flawNone, msg.flaw)
	require.Len(t, msg.edicts, 1)

	msg = messageFromIntegers(&wire.MsgTx{}, integers)
	require.Equal(t, FlawEdictOutput, msg.flaw)
	require.Empty(t, msg.edicts)
}
