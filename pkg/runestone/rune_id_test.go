package runestone

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestRuneIDDelta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		from      RuneID
		to        RuneID
		wantBlock uint64
		wantTx    uint32
		wantErr   bool
	}{
		{name: "same block", from: RuneID{1, 2}, to: RuneID{1, 5}, wantTx: 3},
		{name: "next block", from: RuneID{1, 2}, to: RuneID{2, 0}, wantBlock: 1},
		{name: "next block keeps tx", from: RuneID{1, 2}, to: RuneID{4, 7}, wantBlock: 3, wantTx: 7},
		{name: "equal", from: RuneID{3, 3}, to: RuneID{3, 3}},
		{name: "from zero", from: RuneID{}, to: RuneID{840000, 1}, wantBlock: 840000, wantTx: 1},
		{name: "earlier block", from: RuneID{2, 0}, to: RuneID{1, 5}, wantErr: true},
		{name: "earlier tx", from: RuneID{2, 5}, to: RuneID{2, 4}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(tt *testing.T) {
			block, tx, err := tc.from.Delta(tc.to)
			if tc.wantErr {
				require.True(tt, IsErrorCode(err, ErrRuneIDDelta))
				return
			}
			require.NoError(tt, err)
			require.Equal(tt, tc.wantBlock, block)
			require.Equal(tt, tc.wantTx, tx)

			next, ok := tc.from.Next(from64(block), from64(tx))
			require.True(tt, ok)
			require.Equal(tt, tc.to, next)
		})
	}
}

func TestRuneIDNext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		from       RuneID
		blockDelta uint128.Uint128
		txDelta    uint128.Uint128
		want       RuneID
		ok         bool
	}{
		{
			name:       "relative tx",
			from:       RuneID{1, 2},
			blockDelta: uint128.Zero,
			txDelta:    uint128.From64(3),
			want:       RuneID{1, 5},
			ok:         true,
		},
		{
			name:       "absolute tx",
			from:       RuneID{1, 2},
			blockDelta: uint128.From64(1),
			txDelta:    uint128.From64(3),
			want:       RuneID{2, 3},
			ok:         true,
		},
		{
			name:       "block delta wider than u64",
			from:       RuneID{},
			blockDelta: uint128.New(0, 1),
			txDelta:    uint128.Zero,
		},
		{
			name:       "block overflow",
			from:       RuneID{math.MaxUint64, 0},
			blockDelta: uint128.From64(1),
			txDelta:    uint128.Zero,
		},
		{
			name:       "tx wider than u32",
			from:       RuneID{1, 0},
			blockDelta: uint128.From64(1),
			txDelta:    uint128.From64(math.MaxUint32 + 1),
		},
		{
			name:       "tx overflow",
			from:       RuneID{1, math.MaxUint32},
			blockDelta: uint128.Zero,
			txDelta:    uint128.From64(1),
		},
		{
			name:       "tx in block zero",
			from:       RuneID{},
			blockDelta: uint128.Zero,
			txDelta:    uint128.From64(1),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(tt *testing.T) {
			next, ok := tc.from.Next(tc.blockDelta, tc.txDelta)
			require.Equal(tt, tc.ok, ok)
			require.Equal(tt, tc.want, next)
		})
	}
}

func TestRuneIDOrder(t *testing.T) {
	t.Parallel()

	ids := []RuneID{{2, 0}, {1, 5}, {1, 2}, {0, 0}, {2, 1}}
	slices.SortFunc(ids, RuneID.Cmp)
	require.Equal(t, []RuneID{{0, 0}, {1, 2}, {1, 5}, {2, 0}, {2, 1}}, ids)

	require.True(t, RuneID{1, 9}.Less(RuneID{2, 0}))
	require.False(t, RuneID{2, 0}.Less(RuneID{2, 0}))
	require.Zero(t, RuneID{7, 7}.Cmp(RuneID{7, 7}))
}

func TestParseRuneID(t *testing.T) {
	t.Parallel()

	id, err := ParseRuneID("840000:3")
	require.NoError(t, err)
	require.Equal(t, RuneID{Block: 840000, Tx: 3}, id)
	require.Equal(t, "840000:3", id.String())

	id, err = ParseRuneID("0:0")
	require.NoError(t, err)
	require.Equal(t, RuneID{}, id)

	for _, input := range []string{"", "1", "1:", ":1", "a:1", "1:b", "0:1",
		"1:4294967296", "-1:0"} {

		_, err := ParseRuneID(input)
		require.True(t, IsErrorCode(err, ErrInvalidRuneID), input)
	}

	var decoded RuneID
	require.NoError(t, decoded.UnmarshalText([]byte("1:2")))
	require.Equal(t, RuneID{1, 2}, decoded)

	text, err := decoded.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "1:2", string(text))
}

func TestNewRuneID(t *testing.T) {
	t.Parallel()

	_, err := NewRuneID(0, 1)
	require.True(t, IsErrorCode(err, ErrInvalidRuneID))

	id, err := NewRuneID(0, 0)
	require.NoError(t, err)
	require.Equal(t, RuneID{}, id)

	id, err = NewRuneID(5, 1)
	require.NoError(t, err)
	require.Equal(t, RuneID{5, 1}, id)
}
