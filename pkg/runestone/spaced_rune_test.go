package runestone

import (
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestSpacedRuneString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rune    string
		spacers uint32
		want    string
	}{
		{name: "no spacers", rune: "ABC", spacers: 0, want: "ABC"},
		{name: "first", rune: "ABC", spacers: 0b1, want: "A•BC"},
		{name: "second", rune: "ABC", spacers: 0b10, want: "AB•C"},
		{name: "both", rune: "ABC", spacers: 0b11, want: "A•B•C"},
		{name: "past the end", rune: "ABC", spacers: 0b100, want: "ABC"},
		{name: "single letter", rune: "A", spacers: MaxSpacers, want: "A"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(tt *testing.T) {
			r, err := ParseRune(tc.rune)
			require.NoError(tt, err)
			require.Equal(tt, tc.want, SpacedRune{Rune: r, Spacers: tc.spacers}.String())
		})
	}
}

func TestParseSpacedRune(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		rune    uint128.Uint128
		spacers uint32
		code    ErrorCode
		wantErr bool
	}{
		{name: "plain", input: "A", rune: uint128.Zero},
		{name: "dot", input: "A.B", rune: uint128.From64(27), spacers: 0b1},
		{name: "bullet", input: "A•B", rune: uint128.From64(27), spacers: 0b1},
		{name: "mixed", input: "A.B•C", rune: uint128.From64(730), spacers: 0b11},
		{name: "leading", input: ".A", wantErr: true, code: ErrLeadingSpacer},
		{name: "double", input: "A..B", wantErr: true, code: ErrDoubleSpacer},
		{name: "double bullet", input: "A.•B", wantErr: true, code: ErrDoubleSpacer},
		{name: "trailing", input: "A.", wantErr: true, code: ErrTrailingSpacer},
		{name: "empty", input: "", wantErr: true, code: ErrTrailingSpacer},
		{name: "lowercase", input: "a", wantErr: true, code: ErrInvalidCharacter},
		{name: "space", input: "A B", wantErr: true, code: ErrInvalidCharacter},
		{name: "range", input: "BCGDENLQRQWDSLRUGSNLBTMFIJAW", wantErr: true, code: ErrNameRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(tt *testing.T) {
			parsed, err := ParseSpacedRune(tc.input)
			if tc.wantErr {
				require.True(tt, IsErrorCode(err, tc.code),
					"got %v, want %v", err, tc.code)
				return
			}
			require.NoError(tt, err)
			require.Equal(tt, tc.rune, parsed.Rune.N())
			require.Equal(tt, tc.spacers, parsed.Spacers)
		})
	}
}

func TestSpacedRuneText(t *testing.T) {
	t.Parallel()

	var s SpacedRune
	require.NoError(t, s.UnmarshalText([]byte("UNCOMMON.GOODS")))
	require.Equal(t, uint32(1<<7), s.Spacers)

	text, err := s.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "UNCOMMON•GOODS", string(text))
}
