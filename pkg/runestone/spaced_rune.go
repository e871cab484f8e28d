package runestone

import (
	"fmt"
	"math/bits"
	"strings"
)

// spacer is the separator printed between spaced letters. A '.' is accepted
// as an alternative when parsing.
const spacer = '•'

// SpacedRune is a rune name together with the spacers bitmask controlling
// where separators are displayed. Bit i set means a spacer follows letter i.
type SpacedRune struct {
	Rune    Rune
	Spacers uint32
}

// String returns the name with a spacer after every flagged letter except
// the last one.
func (s SpacedRune) String() string {
	name := s.Rune.String()

	var b strings.Builder
	for i := 0; i < len(name); i++ {
		b.WriteByte(name[i])
		if i < len(name)-1 && i < 32 && s.Spacers&(1<<uint(i)) != 0 {
			b.WriteRune(spacer)
		}
	}
	return b.String()
}

// ParseSpacedRune parses a name with optional '.' or '•' spacers.
func ParseSpacedRune(s string) (SpacedRune, error) {
	var (
		name    strings.Builder
		spacers uint32
	)
	for _, c := range s {
		switch {
		case c >= 'A' && c <= 'Z':
			name.WriteRune(c)

		case c == '.' || c == spacer:
			if name.Len() == 0 {
				return SpacedRune{}, runeError(ErrLeadingSpacer,
					"leading spacer")
			}
			position := name.Len() - 1
			if position >= 32 {
				return SpacedRune{}, runeError(ErrNameRange,
					"spacer beyond the 32nd letter")
			}
			flag := uint32(1) << uint(position)
			if spacers&flag != 0 {
				return SpacedRune{}, runeError(ErrDoubleSpacer,
					"double spacer")
			}
			spacers |= flag

		default:
			return SpacedRune{}, runeError(ErrInvalidCharacter,
				fmt.Sprintf("invalid character `%c`", c))
		}
	}

	if 32-bits.LeadingZeros32(spacers) >= name.Len() {
		return SpacedRune{}, runeError(ErrTrailingSpacer, "trailing spacer")
	}

	r, err := ParseRune(name.String())
	if err != nil {
		return SpacedRune{}, err
	}
	return SpacedRune{Rune: r, Spacers: spacers}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (s SpacedRune) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SpacedRune) UnmarshalText(text []byte) error {
	parsed, err := ParseSpacedRune(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
