package runestone

import "fmt"

// Flaw is the reason a runestone was classified as a cenotaph.
type Flaw uint8

const (
	// flawNone is the zero value, meaning no flaw was found yet.
	flawNone Flaw = iota
	FlawEdictOutput
	FlawEdictRuneID
	FlawInvalidScript
	FlawOpcode
	FlawSupplyOverflow
	FlawTrailingIntegers
	FlawTruncatedField
	FlawUnrecognizedEvenTag
	FlawUnrecognizedFlag
	FlawVarint
)

var flawStrings = map[Flaw]string{
	FlawEdictOutput:         "edict output greater than transaction output count",
	FlawEdictRuneID:         "invalid rune ID in edict",
	FlawInvalidScript:       "invalid script in OP_RETURN",
	FlawOpcode:              "non-pushdata opcode in OP_RETURN",
	FlawSupplyOverflow:      "supply overflows u128",
	FlawTrailingIntegers:    "trailing integers in body",
	FlawTruncatedField:      "field with missing value",
	FlawUnrecognizedEvenTag: "unrecognized even tag",
	FlawUnrecognizedFlag:    "unrecognized field",
	FlawVarint:              "invalid varint",
}

// String returns the description of the flaw.
func (f Flaw) String() string {
	if s, ok := flawStrings[f]; ok {
		return s
	}
	return fmt.Sprintf("unknown flaw (%d)", uint8(f))
}

// MarshalText implements encoding.TextMarshaler.
func (f Flaw) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// record keeps the first flaw found; later ones are dropped.
func (f *Flaw) record(flaw Flaw) {
	if *f == flawNone {
		*f = flaw
	}
}
