package runestone

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of error returned by the user-facing parsers of
// this package. Errors met while deciphering on-chain data are never returned
// to the caller; they are classified as a Flaw instead.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrInvalidCharacter is returned when a rune name contains a character
	// outside of A-Z, or a spaced name contains an unsupported separator.
	ErrInvalidCharacter ErrorCode = iota

	// ErrNameRange is returned when a rune name does not fit in 128 bits.
	ErrNameRange

	// ErrLeadingSpacer is returned when a spaced name starts with a spacer.
	ErrLeadingSpacer

	// ErrDoubleSpacer is returned when two spacers follow each other.
	ErrDoubleSpacer

	// ErrTrailingSpacer is returned when a spaced name ends with a spacer.
	ErrTrailingSpacer

	// ErrInvalidRuneID is returned when a rune id is malformed, or names a
	// non-zero transaction index in block zero.
	ErrInvalidRuneID

	// ErrRuneIDDelta is returned when a delta is requested against an id
	// that sorts after the target.
	ErrRuneIDDelta

	// ErrVarintOverlong is returned when a varint has more than 19 groups.
	ErrVarintOverlong

	// ErrVarintOverflow is returned when a varint does not fit in 128 bits.
	ErrVarintOverflow

	// ErrVarintUnterminated is returned when the input ends in the middle of
	// a varint.
	ErrVarintUnterminated

	// ErrEdictOrder is returned when edicts cannot be delta encoded.
	ErrEdictOrder

	// numErrorCodes is the maximum error code number used in tests.  This
	// entry MUST be the last entry in the enum.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidCharacter:   "ErrInvalidCharacter",
	ErrNameRange:          "ErrNameRange",
	ErrLeadingSpacer:      "ErrLeadingSpacer",
	ErrDoubleSpacer:       "ErrDoubleSpacer",
	ErrTrailingSpacer:     "ErrTrailingSpacer",
	ErrInvalidRuneID:      "ErrInvalidRuneID",
	ErrRuneIDDelta:        "ErrRuneIDDelta",
	ErrVarintOverlong:     "ErrVarintOverlong",
	ErrVarintOverflow:     "ErrVarintOverflow",
	ErrVarintUnterminated: "ErrVarintUnterminated",
	ErrEdictOrder:         "ErrEdictOrder",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies an error returned while parsing rune names, ids or
// varints. The caller can use type assertions or IsErrorCode to access the
// ErrorCode field and ascertain the specific reason for the failure.
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// runeError creates an Error given a set of arguments.
func runeError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether or not the provided error is a package error
// with the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	var rerr Error
	return errors.As(err, &rerr) && rerr.ErrorCode == c
}
