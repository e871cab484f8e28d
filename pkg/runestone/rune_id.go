package runestone

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
	"strings"

	"lukechampine.com/uint128"
)

// RuneID identifies a rune by the block height and the index within that
// block of the transaction that etched it.
type RuneID struct {
	Block uint64
	Tx    uint32
}

// NewRuneID returns the id for (block, tx). Block zero only holds the id
// 0:0, so a non-zero tx index there is rejected.
func NewRuneID(block uint64, tx uint32) (RuneID, error) {
	if block == 0 && tx > 0 {
		return RuneID{}, runeError(ErrInvalidRuneID,
			fmt.Sprintf("invalid rune id %d:%d", block, tx))
	}
	return RuneID{Block: block, Tx: tx}, nil
}

// Cmp compares ids by block, then by transaction index.
func (id RuneID) Cmp(other RuneID) int {
	if c := cmp.Compare(id.Block, other.Block); c != 0 {
		return c
	}
	return cmp.Compare(id.Tx, other.Tx)
}

// Less reports whether id sorts before other.
func (id RuneID) Less(other RuneID) bool {
	return id.Cmp(other) < 0
}

// Delta returns the (block, tx) deltas that take id to next. The tx delta
// is relative only when both ids share a block; otherwise it is next.Tx.
func (id RuneID) Delta(next RuneID) (uint64, uint32, error) {
	if next.Less(id) {
		return 0, 0, runeError(ErrRuneIDDelta,
			fmt.Sprintf("rune id %s sorts before %s", next, id))
	}

	block := next.Block - id.Block
	if block != 0 {
		return block, next.Tx, nil
	}
	return 0, next.Tx - id.Tx, nil
}

// Next applies the deltas read from an edict to id. It reports false when
// a delta does not fit its field, the result overflows, or the result is
// not a valid id.
func (id RuneID) Next(blockDelta, txDelta uint128.Uint128) (RuneID, bool) {
	delta, ok := toUint64(blockDelta)
	if !ok || delta > math.MaxUint64-id.Block {
		return RuneID{}, false
	}
	block := id.Block + delta

	tx, ok := toUint32(txDelta)
	if !ok {
		return RuneID{}, false
	}
	if delta == 0 {
		if tx > math.MaxUint32-id.Tx {
			return RuneID{}, false
		}
		tx += id.Tx
	}

	next, err := NewRuneID(block, tx)
	if err != nil {
		return RuneID{}, false
	}
	return next, true
}

// String returns the id as BLOCK:TX.
func (id RuneID) String() string {
	return fmt.Sprintf("%d:%d", id.Block, id.Tx)
}

// ParseRuneID parses an id in BLOCK:TX form.
func ParseRuneID(s string) (RuneID, error) {
	blockStr, txStr, found := strings.Cut(s, ":")
	if !found {
		return RuneID{}, runeError(ErrInvalidRuneID,
			fmt.Sprintf("rune id %q has no separator", s))
	}

	block, err := strconv.ParseUint(blockStr, 10, 64)
	if err != nil {
		return RuneID{}, runeError(ErrInvalidRuneID,
			fmt.Sprintf("invalid block in rune id %q: %v", s, err))
	}
	tx, err := strconv.ParseUint(txStr, 10, 32)
	if err != nil {
		return RuneID{}, runeError(ErrInvalidRuneID,
			fmt.Sprintf("invalid tx in rune id %q: %v", s, err))
	}

	return NewRuneID(block, uint32(tx))
}

// MarshalText implements encoding.TextMarshaler.
func (id RuneID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *RuneID) UnmarshalText(text []byte) error {
	parsed, err := ParseRuneID(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
