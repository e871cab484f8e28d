package runestone

import (
	"github.com/btcsuite/btcd/wire"
	"lukechampine.com/uint128"
)

// Edict moves Amount units of rune ID to the transaction output at index
// Output. An amount of zero conventionally means all remaining units.
type Edict struct {
	ID     RuneID
	Amount uint128.Uint128
	Output uint32
}

// edictFromIntegers builds an edict read from the message body. The output
// may equal the output count, which downstream consumers treat as a split
// across every non-OP_RETURN output.
func edictFromIntegers(tx *wire.MsgTx, id RuneID, amount,
	output uint128.Uint128) (Edict, bool) {

	out, ok := toUint32(output)
	if !ok || uint64(out) > uint64(len(tx.TxOut)) {
		return Edict{}, false
	}
	return Edict{ID: id, Amount: amount, Output: out}, true
}
