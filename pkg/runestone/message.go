package runestone

import (
	"github.com/btcsuite/btcd/wire"
	"lukechampine.com/uint128"
)

// message is the untyped form of a runestone: the queued field values, the
// edicts of the body and the first flaw met while reading them.
type message struct {
	flaw   Flaw
	edicts []Edict
	fields fields
}

// messageFromIntegers splits the decoded integers into (tag, value) pairs
// up to the body tag, and groups of four edict integers after it.
func messageFromIntegers(tx *wire.MsgTx, payload []uint128.Uint128) message {
	msg := message{fields: make(fields)}

	for i := 0; i < len(payload); i += 2 {
		tag := payload[i]

		if tag.Equals(TagBody.value()) {
			msg.readBody(tx, payload[i+1:])
			break
		}

		if i+1 >= len(payload) {
			msg.flaw.record(FlawTruncatedField)
			break
		}

		msg.fields[tag] = append(msg.fields[tag], payload[i+1])
	}

	return msg
}

// readBody reads edicts, each id delta encoded against the previous one.
// Reading stops at the first malformed edict.
func (m *message) readBody(tx *wire.MsgTx, body []uint128.Uint128) {
	var id RuneID
	for len(body) > 0 {
		if len(body) < 4 {
			m.flaw.record(FlawTrailingIntegers)
			return
		}

		next, ok := id.Next(body[0], body[1])
		if !ok {
			m.flaw.record(FlawEdictRuneID)
			return
		}

		edict, ok := edictFromIntegers(tx, next, body[2], body[3])
		if !ok {
			m.flaw.record(FlawEdictOutput)
			return
		}

		id = next
		m.edicts = append(m.edicts, edict)
		body = body[4:]
	}
}
