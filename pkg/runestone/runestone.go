// Package runestone implements the Runestone message format: the payload of
// an OP_RETURN output that etches, mints and transfers runes.
//
// A runestone output script is OP_RETURN, the magic number OP_13, and any
// number of data pushes. The concatenated pushes are a sequence of 128-bit
// LEB128 varints. Integers are read as (tag, value) pairs until the body
// tag, after which every group of four integers is an edict whose rune id
// is delta encoded against the previous edict.
//
// Deciphering never fails. A transaction is either not a runestone (nil), a
// *Runestone, or a *Cenotaph when the payload is malformed in any way. The
// classification is consensus critical: every input must map to the same
// outcome in every implementation, so all arithmetic on untrusted integers
// is checked and every failure maps to a Flaw.
package runestone

import (
	"fmt"
	"math"
	"slices"
	"unicode/utf8"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"lukechampine.com/uint128"
)

const (
	// MagicNumber is the opcode that follows OP_RETURN in a runestone
	// output.
	MagicNumber = txscript.OP_13

	// CommitConfirmations is the number of confirmations the commit
	// transaction of a named etching needs before the reveal.
	CommitConfirmations = 6
)

// Runestone is a well formed runestone message.
type Runestone struct {
	Edicts  []Edict
	Etching *Etching
	Mint    *RuneID
	Pointer *uint32
}

// scriptPayload is the data carried by a runestone output, or the flaw that made
// the output unreadable.
type scriptPayload struct {
	data []byte
	flaw Flaw
}

// Encipher returns the output script carrying the runestone. Edicts are
// sorted by rune id before being delta encoded.
func (r *Runestone) Encipher() ([]byte, error) {
	var payload []byte

	if e := r.Etching; e != nil {
		var flags uint128.Uint128
		FlagEtching.set(&flags)
		if e.Terms != nil {
			FlagTerms.set(&flags)
		}
		if e.Turbo {
			FlagTurbo.set(&flags)
		}
		payload = TagFlags.encode(payload, flags)

		payload = TagRune.encodeOption(payload, widen(e.Rune, Rune.N))
		payload = TagDivisibility.encodeOption(payload,
			widen(e.Divisibility, from64[uint8]))
		payload = TagSpacers.encodeOption(payload,
			widen(e.Spacers, from64[uint32]))
		payload = TagSymbol.encodeOption(payload,
			widen(e.Symbol, from64[rune]))
		payload = TagPremine.encodeOption(payload, e.Premine)

		if t := e.Terms; t != nil {
			payload = TagAmount.encodeOption(payload, t.Amount)
			payload = TagCap.encodeOption(payload, t.Cap)
			payload = TagHeightStart.encodeOption(payload,
				widen(t.HeightStart, from64[uint64]))
			payload = TagHeightEnd.encodeOption(payload,
				widen(t.HeightEnd, from64[uint64]))
			payload = TagOffsetStart.encodeOption(payload,
				widen(t.OffsetStart, from64[uint64]))
			payload = TagOffsetEnd.encodeOption(payload,
				widen(t.OffsetEnd, from64[uint64]))
		}
	}

	if r.Mint != nil {
		payload = TagMint.encode(payload, from64(r.Mint.Block),
			from64(r.Mint.Tx))
	}

	payload = TagPointer.encodeOption(payload, widen(r.Pointer, from64[uint32]))

	if len(r.Edicts) > 0 {
		payload = AppendVarint(payload, TagBody.value())

		edicts := slices.Clone(r.Edicts)
		slices.SortStableFunc(edicts, func(a, b Edict) int {
			return a.ID.Cmp(b.ID)
		})

		var previous RuneID
		for _, edict := range edicts {
			block, tx, err := previous.Delta(edict.ID)
			if err != nil {
				return nil, runeError(ErrEdictOrder,
					fmt.Sprintf("cannot encode edict for %s: %v",
						edict.ID, err))
			}
			payload = AppendVarint(payload, from64(block))
			payload = AppendVarint(payload, from64(tx))
			payload = AppendVarint(payload, edict.Amount)
			payload = AppendVarint(payload, from64(edict.Output))
			previous = edict.ID
		}
	}

	script := []byte{txscript.OP_RETURN, MagicNumber}
	for chunk := range slices.Chunk(payload, txscript.MaxScriptElementSize) {
		script = appendPush(script, chunk)
	}
	return script, nil
}

// appendPush appends data with the smallest explicit push opcode. Small
// integer opcodes are never used since they do not decode as data pushes.
func appendPush(script, data []byte) []byte {
	switch n := len(data); {
	case n < txscript.OP_PUSHDATA1:
		script = append(script, byte(n))
	case n <= math.MaxUint8:
		script = append(script, txscript.OP_PUSHDATA1, byte(n))
	default:
		script = append(script, txscript.OP_PUSHDATA2, byte(n), byte(n>>8))
	}
	return append(script, data...)
}

// Decipher classifies tx. It returns nil when no output is a runestone, a
// *Cenotaph when the first runestone output is malformed, and a *Runestone
// otherwise.
func Decipher(tx *wire.MsgTx) Artifact {
	p := findPayload(tx)
	if p == nil {
		return nil
	}
	if p.flaw != flawNone {
		return &Cenotaph{Flaw: p.flaw}
	}

	integers, err := decodeIntegers(p.data)
	if err != nil {
		return &Cenotaph{Flaw: FlawVarint}
	}

	msg := messageFromIntegers(tx, integers)
	flaw := msg.flaw

	var flags uint128.Uint128
	if f := takeTag(msg.fields, TagFlags, 1, first); f != nil {
		flags = *f
	}

	var etching *Etching
	if FlagEtching.take(&flags) {
		etching = takeEtching(msg.fields, &flags)
	}

	mint := takeTag(msg.fields, TagMint, 2,
		func(v []uint128.Uint128) (RuneID, bool) {
			block, ok := toUint64(v[0])
			if !ok {
				return RuneID{}, false
			}
			index, ok := toUint32(v[1])
			if !ok {
				return RuneID{}, false
			}
			id, err := NewRuneID(block, index)
			return id, err == nil
		})

	pointer := takeTag(msg.fields, TagPointer, 1,
		func(v []uint128.Uint128) (uint32, bool) {
			pointer, ok := toUint32(v[0])
			return pointer, ok && uint64(pointer) < uint64(len(tx.TxOut))
		})

	if etching != nil {
		if _, ok := etching.Supply(); !ok {
			flaw.record(FlawSupplyOverflow)
		}
	}

	if !flags.IsZero() {
		flaw.record(FlawUnrecognizedFlag)
	}

	if msg.fields.hasEvenTag() {
		flaw.record(FlawUnrecognizedEvenTag)
	}

	if flaw != flawNone {
		cenotaph := &Cenotaph{Flaw: flaw, Mint: mint}
		if etching != nil {
			cenotaph.Etching = etching.Rune
		}
		return cenotaph
	}

	return &Runestone{
		Edicts:  msg.edicts,
		Etching: etching,
		Mint:    mint,
		Pointer: pointer,
	}
}

// takeEtching reads the etching fields. Terms and turbo are only read from
// flags here, so they count as unrecognized without the etching flag.
func takeEtching(f fields, flags *uint128.Uint128) *Etching {
	etching := &Etching{
		Divisibility: takeTag(f, TagDivisibility, 1,
			func(v []uint128.Uint128) (uint8, bool) {
				d, ok := toUint8(v[0])
				return d, ok && d <= MaxDivisibility
			}),
		Premine: takeTag(f, TagPremine, 1, first),
		Rune: takeTag(f, TagRune, 1, func(v []uint128.Uint128) (Rune, bool) {
			return Rune(v[0]), true
		}),
		Spacers: takeTag(f, TagSpacers, 1,
			func(v []uint128.Uint128) (uint32, bool) {
				s, ok := toUint32(v[0])
				return s, ok && s <= MaxSpacers
			}),
		Symbol: takeTag(f, TagSymbol, 1,
			func(v []uint128.Uint128) (rune, bool) {
				c, ok := toUint32(v[0])
				if !ok || c > utf8.MaxRune {
					return 0, false
				}
				return rune(c), utf8.ValidRune(rune(c))
			}),
	}

	if FlagTerms.take(flags) {
		etching.Terms = &Terms{
			Cap:         takeTag(f, TagCap, 1, first),
			HeightStart: takeTag(f, TagHeightStart, 1, firstUint64),
			HeightEnd:   takeTag(f, TagHeightEnd, 1, firstUint64),
			Amount:      takeTag(f, TagAmount, 1, first),
			OffsetStart: takeTag(f, TagOffsetStart, 1, firstUint64),
			OffsetEnd:   takeTag(f, TagOffsetEnd, 1, firstUint64),
		}
	}

	etching.Turbo = FlagTurbo.take(flags)

	return etching
}

func first(v []uint128.Uint128) (uint128.Uint128, bool) {
	return v[0], true
}

func firstUint64(v []uint128.Uint128) (uint64, bool) {
	return toUint64(v[0])
}

// findPayload returns the payload of the first output that starts with
// OP_RETURN and the magic number, or nil if there is none. Scripts that fail
// to parse before the magic number are skipped, since OP_RETURN outputs may
// hold anything.
func findPayload(tx *wire.MsgTx) *scriptPayload {
	for _, out := range tx.TxOut {
		tokenizer := txscript.MakeScriptTokenizer(0, out.PkScript)

		if !tokenizer.Next() || tokenizer.Opcode() != txscript.OP_RETURN {
			continue
		}
		if !tokenizer.Next() || tokenizer.Opcode() != MagicNumber {
			continue
		}

		var data []byte
		for tokenizer.Next() {
			if tokenizer.Opcode() > txscript.OP_PUSHDATA4 {
				return &scriptPayload{flaw: FlawOpcode}
			}
			data = append(data, tokenizer.Data()...)
		}
		if tokenizer.Err() != nil {
			return &scriptPayload{flaw: FlawInvalidScript}
		}

		return &scriptPayload{data: data}
	}

	return nil
}
