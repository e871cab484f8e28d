// Package render turns deciphered artifacts into printable documents.
package render

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ArkLabsHQ/runestone/internal/config"
	"github.com/ArkLabsHQ/runestone/pkg/runestone"
	"github.com/btcsuite/btcd/wire"
	"github.com/fxamacker/cbor/v2"
	"lukechampine.com/uint128"
)

// Kinds of a deciphered transaction.
const (
	KindNone      = "none"
	KindRunestone = "runestone"
	KindCenotaph  = "cenotaph"
)

// Artifact is the printable form of a deciphered transaction. 128-bit
// amounts are rendered as decimal strings.
type Artifact struct {
	TxID      string     `json:"txid"`
	Kind      string     `json:"kind"`
	Runestone *Runestone `json:"runestone,omitempty"`
	Cenotaph  *Cenotaph  `json:"cenotaph,omitempty"`
}

// Runestone is the printable form of a valid runestone.
type Runestone struct {
	Edicts  []Edict  `json:"edicts"`
	Etching *Etching `json:"etching,omitempty"`
	Mint    string   `json:"mint,omitempty"`
	Pointer *uint32  `json:"pointer,omitempty"`
}

// Edict is the printable form of a runestone.Edict.
type Edict struct {
	ID     string `json:"id"`
	Amount string `json:"amount"`
	Output uint32 `json:"output"`
}

// Etching is the printable form of an etching. Rune is the spaced name and
// Supply the total the etching can ever create.
type Etching struct {
	Divisibility *uint8  `json:"divisibility,omitempty"`
	Premine      string  `json:"premine,omitempty"`
	Rune         string  `json:"rune,omitempty"`
	Spacers      *uint32 `json:"spacers,omitempty"`
	Symbol       string  `json:"symbol,omitempty"`
	Terms        *Terms  `json:"terms,omitempty"`
	Turbo        bool    `json:"turbo"`
	Supply       string  `json:"supply,omitempty"`
}

// Terms is the printable form of runestone.Terms.
type Terms struct {
	Amount      string  `json:"amount,omitempty"`
	Cap         string  `json:"cap,omitempty"`
	HeightStart *uint64 `json:"height_start,omitempty"`
	HeightEnd   *uint64 `json:"height_end,omitempty"`
	OffsetStart *uint64 `json:"offset_start,omitempty"`
	OffsetEnd   *uint64 `json:"offset_end,omitempty"`
}

// Cenotaph is the printable form of a malformed runestone.
type Cenotaph struct {
	Flaw    string `json:"flaw"`
	Mint    string `json:"mint,omitempty"`
	Etching string `json:"etching,omitempty"`
}

// NewArtifact builds the printable form of the artifact deciphered from tx.
// A nil artifact renders as KindNone.
func NewArtifact(tx *wire.MsgTx, artifact runestone.Artifact) *Artifact {
	out := &Artifact{
		TxID: tx.TxHash().String(),
		Kind: KindNone,
	}

	switch a := artifact.(type) {
	case *runestone.Runestone:
		out.Kind = KindRunestone
		out.Runestone = newRunestone(a)
	case *runestone.Cenotaph:
		out.Kind = KindCenotaph
		out.Cenotaph = &Cenotaph{
			Flaw:    a.Flaw.String(),
			Mint:    idString(a.Mint),
			Etching: stringer(a.Etching),
		}
	}

	return out
}

func newRunestone(r *runestone.Runestone) *Runestone {
	out := &Runestone{
		Edicts:  make([]Edict, 0, len(r.Edicts)),
		Mint:    idString(r.Mint),
		Pointer: r.Pointer,
	}

	for _, e := range r.Edicts {
		out.Edicts = append(out.Edicts, Edict{
			ID:     e.ID.String(),
			Amount: e.Amount.String(),
			Output: e.Output,
		})
	}

	if e := r.Etching; e != nil {
		out.Etching = &Etching{
			Divisibility: e.Divisibility,
			Premine:      stringer(e.Premine),
			Spacers:      e.Spacers,
			Turbo:        e.Turbo,
		}

		if e.Rune != nil {
			spaced := runestone.SpacedRune{Rune: *e.Rune}
			if e.Spacers != nil {
				spaced.Spacers = *e.Spacers
			}
			out.Etching.Rune = spaced.String()
		}
		if e.Symbol != nil {
			out.Etching.Symbol = string(*e.Symbol)
		}
		if supply, ok := e.Supply(); ok {
			out.Etching.Supply = supply.String()
		}

		if t := e.Terms; t != nil {
			out.Etching.Terms = &Terms{
				Amount:      stringer(t.Amount),
				Cap:         stringer(t.Cap),
				HeightStart: t.HeightStart,
				HeightEnd:   t.HeightEnd,
				OffsetStart: t.OffsetStart,
				OffsetEnd:   t.OffsetEnd,
			}
		}
	}

	return out
}

// Name is the printable form of a rune name and its number.
type Name struct {
	Name       string  `json:"name"`
	Number     string  `json:"number"`
	Spacers    uint32  `json:"spacers,omitempty"`
	Reserved   bool    `json:"reserved,omitempty"`
	Commitment string  `json:"commitment"`
	Height     *uint32 `json:"height,omitempty"`
}

// NewName returns the printable form of spaced.
func NewName(spaced runestone.SpacedRune) Name {
	return Name{
		Name:       spaced.String(),
		Number:     spaced.Rune.N().String(),
		Spacers:    spaced.Spacers,
		Reserved:   spaced.Rune.IsReserved(),
		Commitment: hex.EncodeToString(spaced.Rune.Commitment()),
	}
}

func idString(id *runestone.RuneID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func stringer[T uint128.Uint128 | runestone.Rune](v *T) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(*v)
}

// Encode writes v to w, indented JSON for config.FormatJSON and hex encoded
// deterministic CBOR for config.FormatCBOR.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)

	case config.FormatCBOR:
		em, err := cbor.EncOptions{Sort: cbor.SortCoreDeterministic}.EncMode()
		if err != nil {
			return fmt.Errorf("invalid cbor options: %w", err)
		}
		data, err := em.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode cbor: %w", err)
		}
		_, err = fmt.Fprintln(w, hex.EncodeToString(data))
		return err

	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
