// Package txload reads bitcoin transactions from the serialized forms accepted
// by the command line: raw bytes, hex, and PSBT in binary or base64 encoding.
package txload

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/wire"
	log "github.com/sirupsen/logrus"
)

// psbtMagic is the binary PSBT prefix, "psbt" followed by 0xff.
var psbtMagic = []byte{0x70, 0x73, 0x62, 0x74, 0xff}

// base64PSBTPrefix is psbtMagic in base64.
const base64PSBTPrefix = "cHNidP8"

// FromHex decodes a hex serialized transaction.
func FromHex(s string) (*wire.MsgTx, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid transaction hex: %w", err)
	}
	return fromRaw(raw)
}

// FromPSBT returns the unsigned transaction of a base64 encoded PSBT.
func FromPSBT(b64 string) (*wire.MsgTx, error) {
	ptx, err := psbt.NewFromRawBytes(strings.NewReader(strings.TrimSpace(b64)), true)
	if err != nil {
		return nil, fmt.Errorf("invalid psbt: %w", err)
	}
	return loaded(ptx.UnsignedTx, "psbt"), nil
}

// FromBytes detects the encoding of data and decodes the transaction it
// holds. Binary and base64 PSBTs are recognised by their magic prefix. Text
// that is valid hex is decoded as a hex transaction, anything else is taken
// to be a raw serialized transaction.
func FromBytes(data []byte) (*wire.MsgTx, error) {
	if bytes.HasPrefix(data, psbtMagic) {
		ptx, err := psbt.NewFromRawBytes(bytes.NewReader(data), false)
		if err != nil {
			return nil, fmt.Errorf("invalid psbt: %w", err)
		}
		return loaded(ptx.UnsignedTx, "psbt"), nil
	}

	text := strings.TrimSpace(string(data))
	if strings.HasPrefix(text, base64PSBTPrefix) {
		return FromPSBT(text)
	}

	if raw, err := hex.DecodeString(text); err == nil && len(raw) > 0 {
		return fromRaw(raw)
	}

	return fromRaw(data)
}

// FromFile reads path and decodes it with FromBytes.
func FromFile(path string) (*wire.MsgTx, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return FromBytes(data)
}

func fromRaw(raw []byte) (*wire.MsgTx, error) {
	tx, err := btcutil.NewTxFromBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction: %w", err)
	}
	return loaded(tx.MsgTx(), "raw"), nil
}

func loaded(tx *wire.MsgTx, source string) *wire.MsgTx {
	log.WithFields(log.Fields{
		"txid":    tx.TxHash().String(),
		"source":  source,
		"outputs": len(tx.TxOut),
	}).Debug("loaded transaction")
	return tx
}
