package main

import (
	"fmt"
	"io"

	"github.com/ArkLabsHQ/runestone/internal/render"
	"github.com/ArkLabsHQ/runestone/internal/txload"
	"github.com/ArkLabsHQ/runestone/pkg/runestone"
	"github.com/btcsuite/btcd/wire"
	log "github.com/sirupsen/logrus"
)

func cmdDecode(args []string, out io.Writer) error {
	fs := newFlagSet("decode")
	txHex := fs.String("tx", "", "hex serialized transaction")
	b64 := fs.String("psbt", "", "base64 encoded psbt")
	file := fs.String("file", "", "file holding a raw, hex or psbt transaction")

	cfg, err := parse(fs, args)
	if err != nil {
		return err
	}

	if *txHex == "" && fs.NArg() == 1 {
		*txHex = fs.Arg(0)
	}

	tx, err := loadTx(*txHex, *b64, *file)
	if err != nil {
		return err
	}

	artifact := runestone.Decipher(tx)
	view := render.NewArtifact(tx, artifact)

	fields := log.Fields{"txid": view.TxID, "outputs": len(tx.TxOut)}
	if c, ok := artifact.(*runestone.Cenotaph); ok {
		fields["flaw"] = c.Flaw.String()
	}
	log.WithFields(fields).Infof("deciphered %s", view.Kind)

	return render.Encode(out, cfg.Format, view)
}

func loadTx(txHex, b64, file string) (*wire.MsgTx, error) {
	sources := 0
	for _, s := range []string{txHex, b64, file} {
		if s != "" {
			sources++
		}
	}
	if sources != 1 {
		return nil, fmt.Errorf("exactly one of --tx, --psbt or --file is required")
	}

	switch {
	case txHex != "":
		return txload.FromHex(txHex)
	case b64 != "":
		return txload.FromPSBT(b64)
	default:
		return txload.FromFile(file)
	}
}
