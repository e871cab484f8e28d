package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/ArkLabsHQ/runestone/internal/document"
	log "github.com/sirupsen/logrus"
)

func cmdEncode(args []string, out io.Writer) error {
	fs := newFlagSet("encode")
	file := fs.String("file", "", "yaml, toml or json runestone document")

	if _, err := parse(fs, args); err != nil {
		return err
	}

	if *file == "" && fs.NArg() == 1 {
		*file = fs.Arg(0)
	}
	if *file == "" {
		return fmt.Errorf("--file is required")
	}

	r, err := document.Load(*file)
	if err != nil {
		return err
	}

	script, err := r.Encipher()
	if err != nil {
		return fmt.Errorf("failed to encipher runestone: %w", err)
	}

	log.WithFields(log.Fields{
		"edicts": len(r.Edicts),
		"bytes":  len(script),
	}).Info("enciphered runestone")

	_, err = fmt.Fprintln(out, hex.EncodeToString(script))
	return err
}
