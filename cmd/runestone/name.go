package main

import (
	"fmt"
	"io"

	"github.com/ArkLabsHQ/runestone/internal/render"
	"github.com/ArkLabsHQ/runestone/pkg/runestone"
	"lukechampine.com/uint128"
)

func cmdName(args []string, out io.Writer) error {
	fs := newFlagSet("name")
	height := fs.Uint32("height", 0, "print the minimum name at this block height")

	cfg, err := parse(fs, args)
	if err != nil {
		return err
	}

	names := make([]render.Name, 0, fs.NArg()+1)

	if fs.Changed("height") {
		minimum := runestone.MinimumAtHeight(cfg.Network, *height)
		name := render.NewName(runestone.SpacedRune{Rune: minimum})
		name.Height = height
		names = append(names, name)
	}

	for _, arg := range fs.Args() {
		spaced, err := parseName(arg)
		if err != nil {
			return err
		}
		names = append(names, render.NewName(spaced))
	}

	if len(names) == 0 {
		return fmt.Errorf("expected a name, a number or --height")
	}

	return render.Encode(out, cfg.Format, names)
}

// parseName accepts a decimal rune number or a possibly spaced name.
func parseName(arg string) (runestone.SpacedRune, error) {
	if arg != "" && arg[0] >= '0' && arg[0] <= '9' {
		n, err := uint128.FromString(arg)
		if err != nil {
			return runestone.SpacedRune{}, fmt.Errorf("invalid rune number %q: %w", arg, err)
		}
		return runestone.SpacedRune{Rune: runestone.NewRune(n)}, nil
	}

	spaced, err := runestone.ParseSpacedRune(arg)
	if err != nil {
		return runestone.SpacedRune{}, fmt.Errorf("invalid rune name %q: %w", arg, err)
	}
	return spaced, nil
}
