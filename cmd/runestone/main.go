// runestone inspects and builds runestone OP_RETURN scripts.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ArkLabsHQ/runestone/internal/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches args to a command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 1
	}

	var err error
	switch cmd, cmdArgs := args[0], args[1:]; cmd {
	case "decode":
		err = cmdDecode(cmdArgs, stdout)
	case "encode":
		err = cmdEncode(cmdArgs, stdout)
	case "name":
		err = cmdName(cmdArgs, stdout)
	case "help", "--help", "-h":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", cmd)
		usage(stderr)
		return 1
	}

	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		log.WithError(err).Errorf("%s failed", args[0])
		return 1
	}
	return 0
}

// newFlagSet returns a flag set carrying the shared configuration flags.
func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	config.RegisterFlags(fs)
	return fs
}

// parse parses args into fs and loads the configuration.
func parse(fs *pflag.FlagSet, args []string) (*config.Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return nil, err
	}
	cfg.SetupLogger()

	log.WithFields(log.Fields{
		"network": cfg.Network.Name,
		"format":  cfg.Format,
	}).Debug("configuration loaded")

	return cfg, nil
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Usage: runestone <command> [flags]

Shared flags:
  --config <path>       yaml, toml or json config file
  --log-level <level>   trace, debug, info (default), warn, error
  --network <net>       mainnet (default), testnet, signet or regtest
  --format <fmt>        json (default) or cbor

Every shared flag may also be set through a RUNESTONE_* environment
variable, e.g. RUNESTONE_NETWORK=regtest.

Commands:
  decode --tx <hex> | --psbt <base64> | --file <path> | <hex>
                        Decipher the runestone of a transaction
  encode --file <path>  Build the OP_RETURN script of a runestone document
  name <name|number>... Convert between rune names and numbers
  name --height <h>     Show the shortest name unlocked at a block height
`)
}
