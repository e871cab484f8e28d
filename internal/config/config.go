package config

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	FormatJSON = "json"
	FormatCBOR = "cbor"

	defaultLogLevel = "info"
	defaultNetwork  = "mainnet"
	defaultFormat   = FormatJSON
)

var supportedNetworks = map[string]*chaincfg.Params{
	"mainnet": &chaincfg.MainNetParams,
	"testnet": &chaincfg.TestNet3Params,
	"signet":  &chaincfg.SigNetParams,
	"regtest": &chaincfg.RegressionNetParams,
}

// Config holds the settings shared by every command.
type Config struct {
	LogLevel log.Level
	Network  *chaincfg.Params
	Format   string
}

// RegisterFlags adds the shared flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a yaml, toml or json config file")
	fs.String("log-level", defaultLogLevel, "log level (trace, debug, info, warn, error)")
	fs.String("network", defaultNetwork, "network (mainnet, testnet, signet, regtest)")
	fs.String("format", defaultFormat, "output format (json, cbor)")
}

// Load resolves the configuration from, in increasing priority, defaults,
// the config file, RUNESTONE_* environment variables and flags.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RUNESTONE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("network", defaultNetwork)
	v.SetDefault("format", defaultFormat)

	for key, name := range map[string]string{
		"config":    "config",
		"log_level": "log-level",
		"network":   "network",
		"format":    "format",
	} {
		if flag := fs.Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	level, err := log.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	network := strings.ToLower(v.GetString("network"))
	params, ok := supportedNetworks[network]
	if !ok {
		return nil, fmt.Errorf("unsupported network %q", network)
	}

	format := strings.ToLower(v.GetString("format"))
	if format != FormatJSON && format != FormatCBOR {
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	return &Config{
		LogLevel: level,
		Network:  params,
		Format:   format,
	}, nil
}

// SetupLogger applies the configured level to the standard logger.
func (c *Config) SetupLogger() {
	log.SetLevel(c.LogLevel)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
