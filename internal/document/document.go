// Package document reads the runestone descriptions consumed by the encode
// command. Descriptions are yaml, toml or json files; 128-bit amounts are
// written as decimal strings or plain integers. JSON numbers are read as
// floats, so JSON amounts above 2^53 must be quoted.
package document

import (
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
	"unicode/utf8"

	"github.com/ArkLabsHQ/runestone/pkg/runestone"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"lukechampine.com/uint128"
)

// Document is the on-disk form of a runestone.
type Document struct {
	Edicts  []Edict  `mapstructure:"edicts"`
	Etching *Etching `mapstructure:"etching"`
	Mint    string   `mapstructure:"mint"`
	Pointer *uint32  `mapstructure:"pointer"`
}

// Edict is the on-disk form of a runestone.Edict.
type Edict struct {
	ID     string `mapstructure:"id"`
	Amount string `mapstructure:"amount"`
	Output uint32 `mapstructure:"output"`
}

// Etching is the on-disk form of an etching. Rune may carry spacers, which an
// explicit Spacers overrides.
type Etching struct {
	Divisibility *uint8  `mapstructure:"divisibility"`
	Premine      string  `mapstructure:"premine"`
	Rune         string  `mapstructure:"rune"`
	Spacers      *uint32 `mapstructure:"spacers"`
	Symbol       string  `mapstructure:"symbol"`
	Terms        *Terms  `mapstructure:"terms"`
	Turbo        bool    `mapstructure:"turbo"`
}

// Terms is the on-disk form of runestone.Terms.
type Terms struct {
	Amount      string  `mapstructure:"amount"`
	Cap         string  `mapstructure:"cap"`
	HeightStart *uint64 `mapstructure:"height_start"`
	HeightEnd   *uint64 `mapstructure:"height_end"`
	OffsetStart *uint64 `mapstructure:"offset_start"`
	OffsetEnd   *uint64 `mapstructure:"offset_end"`
}

// Load reads the description at path. The format follows the file extension.
func Load(path string) (*runestone.Runestone, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return decode(v)
}

// Read reads a description of the given format (yaml, toml or json) from r.
func Read(r io.Reader, format string) (*runestone.Runestone, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("failed to read %s document: %w", format, err)
	}
	return decode(v)
}

// maxExactFloat is the largest integer below which every float64 integer is
// exact.
const maxExactFloat = 1 << 53

// exactNumbers refuses to turn a float into a string field unless the float
// holds an integer it represents exactly.
func exactNumbers(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}

	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) || f < 0 || f > maxExactFloat {
		return nil, fmt.Errorf("number %v is not an exact whole number, "+
			"quote it as a decimal string", data)
	}
	return strconv.FormatUint(uint64(f), 10), nil
}

func decode(v *viper.Viper) (*runestone.Runestone, error) {
	var doc Document
	hook := viper.DecodeHook(mapstructure.DecodeHookFuncType(exactNumbers))
	if err := v.Unmarshal(&doc, hook); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc.Runestone()
}

// Runestone validates the document and converts it to a runestone.
func (d *Document) Runestone() (*runestone.Runestone, error) {
	r := &runestone.Runestone{
		Pointer: d.Pointer,
	}

	for i, e := range d.Edicts {
		id, err := runestone.ParseRuneID(e.ID)
		if err != nil {
			return nil, fmt.Errorf("edict %d: %w", i, err)
		}
		amount, err := parseAmount(e.Amount)
		if err != nil {
			return nil, fmt.Errorf("edict %d: %w", i, err)
		}
		r.Edicts = append(r.Edicts, runestone.Edict{
			ID:     id,
			Amount: amount,
			Output: e.Output,
		})
	}

	if d.Mint != "" {
		id, err := runestone.ParseRuneID(d.Mint)
		if err != nil {
			return nil, fmt.Errorf("mint: %w", err)
		}
		r.Mint = &id
	}

	if d.Etching != nil {
		etching, err := d.Etching.etching()
		if err != nil {
			return nil, fmt.Errorf("etching: %w", err)
		}
		r.Etching = etching
	}

	return r, nil
}

func (e *Etching) etching() (*runestone.Etching, error) {
	etching := &runestone.Etching{
		Divisibility: e.Divisibility,
		Turbo:        e.Turbo,
	}

	if e.Divisibility != nil && *e.Divisibility > runestone.MaxDivisibility {
		return nil, fmt.Errorf("divisibility %d exceeds %d",
			*e.Divisibility, runestone.MaxDivisibility)
	}

	var err error
	if etching.Premine, err = parseOptionalAmount(e.Premine); err != nil {
		return nil, fmt.Errorf("premine: %w", err)
	}

	if e.Rune != "" {
		spaced, err := runestone.ParseSpacedRune(e.Rune)
		if err != nil {
			return nil, fmt.Errorf("rune: %w", err)
		}
		etching.Rune = &spaced.Rune
		if spaced.Spacers != 0 {
			etching.Spacers = &spaced.Spacers
		}
	}

	if e.Spacers != nil {
		if *e.Spacers > runestone.MaxSpacers {
			return nil, fmt.Errorf("spacers %#x exceed %#x", *e.Spacers,
				runestone.MaxSpacers)
		}
		etching.Spacers = e.Spacers
	}

	if e.Symbol != "" {
		symbol, size := utf8.DecodeRuneInString(e.Symbol)
		if symbol == utf8.RuneError || size != len(e.Symbol) {
			return nil, fmt.Errorf("symbol %q is not a single character",
				e.Symbol)
		}
		etching.Symbol = &symbol
	}

	if e.Terms != nil {
		terms := &runestone.Terms{
			HeightStart: e.Terms.HeightStart,
			HeightEnd:   e.Terms.HeightEnd,
			OffsetStart: e.Terms.OffsetStart,
			OffsetEnd:   e.Terms.OffsetEnd,
		}
		if terms.Amount, err = parseOptionalAmount(e.Terms.Amount); err != nil {
			return nil, fmt.Errorf("terms amount: %w", err)
		}
		if terms.Cap, err = parseOptionalAmount(e.Terms.Cap); err != nil {
			return nil, fmt.Errorf("terms cap: %w", err)
		}
		etching.Terms = terms
	}

	if _, ok := etching.Supply(); !ok {
		return nil, fmt.Errorf("supply overflows 128 bits")
	}

	return etching, nil
}

func parseAmount(s string) (uint128.Uint128, error) {
	n, err := uint128.FromString(s)
	if err != nil {
		return uint128.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return n, nil
}

func parseOptionalAmount(s string) (*uint128.Uint128, error) {
	if s == "" {
		return nil, nil
	}
	n, err := parseAmount(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
