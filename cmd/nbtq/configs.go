package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/nbtpath/codec"
	"github.com/signadot/nbtpath/encode"
	"github.com/signadot/nbtpath/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='indent snbt output by n spaces'"`
	Sort   bool `cli:"name=sort desc='sort compound keys in snbt output'"`
	Gzip   bool `cli:"name=z aliases=gzip desc='gzip binary nbt output'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat is the format to decode file with: -I if given, else a guess
// from the file name, else snbt.
func (cfg *MainConfig) inFormat(file string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	f, _ := format.FromPath(file)
	return f
}

// outFormat is -O if given, else the input format.
func (cfg *MainConfig) outFormat(in format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return in
}

func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) snbtOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeIndent(cfg.Indent),
		encode.EncodeSortKeys(cfg.Sort),
	}
	if cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []codec.EncodeOption {
	return []codec.EncodeOption{
		codec.SNBTOptions(cfg.snbtOpts(w)...),
		codec.Gzip(cfg.Gzip),
	}
}

type GetConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='only output values for which expr is true'"`
	Funcs bool   `cli:"name=funcs desc='show functions available to -where'"`

	Get *cli.Command
}

type CountConfig struct {
	*MainConfig

	Count *cli.Command
}

// ModifyConfig holds the output options shared by commands which change
// a document.
type ModifyConfig struct {
	*MainConfig
	Diff  bool `cli:"name=diff desc='output a diff of the change instead of the result'"`
	Patch bool `cli:"name=patch desc='output a json merge patch of the change instead of the result'"`
	Quiet bool `cli:"name=q desc='do not fail when nothing changed'"`
	At    int  `cli:"name=at desc='insert index, negative counting from the end'"`

	Cmd *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type UUIDConfig struct {
	*MainConfig

	UUID *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Text  bool   `cli:"name=t desc='diff the snbt text line by line'"`
	Patch string `cli:"name=apply desc='apply a json patch file to the first document and diff that'"`

	Diff *cli.Command
}

type ShellConfig struct {
	*MainConfig
	Gops bool `cli:"name=gops desc='start a gops agent'"`
	Echo bool `cli:"name=echo desc='echo commands'"`

	Shell *cli.Command
}
