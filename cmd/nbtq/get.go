package main

import (
	"fmt"

	"github.com/signadot/nbtpath/eval"
	"github.com/signadot/nbtpath/format"
	"github.com/signadot/nbtpath/nbtpath"

	"github.com/scott-cotton/cli"
)

// valueFormat is the format for tags read out of a document. Binary NBT
// can only hold compounds, so it defaults to snbt.
func (cfg *MainConfig) valueFormat(in format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if in.IsBinary() {
		return format.SNBTFormat
	}
	return in
}

func pathArg(args []string, what string) (*nbtpath.Path, []string, error) {
	if len(args) == 0 {
		return nil, nil, fmt.Errorf("%w: %s requires a path argument", cli.ErrUsage, what)
	}
	p, err := nbtpath.Parse(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return p, args[1:], nil
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Funcs {
		fmt.Fprintf(cc.Out, "available -where functions:\n")
		for _, s := range eval.Symbols() {
			fmt.Fprintf(cc.Out, "\t- %s\n", s.Synopsis())
		}
		return nil
	}
	p, args, err := pathArg(args, "get")
	if err != nil {
		return err
	}
	var pred *eval.Predicate
	if cfg.Where != "" {
		pred, err = eval.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: -where: %w", cli.ErrUsage, err)
		}
	}
	for _, file := range files(args) {
		doc, in, err := cfg.readDoc(file)
		if err != nil {
			return err
		}
		vs, err := p.Get(doc)
		if err != nil {
			return fmt.Errorf("error getting %s in %s: %w", p, file, err)
		}
		if pred != nil {
			if vs, err = pred.Filter(vs); err != nil {
				return fmt.Errorf("error evaluating -where on %s: %w", file, err)
			}
		}
		out := cfg.valueFormat(in)
		for _, v := range vs {
			if err := cfg.writeDoc(cc.Out, v, out); err != nil {
				return err
			}
		}
	}
	return nil
}

func count(cfg *CountConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Count.Parse(cc, args)
	if err != nil {
		cfg.Count.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	p, args, err := pathArg(args, "count")
	if err != nil {
		return err
	}
	args = files(args)
	for _, file := range args {
		doc, _, err := cfg.readDoc(file)
		if err != nil {
			return err
		}
		n := p.CountMatching(doc)
		if len(args) > 1 {
			fmt.Fprintf(cc.Out, "%s: %d\n", file, n)
			continue
		}
		fmt.Fprintf(cc.Out, "%d\n", n)
	}
	return nil
}
