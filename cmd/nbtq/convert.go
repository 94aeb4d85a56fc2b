package main

import (
	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, file := range files(args) {
		doc, in, err := cfg.readDoc(file)
		if err != nil {
			return err
		}
		if err := cfg.writeDoc(cc.Out, doc, cfg.outFormat(in)); err != nil {
			return err
		}
	}
	return nil
}
