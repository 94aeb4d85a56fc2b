package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/signadot/nbtpath/encode"
	"github.com/signadot/nbtpath/libdiff"
	"github.com/signadot/nbtpath/tag"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var from, to *tag.Tag
	switch {
	case cfg.Patch != "" && len(args) <= 1:
		if from, _, err = cfg.readDoc(files(args)[0]); err != nil {
			return err
		}
		patch, err := os.ReadFile(cfg.Patch)
		if err != nil {
			return err
		}
		if to, err = libdiff.ApplyJSONPatch(from, patch); err != nil {
			return fmt.Errorf("error applying %s: %w", cfg.Patch, err)
		}
	case cfg.Patch == "" && len(args) == 2:
		if from, _, err = cfg.readDoc(args[0]); err != nil {
			return err
		}
		if to, _, err = cfg.readDoc(args[1]); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: diff requires 2 documents or -apply and 1, got %v", cli.ErrUsage, args)
	}
	differs, err := diffDocs(cfg, cc.Out, from, to)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffDocs(cfg *DiffConfig, w io.Writer, from, to *tag.Tag) (bool, error) {
	colors := cfg.colors(w)
	if cfg.Text {
		indent := max(cfg.Indent, 2)
		a := encode.MustString(from, encode.EncodeIndent(indent), encode.EncodeSortKeys(true))
		b := encode.MustString(to, encode.EncodeIndent(indent), encode.EncodeSortKeys(true))
		if a == b {
			return false, nil
		}
		_, err := io.WriteString(w, libdiff.Text(a, b, colors))
		return true, err
	}
	changes := libdiff.Diff(from, to)
	paint := map[libdiff.Op]func(a ...any) string{}
	if colors {
		paint[libdiff.Insert] = color.New(color.FgGreen).SprintFunc()
		paint[libdiff.Delete] = color.New(color.FgRed).SprintFunc()
		paint[libdiff.Replace] = color.New(color.FgYellow).SprintFunc()
	}
	for _, c := range changes {
		s := c.String()
		if f := paint[c.Op]; f != nil {
			s = f(s)
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return true, err
		}
	}
	return len(changes) != 0, nil
}
