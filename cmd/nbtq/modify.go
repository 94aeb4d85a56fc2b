package main

import (
	"errors"
	"fmt"

	"github.com/signadot/nbtpath/encode"
	"github.com/signadot/nbtpath/libdiff"
	"github.com/signadot/nbtpath/parse"
	"github.com/signadot/nbtpath/tag"

	"github.com/scott-cotton/cli"
)

var errUnchanged = errors.New("nothing changed")

// modifyFile applies fn to the document in file and outputs the result,
// or the change when -diff or -patch is given.
func modifyFile(cfg *ModifyConfig, cc *cli.Context, file string, fn func(*tag.Tag) (int, error)) error {
	if cfg.Diff && cfg.Patch {
		return fmt.Errorf("%w: at most one of -diff and -patch", cli.ErrUsage)
	}
	doc, in, err := cfg.readDoc(file)
	if err != nil {
		return err
	}
	before := doc.Clone()
	n, err := fn(doc)
	if err != nil {
		return fmt.Errorf("error modifying %s: %w", file, err)
	}
	if n == 0 && !cfg.Quiet {
		return fmt.Errorf("%s: %w", file, errUnchanged)
	}
	switch {
	case cfg.Diff:
		indent := max(cfg.Indent, 2)
		from := encode.MustString(before, encode.EncodeIndent(indent))
		to := encode.MustString(doc, encode.EncodeIndent(indent))
		_, err = fmt.Fprint(cc.Out, libdiff.Text(from, to, cfg.colors(cc.Out)))
		return err
	case cfg.Patch:
		d, err := libdiff.MergePatch(before, doc)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cc.Out, "%s\n", d)
		return err
	}
	return cfg.writeDoc(cc.Out, doc, cfg.outFormat(in))
}

// fileArg returns the single optional file argument after the operands.
func fileArg(args []string, what string) (string, error) {
	switch len(args) {
	case 0:
		return "-", nil
	case 1:
		return args[0], nil
	}
	return "", fmt.Errorf("%w: %s takes at most one file, got %v", cli.ErrUsage, what, args)
}

func valueArg(args []string, what string) (*tag.Tag, []string, error) {
	if len(args) == 0 {
		return nil, nil, fmt.Errorf("%w: %s requires an snbt value", cli.ErrUsage, what)
	}
	v, err := parse.Parse(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return v, args[1:], nil
}

func set(cfg *ModifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		cfg.Cmd.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	p, args, err := pathArg(args, "set")
	if err != nil {
		return err
	}
	v, args, err := valueArg(args, "set")
	if err != nil {
		return err
	}
	file, err := fileArg(args, "set")
	if err != nil {
		return err
	}
	return modifyFile(cfg, cc, file, func(doc *tag.Tag) (int, error) {
		return p.Set(doc, v)
	})
}

func remove(cfg *ModifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		cfg.Cmd.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	p, args, err := pathArg(args, "remove")
	if err != nil {
		return err
	}
	file, err := fileArg(args, "remove")
	if err != nil {
		return err
	}
	return modifyFile(cfg, cc, file, func(doc *tag.Tag) (int, error) {
		return p.Remove(doc), nil
	})
}

func insert(cfg *ModifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		cfg.Cmd.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	p, args, err := pathArg(args, "insert")
	if err != nil {
		return err
	}
	v, args, err := valueArg(args, "insert")
	if err != nil {
		return err
	}
	file, err := fileArg(args, "insert")
	if err != nil {
		return err
	}
	return modifyFile(cfg, cc, file, func(doc *tag.Tag) (int, error) {
		return p.Insert(doc, cfg.At, []*tag.Tag{v})
	})
}
