package main

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/signadot/nbtpath/encode"
	"github.com/signadot/nbtpath/parse"
	"github.com/signadot/nbtpath/tag"

	"github.com/scott-cotton/cli"
)

func uuidCmd(cfg *UUIDConfig, cc *cli.Context, args []string) error {
	args, err := cfg.UUID.Parse(cc, args)
	if err != nil {
		cfg.UUID.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	switch len(args) {
	case 0:
		u := uuid.New()
		_, err := fmt.Fprintf(cc.Out, "%s %s\n", u, encode.MustString(tag.UUID(u), cfg.snbtOpts(cc.Out)...))
		return err
	case 1:
	default:
		return fmt.Errorf("%w: uuid takes at most one argument", cli.ErrUsage)
	}
	if u, err := uuid.Parse(args[0]); err == nil {
		_, err := fmt.Fprintln(cc.Out, encode.MustString(tag.UUID(u), cfg.snbtOpts(cc.Out)...))
		return err
	}
	t, err := parse.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q is neither a uuid nor snbt: %w", cli.ErrUsage, args[0], err)
	}
	u, err := t.AsUUID()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, u)
	return err
}
