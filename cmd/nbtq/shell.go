package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/gops/agent"

	"github.com/signadot/nbtpath/format"
	"github.com/signadot/nbtpath/session"
	"github.com/signadot/nbtpath/tag"

	"github.com/scott-cotton/cli"
)

func shell(cfg *ShellConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Shell.Parse(cc, args)
	if err != nil {
		cfg.Shell.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: shell takes at most one file", cli.ErrUsage)
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(os.Stderr, "gops agent failed: %v\n", err)
		}
		defer agent.Close()
	}
	var (
		root *tag.Tag
		in   = format.SNBTFormat
		file string
	)
	if len(args) == 1 {
		file = args[0]
		if file == "-" {
			return fmt.Errorf("%w: shell reads commands from stdin", cli.ErrUsage)
		}
		if root, in, err = cfg.readDoc(file); err != nil {
			return err
		}
	}
	sh := &shellState{cfg: cfg, s: session.New(root), file: file, f: cfg.outFormat(in)}
	return sh.run(os.Stdin, cc.Out, os.Stderr)
}

type shellState struct {
	cfg  *ShellConfig
	s    *session.Session
	file string
	f    format.Format
}

func (sh *shellState) run(r io.Reader, w, errw io.Writer) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if sh.cfg.Echo {
			fmt.Fprintf(w, "> %s\n", line)
		}
		word, rest, _ := strings.Cut(line, " ")
		var err error
		switch word {
		case "quit", "exit":
			return nil
		case "print":
			err = sh.cfg.writeDoc(w, sh.s.Root, sh.f)
		case "save":
			err = sh.save(strings.TrimSpace(rest))
		default:
			err = sh.exec(w, line)
		}
		if err != nil {
			fmt.Fprintf(errw, "error: %v\n", err)
		}
	}
	return sc.Err()
}

func (sh *shellState) exec(w io.Writer, line string) error {
	res, err := sh.s.Exec(line)
	if err != nil {
		return err
	}
	if res.Text != "" {
		_, err = fmt.Fprintln(w, res.Text)
		return err
	}
	_, err = fmt.Fprintln(w, res.Count)
	return err
}

func (sh *shellState) save(file string) error {
	if file == "" {
		file = sh.file
	}
	if file == "" || file == "-" {
		return errors.New("save needs a file")
	}
	f := sh.f
	if sh.cfg.OutFormat == nil {
		if g, ok := format.FromPath(file); ok {
			f = g
		}
	}
	return sh.cfg.writeFile(file, sh.s.Root, f)
}
