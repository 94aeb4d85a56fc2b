package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/signadot/nbtpath/codec"
	"github.com/signadot/nbtpath/encode"
	"github.com/signadot/nbtpath/format"
	"github.com/signadot/nbtpath/tag"
)

// readDoc decodes file, "-" being stdin, and returns it with the format
// it was read in.
func (cfg *MainConfig) readDoc(file string) (*tag.Tag, format.Format, error) {
	f := cfg.inFormat(file)
	var r io.Reader
	if file == "-" {
		r = bufio.NewReader(os.Stdin)
	} else {
		fh, err := os.Open(file)
		if err != nil {
			return nil, f, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer fh.Close()
		r = fh
	}
	t, err := codec.Decode(r, f)
	if err != nil {
		return nil, f, fmt.Errorf("error decoding %s as %s: %w", file, f, err)
	}
	return t, f, nil
}

func (cfg *MainConfig) writeDoc(w io.Writer, t *tag.Tag, f format.Format) error {
	if err := codec.Encode(w, t, f, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result as %s: %w", f, err)
	}
	return nil
}

// files defaults to stdin.
func files(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// writeFile writes t to file without colors.
func (cfg *MainConfig) writeFile(file string, t *tag.Tag, f format.Format) error {
	fh, err := os.Create(file)
	if err != nil {
		return err
	}
	opts := []codec.EncodeOption{
		codec.SNBTOptions(encode.EncodeIndent(cfg.Indent), encode.EncodeSortKeys(cfg.Sort)),
		codec.Gzip(cfg.Gzip),
	}
	if err := codec.Encode(fh, t, f, opts...); err != nil {
		fh.Close()
		return fmt.Errorf("error encoding %s as %s: %w", file, f, err)
	}
	return fh.Close()
}
