package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/Qazwar/xmltree"
)

func text(cfg *TextConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Text.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return textReader(cfg, cc.Out, cc.In)
	}
	return textFiles(cfg, cc.Out, args)
}

func textFiles(cfg *TextConfig, w io.Writer, files []string) error {
	for _, file := range files {
		if err := textFile(cfg, w, file); err != nil {
			return err
		}
	}
	return nil
}

func textFile(cfg *TextConfig, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := textReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func textReader(cfg *TextConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	doc, err := xmltree.Parse(string(in))
	if err != nil {
		return err
	}
	if doc.Root == nil {
		return nil
	}
	_, err = io.WriteString(w, doc.Root.InnerText()+"\n")
	return err
}
