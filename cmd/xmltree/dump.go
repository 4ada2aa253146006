package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/Qazwar/xmltree"
)

type dumpDocument struct {
	Version string            `yaml:"version"`
	Attr    map[string]string `yaml:"attr,omitempty"`
	Root    *dumpNode         `yaml:"root,omitempty"`
}

type dumpNode struct {
	Name     string            `yaml:"name"`
	Attr     map[string]string `yaml:"attr,omitempty"`
	Value    string            `yaml:"value,omitempty"`
	Children []*dumpNode       `yaml:"children,omitempty"`
}

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return dumpReader(cfg, cc.Out, cc.In)
	}
	return dumpFiles(cfg, cc.Out, args)
}

func dumpFiles(cfg *DumpConfig, w io.Writer, files []string) error {
	for i, file := range files {
		if err := dumpFile(cfg, w, file); err != nil {
			return err
		}
		if i < len(files)-1 {
			w.Write([]byte("---\n"))
		}
	}
	return nil
}

func dumpFile(cfg *DumpConfig, w io.Writer, file string) error {
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
	if err := dumpReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func dumpReader(cfg *DumpConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	doc, err := xmltree.Parse(string(in))
	if err != nil {
		return err
	}
	out, err := yaml.MarshalWithOptions(newDumpDocument(doc), yaml.Indent(cfg.Indent))
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = w.Write(out)
	return err
}

func newDumpDocument(doc *xmltree.Document) *dumpDocument {
	return &dumpDocument{
		Version: doc.Version,
		Attr:    doc.Attr,
		Root:    newDumpNode(doc.Root),
	}
}

func newDumpNode(n *xmltree.Node) *dumpNode {
	if n == nil {
		return nil
	}

	dn := &dumpNode{
		Name:  n.Name,
		Attr:  n.Attr,
		Value: n.Value,
	}
	for _, child := range n.Children {
		dn.Children = append(dn.Children, newDumpNode(child))
	}
	return dn
}
