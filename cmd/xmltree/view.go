package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/Qazwar/xmltree"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return viewReader(cfg, cc.Out, cc.In)
	}
	return viewFiles(cfg, cc.Out, args)
}

func viewFiles(cfg *ViewConfig, w io.Writer, files []string) error {
	for i, file := range files {
		if err := viewFile(cfg, w, file); err != nil {
			return err
		}
		if i < len(files)-1 {
			w.Write([]byte("\n"))
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, w io.Writer, file string) error {
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
	if err := viewReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func viewReader(cfg *ViewConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	doc, err := xmltree.Parse(string(in))
	if err != nil {
		return err
	}
	colors := cfg.colors(w)
	if colors == nil {
		_, err := io.WriteString(w, doc.Description())
		return err
	}
	return renderDocument(w, doc, colors)
}

// renderDocument writes the same outline as [xmltree.Document.Description], with each part
// colored individually.
func renderDocument(w io.Writer, doc *xmltree.Document, colors *Colors) error {
	var sb strings.Builder

	sb.WriteString(colors.Header("XML version=%s", doc.Version))
	sb.WriteByte('\n')

	if doc.Root != nil {
		renderNode(&sb, doc.Root, colors, 0)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func renderNode(sb *strings.Builder, n *xmltree.Node, colors *Colors, indent int) {
	for range indent {
		sb.WriteByte(' ')
	}

	sb.WriteString("+ ")
	if n.Name == xmltree.TextNodeName {
		sb.WriteString(colors.Text("%s", n.Name))
	} else {
		sb.WriteString(colors.Name("%s", n.Name))
	}

	for _, key := range slices.Sorted(maps.Keys(n.Attr)) {
		sb.WriteString(", ")
		sb.WriteString(colors.Key("%s", key))
		sb.WriteByte('=')
		sb.WriteString(colors.Value("%s", n.Attr[key]))
	}

	if n.Value != "" {
		sb.WriteString(", ")
		sb.WriteString(colors.Value("%s", n.Value))
	}

	sb.WriteByte('\n')

	for _, child := range n.Children {
		renderNode(sb, child, colors, indent+1)
	}
}
