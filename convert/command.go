// Package convert implements the command that renders a document tree
// file to HTML or Markdown.
package convert

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/treemark/treemark/debug"
	"github.com/treemark/treemark/doc"
	"github.com/treemark/treemark/logging"
	"github.com/treemark/treemark/page"
	"github.com/treemark/treemark/render"
)

var Command = &cli.Command{
	Name:   "convert",
	Usage:  "Render a document tree file to HTML or Markdown",
	Action: run,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Document tree file (YAML) to read",
			Required:    true,
			Destination: &opts.input,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "File to write. Writes to stdout when omitted.",
			Destination: &opts.output,
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Output format, 'html' or 'markdown'",
			Value:       "html",
			Destination: &opts.format,
		},
		&cli.BoolFlag{
			Name:        "standalone",
			Aliases:     []string{"s"},
			Usage:       "Wrap output in a complete document with title and table of contents",
			Destination: &opts.standalone,
		},
		&cli.StringFlag{
			Name:        "title",
			Usage:       "Title for standalone output",
			Destination: &opts.title,
		},
		&cli.BoolFlag{
			Name:        "minify",
			Usage:       "Minify standalone HTML output",
			Destination: &opts.minify,
		},
		&cli.BoolFlag{
			Name:        "slug-ids",
			Usage:       "Derive heading ids from heading text instead of a counter",
			Destination: &opts.slugIDs,
		},
		&cli.BoolFlag{
			Name:        "dump",
			Usage:       "Print the parsed document tree to stdout and exit",
			Destination: &opts.dump,
		},
	}, logging.Flags...),
}

var opts struct {
	input      string
	output     string
	format     string
	standalone bool
	title      string
	minify     bool
	slugIDs    bool
	dump       bool
}

func run(cc *cli.Context) error {
	logging.Setup()

	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	nodes, err := doc.LoadFile(opts.input)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	logging.Info("loaded document", "filename", opts.input, "nodes", len(nodes))

	if opts.dump {
		return debug.DumpNodes(nodes, os.Stdout)
	}

	idStyle := render.IDStyleCounter
	if opts.slugIDs {
		idStyle = render.IDStyleSlug
	}
	r := render.New(render.Options{IDStyle: idStyle})

	out, err := r.Render(nodes, format)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if opts.standalone {
		a := &page.Assembler{Title: opts.title, Minify: opts.minify}
		toc := r.CollectHeadings(nodes)

		switch format {
		case render.FormatHTML:
			out, err = a.BuildHTML(out, toc)
		case render.FormatMarkdown:
			out, err = a.BuildMarkdown(out, toc)
		}
		if err != nil {
			return fmt.Errorf("assemble page: %w", err)
		}
	}

	if opts.output == "" {
		fmt.Fprintln(os.Stdout, out)
		return nil
	}

	if err := render.WriteFile(opts.output, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logging.Info("wrote output", "filename", opts.output, "format", string(format))
	return nil
}
