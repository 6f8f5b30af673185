/*
This is free and unencumbered software released into the public domain. For more
information, see <http://unlicense.org/> or the accompanying UNLICENSE file.
*/

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/treemark/treemark/convert"
)

func main() {
	app := &cli.App{
		Name:     "treemark",
		HelpName: "treemark",
		Usage:    "Convert a parsed document tree to HTML or Markdown",
		Commands: []*cli.Command{
			convert.Command,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
