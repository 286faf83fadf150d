package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/rvec/serialize"
	"github.com/hupe1980/rvec/vector"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

type report struct {
	path   string
	header serialize.Header
	v      *vector.Vector
}

func (e *env) inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "describe serialized vectors",
		ArgsUsage: "FILES...",
		Action: func(c *cli.Context) error {
			paths := c.Args().Slice()
			if len(paths) == 0 {
				return fmt.Errorf("inspect: no files given")
			}

			reports := make([]report, len(paths))
			g, _ := errgroup.WithContext(c.Context)
			for i, path := range paths {
				g.Go(func() error {
					h, err := serialize.ReadFileHeader(path)
					if err != nil {
						return fmt.Errorf("inspect %s: %w", path, err)
					}
					v, err := serialize.ReadFile(path)
					if err != nil {
						return fmt.Errorf("inspect: %w", err)
					}
					reports[i] = report{path: path, header: h, v: v}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			for _, r := range reports {
				r.print(c.App.Writer)
			}
			return nil
		},
	}
}

func (r report) print(w io.Writer) {
	v := r.v
	fmt.Fprintf(w, "%s:\n", r.path)
	fmt.Fprintf(w, "  version:     %d\n", r.header.Version)
	fmt.Fprintf(w, "  compression: %s\n", r.header.Compression)
	fmt.Fprintf(w, "  kind:        %s\n", v.Kind())
	fmt.Fprintf(w, "  length:      %d\n", v.Len())
	fmt.Fprintf(w, "  complete:    %t\n", v.IsComplete())
	fmt.Fprintf(w, "  NAs:         %d\n", v.NACount())
	if v.HasDimensions() {
		fmt.Fprintf(w, "  dim:         %v\n", v.Dimensions())
	}
	if names := v.Names(); names != nil {
		fmt.Fprintf(w, "  names:       %s\n", names)
	}
	if attrs := v.AttrNames(); len(attrs) > 0 {
		fmt.Fprintf(w, "  attributes:  %s\n", strings.Join(attrs, ", "))
	}
	fmt.Fprintf(w, "  value:       %s\n", v)
}
