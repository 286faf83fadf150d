package main

import (
	"fmt"

	"github.com/hupe1980/rvec/coerce"
	"github.com/hupe1980/rvec/scalar"
	"github.com/hupe1980/rvec/serialize"
	"github.com/urfave/cli/v2"
)

func (e *env) castCommand() *cli.Command {
	return &cli.Command{
		Name:  "cast",
		Usage: "cast a serialized vector to another kind",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "to",
				Aliases:  []string{"t"},
				Usage:    "target element kind",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"in", "i"},
				Usage:    "file to read",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"out", "o"},
				Usage:    "file to write",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "keep-attributes",
				Usage: "copy generic attributes to the result",
			},
			&cli.BoolFlag{
				Name:  "drop-dim",
				Usage: "drop dim and dimnames",
			},
			&cli.BoolFlag{
				Name:  "drop-names",
				Usage: "drop names",
			},
		},
		Action: func(c *cli.Context) error {
			to, err := scalar.ParseKind(c.String("to"))
			if err != nil {
				return err
			}
			v, err := serialize.ReadFile(c.String("input"))
			if err != nil {
				return fmt.Errorf("cast: %w", err)
			}

			var opts []coerce.Option
			if c.Bool("keep-attributes") {
				opts = append(opts, coerce.WithAttributes())
			}
			if c.Bool("drop-dim") {
				opts = append(opts, coerce.WithoutDimensions())
			}
			if c.Bool("drop-names") {
				opts = append(opts, coerce.WithoutNames())
			}

			out, warnings, err := e.session.Cast(c.Context, v, to, opts...)
			if err != nil {
				return fmt.Errorf("cast: %w", err)
			}
			printWarnings(c.App.ErrWriter, warnings)

			output := c.String("output")
			n, err := serialize.WriteFile(output, out, serialize.WithCompression(e.session.Compression()))
			if err != nil {
				return fmt.Errorf("cast: %w", err)
			}
			fmt.Fprintf(c.App.Writer, "wrote %s to %s (%d bytes)\n", out, output, n)
			return nil
		},
	}
}
