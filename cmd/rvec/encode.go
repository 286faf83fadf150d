package main

import (
	"fmt"

	"github.com/hupe1980/rvec/scalar"
	"github.com/hupe1980/rvec/serialize"
	"github.com/hupe1980/rvec/vector"
	"github.com/urfave/cli/v2"
)

func (e *env) encodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     "parse values as a character vector, cast them and write the result",
		ArgsUsage: "VALUES...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Value:   "character",
				Usage:   "element kind of the written vector",
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"out", "o"},
				Usage:    "file to write the vector to",
				Required: true,
			},
			&cli.IntSliceFlag{
				Name:  "dim",
				Usage: "dimensions, e.g. --dim 2,3",
			},
			&cli.StringSliceFlag{
				Name:  "names",
				Usage: "element names, e.g. --names a,b,c",
			},
		},
		Action: func(c *cli.Context) error {
			kind, err := scalar.ParseKind(c.String("kind"))
			if err != nil {
				return err
			}

			args := c.Args().Slice()
			values := make([]string, len(args))
			for i, a := range args {
				if a == "NA" {
					a = scalar.NAString
				}
				values[i] = a
			}

			v, warnings, err := e.session.Cast(c.Context, vector.NewCharacter(values, vector.Incomplete), kind)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			printWarnings(c.App.ErrWriter, warnings)

			if c.IsSet("dim") {
				if err := v.SetDimensions(c.IntSlice("dim")); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}
			if c.IsSet("names") {
				names := vector.NewCharacter(c.StringSlice("names"), vector.Complete)
				if err := v.SetNames(names); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}

			output := c.String("output")
			n, err := serialize.WriteFile(output, v, serialize.WithCompression(e.session.Compression()))
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			fmt.Fprintf(c.App.Writer, "wrote %s to %s (%d bytes)\n", v, output, n)
			return nil
		},
	}
}
