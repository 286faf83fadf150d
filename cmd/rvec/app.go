package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hupe1980/rvec"
	"github.com/hupe1980/rvec/coerce"
	"github.com/urfave/cli/v2"
)

type env struct {
	session *rvec.Session
}

func newApp(stdout, stderr io.Writer) *cli.App {
	e := &env{}
	return &cli.App{
		Name:      "rvec",
		Usage:     "encode, inspect and cast serialized vectors",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
			},
			&cli.StringFlag{
				Name:  "compression",
				Usage: "block compression for written files: none, lz4 or zstd",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "minimum log level: debug, info, warn or error",
			},
		},
		Before: func(c *cli.Context) error {
			s, err := newSession(c, stderr)
			if err != nil {
				return err
			}
			e.session = s
			return nil
		},
		Commands: []*cli.Command{
			e.encodeCommand(),
			e.inspectCommand(),
			e.castCommand(),
		},
	}
}

func newSession(c *cli.Context, stderr io.Writer) (*rvec.Session, error) {
	cfg := rvec.DefaultConfig()
	cfg.LogLevel = "error"
	if c.IsSet("config") {
		loaded, err := rvec.LoadConfig(c.String("config"))
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if c.IsSet("compression") {
		cfg.Compression = c.String("compression")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, _ := cfg.Level()
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(stderr, opts)
	if strings.EqualFold(cfg.LogFormat, "json") {
		handler = slog.NewJSONHandler(stderr, opts)
	}

	return rvec.New(rvec.WithConfig(cfg), rvec.WithLogger(rvec.NewLogger(handler))), nil
}

func printWarnings(w io.Writer, warnings coerce.Warnings) {
	msgs := warnings.Messages()
	switch len(msgs) {
	case 0:
	case 1:
		fmt.Fprintf(w, "Warning message:\n%s\n", msgs[0])
	default:
		fmt.Fprintln(w, "Warning messages:")
		for i, m := range msgs {
			fmt.Fprintf(w, "%d: %s\n", i+1, m)
		}
	}
}
