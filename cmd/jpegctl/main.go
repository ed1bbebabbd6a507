package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/harrybraviner/jpeg-decoder/internal/logging"
	"github.com/harrybraviner/jpeg-decoder/internal/scan"
)

func main() {
	logging.ConfigureRuntime()

	app := &cli.App{
		Name:      "jpegctl",
		Usage:     "decode a JPEG file into its marker segments",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a TOML config file",
			},
			&cli.IntFlag{
				Name:    "preview",
				Aliases: []string{"p"},
				Usage:   "payload bytes to preview per segment (0 disables)",
				Value:   -1,
			},
			&cli.BoolFlag{
				Name:  "no-offsets",
				Usage: "omit byte offsets from the report",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("jpegctl failed")
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	switch {
	case c.NArg() < 1:
		return fmt.Errorf("too few arguments: expected a file to decode")
	case c.NArg() > 1:
		return fmt.Errorf("too many arguments: expected a single file, got %d", c.NArg())
	}

	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if lvl, ok := logging.ParseLevel(cfg.LogLevel); ok {
		log.Logger = log.Logger.Level(lvl)
	}
	opts := cfg.scanOptions()
	if c.IsSet("preview") && c.Int("preview") >= 0 {
		opts.PreviewBytes = c.Int("preview")
	}
	if c.Bool("no-offsets") {
		opts.ShowOffsets = false
	}

	path := c.Args().First()
	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("bytes", len(buf)).Msg("loaded input")

	return scan.WriteReport(os.Stdout, buf, opts)
}
