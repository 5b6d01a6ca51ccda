package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:                   AppName,
		Usage:                  "Organizes media files from a card into a date-bucketed archive",
		UseShortOptionHandling: true,
		Commands: []*cli.Command{
			{
				Name:        "import",
				Usage:       "Imports media from a card or folder into YYYY.MM folders.",
				Description: "Recursively scans the source, groups each main file with its sidecars and copies them into <destination>/<year>.<month>, skipping files that already exist with identical content.",
				ArgsUsage:   "source destination",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "skip-mov",
						Value: false,
						Usage: "Skip .mov files.",
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Value:   false,
						Aliases: []string{"v"},
						Usage:   "Show detailed per-file output.",
					},
					&cli.IntFlag{
						Name:    "workers",
						Value:   DefaultWorkers,
						Aliases: []string{"w"},
						Usage:   "Number of parallel copy workers.",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return errors.New("source and destination directory arguments are missing")
					}
					if c.NArg() < 2 {
						return errors.New("destination directory argument is missing")
					}

					src, _ := filepath.Abs(c.Args().Get(0))
					dest, _ := filepath.Abs(c.Args().Get(1))

					opts := NewImportOptions(src, dest)
					opts.Verbose = c.Bool("verbose")
					opts.Workers = c.Int("workers")
					if c.Bool("skip-mov") {
						opts.SkipExtension = DefaultSkipExtension
					}

					rep := NewConsoleReporter(opts.Verbose)
					_, err := runImport(c.Context, opts, rep)
					return tracerr.Wrap(err)
				},
			},
			{
				Name:      "sync",
				Usage:     "Mirrors one archive tree onto another using rsync.",
				ArgsUsage: "source destination",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "exclude-mov",
						Value: false,
						Usage: "Exclude .mov files from syncing.",
					},
					&cli.BoolFlag{
						Name:  "delete",
						Value: false,
						Usage: "Delete destination files that no longer exist in the source.",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() < 2 {
						return errors.New("source and destination directory arguments are required")
					}

					opts := SyncOptions{
						SrcDir:  c.Args().Get(0),
						DestDir: c.Args().Get(1),
						Delete:  c.Bool("delete"),
					}
					if c.Bool("exclude-mov") {
						opts.ExcludeExt = DefaultSkipExtension
					}

					return runSync(c.Context, opts, NewConsoleReporter(false))
				},
			},
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		tracerr.Print(err)
		os.Exit(1)
	}
}
