package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

const version = "0.1.0"

func main() {
	// -v is taken by --verbose.
	cli.VersionFlag = cli.BoolFlag{Name: "version", Usage: "print the version"}

	app := cli.NewApp()
	app.Name = "feedsnap"
	app.Usage = "fetch RSS feeds and save a dated JSON snapshot"
	app.Description = "feedsnap reads a list of feed URLs, fetches every feed once, and writes\nall entries to <data-dir>/news_<YYYYMMDD>.json."
	app.Version = version
	app.Author = "Jack Christensen"
	app.Email = "jack@jackchristensen.com"

	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "feeds, f", Value: "feed_urls.txt", Usage: "path to file containing feed URLs"},
		cli.StringFlag{Name: "data-dir, d", Value: "data", Usage: "directory to store output files"},
		cli.IntFlag{Name: "limit, l", Usage: "max entries per feed (0 means no limit)"},
		cli.BoolFlag{Name: "verbose, v", Usage: "print detailed progress"},
		cli.StringFlag{Name: "log-level", Value: "info", Usage: "log level: none, debug, info, warn, error, or crit"},
		cli.StringFlag{Name: "config, c", Value: defaultConfigName, Usage: "path to config file"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	config, err := loadRunConfig(c)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	logger, err := newLogger(config.logLevel)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	fetcher := NewFeedFetcher(logger.New("module", "fetcher"))
	writer := NewSnapshotWriter(config.dataDir, logger.New("module", "snapshot"))
	rep := &reporter{out: os.Stdout, verbose: config.verbose}

	runner := NewRunner(config, fetcher, writer, rep, logger)
	if _, err := runner.Run(); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	return nil
}
