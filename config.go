package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/urfave/cli"
	"github.com/vaughan0/go-ini"
	log "gopkg.in/inconshreveable/log15.v2"
)

const defaultConfigName = "feedsnap.conf"

// runConfig is the resolved configuration for one run. Explicitly set flags
// override config file values, which override flag defaults. Relative paths
// resolve against the executable's directory so a deployment keeps its feed
// list and data next to the binary no matter where it is launched from.
type runConfig struct {
	feedsPath string
	dataDir   string
	limit     int
	verbose   bool
	logLevel  string
}

func loadRunConfig(c *cli.Context) (*runConfig, error) {
	config := &runConfig{
		feedsPath: c.String("feeds"),
		dataDir:   c.String("data-dir"),
		limit:     c.Int("limit"),
		verbose:   c.Bool("verbose"),
		logLevel:  c.String("log-level"),
	}

	baseDir := exeDir()

	conf, err := loadConfigFile(resolvePath(baseDir, c.String("config")), c.IsSet("config"))
	if err != nil {
		return nil, err
	}
	if conf != nil {
		if err := applyConfigFile(config, conf, c); err != nil {
			return nil, err
		}
	}

	if config.limit < 0 {
		return nil, fmt.Errorf("Bad limit %d: must not be negative", config.limit)
	}
	if config.verbose {
		config.logLevel = "debug"
	}

	config.feedsPath = resolvePath(baseDir, config.feedsPath)
	config.dataDir = resolvePath(baseDir, config.dataDir)

	return config, nil
}

// loadConfigFile reads the INI file at path. A missing file is only an error
// when the path was given explicitly; the default file next to the executable
// is optional.
func loadConfigFile(path string, explicit bool) (ini.File, error) {
	conf, err := ini.LoadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("Failed to load config file: %v", err)
	}

	return conf, nil
}

func applyConfigFile(config *runConfig, conf ini.File, c *cli.Context) error {
	if !c.IsSet("feeds") {
		if v, ok := conf.Get("fetch", "feeds"); ok {
			config.feedsPath = v
		}
	}

	if !c.IsSet("limit") {
		if v, ok := conf.Get("fetch", "limit"); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("Bad limit in config file: %v", err)
			}
			config.limit = n
		}
	}

	if !c.IsSet("data-dir") {
		if v, ok := conf.Get("output", "data-dir"); ok {
			config.dataDir = v
		}
	}

	if !c.IsSet("log-level") {
		if v, ok := conf.Get("log", "level"); ok {
			config.logLevel = v
		}
	}

	return nil
}

// exeDir returns the directory holding the running binary, or "." when it
// cannot be determined.
func exeDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}

	return filepath.Dir(exe)
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(baseDir, path)
}

func newLogger(level string) (log.Logger, error) {
	logger := log.New()
	if err := setFilterHandler(level, logger, log.StdoutHandler); err != nil {
		return nil, err
	}

	return logger, nil
}

func setFilterHandler(level string, logger log.Logger, handler log.Handler) error {
	if level == "none" {
		logger.SetHandler(log.DiscardHandler())
		return nil
	}

	lvl, err := log.LvlFromString(level)
	if err != nil {
		return fmt.Errorf("Bad log level: %v", err)
	}
	logger.SetHandler(log.LvlFilterHandler(lvl, handler))

	return nil
}
