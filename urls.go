package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "gopkg.in/inconshreveable/log15.v2"
)

// loadFeedURLs reads the feed URL list at path: one URL per line, surrounding
// whitespace trimmed, blank lines and # comments skipped. Order is preserved
// and duplicates are kept. A path ending in .opml is read as an OPML
// subscription document instead.
func loadFeedURLs(path string, logger log.Logger) ([]string, error) {
	fi, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("Feeds file %q not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("Cannot read feeds file %q: %v", path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%q is not a file", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".opml") {
		return loadOpmlURLs(path, logger)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot read feeds file %q: %v", path, err)
	}
	defer file.Close()

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("Cannot read feeds file %q: %v", path, err)
	}

	logger.Info("loaded feed urls", "count", len(urls), "path", path)

	return urls, nil
}
