package main

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/jackc/feedsnap/data"
	log "gopkg.in/inconshreveable/log15.v2"
)

// Runner executes one batch pass over the configured feed list.
type Runner struct {
	config   *runConfig
	fetcher  *FeedFetcher
	writer   *SnapshotWriter
	reporter *reporter
	logger   log.Logger
}

func NewRunner(config *runConfig, fetcher *FeedFetcher, writer *SnapshotWriter, reporter *reporter, logger log.Logger) *Runner {
	return &Runner{
		config:   config,
		fetcher:  fetcher,
		writer:   writer,
		reporter: reporter,
		logger:   logger,
	}
}

// RunResult summarizes one completed pass.
type RunResult struct {
	URLCount   int
	Entries    []data.Entry
	Failures   []data.FetchFailure
	OutputPath string // empty when no snapshot was written
}

// Run loads the feed URL list, fetches each feed in order, and saves the
// combined entries. A feed that fails to fetch or parse is recorded and
// skipped; the run keeps going. An unreadable URL list, an empty one, or a
// failed save aborts the run with an error.
func (r *Runner) Run() (*RunResult, error) {
	urls, err := loadFeedURLs(r.config.feedsPath, r.logger)
	if err != nil {
		return nil, err
	}
	if len(urls) == 0 {
		return nil, errors.New("No feed URLs found")
	}

	r.reporter.progressf("Loaded %d feed URLs from %s", len(urls), r.config.feedsPath)

	result := &RunResult{URLCount: len(urls)}
	for _, feedURL := range urls {
		feed, err := r.fetcher.FetchFeed(feedURL)
		if err != nil {
			r.logger.Error("fetchFeed failed", "url", feedURL, "error", err)
			result.Failures = append(result.Failures, data.FetchFailure{URL: feedURL, Reason: err.Error()})
			continue
		}

		entries := feed.Entries()
		if r.config.limit > 0 && len(entries) > r.config.limit {
			r.reporter.progressf("Limiting entries from %s to %d (from %d)", feedURL, r.config.limit, len(entries))
			entries = entries[:r.config.limit]
		}
		result.Entries = append(result.Entries, entries...)

		r.logger.Info("processed feed", "url", feedURL, "entries", len(entries))
		r.reporter.progressf("Fetched %d entries from %s", len(entries), feedURL)
	}

	r.reporter.failures(result.Failures)

	if len(result.Entries) == 0 {
		r.reporter.printf("No entries found in any feeds.")
		return result, nil
	}

	path, err := r.writer.Save(result.Entries)
	if err != nil {
		return result, fmt.Errorf("Failed to save entries: %v", err)
	}
	result.OutputPath = path

	r.reporter.printf("Successfully saved %d entries to %s", len(result.Entries), path)
	r.reporter.printf("%s", summarizeSources(result.Entries))

	return result, nil
}

// summarizeSources reports how many distinct hosts the entries link to.
// Entries without a parseable absolute link count toward the total but not
// toward the source count.
func summarizeSources(entries []data.Entry) string {
	sources := make(map[string]struct{})
	for _, e := range entries {
		if e.Link == "" {
			continue
		}
		u, err := url.Parse(e.Link)
		if err != nil || u.Host == "" {
			continue
		}
		sources[u.Host] = struct{}{}
	}

	return fmt.Sprintf("Found %d entries from %d source(s).", len(entries), len(sources))
}
