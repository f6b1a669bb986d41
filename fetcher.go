package main

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/feedsnap/data"
	"golang.org/x/net/html/charset"
	log "gopkg.in/inconshreveable/log15.v2"
)

const fetchTimeout = 30 * time.Second

var userAgent = "feedsnap/" + version

type FeedFetcher struct {
	client *http.Client
	logger log.Logger
}

func NewFeedFetcher(logger log.Logger) *FeedFetcher {
	return &FeedFetcher{
		client: &http.Client{Timeout: fetchTimeout},
		logger: logger,
	}
}

// FetchFeed performs one GET against feedURL and parses the response body as
// an RSS document. Network failures, non-2xx statuses, and bodies without a
// recognizable channel element all produce an error and no feed.
func (f *FeedFetcher) FetchFeed(feedURL string) (*data.RawFeed, error) {
	f.logger.Info("fetching feed", "url", feedURL)

	req, err := http.NewRequest("GET", feedURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml, */*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("Bad HTTP response: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("Unable to read response body: %v", err)
	}

	feed, err := parseFeed(feedURL, body)
	if err != nil {
		return nil, err
	}

	if len(feed.Items) == 0 {
		f.logger.Warn("no items found in feed", "url", feedURL)
	}

	return feed, nil
}

func parseFeed(feedURL string, body []byte) (*data.RawFeed, error) {
	type Item struct {
		Title       string   `xml:"title"`
		Links       []string `xml:"link"`
		PubDate     string   `xml:"pubDate"`
		Description string   `xml:"description"`
	}

	type Channel struct {
		Title       string   `xml:"title"`
		Links       []string `xml:"link"`
		Description string   `xml:"description"`
		Item        []Item   `xml:"item"`
	}

	var rss struct {
		Channel *Channel `xml:"channel"`
	}

	if err := parseXML(body, &rss); err != nil {
		return nil, fmt.Errorf("Unable to parse feed: %v", err)
	}
	if rss.Channel == nil {
		return nil, errors.New("no channel")
	}

	feed := &data.RawFeed{
		URL:         feedURL,
		Title:       strings.TrimSpace(rss.Channel.Title),
		Link:        firstText(rss.Channel.Links),
		Description: strings.TrimSpace(rss.Channel.Description),
	}

	feed.Items = make([]data.RawItem, len(rss.Channel.Item))
	for i, item := range rss.Channel.Item {
		feed.Items[i] = data.RawItem{
			Title:       strings.TrimSpace(item.Title),
			Link:        firstText(item.Links),
			Published:   strings.TrimSpace(item.PubDate),
			Description: strings.TrimSpace(item.Description),
		}
	}

	return feed, nil
}

// firstText returns the first value with any text. An unqualified link tag
// also matches atom:link elements, which have no character data, so a feed's
// real <link> can be preceded or followed by empty matches.
func firstText(values []string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// Parse XML laxly
func parseXML(body []byte, doc interface{}) error {
	buf := bytes.NewBuffer(body)
	decoder := xml.NewDecoder(buf)
	decoder.CharsetReader = charset.NewReaderLabel
	decoder.Entity = xml.HTMLEntity

	return decoder.Decode(doc)
}
