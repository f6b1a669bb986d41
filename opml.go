package main

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	log "gopkg.in/inconshreveable/log15.v2"
)

type OpmlDocument struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    OpmlHead `xml:"head"`
	Body    OpmlBody `xml:"body"`
}

type OpmlHead struct {
	Title string `xml:"title"`
}

type OpmlBody struct {
	Outlines []OpmlOutline `xml:"outline"`
}

type OpmlOutline struct {
	Text     string        `xml:"text,attr"`
	Title    string        `xml:"title,attr"`
	Type     string        `xml:"type,attr"`
	URL      string        `xml:"xmlUrl,attr"`
	Outlines []OpmlOutline `xml:"outline"`
}

// loadOpmlURLs reads an OPML subscription document and flattens its outline
// tree into feed URLs, depth-first in document order. Outlines without an
// xmlUrl attribute (folders) contribute nothing themselves but their children
// are still visited.
func loadOpmlURLs(path string, logger log.Logger) ([]string, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot read feeds file %q: %v", path, err)
	}

	doc, err := parseOpml(body)
	if err != nil {
		return nil, fmt.Errorf("Unable to parse OPML file %q: %v", path, err)
	}

	urls := outlineURLs(doc.Body.Outlines, nil)

	logger.Info("loaded feed urls", "count", len(urls), "path", path)

	return urls, nil
}

func parseOpml(body []byte) (*OpmlDocument, error) {
	var doc OpmlDocument
	if err := parseXML(body, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func outlineURLs(outlines []OpmlOutline, urls []string) []string {
	for _, o := range outlines {
		if u := strings.TrimSpace(o.URL); u != "" {
			urls = append(urls, u)
		}
		urls = outlineURLs(o.Outlines, urls)
	}
	return urls
}
