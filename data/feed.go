package data

// RawFeed is the transient in-memory form of one fetched RSS document.
type RawFeed struct {
	URL         string
	Title       string
	Link        string
	Description string
	Items       []RawItem
}

type RawItem struct {
	Title       string
	Link        string
	Published   string
	Description string
}

// Entries maps a feed's raw items to output entries, one per item in document
// order, renaming item description to summary.
func (f *RawFeed) Entries() []Entry {
	entries := make([]Entry, len(f.Items))
	for i, item := range f.Items {
		entries[i] = Entry{
			Title:     item.Title,
			Link:      item.Link,
			Published: item.Published,
			Summary:   item.Description,
		}
	}
	return entries
}

// FetchFailure records why one feed URL produced no entries.
type FetchFailure struct {
	URL    string
	Reason string
}
