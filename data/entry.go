package data

// Entry is one normalized feed item as it appears in a snapshot file. Fields
// missing from the source feed are empty strings. Published is the source's
// own date text, passed through unparsed.
type Entry struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
	Summary   string `json:"summary"`
}
