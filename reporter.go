package main

import (
	"fmt"
	"io"

	"github.com/jackc/feedsnap/data"
)

// reporter prints human-readable run status. Summary lines always print;
// per-feed progress and failure detail only when verbose.
type reporter struct {
	out     io.Writer
	verbose bool
}

func (r *reporter) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *reporter) progressf(format string, args ...interface{}) {
	if r.verbose {
		r.printf(format, args...)
	}
}

func (r *reporter) failures(failures []data.FetchFailure) {
	if !r.verbose || len(failures) == 0 {
		return
	}

	r.printf("\nThe following feeds could not be processed:")
	for _, f := range failures {
		r.printf("  - %s: %s", f.URL, f.Reason)
	}
}
