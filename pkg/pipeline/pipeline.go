// Package pipeline drives the metabolite classification pipeline.
//
// A [Runner] takes an ordered list of metabolite names and runs them
// through three phases:
//
//  1. HMDB: resolve each name to an accession and fetch its classification
//     and pathway document.
//  2. KEGG: resolve each name to a compound identifier and fetch its
//     flat-file record and pathway links.
//  3. Merge and classify every name into one row of a result table.
//
// Execution is fully sequential. Each source phase enforces a fixed
// politeness delay between consecutive items (1s for HMDB, 0.5s for KEGG by
// default), and every network call is bounded by a per-call deadline.
// Per-item failures are recorded as statuses on the item's row; they never
// abort the run. A run over a non-empty name list always yields a table
// with one row per unique name.
//
// # Usage
//
//	runner := pipeline.NewRunner(hmdb.NewClient(""), kegg.NewClient(""), logger)
//	table, err := runner.Classify(ctx, names, pipeline.Options{
//	    Progress: func(frac float64, source, name string) {
//	        fmt.Printf("\r%3.0f%% %s %s", frac*100, source, name)
//	    },
//	})
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Default politeness delays between consecutive items per source.
// These are crude fixed delays, not adaptive rate limits; KEGG documents a
// higher tolerance than HMDB's search frontend.
const (
	DefaultHMDBDelay = time.Second
	DefaultKEGGDelay = 500 * time.Millisecond
)

// Progress checkpoint offsets within one item's share of the run. The HMDB
// phase reports at 30% into the current item, the KEGG phase at 70%;
// consumers see fractions (i+offset)/N.
const (
	hmdbProgressOffset = 0.3
	keggProgressOffset = 0.7
)

// Source identifiers used in progress and hook events.
const (
	SourceHMDB = "hmdb"
	SourceKEGG = "kegg"
)

// ProgressFunc receives fractional progress through a run (0..1), the
// source phase currently executing, and the metabolite name being looked
// up. It is purely observational and has no control effect.
type ProgressFunc func(frac float64, source, name string)

// Options contains configuration for one classification run.
type Options struct {
	// HMDBDelay is the minimum interval between consecutive HMDB items.
	// Zero selects DefaultHMDBDelay; a negative value disables the delay.
	HMDBDelay time.Duration

	// KEGGDelay is the minimum interval between consecutive KEGG items.
	// Zero selects DefaultKEGGDelay; a negative value disables the delay.
	KEGGDelay time.Duration

	// Progress, if set, is called once per item per source phase.
	Progress ProgressFunc

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger

	validated bool
}

// ValidateAndSetDefaults applies defaults for a run. This method is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.HMDBDelay == 0 {
		o.HMDBDelay = DefaultHMDBDelay
	}
	if o.KEGGDelay == 0 {
		o.KEGGDelay = DefaultKEGGDelay
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Stats contains timing and outcome counts for a completed run.
type Stats struct {
	Names     int // input names, including duplicates
	Rows      int // unique names in the result table
	HMDBFound int
	KEGGFound int
	HMDBTime  time.Duration
	KEGGTime  time.Duration
}
