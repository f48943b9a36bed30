package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/metaboclass/metaboclass/pkg/classify"
	apperrors "github.com/metaboclass/metaboclass/pkg/errors"
	"github.com/metaboclass/metaboclass/pkg/httputil"
	"github.com/metaboclass/metaboclass/pkg/integrations/hmdb"
	"github.com/metaboclass/metaboclass/pkg/integrations/kegg"
	"github.com/metaboclass/metaboclass/pkg/observability"
)

// Runner executes classification runs against a pair of database clients.
//
// The Runner is stateless apart from its clients and logger; it does not
// retain run results. Runs themselves are sequential by design: one
// metabolite, one source, one request at a time.
type Runner struct {
	HMDB   *hmdb.Client
	KEGG   *kegg.Client
	Logger *log.Logger
}

// NewRunner creates a runner with the given clients.
// Nil clients default to the production endpoints; a nil logger discards.
func NewRunner(h *hmdb.Client, k *kegg.Client, logger *log.Logger) *Runner {
	if h == nil {
		h = hmdb.NewClient("")
	}
	if k == nil {
		k = kegg.NewClient("")
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{HMDB: h, KEGG: k, Logger: logger}
}

// Result bundles the result table with run statistics.
type Result struct {
	Table *classify.Table
	Stats Stats
}

// Classify runs the full pipeline over names and returns the result table.
//
// Every occurrence in names is looked up, including duplicates; the table
// keeps one row per unique name with the last lookup winning. The run
// completes even when every lookup fails; the only error returned is
// context cancellation.
func (r *Runner) Classify(ctx context.Context, names []string, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}
	logger = logger.With("run_id", uuid.NewString())

	result := &Result{Stats: Stats{Names: len(names)}}

	hmdbStart := time.Now()
	hmdbRecs, err := r.queryHMDB(ctx, names, opts, logger)
	if err != nil {
		return nil, err
	}
	result.Stats.HMDBTime = time.Since(hmdbStart)

	keggStart := time.Now()
	keggRecs, err := r.queryKEGG(ctx, names, opts, logger)
	if err != nil {
		return nil, err
	}
	result.Stats.KEGGTime = time.Since(keggStart)

	classifyStart := time.Now()
	observability.Pipeline().OnClassifyStart(ctx, len(names))

	table := classify.NewTable()
	for _, name := range names {
		table.Put(classify.Merge(name, hmdbRecs[name], keggRecs[name]))
	}
	observability.Pipeline().OnClassifyComplete(ctx, table.Len(), time.Since(classifyStart))

	result.Table = table
	result.Stats.Rows = table.Len()
	for _, row := range table.Rows() {
		if row.HMDB.Status.State == classify.StateFound {
			result.Stats.HMDBFound++
		}
		if row.KEGG.Status.State == classify.StateFound {
			result.Stats.KEGGFound++
		}
	}

	logger.Info("classified metabolites",
		"names", result.Stats.Names,
		"rows", result.Stats.Rows,
		"hmdb_found", result.Stats.HMDBFound,
		"kegg_found", result.Stats.KEGGFound,
		"hmdb_duration", result.Stats.HMDBTime.Round(time.Millisecond),
		"kegg_duration", result.Stats.KEGGTime.Round(time.Millisecond))

	return result, nil
}

func (r *Runner) queryHMDB(ctx context.Context, names []string, opts Options, logger *log.Logger) (map[string]classify.HMDBRecord, error) {
	limiter := httputil.NewLimiter(opts.HMDBDelay)
	recs := make(map[string]classify.HMDBRecord, len(names))

	for i, name := range names {
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}
		r.emitProgress(ctx, opts, progressFrac(i, len(names), hmdbProgressOffset), SourceHMDB, name)

		observability.Pipeline().OnLookupStart(ctx, SourceHMDB, name)
		start := time.Now()
		rec := r.lookupHMDB(ctx, name, logger)
		observability.Pipeline().OnLookupComplete(ctx, SourceHMDB, name, rec.Status.String(), time.Since(start))

		recs[name] = rec
	}
	return recs, nil
}

func (r *Runner) lookupHMDB(ctx context.Context, name string, logger *log.Logger) classify.HMDBRecord {
	id, err := r.HMDB.SearchID(ctx, name)
	if err != nil {
		// Resolution failures collapse to "ID not found": a missing match
		// and a transient network error are indistinguishable here. The
		// distinction survives in the debug log.
		logger.Debug("hmdb resolution failed", "name", name, "code", apperrors.GetCode(err))
		return classify.HMDBRecord{Status: classify.IDNotFound()}
	}

	m, err := r.HMDB.FetchMetabolite(ctx, id)
	if err != nil {
		logger.Debug("hmdb fetch failed", "name", name, "id", id, "code", apperrors.GetCode(err))
		return classify.HMDBRecord{Status: classify.Errored(apperrors.UserMessage(err))}
	}

	return classify.HMDBRecord{
		ID:         m.ID,
		SuperClass: m.SuperClass,
		Class:      m.Class,
		SubClass:   m.SubClass,
		Pathways:   m.Pathways,
		Status:     classify.Found(),
	}
}

func (r *Runner) queryKEGG(ctx context.Context, names []string, opts Options, logger *log.Logger) (map[string]classify.KEGGRecord, error) {
	limiter := httputil.NewLimiter(opts.KEGGDelay)
	recs := make(map[string]classify.KEGGRecord, len(names))

	for i, name := range names {
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}
		r.emitProgress(ctx, opts, progressFrac(i, len(names), keggProgressOffset), SourceKEGG, name)

		observability.Pipeline().OnLookupStart(ctx, SourceKEGG, name)
		start := time.Now()
		rec := r.lookupKEGG(ctx, name, logger)
		observability.Pipeline().OnLookupComplete(ctx, SourceKEGG, name, rec.Status.String(), time.Since(start))

		recs[name] = rec
	}
	return recs, nil
}

func (r *Runner) lookupKEGG(ctx context.Context, name string, logger *log.Logger) classify.KEGGRecord {
	id, err := r.KEGG.FindID(ctx, name)
	if err != nil {
		logger.Debug("kegg resolution failed", "name", name, "code", apperrors.GetCode(err))
		return classify.KEGGRecord{Status: classify.IDNotFound()}
	}

	// The detail and pathway-link requests are one failure unit: a partial
	// failure yields neither.
	c, err := r.KEGG.FetchCompound(ctx, id)
	if err != nil {
		logger.Debug("kegg fetch failed", "name", name, "id", id, "code", apperrors.GetCode(err))
		return classify.KEGGRecord{Status: classify.Errored(apperrors.UserMessage(err))}
	}

	return classify.KEGGRecord{
		ID:          c.ID,
		Type:        c.Type,
		Pathways:    c.Pathways,
		Description: c.Description,
		Status:      classify.Found(),
	}
}

func (r *Runner) emitProgress(ctx context.Context, opts Options, frac float64, source, name string) {
	observability.Pipeline().OnProgress(ctx, frac, source, name)
	if opts.Progress != nil {
		opts.Progress(frac, source, name)
	}
}

func progressFrac(i, total int, offset float64) float64 {
	if total == 0 {
		return 1
	}
	return (float64(i) + offset) / float64(total)
}
