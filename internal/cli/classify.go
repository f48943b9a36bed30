package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	mio "github.com/metaboclass/metaboclass/pkg/io"
	"github.com/metaboclass/metaboclass/pkg/integrations/hmdb"
	"github.com/metaboclass/metaboclass/pkg/integrations/kegg"
	"github.com/metaboclass/metaboclass/pkg/pipeline"
)

func newClassifyCmd() *cobra.Command {
	var (
		output     string
		format     string
		column     string
		configPath string
		hmdbDelay  time.Duration
		keggDelay  time.Duration
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "classify <input.csv>",
		Short: "Resolve, merge, and classify metabolite names",
		Long: `Classify reads metabolite names from the first column of a CSV file (or a
named column via --column), resolves each name against HMDB and KEGG,
merges the per-source records, and writes the classified result table.

Each metabolite takes roughly 2-3 seconds: both databases are queried
sequentially with a politeness delay between requests.`,
		Example: `  metaboclass classify metabolites.csv
  metaboclass classify metabolites.csv -o results.csv
  metaboclass classify metabolites.csv --format json --column compound
  metaboclass classify metabolites.csv --hmdb-delay 2s --kegg-delay 1s`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			if format != "csv" && format != "json" {
				return fmt.Errorf("invalid format: %q (must be csv or json)", format)
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("hmdb-delay") {
				cfg.HMDB.Delay.Duration = hmdbDelay
			}
			if cmd.Flags().Changed("kegg-delay") {
				cfg.KEGG.Delay.Duration = keggDelay
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			names, err := mio.ReadNames(f, column)
			f.Close()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			logger.Info("read metabolite names", "count", len(names), "file", args[0])

			runner := pipeline.NewRunner(
				hmdb.NewClient(cfg.HMDB.BaseURL),
				kegg.NewClient(cfg.KEGG.BaseURL),
				logger,
			)

			opts := pipeline.Options{
				HMDBDelay: cfg.HMDB.Delay.Duration,
				KEGGDelay: cfg.KEGG.Delay.Duration,
				Logger:    logger,
			}

			var bar *progressBar
			if !quiet {
				bar = newProgressBar(os.Stderr)
				opts.Progress = bar.Update
			}

			track := newProgress(logger)
			res, err := runner.Classify(ctx, names, opts)
			if bar != nil {
				bar.Finish()
			}
			if err != nil {
				return err
			}
			track.done(fmt.Sprintf("Classified %d metabolites", res.Stats.Rows))

			if output == "" || output == "-" {
				switch format {
				case "json":
					err = mio.WriteJSON(res.Table, os.Stdout)
				default:
					err = mio.WriteCSV(res.Table, os.Stdout)
				}
			} else {
				err = mio.ExportFile(res.Table, output, format)
			}
			if err != nil {
				printError(os.Stderr, "export failed: %v", err)
				return err
			}

			if !quiet {
				if output != "" && output != "-" {
					printSuccess(os.Stderr, "wrote %s", output)
				}
				renderSummary(os.Stderr, res)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "output format: csv or json")
	cmd.Flags().StringVar(&column, "column", "", "input column holding metabolite names (default: first column)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file overriding endpoints and delays")
	cmd.Flags().DurationVar(&hmdbDelay, "hmdb-delay", pipeline.DefaultHMDBDelay, "minimum interval between HMDB lookups")
	cmd.Flags().DurationVar(&keggDelay, "kegg-delay", pipeline.DefaultKEGGDelay, "minimum interval between KEGG lookups")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress bar and summary")

	return cmd
}
