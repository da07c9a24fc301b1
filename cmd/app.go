package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"db-scaffold/internal/engine"
	"db-scaffold/internal/schema"

	"github.com/fatih/color"
	"github.com/gosuri/uiprogress"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	appTables []string
	appTheme  string
	appForce  bool
	appDryRun bool
)

var appCmd = &cobra.Command{
	Use:   "app",
	Short: "Create model, controller and views for many tables at once",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		Log.Info("analyzing schema", zap.String("driver", DriverName), zap.String("schema", SchemaName))
		allTables, err := newSource().Analyze(ctx)
		if err != nil {
			return err
		}
		snapshot := schema.NewSnapshot(allTables)

		// --tables, then settings.tables, then every table
		targetTableNames := appTables
		if len(targetTableNames) == 0 {
			targetTableNames = viper.GetStringSlice("settings.tables")
		}
		targets, err := selectTables(snapshot.Tables(), targetTableNames)
		if err != nil {
			return err
		}

		theme := appTheme
		if theme == "" {
			theme = viper.GetString("settings.theme")
		}
		jobs := engine.AppJobs(targets, theme)

		if appDryRun {
			fmt.Println("Dry run: nothing will be written.")
			for i, t := range targets {
				fmt.Printf("[%02d] %s\n", i+1, t)
			}
			fmt.Printf("%d tables, %d jobs\n", len(targets), len(jobs))
			return nil
		}

		b, err := newBuilder(snapshot)
		if err != nil {
			return err
		}

		start := time.Now()
		uiprogress.Start()
		bar := uiprogress.AddBar(len(jobs)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Generating: "
		})

		results := b.Run(ctx, jobs, func() { bar.Incr() })
		uiprogress.Stop()

		out := cmd.OutOrStdout()
		w := NewWriter(afero.NewOsFs(), viper.GetString("settings.base_path"), appForce, out)
		written, writeErr := writeResults(w, results)
		printReport(out, results, written)
		Log.Info("done", zap.Duration("elapsed", time.Since(start)))

		return errors.Join(writeErr, engine.Failed(results))
	},
}

func init() {
	RootCmd.AddCommand(appCmd)

	appCmd.Flags().StringSliceVarP(&appTables, "tables", "t", []string{}, "Specific tables to scaffold (comma-separated)")
	appCmd.Flags().StringVar(&appTheme, "theme", "", "view theme under themes/ (overrides settings.theme)")
	appCmd.Flags().BoolVarP(&appForce, "force", "f", false, "overwrite existing files")
	appCmd.Flags().BoolVar(&appDryRun, "dry-run", false, "list the tables without generating anything")
}

// selectTables returns the catalog names matching requested, in request
// order, compared case-insensitively. An empty request selects everything.
func selectTables(all, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return all, nil
	}

	byName := make(map[string]string, len(all))
	for _, t := range all {
		byName[strings.ToLower(t)] = t
	}

	var out []string
	var missing []string
	for _, r := range requested {
		if t, ok := byName[strings.ToLower(strings.TrimSpace(r))]; ok {
			out = append(out, t)
		} else {
			missing = append(missing, r)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no matching tables found for inputs: %v", requested)
	}
	if len(missing) > 0 {
		Log.Warn("tables not found", zap.Strings("tables", missing))
	}
	return out, nil
}

// writeResults writes every result's artifacts. A failed write does not stop
// the others; the failures come back joined.
func writeResults(w *Writer, results []engine.Result) (int, error) {
	written := 0
	var errs []error
	for _, r := range results {
		n, err := w.WriteAll(r.Artifacts)
		written += n
		if err != nil {
			errs = append(errs, fmt.Errorf("%s %s: %w", r.Job.Kind, r.Table, err))
		}
	}
	return written, errors.Join(errs...)
}

func printReport(out io.Writer, results []engine.Result, written int) {
	fmt.Fprintln(out, "\nSummary Report:")
	for i, r := range results {
		status := color.GreenString(r.Status)
		if r.Status != engine.StatusOK {
			status = color.YellowString(r.Status)
		}
		fmt.Fprintf(out, "[%02d/%02d] %-10s %-24s : %d artifacts - %s\n",
			i+1, len(results), r.Job.Kind, r.Table, len(r.Artifacts), status)
		if r.Err != nil {
			fmt.Fprintf(out, "    └ Error: %v\n", r.Err)
		}
	}
	fmt.Fprintln(out, "--------------------------------------------------")
	fmt.Fprintf(out, "Files written: %d\n", written)
}
