// slabsum prints the last N months of transaction summary data from a local
// clover summary document, going through the slab cache like a real client
// would.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/slabcache"
	"github.com/unkn0wn-root/slabcache/fetch/cloverfile"
	zaplog "github.com/unkn0wn-root/slabcache/log/zap"
)

var (
	dataFile string
	asJSON   bool
	ttl      time.Duration
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:          "slabsum [months]",
	Short:        "Show the last N months of transaction summary data",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		months := 6
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("months must be a number, got %q", args[0])
			}
			months = n
		}

		zl, err := buildLogger(verbose)
		if err != nil {
			return err
		}
		defer zl.Sync() //nolint:errcheck // stderr sync failure is uninteresting

		svc, err := slabcache.New(slabcache.Options{
			Fetcher: cloverfile.New(dataFile),
			TTL:     ttl,
			Logger:  zaplog.Logger{L: zl},
		})
		if err != nil {
			return err
		}
		defer svc.Close(cmd.Context()) //nolint:errcheck

		w, err := svc.Request(cmd.Context(), months)
		if err != nil {
			return err
		}
		if len(w) == 0 {
			return fmt.Errorf("no summary data for the last %d months", months)
		}

		// Display always shows the normalized window. Derive is idempotent,
		// so already-normalized results pass through unchanged.
		w = slabcache.Derive(w, months, time.Now())

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(w)
		}
		return renderTable(os.Stdout, w)
	},
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func renderTable(out io.Writer, w slabcache.Window) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tMONTH\tSETTLED\tAUTHORIZED")
	for _, e := range w {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", e.Position, e.Month, e.Settled, e.Authorized)
	}
	return tw.Flush()
}

func init() {
	rootCmd.Flags().StringVarP(&dataFile, "file", "f", "summary.json", "clover summary JSON document")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "print the window as indented JSON")
	rootCmd.Flags().DurationVar(&ttl, "ttl", 0, "cache freshness window (default 1h)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
