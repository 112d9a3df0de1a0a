package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ecritures-dev/ecritures/internal/config"
	"github.com/ecritures-dev/ecritures/internal/journal"
)

func newTransformCommand() *cobra.Command {
	var output string
	var cfgPath string
	var groupBy string

	cmd := &cobra.Command{
		Use:   "transform <orders_export.csv>",
		Short: "Convert a Shopify order export into journal entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd.OutOrStdout(), args[0], output, cfgPath, groupBy)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <input>_journal.csv)")
	cmd.Flags().StringVar(&cfgPath, "config", "", "path to ecritures.yaml")
	cmd.Flags().StringVar(&groupBy, "group-by", "", "entry grouping: order or day")

	return cmd
}

func runTransform(out io.Writer, input, output, cfgPath, groupBy string) error {
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return err
	}
	if groupBy != "" {
		cfg.Journal.GroupBy = groupBy
	}

	chart, opts, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening export: %w", err)
	}
	defer f.Close()

	res, err := journal.Transform(f, chart, opts)
	if err != nil {
		return err
	}

	if output == "" {
		output = defaultOutputPath(input)
	}

	// Render fully in memory first so a generation error never leaves a
	// partial file behind.
	var buf bytes.Buffer
	if err := res.WriteCSV(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing journal: %w", err)
	}

	fmt.Fprintf(out, "Read %d orders over %d days\n", res.Orders, res.Days)
	fmt.Fprintf(out, "Generated %d journal rows\n", len(res.Entries))
	fmt.Fprintf(out, "Output: %s\n", output)
	return nil
}

// defaultOutputPath turns "orders_export.csv" into
// "orders_export_journal.csv".
func defaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	if ext == "" {
		ext = ".csv"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "_journal" + ext
}
