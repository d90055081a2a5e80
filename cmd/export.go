package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/reviewr/internal/engine"
	"github.com/sadopc/reviewr/internal/export"
)

var (
	flagExportFormat string
	flagExportOut    string
	flagExportWhat   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export history as csv, or the dashboard as json or yaml",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "json", "Output format: csv, json, yaml, raw")
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default stdout)")
	exportCmd.Flags().StringVar(&flagExportWhat, "what", "weeks", "CSV table: weeks or months")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	var write func(io.Writer) error
	d := engine.BuildDashboard(sess.store.Snapshot(), sess.cfg.Params())

	switch flagExportFormat {
	case "csv":
		switch flagExportWhat {
		case "weeks":
			write = func(w io.Writer) error { return export.WeeksCSV(w, d.Weeks) }
		case "months":
			write = func(w io.Writer) error { return export.MonthsCSV(w, d.Months) }
		default:
			return fmt.Errorf("unknown csv table %q (expected weeks or months)", flagExportWhat)
		}
	case "json":
		write = func(w io.Writer) error { return export.ToJSON(w, export.NewReport(d, time.Now())) }
	case "yaml":
		write = func(w io.Writer) error { return export.ToYAML(w, export.NewReport(d, time.Now())) }
	case "raw":
		// The stored records in the web app's shape, importable again.
		write = sess.store.ExportJSON
	default:
		return fmt.Errorf("unknown format %q (expected csv, json, yaml or raw)", flagExportFormat)
	}

	if flagExportOut == "" {
		return write(os.Stdout)
	}
	if err := export.ToFile(flagExportOut, write); err != nil {
		return err
	}
	progress("  Exported to %s\n", flagExportOut)
	return nil
}
