package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/export"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Attendance report tools",
}

var reportExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the attendance report to a file",
	Long: `Export the attendance report with the same filters as the report screen.

Examples:
  hrisctl report export --date 2024-01-10
  hrisctl report export --search alice --format csv --out ./exports`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		search, _ := cmd.Flags().GetString("search")
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")

		app, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		file, err := app.Attendance.Export(cmd.Context(), attendance.ExportRequest{
			Date:   date,
			Search: search,
			Format: export.Format(format),
		})
		if err != nil {
			return err
		}

		path, err := writeExport(out, file)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var reportSnapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Store the report snapshot for a day (default: yesterday)",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = time.Now().AddDate(0, 0, -1).Format(time.DateOnly)
		}

		app, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		key, err := app.Snapshots.Snapshot(cmd.Context(), date)
		if err != nil {
			return err
		}
		if key == "" {
			fmt.Printf("Nothing stored for %s (snapshot exists or no attendance)\n", date)
			return nil
		}
		fmt.Printf("Snapshot stored at %s\n", app.Storage.URL(key))
		return nil
	},
}

func init() {
	reportExportCmd.Flags().String("date", "", "Only this day (YYYY-MM-DD)")
	reportExportCmd.Flags().String("search", "", "Employee id or first name")
	reportExportCmd.Flags().StringP("format", "f", string(export.FormatXLSX), "Output format: xlsx or csv")
	reportExportCmd.Flags().StringP("out", "o", ".", "Output directory")

	reportSnapshotCmd.Flags().String("date", "", "Day to snapshot (YYYY-MM-DD)")

	reportCmd.AddCommand(reportExportCmd)
	reportCmd.AddCommand(reportSnapshotCmd)
}
