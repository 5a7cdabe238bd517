package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
)

var attendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "Attendance data tools",
}

// readImportFile accepts either a bare JSON array of records or an object
// with a "records" array.
func readImportFile(path string) (attendance.ImportRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return attendance.ImportRequest{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var req attendance.ImportRequest
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &req.Records)
	} else {
		err = json.Unmarshal(data, &req)
	}
	if err != nil {
		return attendance.ImportRequest{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return req, nil
}

var attendanceImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import raw clock-in/out records from a JSON file",
	Long: `Import raw attendance records exported by a clock device.

Example file:
  [{"employeeId": "EMP001", "firstName": "Alice", "date": "2024-01-10",
    "shift": "general", "tracker": [{"clockIn": "09:02", "clockOut": "18:01"}]}]`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		req, err := readImportFile(file)
		if err != nil {
			return err
		}

		app, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		result, err := app.Attendance.Import(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d records\n", result.Imported)
		return nil
	},
}

func init() {
	attendanceImportCmd.Flags().StringP("file", "f", "", "JSON file with attendance records")
	_ = attendanceImportCmd.MarkFlagRequired("file")

	attendanceCmd.AddCommand(attendanceImportCmd)
}
