package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/export"
)

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "Employee record tools",
}

var employeesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export employee records to a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req employee.ExportEmployeesRequest
		req.Search, _ = cmd.Flags().GetString("search")
		req.Department, _ = cmd.Flags().GetString("department")
		req.Branch, _ = cmd.Flags().GetString("branch")
		req.Status, _ = cmd.Flags().GetString("status")
		format, _ := cmd.Flags().GetString("format")
		req.Format = export.Format(format)
		out, _ := cmd.Flags().GetString("out")

		app, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		file, err := app.Employees.ExportEmployees(cmd.Context(), req)
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

func init() {
	employeesExportCmd.Flags().String("search", "", "Employee id, first or last name")
	employeesExportCmd.Flags().String("department", "", "Only this department")
	employeesExportCmd.Flags().String("branch", "", "Only this branch")
	employeesExportCmd.Flags().String("status", "", "Only this employment status")
	employeesExportCmd.Flags().StringP("format", "f", string(export.FormatCSV), "Output format: csv or xlsx")
	employeesExportCmd.Flags().StringP("out", "o", ".", "Output directory")

	employeesCmd.AddCommand(employeesExportCmd)
}
