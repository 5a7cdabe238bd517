package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage administrator logins",
}

// adminCreateCmd bootstraps the first login, since every API route that
// creates employees already requires one.
var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an employee record with a login account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req employee.CreateEmployeeRequest
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")
		req.EmployeeID, _ = cmd.Flags().GetString("employee-id")
		req.FirstName, _ = cmd.Flags().GetString("first-name")
		req.LastName, _ = cmd.Flags().GetString("last-name")
		req.Role, _ = cmd.Flags().GetString("role")

		app, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		created, err := app.Employees.CreateEmployee(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("Created %s (%s) with role %s\n", created.FullName, created.Email, created.Role)
		return nil
	},
}

func init() {
	adminCreateCmd.Flags().String("email", "", "Login email")
	adminCreateCmd.Flags().String("password", "", "Login password (at least 6 characters)")
	adminCreateCmd.Flags().String("employee-id", "", "Employee id, e.g. EMP001")
	adminCreateCmd.Flags().String("first-name", "", "First name")
	adminCreateCmd.Flags().String("last-name", "", "Last name")
	adminCreateCmd.Flags().String("role", string(user.RoleAdmin), "One of: admin, hr, manager, user")
	for _, name := range []string{"email", "password", "employee-id", "first-name"} {
		_ = adminCreateCmd.MarkFlagRequired(name)
	}

	adminCmd.AddCommand(adminCreateCmd)
}
