package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create missing tables and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.Stores.Migrate(cmd.Context()); err != nil {
			return err
		}

		fmt.Printf("Schema is up to date (%s)\n", app.Stores.Driver)
		return nil
	},
}
