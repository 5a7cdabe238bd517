package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cmlabs-hris/hris-admin-go/internal/bootstrap"
	"github.com/cmlabs-hris/hris-admin-go/internal/config"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/export"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "hrisctl",
	Short:         "Administration tool for the HRIS admin backend",
	Long:          `hrisctl migrates the schema, exports attendance and employee reports, and imports device attendance logs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

// openApp loads config and wires the application. Callers must Close it.
func openApp(ctx context.Context) (*bootstrap.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	bootstrap.SetupLogger(cfg)

	return bootstrap.New(ctx, cfg)
}

// writeExport saves a rendered export into dir and returns its path.
func writeExport(dir string, file export.File) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, file.Name)
	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file overlaid on the environment")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(attendanceCmd)
	rootCmd.AddCommand(adminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
