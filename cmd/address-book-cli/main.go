// Package main is the entry point for the address-book-cli application.
// It initializes the root command and registers the address sub-commands,
// then executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/ajeshvyas/address-book-service/cmd/address-book-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "address-book-cli",
		Short: "Address book administration CLI tool",
		Long: `address-book-cli is a command-line tool for managing address records.
It operates directly on the configured database: records can be added,
listed, updated, deleted, searched by proximity and imported from JSON
files. The database is selected through the same configuration file the
REST API uses (--config flag or CONFIG_PATH, default configs/rest-app.yaml).`,
	}

	if err := commands.InitAddressCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}
