// Package main is the entry point for the article-service-cli application.
// It registers the token, admin and database maintenance commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/article-service/cmd/article-service-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "article-service-cli",
		Short: "Maintenance CLI for the article service",
		Long: `article-service-cli issues bearer tokens, checks admin membership
and maintains the article database.

It reads the same YAML configuration as the REST API. The file is taken from
--config, then CONFIG_PATH, then configs/rest-app.yaml. Environment variables
such as APP_KEY, ADMINS and DB_DSN override the file.`,
		SilenceUsage: true,
	}

	defaultConfigPath := os.Getenv("CONFIG_PATH")
	if defaultConfigPath == "" {
		defaultConfigPath = "configs/rest-app.yaml"
	}
	configPath := rootCmd.PersistentFlags().String("config", defaultConfigPath, "Path to the YAML configuration file")

	if err := commands.InitArticleCommands(rootCmd, configPath); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
