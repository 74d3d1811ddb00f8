// Package main is the entry point for the papers API server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/papersapi/internal/config"
	logpkg "github.com/kailas-cloud/papersapi/internal/logger"
	paperrepo "github.com/kailas-cloud/papersapi/internal/repository/paper"
	"github.com/kailas-cloud/papersapi/internal/version"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "papersapi",
		Short: "Read-only query API over research paper records",
		Long: `papersapi serves filtered, searched, sorted and paginated views of a
fixed collection of research paper records, with summary statistics.

Without a subcommand it runs the HTTP server. The query subcommand runs a
single query string through the engine and prints the JSON envelope.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	root.PersistentFlags().String("config", "", "config file (default: config/<ENV>.yaml)")

	root.AddCommand(newServeCmd())
	root.AddCommand(newQueryCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "papersapi:", err)
		os.Exit(1)
	}
}

// loadConfig reads the file named by --config, or config/<ENV>.yaml.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load(config.GetEnv())
}

// bootstrap loads config, builds the logger and opens the paper repository.
func bootstrap(cmd *cobra.Command) (config.Config, *zap.Logger, *paperrepo.Repo, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.NewLogger(config.GetEnv(), cfg.Logging.Level)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("create logger: %w", err)
	}

	repo, err := openRepository(cfg.Dataset)
	if err != nil {
		_ = logger.Sync()
		return config.Config{}, nil, nil, fmt.Errorf("open dataset: %w", err)
	}
	logger.Debug("Dataset loaded",
		zap.String("source", datasetSource(cfg.Dataset)),
		zap.Int("records", repo.Count()),
	)

	return cfg, logger, repo, nil
}

func openRepository(ds config.DatasetConfig) (*paperrepo.Repo, error) {
	if ds.Path == "" {
		return paperrepo.Seeded(), nil
	}
	return paperrepo.LoadFile(ds.Path)
}

func datasetSource(ds config.DatasetConfig) string {
	if ds.Path == "" {
		return "builtin"
	}
	return ds.Path
}
