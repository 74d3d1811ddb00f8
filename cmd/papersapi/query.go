package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cobra"

	logpkg "github.com/kailas-cloud/papersapi/internal/logger"
	"github.com/kailas-cloud/papersapi/internal/transport/dto"
	queryuc "github.com/kailas-cloud/papersapi/internal/usecase/query"
)

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query [QUERY_STRING]",
		Short: "Run one query through the engine and print the JSON envelope",
		Long: `Query accepts the same query string as GET /api/papers, for example

  papersapi query "status=published&sort_by=citations&limit=3"

and prints the response envelope the server would return.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runQuery,
	}
}

func runQuery(cmd *cobra.Command, args []string) error {
	raw := ""
	if len(args) == 1 {
		raw = args[0]
	}
	values, err := url.ParseQuery(raw)
	if err != nil {
		return fmt.Errorf("parse query string: %w", err)
	}

	_, logger, repo, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	req := dto.ParseQuery(values)
	ctx := logpkg.ContextWithLogger(cmd.Context(), logger)
	res := queryuc.New(repo).Execute(ctx, &req)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto.PapersResponseFromResult(&res, time.Now())); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}
