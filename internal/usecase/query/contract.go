package query

import (
	"context"

	dompaper "github.com/kailas-cloud/papersapi/internal/domain/paper"
	"github.com/kailas-cloud/papersapi/internal/domain/query/request"
	"github.com/kailas-cloud/papersapi/internal/domain/query/result"
)

// Repository provides read access to the paper collection.
type Repository interface {
	All() []dompaper.Paper
}

// Executor runs a query. Implemented by Service and its decorators.
type Executor interface {
	Execute(ctx context.Context, req *request.Request) result.Result
}
