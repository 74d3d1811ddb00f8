package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kailas-cloud/papersapi/internal/domain/query/request"
	"github.com/kailas-cloud/papersapi/internal/domain/query/result"
	paperrepo "github.com/kailas-cloud/papersapi/internal/repository/paper"
	"github.com/kailas-cloud/papersapi/internal/transport/dto"
	healthuc "github.com/kailas-cloud/papersapi/internal/usecase/health"
	queryuc "github.com/kailas-cloud/papersapi/internal/usecase/query"
)

// --- Helpers ---

var fixedNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type panickingExecutor struct {
	value any
}

func (p *panickingExecutor) Execute(_ context.Context, _ *request.Request) result.Result {
	panic(p.value)
}

type emptyRepo struct{}

func (emptyRepo) Count() int { return 0 }

func newTestRouter(t *testing.T, exec queryuc.Executor, logger *zap.Logger) http.Handler {
	t.Helper()
	repo := paperrepo.Seeded()
	if exec == nil {
		exec = queryuc.New(repo)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	srv := NewServer(exec, healthuc.New(repo), logger).WithClock(func() time.Time { return fixedNow })
	return NewRouter(srv, RouterOptions{AllowOrigin: "*", MetricsEnabled: true})
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodePapers(t *testing.T, rr *httptest.ResponseRecorder) dto.PapersResponse {
	t.Helper()
	var resp dto.PapersResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, rr.Body.String())
	}
	return resp
}

// --- Tests ---

func TestListPapers_Default(t *testing.T) {
	rr := get(t, newTestRouter(t, nil, nil), "/api/papers")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if origin := rr.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q", origin)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}

	resp := decodePapers(t, rr)
	if !resp.Success {
		t.Error("success = false")
	}
	if resp.Pagination.TotalCount != 8 || len(resp.Data) != 8 {
		t.Fatalf("total_count = %d, len(data) = %d", resp.Pagination.TotalCount, len(resp.Data))
	}
	if resp.Data[0].ID != 8 || resp.Data[0].SubmissionDate != "2023-12-08" {
		t.Errorf("first record = %d (%s), want 8", resp.Data[0].ID, resp.Data[0].SubmissionDate)
	}
	if resp.Sorting.SortBy != "submission_date" || resp.Sorting.SortOrder != "desc" {
		t.Errorf("sorting = %+v", resp.Sorting)
	}
	if resp.Pagination.Limit != nil || resp.Pagination.Offset != 0 || resp.Pagination.HasMore {
		t.Errorf("pagination = %+v", resp.Pagination)
	}
	if resp.Summary.TotalCitations != 258 {
		t.Errorf("total_citations = %d", resp.Summary.TotalCitations)
	}
	if resp.Message != "Research papers retrieved successfully. Found 8 papers matching criteria." {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Timestamp != "2024-03-01T09:00:00.000000Z" {
		t.Errorf("timestamp = %q", resp.Timestamp)
	}
	if len(resp.AvailableFilters.Statuses) != 4 ||
		len(resp.AvailableFilters.ResearchTypes) != 6 ||
		len(resp.AvailableFilters.Categories) != 7 {
		t.Errorf("available_filters = %+v", resp.AvailableFilters)
	}
}

func TestListPapers_WireFormat(t *testing.T) {
	rr := get(t, newTestRouter(t, nil, nil), "/api/papers?status=published&limit=3")
	body := rr.Body.String()

	// pretty-printed with two-space indent
	if !strings.HasPrefix(body, "{\n  \"success\": true,") {
		t.Errorf("unexpected body prefix: %.40q", body)
	}
	for _, s := range []string{
		`"status": "published"`,
		`"category": null`,
		`"limit": 3`,
		`"has_more": true`,
	} {
		if !strings.Contains(body, s) {
			t.Errorf("body missing %s", s)
		}
	}
}

func TestListPapers_Scenarios(t *testing.T) {
	h := newTestRouter(t, nil, nil)

	tests := []struct {
		name      string
		query     string
		wantTotal int
		wantIDs   []int
		wantMore  bool
	}{
		{"published", "status=published", 5, []int{2, 7, 3, 6, 1}, false},
		{"limit three", "limit=3&offset=0", 8, []int{8, 5, 4}, true},
		{"author chen", "author=chen", 1, []int{1}, false},
		{"search lower", "search=covid", 1, []int{1}, false},
		{"search upper", "search=COVID-19", 1, []int{1}, false},
		{"publication asc", "sort_by=publication_date&sort_order=asc", 8, []int{1, 6, 3, 7, 2, 4, 5, 8}, false},
		{"offset past end", "offset=100", 8, []int{}, false},
		{"bad limit", "limit=many&offset=2", 8, []int{8, 5, 4, 2, 7, 3, 6, 1}, false},
		{"unknown research type", "research_type=case+study", 0, []int{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := decodePapers(t, get(t, h, "/api/papers?"+tc.query))

			if resp.Pagination.TotalCount != tc.wantTotal {
				t.Errorf("total_count = %d, want %d", resp.Pagination.TotalCount, tc.wantTotal)
			}
			got := make([]int, len(resp.Data))
			for i, p := range resp.Data {
				got[i] = p.ID
			}
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("ids = %v, want %v", got, tc.wantIDs)
			}
			for i := range got {
				if got[i] != tc.wantIDs[i] {
					t.Fatalf("ids = %v, want %v", got, tc.wantIDs)
				}
			}
			if resp.Pagination.ReturnedCount != len(resp.Data) {
				t.Errorf("returned_count = %d, len(data) = %d", resp.Pagination.ReturnedCount, len(resp.Data))
			}
			if resp.Pagination.HasMore != tc.wantMore {
				t.Errorf("has_more = %v, want %v", resp.Pagination.HasMore, tc.wantMore)
			}
		})
	}
}

func TestListPapers_EmptyDataIsArray(t *testing.T) {
	rr := get(t, newTestRouter(t, nil, nil), "/api/papers?offset=100")
	if !strings.Contains(rr.Body.String(), `"data": []`) {
		t.Errorf("expected empty data array, body: %s", rr.Body.String())
	}
}

func TestListPapers_DistributionKeyOrder(t *testing.T) {
	rr := get(t, newTestRouter(t, nil, nil), "/api/papers")
	body := rr.Body.String()

	inPrep := strings.Index(body, `"in-preparation": 1`)
	underReview := strings.Index(body, `"under-review": 2`)
	published := strings.Index(body, `"published": 5`)
	if inPrep < 0 || underReview < 0 || published < 0 {
		t.Fatalf("status distribution missing entries, body: %s", body)
	}
	if inPrep >= underReview || underReview >= published {
		t.Error("status_distribution keys not in first-occurrence order")
	}
}

func TestListPapers_PanicYieldsErrorEnvelope(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	h := newTestRouter(t, &panickingExecutor{value: "index out of range"}, zap.New(core))

	rr := get(t, h, "/api/papers")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("error response lost CORS header")
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success {
		t.Error("success = true on failure")
	}
	if resp.Error != "index out of range" {
		t.Errorf("error = %q", resp.Error)
	}
	if resp.Message != dto.ErrorMessage {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Timestamp != "2024-03-01T09:00:00.000000Z" {
		t.Errorf("timestamp = %q", resp.Timestamp)
	}
	if logs.FilterMessage("panic recovered").Len() != 1 {
		t.Error("expected panic to be logged")
	}
}

func TestListPapers_PanicWithError(t *testing.T) {
	h := newTestRouter(t, &panickingExecutor{value: context.DeadlineExceeded}, nil)
	rr := get(t, h, "/api/papers")

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error != context.DeadlineExceeded.Error() {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestWideEvent_LogsRequest(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := newTestRouter(t, nil, zap.New(core))

	get(t, h, "/api/papers?limit=1")

	entries := logs.FilterMessage("http_request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 http_request log line, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["path"] != "/api/papers" || fields["query"] != "limit=1" {
		t.Errorf("unexpected fields: %v", fields)
	}
	if fields["status"] != int64(200) {
		t.Errorf("status field = %v", fields["status"])
	}
	if fields["request_id"] == "" {
		t.Error("missing request_id")
	}
}

func TestHealthCheck(t *testing.T) {
	rr := get(t, newTestRouter(t, nil, nil), "/health")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp dto.HealthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" || resp.Checks["repository"] != "ok" || resp.Records != 8 {
		t.Errorf("health = %+v", resp)
	}
}

func TestHealthCheck_EmptyRepository(t *testing.T) {
	srv := NewServer(queryuc.New(paperrepo.Seeded()), healthuc.New(emptyRepo{}), zap.NewNop())
	rr := get(t, NewRouter(srv, RouterOptions{}), "/health")
	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rr.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestRouter(t, nil, nil)
	get(t, h, "/api/papers")

	rr := get(t, h, "/metrics")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "papers_http_requests_total") {
		t.Error("expected papers_http_requests_total in exposition")
	}
}

func TestMetricsEndpoint_Disabled(t *testing.T) {
	srv := NewServer(queryuc.New(paperrepo.Seeded()), healthuc.New(paperrepo.Seeded()), zap.NewNop())
	rr := get(t, NewRouter(srv, RouterOptions{}), "/metrics")
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
}

func TestNotFound(t *testing.T) {
	rr := get(t, newTestRouter(t, nil, nil), "/api/authors")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	var resp dto.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success || resp.Error != "endpoint not found" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/papers", http.NoBody)
	rr := httptest.NewRecorder()
	newTestRouter(t, nil, nil).ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rr.Code)
	}
}

func TestCompression(t *testing.T) {
	repo := paperrepo.Seeded()
	srv := NewServer(queryuc.New(repo), healthuc.New(repo), zap.NewNop())
	h := NewRouter(srv, RouterOptions{CompressLevel: 5})

	req := httptest.NewRequest(http.MethodGet, "/api/papers", http.NoBody)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Header().Get("Content-Encoding") != "gzip" {
		t.Errorf("Content-Encoding = %q, want gzip", rr.Header().Get("Content-Encoding"))
	}
}
