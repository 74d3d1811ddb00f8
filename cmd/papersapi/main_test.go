package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kailas-cloud/papersapi/internal/transport/dto"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestQueryCommand_BuiltinDataset(t *testing.T) {
	cfgPath := writeFile(t, t.TempDir(), "test.yaml", "logging:\n  level: error\n")

	out, err := runCLI(t, "--config", cfgPath, "query", "status=published&limit=3")
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	var resp dto.PapersResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if resp.Pagination.TotalCount != 5 || len(resp.Data) != 3 || !resp.Pagination.HasMore {
		t.Errorf("pagination = %+v, len(data) = %d", resp.Pagination, len(resp.Data))
	}
	if resp.Data[0].ID != 2 {
		t.Errorf("first id = %d, want 2", resp.Data[0].ID)
	}
}

func TestQueryCommand_NoArgs(t *testing.T) {
	cfgPath := writeFile(t, t.TempDir(), "test.yaml", "logging:\n  level: error\n")

	out, err := runCLI(t, "--config", cfgPath, "query")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if !strings.Contains(out, "Found 8 papers matching criteria.") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestQueryCommand_DatasetFile(t *testing.T) {
	dir := t.TempDir()
	dataset := writeFile(t, dir, "papers.yaml", `papers:
  - id: 1
    title: Tidal Energy Forecasting
    author: Ana Costa
    submission_date: "2024-02-01"
    status: draft
    category: Energy
    citations: 0
`)
	cfgPath := writeFile(t, dir, "test.yaml", "dataset:\n  path: "+dataset+"\nlogging:\n  level: error\n")

	out, err := runCLI(t, "--config", cfgPath, "query", "search=tidal")
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	var resp dto.PapersResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if resp.Pagination.TotalCount != 1 || resp.Data[0].Author != "Ana Costa" {
		t.Errorf("unexpected result: %+v", resp.Data)
	}
}

func TestQueryCommand_BadDataset(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "test.yaml", "dataset:\n  path: "+filepath.Join(dir, "missing.yaml")+"\n")

	if _, err := runCLI(t, "--config", cfgPath, "query"); err == nil {
		t.Fatal("expected error for missing dataset file")
	}
}

func TestQueryCommand_BadConfig(t *testing.T) {
	cfgPath := writeFile(t, t.TempDir(), "test.yaml", "http:\n  port: 70000\n")

	_, err := runCLI(t, "--config", cfgPath, "query")
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "papersapi dev") {
		t.Errorf("unexpected output: %q", out)
	}
}
