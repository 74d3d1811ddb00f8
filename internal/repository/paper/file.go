package paper

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	dompaper "github.com/kailas-cloud/papersapi/internal/domain/paper"
)

// LoadFile builds a repository from a YAML dataset file.
func LoadFile(path string) (*Repo, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a repository from YAML dataset bytes.
func Parse(data []byte) (*Repo, error) {
	var f datasetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	papers := make([]dompaper.Paper, len(f.Papers))
	for i := range f.Papers {
		papers[i] = f.Papers[i].toDomain()
	}
	return New(papers)
}
