// internal/catalog/source.go
package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NewSource picks a Source for location by scheme: http(s) URLs are fetched over HTTP,
// postgres URLs are read from table, anything else is treated as a file path.
func NewSource(location, collection, table string) (Source, error) {
	if location == "" {
		return nil, fmt.Errorf("catalog source location is empty")
	}
	if collection == "" {
		collection = DefaultCollection
	}

	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTPSource(location, collection), nil
	case strings.HasPrefix(location, "postgres://"), strings.HasPrefix(location, "postgresql://"):
		if table == "" {
			table = collection
		}
		return OpenPostgresSource(location, table)
	default:
		return NewFileSource(location, collection), nil
	}
}

// FileSource reads a JSON or YAML document from the local filesystem.
type FileSource struct {
	path       string
	collection string
}

func NewFileSource(path, collection string) *FileSource {
	return &FileSource{path: path, collection: collection}
}

func (s *FileSource) Fetch(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		return decodeYAML(data, s.collection)
	default:
		return decodeJSON(data, s.collection)
	}
}

func (s *FileSource) String() string {
	return "file:" + s.path
}
