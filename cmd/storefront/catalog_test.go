package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCatalogCmd(t *testing.T, source string) (string, error) {
	t.Helper()
	envFile = filepath.Join(t.TempDir(), "absent.env")
	catalogSource = source
	defer func() {
		envFile = ""
		catalogSource = ""
	}()

	var out bytes.Buffer
	catalogCmd.SetOut(&out)
	catalogCmd.SetContext(context.Background())
	err := runCatalog(catalogCmd, nil)
	return out.String(), err
}

func TestCatalogCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shoes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"shoes": [
		{"id": 1, "name": "Nike Air Max", "color": "#e1e7ed", "price": 50},
		{"id": 2, "name": "Nike Blazer", "color": "#4dd5e2", "price": 20.5}
	]}`), 0o644))

	out, err := runCatalogCmd(t, path)
	require.NoError(t, err)

	assert.Contains(t, out, "Nike Air Max")
	assert.Contains(t, out, "20.50")
	assert.Contains(t, out, "2 items")
}

func TestCatalogCmdFailsOnBadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shoes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"shoes": [{"id": 1}, {"id": 1}]}`), 0o644))

	_, err := runCatalogCmd(t, path)
	assert.ErrorContains(t, err, "duplicate item id")
}

func TestCatalogCmdShippedData(t *testing.T) {
	out, err := runCatalogCmd(t, filepath.Join("..", "..", "data", "shoes.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.NotContains(t, out, " 0 items")
}
