package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleDocument(t *testing.T) {
	svc := NewService(nil)
	_, err := svc.Load(context.Background(), &stubSource{items: testItems()})
	require.NoError(t, err)
	h := NewHandler(svc, "")

	rec := httptest.NewRecorder()
	h.HandleDocument(rec, httptest.NewRequest(http.MethodGet, "/catalog.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	etag := rec.Header().Get("ETag")
	assert.Equal(t, `"`+svc.Digest()+`"`, etag)

	body := rec.Body.Bytes()
	var doc map[string][]Item
	require.NoError(t, json.Unmarshal(body, &doc))
	require.Len(t, doc["shoes"], 2)
	assert.Equal(t, "Nike Blazer", doc["shoes"][1].Name)
	assert.True(t, doc["shoes"][0].Price.Equal(testItems()[0].Price))

	var raw map[string][]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Equal(t, "50", string(raw["shoes"][0]["price"]), "price must stay a JSON number")

	req := httptest.NewRequest(http.MethodGet, "/catalog.json", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	h.HandleDocument(rec, req)
	assert.Equal(t, http.StatusNotModified, rec.Code)
}

func TestHandleDocumentKeepsSourceShape(t *testing.T) {
	path := filepath.Join("..", "..", "data", "shoes.json")
	svc := NewService(nil)
	_, err := svc.Load(context.Background(), NewFileSource(path, DefaultCollection))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	NewHandler(svc, "").HandleDocument(rec, httptest.NewRequest(http.MethodGet, "/catalog.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	source, err := os.ReadFile(path)
	require.NoError(t, err)

	var want, got map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(source, &want))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got["shoes"], len(want["shoes"]))
	for i := range want["shoes"] {
		assert.IsType(t, float64(0), got["shoes"][i]["price"])
		assert.Equal(t, want["shoes"][i]["price"], got["shoes"][i]["price"])
		assert.Equal(t, want["shoes"][i]["name"], got["shoes"][i]["name"])
	}
}

func TestHandleDocumentBeforeLoad(t *testing.T) {
	h := NewHandler(NewService(nil), "shoes")

	rec := httptest.NewRecorder()
	h.HandleDocument(rec, httptest.NewRequest(http.MethodGet, "/catalog.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("ETag"))
	assert.JSONEq(t, `{"shoes":[]}`, rec.Body.String())
}

func TestHandleDocumentMethodNotAllowed(t *testing.T) {
	h := NewHandler(NewService(nil), "")

	rec := httptest.NewRecorder()
	h.HandleDocument(rec, httptest.NewRequest(http.MethodPost, "/catalog.json", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
