// internal/catalog/document.go
package catalog

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// decodeJSON extracts the items listed under collection from a JSON document.
func decodeJSON(data []byte, collection string) ([]Item, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	raw, ok := doc[collection]
	if !ok {
		return nil, fmt.Errorf("decode document: missing %q collection", collection)
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %q collection: %w", collection, err)
	}
	return items, nil
}

// decodeYAML goes through JSON so YAML and JSON documents share the item decoding rules.
func decodeYAML(data []byte, collection string) ([]Item, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	raw, ok := doc[collection]
	if !ok {
		return nil, fmt.Errorf("decode document: missing %q collection", collection)
	}

	asJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %q collection: %w", collection, err)
	}

	var items []Item
	if err := json.Unmarshal(asJSON, &items); err != nil {
		return nil, fmt.Errorf("decode %q collection: %w", collection, err)
	}
	return items, nil
}
