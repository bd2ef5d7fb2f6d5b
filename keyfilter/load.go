package keyfilter

import (
	"encoding/json"
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// ErrNotObject is returned when a document's top level is not a mapping.
var ErrNotObject = errors.New("top-level value is not an object")

// FromJSON decodes a JSON object into an ordered map, keeping the order of
// keys as they appear in the document.
func FromJSON(data []byte) (*orderedmap.OrderedMap[string, any], error) {
	m := orderedmap.New[string, any]()
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parse json object: %w", err)
	}
	return m, nil
}

// FromYAML decodes a YAML mapping into an ordered map, keeping the order of
// keys as they appear in the document. An empty document yields an empty map.
func FromYAML(data []byte) (*orderedmap.OrderedMap[string, any], error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	m := orderedmap.New[string, any]()
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return m, nil
		}
		root = root.Content[0]
	}
	if root.Kind == 0 {
		return m, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse yaml: %w (line %d)", ErrNotObject, root.Line)
	}

	// Mapping content alternates key and value nodes.
	for i := 0; i+1 < len(root.Content); i += 2 {
		var key string
		if err := root.Content[i].Decode(&key); err != nil {
			return nil, fmt.Errorf("decode key at line %d: %w", root.Content[i].Line, err)
		}
		var value any
		if err := root.Content[i+1].Decode(&value); err != nil {
			return nil, fmt.Errorf("decode value for %q: %w", key, err)
		}
		m.Set(key, value)
	}

	return m, nil
}
