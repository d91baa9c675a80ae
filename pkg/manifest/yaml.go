package manifest

import (
	"github.com/arthur-debert/placer/pkg/errors"
	"gopkg.in/yaml.v3"
)

// parseYAML decodes a YAML manifest and returns the package names in
// document order
func parseYAML(data []byte) (map[string]interface{}, []string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to parse YAML manifest")
	}

	raw := make(map[string]interface{})
	if err := root.Decode(&raw); err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrSchemaViolation, "the manifest must be a mapping")
	}

	var order []string
	if pkgs := mappingValue(&root, "pkgs"); pkgs != nil && pkgs.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(pkgs.Content); i += 2 {
			order = append(order, pkgs.Content[i].Value)
		}
	}
	return raw, order, nil
}

// mappingValue returns the value node of key in the top-level mapping
func mappingValue(root *yaml.Node, key string) *yaml.Node {
	doc := root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value == key {
			return doc.Content[i+1]
		}
	}
	return nil
}
