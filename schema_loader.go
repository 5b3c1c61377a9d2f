package valida

import (
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"
)

// SchemaFromJSONBytes decodes a JSON schema document. Keyword handling
// follows SchemaFromValue: wrong-typed keywords are dropped, not rejected.
func SchemaFromJSONBytes(data []byte) (*Schema, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	return SchemaFromValue(doc), nil
}

func SchemaFromJSONFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return SchemaFromJSONBytes(data)
}

// SchemaFromYAMLBytes decodes a YAML schema document.
func SchemaFromYAMLBytes(data []byte) (*Schema, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	return SchemaFromValue(doc), nil
}

func SchemaFromYAMLString(doc string) (*Schema, error) {
	return SchemaFromYAMLBytes([]byte(doc))
}

func SchemaFromYAMLFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return SchemaFromYAMLBytes(data)
}
