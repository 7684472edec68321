package conf

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/parazyd/stoml-args/value"
)

// ParseYAML converts a YAML document into a value tree. The document's
// top level must be a mapping.
func ParseYAML(data []byte) (value.Table, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("conf: parse yaml: %w", err)
	}
	return tableFromGo(raw)
}
