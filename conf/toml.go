package conf

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/parazyd/stoml-args/value"
)

// ParseTOML converts a TOML document into a value tree.
func ParseTOML(data []byte) (value.Table, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("conf: parse toml: %w", err)
	}
	return tableFromGo(raw)
}
