package schema

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decode parses a request document. YAML documents are accepted for files
// whose name ends in .yaml or .yml; everything else is read as JSON.
func Decode(name string, data []byte) (*Request, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML request %s: %w", name, err)
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to convert YAML request %s: %w", name, err)
		}
		data = converted
	}

	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request %s: %w", name, err)
	}
	for i := range req.Data {
		req.Data[i].Normalize()
	}
	return &req, nil
}
