// Package loader provides functions for loading request documents from
// YAML files.
package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seapath/cluster-vm/api/v1alpha1"
)

// LoadFromFile loads a request document from a YAML file. JSON documents
// load too, since YAML is a superset.
func LoadFromFile(path string) (*v1alpha1.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return LoadFromYAML(data)
}

// LoadFromYAML loads a request document from YAML bytes. The command field
// must be present and name a supported command; everything else is checked
// later by request validation.
func LoadFromYAML(data []byte) (*v1alpha1.Request, error) {
	var req v1alpha1.Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	if req.Command == "" {
		return nil, fmt.Errorf("missing required field: command")
	}
	if _, err := v1alpha1.ParseCommand(string(req.Command)); err != nil {
		return nil, err
	}

	req.Normalize()
	req.EnsureUID()

	return &req, nil
}
