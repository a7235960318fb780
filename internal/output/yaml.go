package output

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/seapath/cluster-vm/api/v1alpha1"
)

// YAMLFormatter formats responses as YAML.
type YAMLFormatter struct{}

// FormatResponse formats a response envelope as YAML.
func (f *YAMLFormatter) FormatResponse(resp *v1alpha1.Response) (string, error) {
	data, err := yaml.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("failed to marshal response to YAML: %w", err)
	}

	return string(data), nil
}
