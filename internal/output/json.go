package output

import (
	"encoding/json"
	"fmt"

	"github.com/seapath/cluster-vm/api/v1alpha1"
)

// JSONFormatter formats responses as JSON.
type JSONFormatter struct{}

// FormatResponse formats a response envelope as indented JSON. The result
// fields appear at the top level of the object, so automation layers can
// consume the envelope as a plain key/value document.
func (f *JSONFormatter) FormatResponse(resp *v1alpha1.Response) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal response to JSON: %w", err)
	}

	return string(data) + "\n", nil
}
