package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/seapath/cluster-vm/api/v1alpha1"
)

// TableFormatter formats responses as human-readable tables.
type TableFormatter struct {
	// NoHeaders omits the header row.
	NoHeaders bool
}

// FormatResponse formats a response envelope for terminal display. List
// results render one row per item, scalar results a single row, and
// commands returning no data print a plain confirmation.
func (f *TableFormatter) FormatResponse(resp *v1alpha1.Response) (string, error) {
	if resp.Failed {
		return fmt.Sprintf("Error: %s\n", resp.Msg), nil
	}

	switch {
	case resp.ListVMs != nil:
		return f.formatList("NAME", resp.ListVMs, "No VMs found"), nil
	case resp.ListSnapshot != nil:
		return f.formatList("SNAPSHOT", resp.ListSnapshot, "No snapshots found"), nil
	case resp.ListMetadata != nil:
		return f.formatList("KEY", resp.ListMetadata, "No metadata found"), nil
	case resp.Status != "":
		return f.formatRow("STATUS", string(resp.Status)), nil
	case resp.MetadataValue != "":
		return f.formatRow("VALUE", resp.MetadataValue), nil
	default:
		return "Success\n", nil
	}
}

// formatList renders items one per row under a single-column header.
func (f *TableFormatter) formatList(header string, items []string, empty string) string {
	if len(items) == 0 {
		return empty + "\n"
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	if !f.NoHeaders {
		_, _ = fmt.Fprintln(w, header)
	}
	for _, item := range items {
		_, _ = fmt.Fprintln(w, item)
	}

	_ = w.Flush()
	return buf.String()
}

// formatRow renders a single scalar value under its header.
func (f *TableFormatter) formatRow(header, value string) string {
	if f.NoHeaders {
		return value + "\n"
	}
	return header + "\n" + value + "\n"
}
