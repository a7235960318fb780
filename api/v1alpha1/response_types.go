package v1alpha1

import "fmt"

// Status is a VM status token as reported by the cluster.
type Status string

const (
	// StatusStarting means the VM is in the process of starting.
	StatusStarting Status = "Starting"

	// StatusStarted means the VM is running.
	StatusStarted Status = "Started"

	// StatusPaused means the VM is suspended.
	StatusPaused Status = "Paused"

	// StatusStopped means the VM is defined but not running.
	StatusStopped Status = "Stopped"

	// StatusStopping means the VM is in the process of shutting down.
	StatusStopping Status = "Stopping"

	// StatusFailed means the cluster gave up on the VM.
	StatusFailed Status = "FAILED"

	// StatusDisabled means the VM exists but is not under cluster management.
	StatusDisabled Status = "Disabled"

	// StatusUndefined means the cluster has no state for the VM.
	StatusUndefined Status = "Undefined"
)

// Statuses lists every status token the cluster may report.
var Statuses = []Status{
	StatusStarting,
	StatusStarted,
	StatusPaused,
	StatusStopped,
	StatusStopping,
	StatusFailed,
	StatusDisabled,
	StatusUndefined,
}

// ParseStatus converts a raw status token into a Status.
// Tokens outside the defined set are rejected rather than passed through,
// so a misbehaving cluster tool surfaces as an error instead of garbage.
func ParseStatus(s string) (Status, error) {
	for _, known := range Statuses {
		if Status(s) == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown status token %q", s)
}

// Result is the command-dependent payload of a successful invocation.
// At most one field is set, determined by the command that ran; commands
// that only cause an effect produce an empty Result.
type Result struct {
	// ListVMs is the VM name list produced by list_vms.
	ListVMs []string `json:"list_vms,omitempty" yaml:"list_vms,omitempty"`

	// Status is the status token produced by status.
	Status Status `json:"status,omitempty" yaml:"status,omitempty"`

	// MetadataValue is the value produced by get_metadata.
	MetadataValue string `json:"metadata_value,omitempty" yaml:"metadata_value,omitempty"`

	// ListMetadata is the metadata key list produced by list_metadata.
	ListMetadata []string `json:"list_metadata,omitempty" yaml:"list_metadata,omitempty"`

	// ListSnapshot is the snapshot name list produced by list_snapshots.
	ListSnapshot []string `json:"list_snapshot,omitempty" yaml:"list_snapshot,omitempty"`
}

// Response is the flat outcome document of one invocation: the Result
// payload on success, or the failure fields with Failed set. It marshals
// without nesting so automation hosts can consume it as a plain key/value
// structure.
type Response struct {
	// Result carries the command payload. Inlined into the top level.
	Result `yaml:",inline"`

	// Failed is set when the invocation did not complete.
	Failed bool `json:"failed,omitempty" yaml:"failed,omitempty"`

	// Msg is the human-oriented failure message. For cluster failures it
	// carries the cluster's own message verbatim.
	Msg string `json:"msg,omitempty" yaml:"msg,omitempty"`

	// Exception is the diagnostic context of a cluster failure, when any
	// is available.
	Exception string `json:"exception,omitempty" yaml:"exception,omitempty"`
}
