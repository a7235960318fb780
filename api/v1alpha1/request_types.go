package v1alpha1

// Request is the flat argument document for one cluster VM command.
//
// The same structure carries the arguments of every command; which fields
// are required and which are ignored depends on Command. Requests are
// validated before anything touches the cluster, so a Request can be built
// from untrusted automation input as-is.
type Request struct {
	// UID identifies this invocation in log output. Assigned by NewRequest
	// or EnsureUID, never read from input documents.
	UID string `json:"-" yaml:"-"`

	// Command selects the operation to perform.
	Command Command `json:"command" yaml:"command"`

	// Name is the VM the command operates on.
	// Required for every command except list_vms.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// SrcName is the VM to clone from. Required for clone.
	SrcName string `json:"src_name,omitempty" yaml:"src_name,omitempty"`

	// Config is the raw VM definition document, passed through to the
	// cluster without inspection. Required for create and clone.
	Config string `json:"config,omitempty" yaml:"config,omitempty"`

	// SystemImage is the path of the disk image the VM boots from.
	// Required for create; must point at an existing regular file.
	SystemImage string `json:"system_image,omitempty" yaml:"system_image,omitempty"`

	// Force overwrites an existing VM of the same name on create and clone,
	// and kills instead of gracefully stopping on stop.
	Force bool `json:"force,omitempty" yaml:"force,omitempty"`

	// Enable determines whether a created or cloned VM is put under cluster
	// management immediately. Defaults to true.
	Enable *bool `json:"enable,omitempty" yaml:"enable,omitempty"`

	// Metadata is the initial metadata to attach on create and clone.
	// Keys are restricted to letters and numbers.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// MetadataName is the metadata key to read. Required for get_metadata.
	MetadataName string `json:"metadata_name,omitempty" yaml:"metadata_name,omitempty"`

	// SnapshotName is the snapshot to operate on. Required for
	// create_snapshot, remove_snapshot and rollback_snapshot.
	SnapshotName string `json:"snapshot_name,omitempty" yaml:"snapshot_name,omitempty"`

	// PreferredHost is the cluster host the VM should run on when possible.
	PreferredHost string `json:"preferred_host,omitempty" yaml:"preferred_host,omitempty"`

	// PinnedHost is the only cluster host the VM may run on.
	PinnedHost string `json:"pinned_host,omitempty" yaml:"pinned_host,omitempty"`

	// ClearConstraint drops the source VM's host placement constraints
	// instead of copying them on clone.
	ClearConstraint bool `json:"clear_constraint,omitempty" yaml:"clear_constraint,omitempty"`

	// PurgeSpec selects the age cutoff for purge_image.
	// Mutually exclusive with PurgeNumber.
	PurgeSpec *PurgeSpec `json:"purge_spec,omitempty" yaml:"purge_spec,omitempty"`

	// PurgeNumber is the count of snapshots to delete, oldest first, for
	// purge_image. Mutually exclusive with PurgeSpec.
	PurgeNumber *int `json:"purge_number,omitempty" yaml:"purge_number,omitempty"`
}

// PurgeSpec describes the purge_image age cutoff in exactly one of three
// encodings: a calendar date with a time of day, an ISO 8601 datetime
// string, or a POSIX timestamp. Supplying parts of more than one encoding
// is rejected during validation.
type PurgeSpec struct {
	// Date is the cutoff day, formatted YYYY-MM-DD.
	// Must be combined with Time.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`

	// Time is the cutoff time of day, formatted HH:MM or HH:MM:SS.
	// Must be combined with Date.
	Time string `json:"time,omitempty" yaml:"time,omitempty"`

	// ISO8601 is the cutoff as an ISO 8601 datetime string. A zone offset
	// is accepted but discarded; the wall-clock value is what counts.
	ISO8601 string `json:"iso8601,omitempty" yaml:"iso8601,omitempty"`

	// POSIX is the cutoff in milliseconds since the Unix epoch.
	POSIX *int64 `json:"posix,omitempty" yaml:"posix,omitempty"`
}
