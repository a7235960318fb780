// Package cluster defines the interface to the cluster-wide VM management
// capability and the adapter that reaches it through its command line tool.
package cluster

import (
	"context"
	"time"

	"github.com/seapath/cluster-vm/api/v1alpha1"
)

// CreateOptions carries the arguments for creating a VM from a system image.
type CreateOptions struct {
	// Name is the new VM's name.
	Name string

	// Config is the raw VM definition document, passed through untouched.
	Config string

	// SystemImage is the path of the disk image the VM boots from.
	SystemImage string

	// Force overwrites an existing VM of the same name.
	Force bool

	// Enable puts the VM under cluster management right away.
	Enable bool

	// Metadata is attached to the VM at creation time.
	Metadata map[string]string

	// PreferredHost is the host the VM should run on when possible.
	PreferredHost string

	// PinnedHost is the only host the VM may run on.
	PinnedHost string
}

// CloneOptions carries the arguments for creating a VM from an existing VM.
type CloneOptions struct {
	// SrcName is the VM to clone from.
	SrcName string

	// Name is the new VM's name.
	Name string

	// BaseConfig is the raw definition document for the clone.
	BaseConfig string

	// Force overwrites an existing VM of the same name.
	Force bool

	// Enable puts the clone under cluster management right away.
	Enable bool

	// Metadata is attached to the clone at creation time.
	Metadata map[string]string

	// PreferredHost is the host the clone should run on when possible.
	PreferredHost string

	// PinnedHost is the only host the clone may run on.
	PinnedHost string

	// ClearConstraint drops the source VM's placement constraints instead
	// of copying them.
	ClearConstraint bool
}

// Manager is the cluster-wide VM management capability. Implementations
// carry out the actual lifecycle mechanics; callers only validate and
// forward. Every method blocks until the cluster operation finishes or
// ctx is done, and returns the cluster's failure text as the error.
type Manager interface {
	// ListVMs returns the names of all VMs managed by the cluster.
	ListVMs(ctx context.Context) ([]string, error)

	// Create defines a new VM from a system image.
	Create(ctx context.Context, opts CreateOptions) error

	// Clone creates a new VM from an existing one.
	Clone(ctx context.Context, opts CloneOptions) error

	// Remove deletes a VM from the cluster entirely.
	Remove(ctx context.Context, name string) error

	// Start starts a stopped VM.
	Start(ctx context.Context, name string) error

	// Stop stops a running VM, forcefully when force is set.
	Stop(ctx context.Context, name string, force bool) error

	// EnableVM puts a VM under cluster management.
	EnableVM(ctx context.Context, name string) error

	// DisableVM removes a VM from cluster management without deleting it.
	DisableVM(ctx context.Context, name string) error

	// Status reports the VM's current status token.
	Status(ctx context.Context, name string) (v1alpha1.Status, error)

	// CreateSnapshot takes a named snapshot of a VM.
	CreateSnapshot(ctx context.Context, name, snapshot string) error

	// RemoveSnapshot deletes a named snapshot of a VM.
	RemoveSnapshot(ctx context.Context, name, snapshot string) error

	// ListSnapshots returns the snapshot names of a VM.
	ListSnapshots(ctx context.Context, name string) ([]string, error)

	// RollbackSnapshot restores a VM to a named snapshot.
	RollbackSnapshot(ctx context.Context, name, snapshot string) error

	// PurgeImage removes snapshots of a VM, either those older than date
	// or the number oldest ones. Nil means no bound of that kind.
	PurgeImage(ctx context.Context, name string, date *time.Time, number *int) error

	// ListMetadata returns the metadata keys attached to a VM.
	ListMetadata(ctx context.Context, name string) ([]string, error)

	// GetMetadata reads the value of one metadata key of a VM.
	GetMetadata(ctx context.Context, name, metadataName string) (string, error)
}
