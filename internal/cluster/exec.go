package cluster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/seapath/cluster-vm/api/v1alpha1"
)

// DefaultManagerPath is the cluster management tool, resolved via PATH
// unless overridden.
const DefaultManagerPath = "vm-mgr"

// ExecManager reaches the VM management capability by invoking its
// command line tool, one process per operation. Commands and VM names
// are positional arguments; optional inputs are flags. The raw VM
// definition document is passed as the --config argument.
//
// Failure text written to stderr by the tool is returned verbatim as
// the operation's error.
type ExecManager struct {
	// Path is the management tool executable.
	Path string
}

// NewExecManager returns an ExecManager invoking the tool at path,
// falling back to DefaultManagerPath when path is empty.
func NewExecManager(path string) *ExecManager {
	if path == "" {
		path = DefaultManagerPath
	}
	return &ExecManager{Path: path}
}

// run invokes the management tool and returns its stdout.
func (m *ExecManager) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, m.Path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", errors.New(msg)
		}
		return "", fmt.Errorf("failed to run %s %s: %w", m.Path, args[0], err)
	}
	return stdout.String(), nil
}

// splitLines parses line-oriented tool output into a list, one item per
// non-blank line. The result is never nil, so callers can tell an empty
// listing apart from an absent one.
func splitLines(out string) []string {
	items := []string{}
	for _, line := range strings.Split(out, "\n") {
		if item := strings.TrimSpace(line); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// metadataArgs renders a metadata map as repeated --metadata key=value
// flags, sorted by key so invocations are reproducible.
func metadataArgs(metadata map[string]string) []string {
	if len(metadata) == 0 {
		return nil
	}

	keys := make([]string, 0, len(metadata))
	for key := range metadata {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	args := make([]string, 0, 2*len(keys))
	for _, key := range keys {
		args = append(args, "--metadata", key+"="+metadata[key])
	}
	return args
}

// ListVMs returns the names of all VMs managed by the cluster.
func (m *ExecManager) ListVMs(ctx context.Context) ([]string, error) {
	out, err := m.run(ctx, "list_vms")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// Create defines a new VM from a system image.
func (m *ExecManager) Create(ctx context.Context, opts CreateOptions) error {
	args := []string{
		"create", opts.Name,
		"--config", opts.Config,
		"--system-image", opts.SystemImage,
		"--enable=" + strconv.FormatBool(opts.Enable),
	}
	if opts.Force {
		args = append(args, "--force")
	}
	args = append(args, metadataArgs(opts.Metadata)...)
	if opts.PreferredHost != "" {
		args = append(args, "--preferred-host", opts.PreferredHost)
	}
	if opts.PinnedHost != "" {
		args = append(args, "--pinned-host", opts.PinnedHost)
	}

	_, err := m.run(ctx, args...)
	return err
}

// Clone creates a new VM from an existing one.
func (m *ExecManager) Clone(ctx context.Context, opts CloneOptions) error {
	args := []string{
		"clone", opts.SrcName, opts.Name,
		"--config", opts.BaseConfig,
		"--enable=" + strconv.FormatBool(opts.Enable),
	}
	if opts.Force {
		args = append(args, "--force")
	}
	args = append(args, metadataArgs(opts.Metadata)...)
	if opts.PreferredHost != "" {
		args = append(args, "--preferred-host", opts.PreferredHost)
	}
	if opts.PinnedHost != "" {
		args = append(args, "--pinned-host", opts.PinnedHost)
	}
	if opts.ClearConstraint {
		args = append(args, "--clear-constraint")
	}

	_, err := m.run(ctx, args...)
	return err
}

// Remove deletes a VM from the cluster entirely.
func (m *ExecManager) Remove(ctx context.Context, name string) error {
	_, err := m.run(ctx, "remove", name)
	return err
}

// Start starts a stopped VM.
func (m *ExecManager) Start(ctx context.Context, name string) error {
	_, err := m.run(ctx, "start", name)
	return err
}

// Stop stops a running VM, forcefully when force is set.
func (m *ExecManager) Stop(ctx context.Context, name string, force bool) error {
	args := []string{"stop", name}
	if force {
		args = append(args, "--force")
	}
	_, err := m.run(ctx, args...)
	return err
}

// EnableVM puts a VM under cluster management.
func (m *ExecManager) EnableVM(ctx context.Context, name string) error {
	_, err := m.run(ctx, "enable", name)
	return err
}

// DisableVM removes a VM from cluster management without deleting it.
func (m *ExecManager) DisableVM(ctx context.Context, name string) error {
	_, err := m.run(ctx, "disable", name)
	return err
}

// Status reports the VM's current status token. Tokens outside the
// defined set are rejected.
func (m *ExecManager) Status(ctx context.Context, name string) (v1alpha1.Status, error) {
	out, err := m.run(ctx, "status", name)
	if err != nil {
		return "", err
	}
	return v1alpha1.ParseStatus(strings.TrimSpace(out))
}

// CreateSnapshot takes a named snapshot of a VM.
func (m *ExecManager) CreateSnapshot(ctx context.Context, name, snapshot string) error {
	_, err := m.run(ctx, "create_snapshot", name, snapshot)
	return err
}

// RemoveSnapshot deletes a named snapshot of a VM.
func (m *ExecManager) RemoveSnapshot(ctx context.Context, name, snapshot string) error {
	_, err := m.run(ctx, "remove_snapshot", name, snapshot)
	return err
}

// ListSnapshots returns the snapshot names of a VM.
func (m *ExecManager) ListSnapshots(ctx context.Context, name string) ([]string, error) {
	out, err := m.run(ctx, "list_snapshots", name)
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// RollbackSnapshot restores a VM to a named snapshot.
func (m *ExecManager) RollbackSnapshot(ctx context.Context, name, snapshot string) error {
	_, err := m.run(ctx, "rollback_snapshot", name, snapshot)
	return err
}

// PurgeImage removes old snapshots of a VM by age or count.
func (m *ExecManager) PurgeImage(ctx context.Context, name string, date *time.Time, number *int) error {
	args := []string{"purge_image", name}
	if date != nil {
		args = append(args, "--date", date.Format("2006-01-02T15:04:05"))
	}
	if number != nil {
		args = append(args, "--number", strconv.Itoa(*number))
	}
	_, err := m.run(ctx, args...)
	return err
}

// ListMetadata returns the metadata keys attached to a VM.
func (m *ExecManager) ListMetadata(ctx context.Context, name string) ([]string, error) {
	out, err := m.run(ctx, "list_metadata", name)
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// GetMetadata reads the value of one metadata key of a VM. The value is
// everything the tool prints, with the trailing newline removed.
func (m *ExecManager) GetMetadata(ctx context.Context, name, metadataName string) (string, error) {
	out, err := m.run(ctx, "get_metadata", name, metadataName)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\r\n"), nil
}
