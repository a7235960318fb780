// Package dispatch maps each validated cluster VM request onto exactly one
// capability call and shapes the outcome into the result contract.
package dispatch

import (
	"context"

	"github.com/seapath/cluster-vm/api/v1alpha1"
	"github.com/seapath/cluster-vm/internal/cluster"
	"github.com/seapath/cluster-vm/internal/validate"
)

// CapabilityError wraps a failure raised by the VM management capability.
// The capability's message is preserved verbatim; nothing is added or
// interpreted on the way up.
type CapabilityError struct {
	// Command is the command whose capability call failed.
	Command v1alpha1.Command

	// Err is the capability's own error.
	Err error
}

func (e *CapabilityError) Error() string {
	return e.Err.Error()
}

func (e *CapabilityError) Unwrap() error {
	return e.Err
}

// handler performs the capability call for one command and shapes its
// result.
type handler func(ctx context.Context, m cluster.Manager, req *validate.Validated) (v1alpha1.Result, error)

// handlers is the command table. Built once at init, read-only afterwards.
var handlers = map[v1alpha1.Command]handler{
	v1alpha1.CommandListVMs:          dispatchListVMs,
	v1alpha1.CommandCreate:           dispatchCreate,
	v1alpha1.CommandClone:            dispatchClone,
	v1alpha1.CommandRemove:           dispatchRemove,
	v1alpha1.CommandStart:            dispatchStart,
	v1alpha1.CommandStop:             dispatchStop,
	v1alpha1.CommandEnable:           dispatchEnable,
	v1alpha1.CommandDisable:          dispatchDisable,
	v1alpha1.CommandStatus:           dispatchStatus,
	v1alpha1.CommandCreateSnapshot:   dispatchCreateSnapshot,
	v1alpha1.CommandRemoveSnapshot:   dispatchRemoveSnapshot,
	v1alpha1.CommandListSnapshots:    dispatchListSnapshots,
	v1alpha1.CommandRollbackSnapshot: dispatchRollbackSnapshot,
	v1alpha1.CommandPurgeImage:       dispatchPurgeImage,
	v1alpha1.CommandListMetadata:     dispatchListMetadata,
	v1alpha1.CommandGetMetadata:      dispatchGetMetadata,
}

// Dispatch routes req to its capability operation and returns the shaped
// result. At most one capability call happens per invocation. Capability
// failures come back wrapped in CapabilityError with the message intact.
func Dispatch(ctx context.Context, m cluster.Manager, req *validate.Validated) (v1alpha1.Result, error) {
	h, ok := handlers[req.Command]
	if !ok {
		return v1alpha1.Result{}, &v1alpha1.UnsupportedCommandError{Command: string(req.Command)}
	}

	result, err := h(ctx, m, req)
	if err != nil {
		return v1alpha1.Result{}, &CapabilityError{Command: req.Command, Err: err}
	}
	return result, nil
}

func dispatchListVMs(ctx context.Context, m cluster.Manager, req *validate.Validated) (v1alpha1.Result, error) {
	names, err := m.ListVMs(ctx)
	if err != nil {
		return v1alpha1.Result{}, err
	}
	return v1alpha1.Result{ListVMs: names}, nil
}

func dispatchCreate(ctx context.Context, m cluster.Manager, req *validate.Validated) (v1alpha1.Result, error) {
	err := m.Create(ctx, cluster.CreateOptions{
		Name:          req.Name,
		Config:        req.Config,
		SystemImage:   req.SystemImage,
		Force:         req.Force,
		Enable:        req.Enable,
		Metadata:      req.Metadata,
		PreferredHost: req.PreferredHost,
		PinnedHost:    req.PinnedHost,
	})
	return v1alpha1.Result{}, err
}

func dispatchClone(ctx context.Context, m cluster.Manager, req *validate.Validated) (v1alpha1.Result, error) {
	err := m.Clone(ctx, cluster.CloneOptions{
		SrcName:         req.SrcName,
		Name:            req.Name,
		BaseConfig:      req.Config,
		Force:           req.Force,
		Enable:          req.Enable,
		Metadata:        req.Metadata,
		PreferredHost:   req.PreferredHost,
		PinnedHost:      req.PinnedHost,
		ClearConstraint: req.ClearConstraint,
	})
	return v1alpha1.Result{}, err
}

func dispatchRemove(ctx context.Context, m cluster.Manager, req *validate.Validated) (v1alpha1.Result, error) {
	return v1alpha1.Result{}, m.Remove(ctx, req.Name)
}

func dispatchStart(ctx context.Context, m cluster.Manager, req *validate.Validated) (v1alpha1.Result, error) {
	return v1alpha1.Result{}, m.Start(ctx, req.Name)
}

func dispatchStop(ctx context.Context, m cluster.Manager, req *validate.Validated) (v1alpha1.Result, error) {
	return v1alpha1.Result{}, m.Stop(ctx, req.Name, req.Force)
}

func dispatchEnable(ctx context.Context, m cluster.Manager, req *validate.Validated) (v1alpha1.Result, error) {
	return v1alpha1.Result{}, m.EnableVM(ctx, req.Name)
}

func dispatchDisable(ctx context.Context, m cluster.Manager, req *validate.Validated) (v1alpha1.Result, error) {
	return v1alpha1.Result{}, m.DisableVM(ctx, req.Name)
}

func dispatchStatus(ctx context.Context, m cluster.Manager, req *validate.Validated) (v1alpha1.Result, error) {
	status, err := m.Status(ctx, req.Name)
	if err != nil {
		return v1alpha1.Result{}, err
	}
	return v1alpha1.Result{Status: status}, nil
}

func dispatchCreateSnapshot(ctx context.Context, m cluster.Manager, req *validate.Validated) (v1alpha1.Result, error) {
	return v1alpha1.Result{}, m.CreateSnapshot(ctx, req.Name, req.SnapshotName)
}

func dispatchRemoveSnapshot(ctx context.Context, m cluster.Manager, req *validate.Validated) (v1alpha1.Result, error) {
	return v1alpha1.Result{}, m.RemoveSnapshot(ctx, req.Name, req.SnapshotName)
}

func dispatchListSnapshots(ctx context.Context, m cluster.Manager, req *validate.Validated) (v1alpha1.Result, error) {
	snapshots, err := m.ListSnapshots(ctx, req.Name)
	if err != nil {
		return v1alpha1.Result{}, err
	}
	return v1alpha1.Result{ListSnapshot: snapshots}, nil
}

func dispatchRollbackSnapshot(ctx context.Context, m cluster.Manager, req *validate.Validated) (v1alpha1.Result, error) {
	return v1alpha1.Result{}, m.RollbackSnapshot(ctx, req.Name, req.SnapshotName)
}

func dispatchPurgeImage(ctx context.Context, m cluster.Manager, req *validate.Validated) (v1alpha1.Result, error) {
	return v1alpha1.Result{}, m.PurgeImage(ctx, req.Name, req.PurgeDate, req.PurgeNumber)
}

func dispatchListMetadata(ctx context.Context, m cluster.Manager, req *validate.Validated) (v1alpha1.Result, error) {
	keys, err := m.ListMetadata(ctx, req.Name)
	if err != nil {
		return v1alpha1.Result{}, err
	}
	return v1alpha1.Result{ListMetadata: keys}, nil
}

func dispatchGetMetadata(ctx context.Context, m cluster.Manager, req *validate.Validated) (v1alpha1.Result, error) {
	value, err := m.GetMetadata(ctx, req.Name, req.MetadataName)
	if err != nil {
		return v1alpha1.Result{}, err
	}
	return v1alpha1.Result{MetadataValue: value}, nil
}
