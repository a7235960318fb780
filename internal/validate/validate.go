// Package validate checks raw cluster VM requests against the command
// catalogue and produces the resolved form the dispatcher consumes.
// Nothing here touches the cluster; the only side-looking check is the
// filesystem probe for the create system image.
package validate

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/seapath/cluster-vm/api/v1alpha1"
	"github.com/seapath/cluster-vm/internal/naming"
	"github.com/seapath/cluster-vm/internal/purge"
	"github.com/seapath/cluster-vm/internal/registry"
)

// Validated is a request that passed validation. Optional inputs are
// resolved: the enable default is applied and the purge cutoff is a
// timestamp instead of its request encodings.
type Validated struct {
	Command         v1alpha1.Command
	Name            string
	SrcName         string
	Config          string
	SystemImage     string
	Force           bool
	Enable          bool
	Metadata        map[string]string
	MetadataName    string
	SnapshotName    string
	PreferredHost   string
	PinnedHost      string
	ClearConstraint bool

	// PurgeDate is the resolved purge cutoff, nil when none was requested.
	PurgeDate *time.Time

	// PurgeNumber is the count of snapshots to delete, oldest first, nil
	// when none was requested.
	PurgeNumber *int
}

// Request validates req and returns its resolved form.
//
// Checks run in a fixed order so the reported failure is deterministic:
// required fields for the command first, then the purge field rules, then
// structural checks on the values themselves. The first failure wins and
// nothing after it runs.
func Request(req *v1alpha1.Request) (*Validated, error) {
	req.Normalize()

	fields, ok := registry.RequiredFields(req.Command)
	if !ok {
		return nil, &v1alpha1.UnsupportedCommandError{Command: string(req.Command)}
	}

	for _, field := range fields {
		if !hasField(req, field) {
			return nil, &ValidationError{Field: field, Command: req.Command}
		}
	}

	if err := checkExclusive(req); err != nil {
		return nil, err
	}

	purgeDate, err := resolvePurge(req)
	if err != nil {
		return nil, err
	}

	if err := checkStructural(req); err != nil {
		return nil, err
	}

	return &Validated{
		Command:         req.Command,
		Name:            req.Name,
		SrcName:         req.SrcName,
		Config:          req.Config,
		SystemImage:     req.SystemImage,
		Force:           req.Force,
		Enable:          req.EnableOrDefault(),
		Metadata:        req.Metadata,
		MetadataName:    req.MetadataName,
		SnapshotName:    req.SnapshotName,
		PreferredHost:   req.PreferredHost,
		PinnedHost:      req.PinnedHost,
		ClearConstraint: req.ClearConstraint,
		PurgeDate:       purgeDate,
		PurgeNumber:     req.PurgeNumber,
	}, nil
}

// hasField reports whether the named catalogue field is set on req.
func hasField(req *v1alpha1.Request, field string) bool {
	switch field {
	case "name":
		return req.Name != ""
	case "src_name":
		return req.SrcName != ""
	case "config":
		return req.Config != ""
	case "system_image":
		return req.SystemImage != ""
	case "snapshot_name":
		return req.SnapshotName != ""
	case "metadata_name":
		return req.MetadataName != ""
	}
	return false
}

// checkExclusive enforces the catalogue's cross-field rules. A supplied
// purge_spec counts even when it is an empty document; emptiness only
// matters for resolution, not for exclusivity.
func checkExclusive(req *v1alpha1.Request) error {
	for _, pair := range registry.ExclusivePairs {
		if hasExclusiveField(req, pair[0]) && hasExclusiveField(req, pair[1]) {
			return &MutualExclusionError{
				Reason: fmt.Sprintf("parameters are mutually exclusive: %s|%s", pair[0], pair[1]),
			}
		}
	}
	return nil
}

func hasExclusiveField(req *v1alpha1.Request, field string) bool {
	switch field {
	case "purge_spec":
		return req.PurgeSpec != nil
	case "purge_number":
		return req.PurgeNumber != nil
	}
	return false
}

// resolvePurge turns the purge fields into their resolved form. Encoding
// ambiguities are reported as MutualExclusionError; unparseable values
// keep their underlying parse error.
func resolvePurge(req *v1alpha1.Request) (*time.Time, error) {
	purgeDate, err := purge.Resolve(req.PurgeSpec)
	if err != nil {
		var ambiguity *purge.AmbiguityError
		if errors.As(err, &ambiguity) {
			return nil, &MutualExclusionError{Reason: err.Error()}
		}
		return nil, err
	}

	if req.PurgeNumber != nil && *req.PurgeNumber < 0 {
		return nil, &ValidationError{
			Field:   "purge_number",
			Command: req.Command,
			Reason:  "must be a non-negative integer",
		}
	}

	return purgeDate, nil
}

// checkStructural validates field values: the identifier contract for
// names and metadata keys, and the system image probe for create.
func checkStructural(req *v1alpha1.Request) error {
	if req.Name != "" && !naming.IsValidVMName(req.Name) {
		return &ValidationError{
			Field:   "name",
			Command: req.Command,
			Reason:  "must be composed of letters and numbers only",
		}
	}
	if req.SrcName != "" && !naming.IsValidVMName(req.SrcName) {
		return &ValidationError{
			Field:   "src_name",
			Command: req.Command,
			Reason:  "must be composed of letters and numbers only",
		}
	}

	if req.Command == v1alpha1.CommandCreate || req.Command == v1alpha1.CommandClone {
		for key := range req.Metadata {
			if !naming.IsValidMetadataKey(key) {
				return &ValidationError{
					Field:   "metadata",
					Command: req.Command,
					Reason:  fmt.Sprintf("key %q must be composed of letters and numbers only", key),
				}
			}
		}
	}

	if req.Command == v1alpha1.CommandCreate {
		info, err := os.Stat(req.SystemImage)
		if err != nil || !info.Mode().IsRegular() {
			return &ImageNotFoundError{Path: req.SystemImage}
		}
	}

	return nil
}
