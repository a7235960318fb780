// Package registry is the authoritative catalogue of cluster VM commands:
// which request fields each command requires and which field combinations
// are rejected. Validation consults it; nothing else defines command rules.
package registry

import "github.com/seapath/cluster-vm/api/v1alpha1"

// requiredFields maps each command to the request fields it cannot run
// without, in the order missing fields are reported.
var requiredFields = map[v1alpha1.Command][]string{
	v1alpha1.CommandCreate:           {"name", "config", "system_image"},
	v1alpha1.CommandRemove:           {"name"},
	v1alpha1.CommandStart:            {"name"},
	v1alpha1.CommandStop:             {"name"},
	v1alpha1.CommandListVMs:          {},
	v1alpha1.CommandEnable:           {"name"},
	v1alpha1.CommandDisable:          {"name"},
	v1alpha1.CommandStatus:           {"name"},
	v1alpha1.CommandClone:            {"name", "src_name", "config"},
	v1alpha1.CommandCreateSnapshot:   {"name", "snapshot_name"},
	v1alpha1.CommandRemoveSnapshot:   {"name", "snapshot_name"},
	v1alpha1.CommandListSnapshots:    {"name"},
	v1alpha1.CommandRollbackSnapshot: {"name", "snapshot_name"},
	v1alpha1.CommandPurgeImage:       {"name"},
	v1alpha1.CommandListMetadata:     {"name"},
	v1alpha1.CommandGetMetadata:      {"name", "metadata_name"},
}

// ExclusivePair names two request fields that may not be supplied together.
type ExclusivePair [2]string

// ExclusivePairs lists the cross-field rules enforced for every command.
var ExclusivePairs = []ExclusivePair{
	{"purge_spec", "purge_number"},
}

// RequiredFields returns the ordered required field names for cmd.
// The second return value is false for commands outside the catalogue,
// which is also how unsupported commands are detected.
func RequiredFields(cmd v1alpha1.Command) ([]string, bool) {
	fields, ok := requiredFields[cmd]
	return fields, ok
}
