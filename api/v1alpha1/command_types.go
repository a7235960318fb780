package v1alpha1

import "fmt"

// Command identifies one cluster VM operation. The set of commands is
// closed: anything outside it is rejected before any cluster interaction
// happens.
type Command string

const (
	// CommandCreate defines a new VM from a system image and a definition document.
	CommandCreate Command = "create"

	// CommandRemove removes a VM from the cluster entirely.
	CommandRemove Command = "remove"

	// CommandStart starts a stopped VM.
	CommandStart Command = "start"

	// CommandStop stops a running VM, forcefully when requested.
	CommandStop Command = "stop"

	// CommandListVMs lists the names of all VMs managed by the cluster.
	CommandListVMs Command = "list_vms"

	// CommandEnable puts a VM under cluster management.
	CommandEnable Command = "enable"

	// CommandDisable removes a VM from cluster management without deleting it.
	CommandDisable Command = "disable"

	// CommandStatus reports the current status of a VM.
	CommandStatus Command = "status"

	// CommandClone creates a new VM from an existing one.
	CommandClone Command = "clone"

	// CommandCreateSnapshot takes a named snapshot of a VM.
	CommandCreateSnapshot Command = "create_snapshot"

	// CommandRemoveSnapshot deletes a named snapshot of a VM.
	CommandRemoveSnapshot Command = "remove_snapshot"

	// CommandListSnapshots lists the snapshot names of a VM.
	CommandListSnapshots Command = "list_snapshots"

	// CommandRollbackSnapshot restores a VM to a named snapshot.
	CommandRollbackSnapshot Command = "rollback_snapshot"

	// CommandPurgeImage removes old snapshots of a VM by age or count.
	CommandPurgeImage Command = "purge_image"

	// CommandListMetadata lists the metadata keys attached to a VM.
	CommandListMetadata Command = "list_metadata"

	// CommandGetMetadata reads the value of one metadata key of a VM.
	CommandGetMetadata Command = "get_metadata"
)

// Commands lists every supported command.
var Commands = []Command{
	CommandCreate,
	CommandRemove,
	CommandStart,
	CommandStop,
	CommandListVMs,
	CommandEnable,
	CommandDisable,
	CommandStatus,
	CommandClone,
	CommandCreateSnapshot,
	CommandRemoveSnapshot,
	CommandListSnapshots,
	CommandRollbackSnapshot,
	CommandPurgeImage,
	CommandListMetadata,
	CommandGetMetadata,
}

// Supported reports whether c is one of the defined commands.
func (c Command) Supported() bool {
	for _, known := range Commands {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCommand converts a raw command string into a Command.
// Returns an UnsupportedCommandError for anything outside the defined set.
func ParseCommand(s string) (Command, error) {
	c := Command(s)
	if !c.Supported() {
		return "", &UnsupportedCommandError{Command: s}
	}
	return c, nil
}

// UnsupportedCommandError reports a command outside the supported set.
type UnsupportedCommandError struct {
	// Command is the rejected command string.
	Command string
}

func (e *UnsupportedCommandError) Error() string {
	return fmt.Sprintf("unsupported command %q", e.Command)
}
