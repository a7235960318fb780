package validate

import (
	"fmt"

	"github.com/seapath/cluster-vm/api/v1alpha1"
)

// ValidationError reports a request field that is missing or malformed
// for the selected command. Field always names the offending request
// field so automation can point at what to fix.
type ValidationError struct {
	// Field is the request field the error is about.
	Field string

	// Command is the command being validated.
	Command v1alpha1.Command

	// Reason describes what is wrong with the field's value.
	// Empty means the field was required and absent.
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("`%s` %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("`%s` is required when `command` is `%s`", e.Field, e.Command)
}

// MutualExclusionError reports request fields that cannot be combined:
// either both members of an exclusive pair were supplied, or the purge
// specification mixes its encodings.
type MutualExclusionError struct {
	// Reason is the full failure message.
	Reason string
}

func (e *MutualExclusionError) Error() string {
	return e.Reason
}

// ImageNotFoundError reports a create request whose system image path
// does not point at an existing regular file.
type ImageNotFoundError struct {
	// Path is the system image path that was checked.
	Path string
}

func (e *ImageNotFoundError) Error() string {
	return fmt.Sprintf("`system_image` %q doesn't exist or is not a file", e.Path)
}
