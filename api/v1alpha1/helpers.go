package v1alpha1

import (
	"strings"

	"github.com/google/uuid"
)

// NewRequest creates a Request for the given command with a fresh UID.
func NewRequest(command Command) *Request {
	return &Request{
		UID:     uuid.New().String(),
		Command: command,
	}
}

// EnsureUID assigns a fresh UID if the request does not have one yet.
// Useful when a Request was decoded from a document instead of built
// with NewRequest.
func (r *Request) EnsureUID() {
	if r.UID == "" {
		r.UID = uuid.New().String()
	}
}

// EnableOrDefault returns the enable flag.
// Handles nil pointer by returning the default value (true).
func (r *Request) EnableOrDefault() bool {
	if r.Enable == nil {
		return true // default
	}
	return *r.Enable
}

// Normalize sanitizes user input to consistent formats.
// This is called automatically before validation.
func (r *Request) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.SrcName = strings.TrimSpace(r.SrcName)
	r.SnapshotName = strings.TrimSpace(r.SnapshotName)
	r.MetadataName = strings.TrimSpace(r.MetadataName)
	r.SystemImage = strings.TrimSpace(r.SystemImage)
	r.PreferredHost = strings.TrimSpace(r.PreferredHost)
	r.PinnedHost = strings.TrimSpace(r.PinnedHost)

	// Note: Config is NOT normalized - it is an opaque document passed
	// through to the cluster exactly as supplied
}
