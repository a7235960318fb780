// Package naming enforces the identifier conventions for cluster VM
// resources. VM names and metadata keys end up embedded in cluster
// resource identifiers, so they are restricted to letters and digits.
//
// These naming rules are version-independent and shared across all
// API versions.
package naming

// IsValidVMName reports whether name can be used as a cluster VM name.
// Valid names are non-empty and contain only ASCII letters and digits.
//
// Example: "guest0" is valid, "guest-0" and "guest_0" are not.
func IsValidVMName(name string) bool {
	return isAlnum(name)
}

// IsValidMetadataKey reports whether key can be used as a VM metadata key.
// The rule matches IsValidVMName: non-empty, ASCII letters and digits only.
func IsValidMetadataKey(key string) bool {
	return isAlnum(key)
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
