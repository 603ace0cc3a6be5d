package model

import (
	"path/filepath"
	"strings"
)

// PackagePrefix is the fixed namespace all generated packages live under.
const PackagePrefix = "com.quickapp.generated."

// PackageIdentity is the naming derived from a script's file name. Two
// distinct file names that clean to the same value collide; that is a known
// limitation and is not detected here.
type PackageIdentity struct {
	CleanedName string `json:"cleaned_name"`
	PackageName string `json:"package_name"`
}

// NewPackageIdentity derives the identity for a script path.
func NewPackageIdentity(scriptPath string) PackageIdentity {
	cleaned := CleanFileName(scriptPath)
	return PackageIdentity{
		CleanedName: cleaned,
		PackageName: PackagePrefix + cleaned,
	}
}

// CleanFileName normalizes a script path to its package-safe form: base
// name, trailing extension stripped, non-alphanumerics dropped, lowercased.
// The empty string is a permitted result. The transform is idempotent.
func CleanFileName(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}

	var b strings.Builder
	b.Grow(len(base))
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}
