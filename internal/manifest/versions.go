package manifest

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// versionMap pins every package an installer may add.
var versionMap = map[string]string{
	// API layer
	"@tanstack/react-query": "^4.36.1",
	"superjson":             "^2.2.1",
	"@trpc/client":          "^10.43.6",
	"@trpc/next":            "^10.43.6",
	"@trpc/react-query":     "^10.43.6",
	"@trpc/server":          "^10.43.6",

	// NextAuth
	"next-auth":                 "^4.24.5",
	"@next-auth/prisma-adapter": "^1.0.7",
	"@auth/drizzle-adapter":     "^0.3.6",

	// Lucia
	"lucia":                      "^2.7.4",
	"@lucia-auth/oauth":          "^3.5.0",
	"@lucia-auth/adapter-prisma": "^3.0.2",
	"@lucia-auth/adapter-mysql":  "^2.1.0",
}

// Version returns the pinned npm range for name. A pin that is not a valid
// semantic version range is reported as InvalidVersion.
func Version(name string) (string, error) {
	v, ok := versionMap[name]
	if !ok {
		return "", newManifestError(UnknownPackage, name, "no pinned version for package", nil)
	}
	if err := ValidateRange(v); err != nil {
		return "", newManifestError(InvalidVersion, name, "pinned version is not a valid range", err)
	}
	return v, nil
}

// Packages returns every pinned package name, sorted.
func Packages() []string {
	names := make([]string, 0, len(versionMap))
	for name := range versionMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateRange checks that an npm range of the form "x.y.z", "^x.y.z" or
// "~x.y.z" carries a valid semantic version.
func ValidateRange(r string) error {
	v := strings.TrimLeft(r, "^~")
	if v == "" {
		return fmt.Errorf("empty version range %q", r)
	}
	if !semver.IsValid("v" + v) {
		return fmt.Errorf("invalid semantic version in range %q", r)
	}
	if semver.Canonical("v"+v) != "v"+v {
		return fmt.Errorf("version range %q must be major.minor.patch", r)
	}
	return nil
}

// ValidateVersionMap checks every pinned range.
func ValidateVersionMap() error {
	for _, name := range Packages() {
		if _, err := Version(name); err != nil {
			return err
		}
	}
	return nil
}
