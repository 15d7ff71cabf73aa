package domain

import (
	"regexp"
	"sort"
)

// SDKSource identifies which tooling source produced an SDK descriptor.
type SDKSource int

const (
	// SourceCLT marks an SDK discovered in the Command Line Tools tree.
	SourceCLT SDKSource = iota
	// SourceXcode marks an SDK discovered beneath the Xcode developer directory.
	SourceXcode
)

// String returns the human-readable source name.
func (s SDKSource) String() string {
	switch s {
	case SourceCLT:
		return "command-line-tools"
	case SourceXcode:
		return "xcode"
	default:
		return "unknown"
	}
}

// SDK describes one discovered SDK root. Descriptors are produced by a
// locator scan, are read-only, and live only for the process.
type SDK struct {
	Version Version
	Path    string
	Source  SDKSource
}

// SDKDirPattern matches versioned SDK directory names such as
// MacOSX10.15.sdk or MacOSX14.sdk. The unversioned MacOSX.sdk symlink is
// intentionally not matched.
var SDKDirPattern = regexp.MustCompile(`^MacOSX(\d+(?:\.\d+)*)\.sdk$`)

// SelectSDK applies the shared best-effort selection policy to an SDK
// inventory:
//
//  1. an exact match for the requested version wins;
//  2. a requested but absent version degrades to the highest available;
//  3. with no request, the SDK matching the host OS (major.minor) wins,
//     falling back to the highest available;
//  4. an empty inventory yields no result.
//
// Absence is never an error, only a false second return.
func SelectSDK(inventory []SDK, requested, host Version) (SDK, bool) {
	if len(inventory) == 0 {
		return SDK{}, false
	}

	sorted := make([]SDK, len(inventory))
	copy(sorted, inventory)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Version.Compare(sorted[j].Version) > 0
	})

	if !requested.IsNull() {
		for _, sdk := range sorted {
			if sdk.Version.Compare(requested) == 0 {
				return sdk, true
			}
		}
		return sorted[0], true
	}

	hostSeries := host.MajorMinor()
	for _, sdk := range sorted {
		if sdk.Version.MajorMinor().Compare(hostSeries) == 0 {
			return sdk, true
		}
	}
	return sorted[0], true
}
