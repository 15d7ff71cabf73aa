package ports

import "context"

// SystemQuery wraps the one-shot system utility invocations the resolver
// depends on. Every call blocks until the underlying process exits; no
// timeouts or retries are modeled.
//
// Failures (missing binary, non-zero exit) surface as errors here, but
// callers on the resolution path absorb them into empty results.
//
//go:generate mockgen -source=system.go -destination=mocks/mock_system.go -package=mocks
type SystemQuery interface {
	// DeveloperDirectory returns the active developer directory as
	// reported by xcode-select.
	DeveloperDirectory(ctx context.Context) (string, error)

	// PackageInfo returns the raw receipt info for an installer package
	// id as reported by pkgutil.
	PackageInfo(ctx context.Context, id string) (string, error)

	// BundlePaths returns the filesystem paths of applications matching
	// any of the given bundle identifiers via the Spotlight index.
	BundlePaths(ctx context.Context, ids ...string) ([]string, error)
}
