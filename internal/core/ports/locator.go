package ports

import "go.trai.ch/macsdk/internal/core/domain"

// SDKLocator is a strategy that enumerates and selects SDKs from one
// specific tooling source.
//
// Lookups are best-effort and non-failing: absence of a match is a false
// second return, never an error.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type SDKLocator interface {
	// SDKIfApplicable returns the best-matching installed SDK for the
	// requested version. Passing the null version asks for the SDK
	// matching the host OS, falling back to the highest installed one.
	SDKIfApplicable(requested domain.Version) (domain.SDK, bool)

	// Source identifies the tooling source this locator scans.
	Source() domain.SDKSource
}
