package ports

import "go.trai.ch/macsdk/internal/core/domain"

// HostInfo reports facts about the host OS that the resolution logic
// consumes but does not compute: version strings, user language
// preferences and the presence of competing package managers.
//
//go:generate mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type HostInfo interface {
	// OSVersion returns the host OS version truncated to major.minor.
	// The null version means the host version could not be determined.
	OSVersion() domain.Version

	// OSFullVersion returns the complete host OS version.
	OSFullVersion() domain.Version

	// Languages returns the user's preferred languages, most preferred
	// first. An empty slice means the preference could not be read.
	Languages() []string

	// Language returns the single most preferred language, or "".
	Language() string

	// MacPortsOrFinkInstalled reports whether MacPorts or Fink is
	// present on the host.
	MacPortsOrFinkInstalled() bool
}
