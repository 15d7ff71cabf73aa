package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedHost is returned when the resolver is started on a
	// host that is not macOS. This is a fatal misconfiguration, not a
	// runtime condition.
	ErrUnsupportedHost = zerr.New("macsdk requires a macOS host")

	// ErrHostVersionUnset is returned when neither the version environment
	// variables nor the system probes yield a host OS version.
	ErrHostVersionUnset = zerr.New("host OS version is not available")

	// ErrQueryCommandFailed is returned when a system utility invocation
	// fails. Callers on the resolution path absorb it into an empty result.
	ErrQueryCommandFailed = zerr.New("system query command failed")

	// ErrQueryOutputInvalid is returned when a system utility produced
	// output that cannot be interpreted.
	ErrQueryOutputInvalid = zerr.New("system query output invalid")

	// ErrNoSDKFound is returned by the CLI surface when resolution ends
	// with no installed SDK. The resolution API itself reports absence as
	// a boolean, never as an error.
	ErrNoSDKFound = zerr.New("no macOS SDK is installed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)
