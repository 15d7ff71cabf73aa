// Package build holds build-time information injected via linker flags.
package build

// Version is the application version. Overwritten by -ldflags at release time.
var Version = "dev"

// Commit is the git commit the binary was built from.
var Commit = "none"

// Date is the build timestamp.
var Date = "unknown"
