//go:build darwin

package host

import (
	"strings"
	"syscall"
)

// sysctlProductVersion reads the OS product version from the kernel,
// avoiding a process spawn on the common path.
func sysctlProductVersion() string {
	version, err := syscall.Sysctl("kern.osproductversion")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(version)
}
