//go:build !darwin

package host

// sysctlProductVersion has no kernel to ask outside macOS.
func sysctlProductVersion() string {
	return ""
}
