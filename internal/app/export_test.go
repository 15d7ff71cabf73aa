// export_test.go exposes test hooks for white-box testing.
package app

// SetHostOS overrides the detected host OS and returns a restore func.
func SetHostOS(os string) func() {
	prev := hostOS
	hostOS = os
	return func() { hostOS = prev }
}
