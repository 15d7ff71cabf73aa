package domain

// ToolingState is a snapshot of the developer tooling installed on the host.
// It is queried lazily, cached for the process lifetime, and never
// invalidated: the design assumes tooling does not change mid-run.
type ToolingState struct {
	CLTInstalled       bool
	CLTProvidesSDK     bool
	CLTHeadersSeparate bool
	XcodeInstalled     bool
	XcodeSDKPath       string
}

// SDKRootNeeded is the final gate before exposing an SDK path.
//
// It is false exactly when the Command Line Tools are installed and either
// ship no SDK of their own or ship headers directly into the default search
// path. In every other combination (no CLT at all, or a CLT whose SDK and
// headers live in a genuinely separate root) a compiler needs an explicit
// SDK root.
func (t ToolingState) SDKRootNeeded() bool {
	if t.CLTInstalled && (!t.CLTProvidesSDK || !t.CLTHeadersSeparate) {
		return false
	}
	return true
}
