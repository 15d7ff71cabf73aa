// Package ports defines the core interfaces for the application.
package ports

// ToolingProbe reports which developer tooling is installed on the host.
//
// Implementations back each method with a system query (installer receipts
// or known filesystem locations). The resolver treats every method as a
// cacheable, side-effect-free-per-process read: tooling is assumed not to
// change while the process runs.
//
//go:generate mockgen -source=tooling_probe.go -destination=mocks/mock_tooling_probe.go -package=mocks
type ToolingProbe interface {
	// CLTInstalled reports whether the Command Line Tools are installed.
	CLTInstalled() bool

	// CLTProvidesSDK reports whether the installed CLT ships an SDK of
	// its own.
	CLTProvidesSDK() bool

	// CLTHeadersSeparate reports whether the CLT ships headers as a
	// separate package instead of into the default search path.
	CLTHeadersSeparate() bool

	// XcodeInstalled reports whether a full Xcode install is present.
	XcodeInstalled() bool

	// XcodeSDKPath returns the default SDK path of the Xcode install,
	// or false when none could be determined.
	XcodeSDKPath() (string, bool)
}
