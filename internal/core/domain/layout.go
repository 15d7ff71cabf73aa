package domain

import "path/filepath"

const (
	// CLTRootDir is the fixed install root of the Command Line Tools.
	CLTRootDir = "/Library/Developer/CommandLineTools"

	// CLTPackageID is the installer receipt identifying a CLT install.
	CLTPackageID = "com.apple.pkg.CLTools_Executables"

	// CLTHeadersPackageID is the receipt for the separate SDK headers
	// package shipped alongside newer CLT releases.
	CLTHeadersPackageID = "com.apple.pkg.macOS_SDK_headers_for_macOS"

	// XcodeBundleID is the bundle identifier used to find Xcode installs
	// through the Spotlight index.
	XcodeBundleID = "com.apple.dt.Xcode"

	// DefaultDeveloperDir is the developer directory of a standard Xcode
	// install, used when xcode-select yields nothing.
	DefaultDeveloperDir = "/Applications/Xcode.app/Contents/Developer"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "macsdk.yaml"

	// EnvOSVersion is the environment variable carrying the host OS
	// version (major.minor).
	EnvOSVersion = "MACSDK_MACOS_VERSION"

	// EnvOSFullVersion is the environment variable carrying the full host
	// OS version string.
	EnvOSFullVersion = "MACSDK_MACOS_FULL_VERSION"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// MacPortsFinkPaths are probed to detect package managers that install
// competing headers and libraries into the compiler search path.
var MacPortsFinkPaths = []string{
	"/opt/local/bin/port",
	"/sw/bin/fink",
}

// CLTSDKsDir returns the SDKs directory of the Command Line Tools tree.
func CLTSDKsDir() string {
	return filepath.Join(CLTRootDir, "SDKs")
}

// XcodeSDKsDir returns the macOS SDKs directory beneath an Xcode developer
// directory.
func XcodeSDKsDir(developerDir string) string {
	return filepath.Join(developerDir, "Platforms", "MacOSX.platform", "Developer", "SDKs")
}
