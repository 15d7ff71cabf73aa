// Package tooling probes which developer tooling is installed on the host.
package tooling

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/macsdk/internal/core/domain"
	"go.trai.ch/macsdk/internal/core/ports"
)

// Probe implements ports.ToolingProbe against installer receipts and the
// known filesystem locations. It performs no caching of its own; the
// resolver snapshots its answers once per process.
type Probe struct {
	system  ports.SystemQuery
	host    ports.HostInfo
	cltRoot string
}

// NewProbe creates a Probe for the standard Command Line Tools location.
func NewProbe(system ports.SystemQuery, host ports.HostInfo) *Probe {
	return &Probe{
		system:  system,
		host:    host,
		cltRoot: domain.CLTRootDir,
	}
}

// NewProbeAt creates a Probe rooted at a specific CLT directory. Used by
// tests to point at a synthetic tree.
func NewProbeAt(system ports.SystemQuery, host ports.HostInfo, cltRoot string) *Probe {
	return &Probe{
		system:  system,
		host:    host,
		cltRoot: cltRoot,
	}
}

// CLTInstalled reports whether the Command Line Tools are installed,
// checking the install tree first and the installer receipt second.
func (p *Probe) CLTInstalled() bool {
	if _, err := os.Stat(filepath.Join(p.cltRoot, "usr", "bin", "clang")); err == nil {
		return true
	}

	info, err := p.system.PackageInfo(context.Background(), domain.CLTPackageID)
	return err == nil && strings.TrimSpace(info) != ""
}

// CLTProvidesSDK reports whether the installed CLT ships an SDK tree.
func (p *Probe) CLTProvidesSDK() bool {
	entries, err := os.ReadDir(filepath.Join(p.cltRoot, "SDKs"))
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if domain.SDKDirPattern.MatchString(entry.Name()) {
			return true
		}
	}
	return false
}

// CLTHeadersSeparate reports whether this OS generation ships CLT headers
// as a separate SDK package rather than into /usr/include directly.
// Mojave (10.14) made the split.
func (p *Probe) CLTHeadersSeparate() bool {
	return p.host.OSVersion().AtLeast("10.14")
}

// XcodeInstalled reports whether a full Xcode install is present: the
// active developer directory pointing inside an app bundle counts, and a
// Spotlight lookup for the Xcode bundle id is the fallback.
func (p *Probe) XcodeInstalled() bool {
	dir, err := p.system.DeveloperDirectory(context.Background())
	if err == nil && strings.Contains(dir, ".app/") {
		if _, statErr := os.Stat(dir); statErr == nil {
			return true
		}
	}

	paths, err := p.system.BundlePaths(context.Background(), domain.XcodeBundleID)
	return err == nil && len(paths) > 0
}

// XcodeSDKPath returns the default SDK of the active Xcode install, or
// false when there is none to report.
func (p *Probe) XcodeSDKPath() (string, bool) {
	dir, err := p.system.DeveloperDirectory(context.Background())
	if err != nil || dir == "" {
		return "", false
	}

	path := filepath.Join(domain.XcodeSDKsDir(dir), "MacOSX.sdk")
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

var _ ports.ToolingProbe = (*Probe)(nil)
