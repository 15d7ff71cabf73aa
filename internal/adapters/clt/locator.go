// Package clt implements the SDK locator for the Command Line Tools tree.
package clt

import (
	"go.trai.ch/macsdk/internal/adapters/fs"
	"go.trai.ch/macsdk/internal/core/domain"
	"go.trai.ch/macsdk/internal/core/ports"
)

// Locator scans the fixed Command Line Tools SDKs directory.
type Locator struct {
	scanner *fs.Scanner
	host    ports.HostInfo
	sdksDir string
}

// NewLocator creates a Locator scanning the standard CLT SDKs directory.
func NewLocator(scanner *fs.Scanner, host ports.HostInfo) *Locator {
	return &Locator{
		scanner: scanner,
		host:    host,
		sdksDir: domain.CLTSDKsDir(),
	}
}

// NewLocatorAt creates a Locator scanning a specific SDKs directory.
// Used by tests to point at a synthetic tree.
func NewLocatorAt(scanner *fs.Scanner, host ports.HostInfo, sdksDir string) *Locator {
	return &Locator{
		scanner: scanner,
		host:    host,
		sdksDir: sdksDir,
	}
}

// SDKIfApplicable returns the best-matching CLT SDK for the requested
// version, per the shared selection policy.
func (l *Locator) SDKIfApplicable(requested domain.Version) (domain.SDK, bool) {
	inventory := l.scanner.Scan(l.sdksDir, domain.SourceCLT)
	return domain.SelectSDK(inventory, requested, l.host.OSVersion())
}

// Source identifies this locator as the CLT variant.
func (l *Locator) Source() domain.SDKSource {
	return domain.SourceCLT
}

var _ ports.SDKLocator = (*Locator)(nil)
