// Package xcode implements the SDK locator for Xcode installs.
package xcode

import (
	"context"
	"os"

	"go.trai.ch/macsdk/internal/adapters/fs"
	"go.trai.ch/macsdk/internal/core/domain"
	"go.trai.ch/macsdk/internal/core/ports"
)

// Locator scans the SDKs directory beneath the active Xcode developer
// directory.
type Locator struct {
	scanner *fs.Scanner
	host    ports.HostInfo
	system  ports.SystemQuery

	// developerDir overrides discovery when non-empty (config override
	// or tests).
	developerDir string

	fallbackDir string

	devDir     string
	devDirDone bool
}

// NewLocator creates a Locator that discovers the developer directory
// through xcode-select. A non-empty developerDir skips discovery.
func NewLocator(scanner *fs.Scanner, host ports.HostInfo, system ports.SystemQuery, developerDir string) *Locator {
	return &Locator{
		scanner:      scanner,
		host:         host,
		system:       system,
		developerDir: developerDir,
		fallbackDir:  domain.DefaultDeveloperDir,
	}
}

// DeveloperDir returns the developer directory this locator scans under,
// memoized for the process lifetime. A failed xcode-select query degrades
// to the standard install location when that exists, else "".
func (l *Locator) DeveloperDir() string {
	if l.devDirDone {
		return l.devDir
	}
	l.devDirDone = true

	if l.developerDir != "" {
		l.devDir = l.developerDir
		return l.devDir
	}

	dir, err := l.system.DeveloperDirectory(context.Background())
	if err == nil && dir != "" {
		l.devDir = dir
		return l.devDir
	}

	if _, statErr := os.Stat(l.fallbackDir); statErr == nil {
		l.devDir = l.fallbackDir
	}
	return l.devDir
}

// SDKIfApplicable returns the best-matching Xcode SDK for the requested
// version, per the shared selection policy. An unknown developer directory
// is an empty inventory.
func (l *Locator) SDKIfApplicable(requested domain.Version) (domain.SDK, bool) {
	devDir := l.DeveloperDir()
	if devDir == "" {
		return domain.SDK{}, false
	}

	inventory := l.scanner.Scan(domain.XcodeSDKsDir(devDir), domain.SourceXcode)
	return domain.SelectSDK(inventory, requested, l.host.OSVersion())
}

// Source identifies this locator as the Xcode variant.
func (l *Locator) Source() domain.SDKSource {
	return domain.SourceXcode
}

var _ ports.SDKLocator = (*Locator)(nil)
