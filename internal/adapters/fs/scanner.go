// Package fs provides the filesystem scanner for installed SDK roots.
package fs

import (
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/macsdk/internal/core/domain"
)

// Scanner enumerates versioned SDK directories below a tooling SDK root.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan returns the SDK inventory found in dir, tagged with the given
// source. An unreadable or missing directory is an empty inventory, not an
// error: absence of SDKs is a normal outcome on hosts without tooling.
//
// Only versioned entries such as MacOSX10.15.sdk are reported; the
// unversioned MacOSX.sdk symlink Xcode ships is skipped so the same SDK is
// not counted twice.
func (s *Scanner) Scan(dir string, source domain.SDKSource) []domain.SDK {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var inventory []domain.SDK
	for _, entry := range entries {
		m := domain.SDKDirPattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}

		version := domain.ParseVersion(m[1])
		if version.IsNull() {
			continue
		}

		inventory = append(inventory, domain.SDK{
			Version: version,
			Path:    filepath.Join(dir, entry.Name()),
			Source:  source,
		})
	}

	sort.Slice(inventory, func(i, j int) bool {
		return inventory[i].Version.Compare(inventory[j].Version) < 0
	})
	return inventory
}
