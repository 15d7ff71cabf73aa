// Package system implements system utility queries for SDK resolution.
package system

import (
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/macsdk/internal/core/domain"
	"go.trai.ch/zerr"
)

// runFunc executes a command and returns its stdout. Swapped out in tests.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Query implements ports.SystemQuery by shelling out to the macOS system
// utilities. Every call is one-shot and blocking; no retries.
type Query struct {
	run runFunc
}

// NewQuery creates a Query backed by the real system utilities.
func NewQuery() *Query {
	return &Query{run: runCommand}
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	//nolint:gosec // utility names are fixed, arguments are package/bundle ids
	cmd := exec.CommandContext(ctx, name, args...)

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr := strings.TrimSpace(string(exitErr.Stderr))

			qErr := zerr.Wrap(exitErr, domain.ErrQueryCommandFailed.Error())
			qErr = zerr.With(qErr, "command", name)
			return nil, zerr.With(qErr, "stderr", stderr)
		}

		qErr := zerr.Wrap(err, domain.ErrQueryCommandFailed.Error())
		return nil, zerr.With(qErr, "command", name)
	}

	return output, nil
}

// DeveloperDirectory returns the active developer directory as reported by
// xcode-select.
func (q *Query) DeveloperDirectory(ctx context.Context) (string, error) {
	output, err := q.run(ctx, "xcode-select", "--print-path")
	if err != nil {
		return "", err
	}

	dir := strings.TrimSpace(string(output))
	if dir == "" {
		return "", zerr.With(domain.ErrQueryOutputInvalid, "command", "xcode-select")
	}
	return dir, nil
}

// PackageInfo returns the raw pkgutil receipt for an installer package id.
// pkgutil exits non-zero for unknown receipts, which surfaces as an error
// for the caller to absorb.
func (q *Query) PackageInfo(ctx context.Context, id string) (string, error) {
	output, err := q.run(ctx, "pkgutil", "--pkg-info", id)
	if err != nil {
		return "", err
	}
	return string(output), nil
}

// BundlePaths returns the application paths matching any of the given
// bundle identifiers via the Spotlight index.
func (q *Query) BundlePaths(ctx context.Context, ids ...string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	terms := make([]string, len(ids))
	for i, id := range ids {
		terms[i] = "kMDItemCFBundleIdentifier == '" + id + "'"
	}

	output, err := q.run(ctx, "mdfind", strings.Join(terms, " || "))
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, line := range strings.Split(string(output), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}
