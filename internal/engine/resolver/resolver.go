// Package resolver implements the core SDK resolution logic.
package resolver

import (
	"context"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/macsdk/internal/core/domain"
	"go.trai.ch/macsdk/internal/core/ports"
)

// Resolver decides which SDK root, if any, should be used for compilation
// on this host. It is the explicit per-process context object: every
// once-per-run computation (tooling snapshot, locator choice, developer
// directory, receipt and bundle lookups) is memoized in plain fields and
// never refreshed.
//
// Resolver is not safe for concurrent use. The execution model is one
// synchronous resolution per process; a multi-threaded host must add its
// own locking.
type Resolver struct {
	probe  ports.ToolingProbe
	clt    ports.SDKLocator
	xcode  ports.SDKLocator
	system ports.SystemQuery
	logger ports.Logger
	tracer ports.Tracer

	tooling     domain.ToolingState
	toolingDone bool

	locator     ports.SDKLocator
	locatorDone bool

	devDir     string
	devDirDone bool

	pkgInfo     map[string]string
	bundlePaths map[uint64][]string
}

// NewResolver creates a Resolver with the given collaborators.
func NewResolver(
	probe ports.ToolingProbe,
	clt ports.SDKLocator,
	xcode ports.SDKLocator,
	system ports.SystemQuery,
	logger ports.Logger,
	tracer ports.Tracer,
) *Resolver {
	return &Resolver{
		probe:       probe,
		clt:         clt,
		xcode:       xcode,
		system:      system,
		logger:      logger,
		tracer:      tracer,
		pkgInfo:     make(map[string]string),
		bundlePaths: make(map[uint64][]string),
	}
}

// Tooling returns the cached tooling snapshot, probing on first use.
func (r *Resolver) Tooling() domain.ToolingState {
	if r.toolingDone {
		return r.tooling
	}

	state := domain.ToolingState{
		CLTInstalled:   r.probe.CLTInstalled(),
		XcodeInstalled: r.probe.XcodeInstalled(),
	}
	if state.CLTInstalled {
		state.CLTProvidesSDK = r.probe.CLTProvidesSDK()
		state.CLTHeadersSeparate = r.probe.CLTHeadersSeparate()
	}
	if path, ok := r.probe.XcodeSDKPath(); ok {
		state.XcodeSDKPath = path
	}

	r.tooling = state
	r.toolingDone = true
	return r.tooling
}

// Locator returns the locator for this host, memoized for the process
// lifetime: the CLT locator when the Command Line Tools are installed and
// provide an SDK, the Xcode locator otherwise. Repeated calls return the
// identical instance.
func (r *Resolver) Locator() ports.SDKLocator {
	if r.locatorDone {
		return r.locator
	}

	tooling := r.Tooling()
	if tooling.CLTInstalled && tooling.CLTProvidesSDK {
		r.locator = r.clt
	} else {
		r.locator = r.xcode
	}

	r.logger.InfoWith("selected SDK locator", "source", r.locator.Source().String())
	r.locatorDone = true
	return r.locator
}

// SDK returns the best-matching installed SDK for the requested version
// through the memoized locator. Absence is a false second return.
func (r *Resolver) SDK(requested domain.Version) (domain.SDK, bool) {
	return r.Locator().SDKIfApplicable(requested)
}

// SDKForRequirement resolves an SDK for a build requirement. A requirement
// that mandates a full Xcode toolchain bypasses the memoized locator choice
// and asks the Xcode locator directly; anything else behaves like SDK.
func (r *Resolver) SDKForRequirement(requiresXcode bool, requested domain.Version) (domain.SDK, bool) {
	if requiresXcode {
		return r.xcode.SDKIfApplicable(requested)
	}
	return r.SDK(requested)
}

// SDKRootNeeded reports whether compilation on this host needs an explicit
// SDK root at all.
func (r *Resolver) SDKRootNeeded() bool {
	return r.Tooling().SDKRootNeeded()
}

// SDKPath returns the root path of the resolved SDK, or false when no SDK
// is installed.
func (r *Resolver) SDKPath(requested domain.Version) (string, bool) {
	sdk, ok := r.SDK(requested)
	if !ok {
		return "", false
	}
	return sdk.Path, true
}

// SDKPathIfNeeded returns the resolved SDK path only when the host needs
// an explicit SDK root. It returns false both when no root is needed and
// when one is needed but no SDK is installed.
func (r *Resolver) SDKPathIfNeeded(requested domain.Version) (string, bool) {
	if !r.SDKRootNeeded() {
		return "", false
	}
	return r.SDKPath(requested)
}

// DeveloperDirectory returns the active developer directory, memoized.
// A failed query is absorbed into an empty result and not retried.
func (r *Resolver) DeveloperDirectory(ctx context.Context) string {
	if r.devDirDone {
		return r.devDir
	}

	ctx, span := r.tracer.Start(ctx, "resolver.developer_directory")
	defer span.End()

	dir, err := r.system.DeveloperDirectory(ctx)
	if err != nil {
		span.RecordError(err)
		r.logger.Debug("developer directory query failed: " + err.Error())
		dir = ""
	}
	span.SetAttribute("developer_dir", dir)

	r.devDir = dir
	r.devDirDone = true
	return r.devDir
}

// PackageInfo returns the installer receipt info for a package id,
// memoized per id. Missing receipts yield "".
func (r *Resolver) PackageInfo(ctx context.Context, id string) string {
	if info, ok := r.pkgInfo[id]; ok {
		return info
	}

	ctx, span := r.tracer.Start(ctx, "resolver.package_info")
	defer span.End()
	span.SetAttribute("package_id", id)

	info, err := r.system.PackageInfo(ctx, id)
	if err != nil {
		span.RecordError(err)
		info = ""
	}

	r.pkgInfo[id] = info
	return info
}

// AppsWithBundleID returns the application paths matching any of the given
// bundle ids, memoized per id set. Failed lookups yield nil.
func (r *Resolver) AppsWithBundleID(ctx context.Context, ids ...string) []string {
	key := bundleKey(ids)
	if paths, ok := r.bundlePaths[key]; ok {
		return paths
	}

	ctx, span := r.tracer.Start(ctx, "resolver.bundle_paths")
	defer span.End()
	span.SetAttribute("bundle_ids", strings.Join(ids, ","))

	paths, err := r.system.BundlePaths(ctx, ids...)
	if err != nil {
		span.RecordError(err)
		paths = nil
	}

	r.bundlePaths[key] = paths
	return paths
}

// bundleKey derives the memo key for a bundle id set. A separator byte
// keeps ("a","bc") and ("ab","c") distinct.
func bundleKey(ids []string) uint64 {
	h := xxhash.New()
	for _, id := range ids {
		_, _ = h.WriteString(id)
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
