// Package app implements the application layer for macsdk.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"go.trai.ch/macsdk/internal/adapters/detector"
	"go.trai.ch/macsdk/internal/core/domain"
	"go.trai.ch/macsdk/internal/core/ports"
	"go.trai.ch/macsdk/internal/engine/resolver"
	"go.trai.ch/macsdk/internal/ui/report"
	"go.trai.ch/zerr"
)

// hostOS is overridable in tests to exercise the darwin guard.
var hostOS = runtime.GOOS

// App represents the main application logic.
type App struct {
	resolver *resolver.Resolver
	host     ports.HostInfo
	config   ports.Config
	logger   ports.Logger
	stdout   io.Writer
}

// New creates a new App instance.
func New(
	res *resolver.Resolver,
	host ports.HostInfo,
	cfg ports.Config,
	log ports.Logger,
) *App {
	return &App{
		resolver: res,
		host:     host,
		config:   cfg,
		logger:   log,
		stdout:   os.Stdout,
	}
}

// WithStdout redirects result output. This is primarily used for testing.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// assertDarwin rejects every platform except macOS up front, before any
// probe runs.
func assertDarwin() error {
	if hostOS != "darwin" {
		return zerr.With(domain.ErrUnsupportedHost, "os", hostOS)
	}
	return nil
}

// requestedVersion resolves the effective requested SDK version: an
// explicit value beats the configuration default, and no value at all
// yields the null version, which matches any installed SDK.
func (a *App) requestedVersion(explicit string) domain.Version {
	if explicit != "" {
		return domain.ParseVersion(explicit)
	}
	return domain.ParseVersion(a.config.SDKVersion)
}

// SDKPathOptions configuration for the SDKPath method.
type SDKPathOptions struct {
	SDKVersion   string
	IfNeeded     bool
	RequireXcode bool
}

// SDKPath resolves the SDK root for this host and prints its path. With
// IfNeeded set, hosts whose toolchain needs no explicit SDK root print
// nothing and succeed.
func (a *App) SDKPath(_ context.Context, opts SDKPathOptions) error {
	if err := assertDarwin(); err != nil {
		return err
	}

	if opts.IfNeeded && !a.resolver.SDKRootNeeded() {
		a.logger.Debug("no explicit SDK root needed on this host")
		return nil
	}

	requested := a.requestedVersion(opts.SDKVersion)
	sdk, ok := a.resolver.SDKForRequirement(opts.RequireXcode, requested)
	if !ok {
		return zerr.With(domain.ErrNoSDKFound, "requested", requested.String())
	}

	if !requested.IsNull() && sdk.Version.MajorMinor().Compare(requested.MajorMinor()) != 0 {
		a.logger.Warn(fmt.Sprintf(
			"SDK %s was requested, using closest installed SDK %s",
			requested, sdk.Version,
		))
	}

	_, err := fmt.Fprintln(a.stdout, sdk.Path)
	return err
}

// DoctorOptions configuration for the Doctor method.
type DoctorOptions struct {
	OutputMode string
}

// Doctor renders a diagnostic report of the developer tooling on this host.
func (a *App) Doctor(ctx context.Context, opts DoctorOptions) error {
	if err := assertDarwin(); err != nil {
		return err
	}

	tooling := a.resolver.Tooling()
	sdk, found := a.resolver.SDK(a.requestedVersion(""))

	data := report.Data{
		HostVersion:     a.host.OSVersion().String(),
		HostFullVersion: a.host.OSFullVersion().String(),
		Language:        a.host.Language(),
		MacPortsOrFink:  a.host.MacPortsOrFinkInstalled(),

		CLTInstalled:       tooling.CLTInstalled,
		CLTProvidesSDK:     tooling.CLTProvidesSDK,
		CLTHeadersSeparate: tooling.CLTHeadersSeparate,

		XcodeInstalled: tooling.XcodeInstalled,
		DeveloperDir:   a.resolver.DeveloperDirectory(ctx),

		SDKFound:      found,
		SDKRootNeeded: tooling.SDKRootNeeded(),
	}
	if found {
		data.SDKVersion = sdk.Version.String()
		data.SDKPath = sdk.Path
		data.SDKSource = sdk.Source.String()
	}

	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)
	renderer := report.NewRenderer(a.stdout)
	if mode == detector.ModePlain {
		renderer = report.NewPlainRenderer(a.stdout)
	}
	return renderer.Render(data)
}

// HostVersion prints the host macOS version, preferring the full form
// when the probes yield one.
func (a *App) HostVersion(_ context.Context) error {
	if err := assertDarwin(); err != nil {
		return err
	}

	version := a.host.OSFullVersion()
	if version.IsNull() {
		version = a.host.OSVersion()
	}
	if version.IsNull() {
		return domain.ErrHostVersionUnset
	}

	_, err := fmt.Fprintln(a.stdout, version)
	return err
}
