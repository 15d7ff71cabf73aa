// Package host reports facts about the host OS: version strings, user
// language preferences and competing package managers.
package host

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/macsdk/internal/core/domain"
)

// runFunc executes a command and returns its stdout. Swapped out in tests.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Info implements ports.HostInfo. Each fact is read lazily on first use and
// cached for the process lifetime; the host does not change mid-run.
type Info struct {
	run         runFunc
	getenv      func(string) string
	sysctl      func() string
	pkgMgrPaths []string

	osVersion     domain.Version
	osVersionDone bool

	osFull     domain.Version
	osFullDone bool

	languages     []string
	languagesDone bool

	pkgMgr     bool
	pkgMgrDone bool
}

// NewInfo creates an Info backed by the process environment and the real
// system utilities.
func NewInfo() *Info {
	return &Info{
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
		getenv:      os.Getenv,
		sysctl:      sysctlProductVersion,
		pkgMgrPaths: domain.MacPortsFinkPaths,
	}
}

// OSVersion returns the host OS version truncated to major.minor.
// The environment value wins; a probe of the OS fills in when the caller
// did not provide one. Null when neither yields anything.
func (i *Info) OSVersion() domain.Version {
	if i.osVersionDone {
		return i.osVersion
	}

	raw := i.getenv(domain.EnvOSVersion)
	if raw == "" {
		raw = i.probeProductVersion()
	}

	i.osVersion = domain.ParseOSVersion(raw)
	i.osVersionDone = true
	return i.osVersion
}

// OSFullVersion returns the complete host OS version.
func (i *Info) OSFullVersion() domain.Version {
	if i.osFullDone {
		return i.osFull
	}

	raw := i.getenv(domain.EnvOSFullVersion)
	if raw == "" {
		raw = i.probeProductVersion()
	}

	i.osFull = domain.ParseVersion(raw)
	i.osFullDone = true
	return i.osFull
}

// probeProductVersion asks the OS for its product version, preferring the
// kernel sysctl and degrading to sw_vers. Failures yield "".
func (i *Info) probeProductVersion() string {
	if v := i.sysctl(); v != "" {
		return v
	}

	output, err := i.run(context.Background(), "sw_vers", "-productVersion")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(output))
}

// Languages returns the user's preferred languages, most preferred first.
// A failed defaults read is an empty preference list.
func (i *Info) Languages() []string {
	if i.languagesDone {
		return i.languages
	}
	i.languagesDone = true

	output, err := i.run(context.Background(), "defaults", "read", "-g", "AppleLanguages")
	if err != nil {
		return i.languages
	}

	i.languages = parseLanguageList(string(output))
	return i.languages
}

// Language returns the single most preferred language, or "".
func (i *Info) Language() string {
	langs := i.Languages()
	if len(langs) == 0 {
		return ""
	}
	return langs[0]
}

// MacPortsOrFinkInstalled reports whether MacPorts or Fink is present by
// probing their well-known install paths.
func (i *Info) MacPortsOrFinkInstalled() bool {
	if i.pkgMgrDone {
		return i.pkgMgr
	}
	i.pkgMgrDone = true

	for _, path := range i.pkgMgrPaths {
		if _, err := os.Stat(path); err == nil {
			i.pkgMgr = true
			break
		}
	}
	return i.pkgMgr
}

// parseLanguageList extracts language tags from the plist-style array
// printed by defaults, e.g.
//
//	(
//	    "en-US",
//	    de
//	)
func parseLanguageList(raw string) []string {
	var langs []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSuffix(line, ",")
		line = strings.Trim(line, `"`)
		if line == "" || line == "(" || line == ")" {
			continue
		}
		langs = append(langs, line)
	}
	return langs
}
