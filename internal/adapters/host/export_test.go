package host

import (
	"context"

	"go.trai.ch/zerr"
)

var errExecDisabled = zerr.New("test: exec disabled")

// InfoOverrides replaces the external inputs of an Info for tests.
type InfoOverrides struct {
	Run         func(ctx context.Context, name string, args ...string) ([]byte, error)
	Getenv      func(string) string
	Sysctl      func() string
	PkgMgrPaths []string
}

// NewInfoForTest creates an Info whose probes are replaced by the given
// overrides. Nil fields keep a deny-everything default so tests never
// touch the real host.
func NewInfoForTest(o InfoOverrides) *Info {
	info := &Info{
		run: func(context.Context, string, ...string) ([]byte, error) {
			return nil, errExecDisabled
		},
		getenv: func(string) string { return "" },
		sysctl: func() string { return "" },
	}
	if o.Run != nil {
		info.run = o.Run
	}
	if o.Getenv != nil {
		info.getenv = o.Getenv
	}
	if o.Sysctl != nil {
		info.sysctl = o.Sysctl
	}
	info.pkgMgrPaths = o.PkgMgrPaths
	return info
}
