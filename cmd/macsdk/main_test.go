package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go.trai.ch/macsdk/internal/adapters/telemetry"
	"go.trai.ch/macsdk/internal/app"
	"go.trai.ch/macsdk/internal/core/domain"
	"go.trai.ch/macsdk/internal/core/ports"
	"go.trai.ch/macsdk/internal/core/ports/mocks"
	"go.trai.ch/macsdk/internal/engine/resolver"
)

// newTestComponents builds real application components on top of mocks.
// The probe reports a host with nothing installed, so any resolution ends
// in "no SDK found" rather than touching the real system.
func newTestComponents(t *testing.T) *app.Components {
	t.Helper()
	ctrl := gomock.NewController(t)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().InfoWith(gomock.Any(), gomock.Any()).AnyTimes()

	probe := mocks.NewMockToolingProbe(ctrl)
	probe.EXPECT().CLTInstalled().Return(false).AnyTimes()
	probe.EXPECT().CLTProvidesSDK().Return(false).AnyTimes()
	probe.EXPECT().CLTHeadersSeparate().Return(false).AnyTimes()
	probe.EXPECT().XcodeInstalled().Return(false).AnyTimes()
	probe.EXPECT().XcodeSDKPath().Return("", false).AnyTimes()

	clt := mocks.NewMockSDKLocator(ctrl)
	clt.EXPECT().Source().Return(domain.SourceCLT).AnyTimes()
	clt.EXPECT().SDKIfApplicable(gomock.Any()).Return(domain.SDK{}, false).AnyTimes()

	xcode := mocks.NewMockSDKLocator(ctrl)
	xcode.EXPECT().Source().Return(domain.SourceXcode).AnyTimes()
	xcode.EXPECT().SDKIfApplicable(gomock.Any()).Return(domain.SDK{}, false).AnyTimes()

	system := mocks.NewMockSystemQuery(ctrl)

	res := resolver.NewResolver(probe, clt, xcode, system, logger, telemetry.NewNoOpTracer())
	host := mocks.NewMockHostInfo(ctrl)

	return &app.Components{
		App:    app.New(res, host, ports.Config{}, logger),
		Config: ports.Config{},
		Logger: logger,
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	components := newTestComponents(t)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	components := newTestComponents(t)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	// Nothing is installed on the mocked host, so resolution fails.
	exitCode := run(context.Background(), []string{"sdk-path"}, stderr, provider, func(a *app.App) {
		a.WithStdout(new(bytes.Buffer))
	})

	assert.Equal(t, 1, exitCode)
}
