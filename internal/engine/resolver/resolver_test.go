package resolver_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/macsdk/internal/adapters/telemetry"
	"go.trai.ch/macsdk/internal/core/domain"
	"go.trai.ch/macsdk/internal/core/ports/mocks"
	"go.trai.ch/macsdk/internal/engine/resolver"
)

type fixture struct {
	probe  *mocks.MockToolingProbe
	clt    *mocks.MockSDKLocator
	xcode  *mocks.MockSDKLocator
	system *mocks.MockSystemQuery
	res    *resolver.Resolver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().InfoWith(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	f := &fixture{
		probe:  mocks.NewMockToolingProbe(ctrl),
		clt:    mocks.NewMockSDKLocator(ctrl),
		xcode:  mocks.NewMockSDKLocator(ctrl),
		system: mocks.NewMockSystemQuery(ctrl),
	}
	f.res = resolver.NewResolver(
		f.probe, f.clt, f.xcode, f.system, logger, telemetry.NewNoOpTracer(),
	)
	return f
}

// expectCLTHost sets up a host where the Command Line Tools are installed
// and carry an SDK.
func (f *fixture) expectCLTHost(headersSeparate bool) {
	f.probe.EXPECT().CLTInstalled().Return(true).Times(1)
	f.probe.EXPECT().CLTProvidesSDK().Return(true).Times(1)
	f.probe.EXPECT().CLTHeadersSeparate().Return(headersSeparate).Times(1)
	f.probe.EXPECT().XcodeInstalled().Return(false).Times(1)
	f.probe.EXPECT().XcodeSDKPath().Return("", false).Times(1)
}

func TestResolver_Tooling_ProbedOnce(t *testing.T) {
	f := newFixture(t)
	f.expectCLTHost(true)

	first := f.res.Tooling()
	second := f.res.Tooling()

	assert.Equal(t, first, second)
	assert.True(t, first.CLTInstalled)
	assert.True(t, first.CLTProvidesSDK)
}

func TestResolver_Tooling_SkipsCLTDetailsWhenAbsent(t *testing.T) {
	f := newFixture(t)

	// CLTProvidesSDK and CLTHeadersSeparate carry no expectations: calling
	// them would fail the test.
	f.probe.EXPECT().CLTInstalled().Return(false).Times(1)
	f.probe.EXPECT().XcodeInstalled().Return(true).Times(1)
	f.probe.EXPECT().XcodeSDKPath().Return("/x/MacOSX.sdk", true).Times(1)

	state := f.res.Tooling()
	assert.False(t, state.CLTInstalled)
	assert.True(t, state.XcodeInstalled)
	assert.Equal(t, "/x/MacOSX.sdk", state.XcodeSDKPath)
}

func TestResolver_Locator_ReferenceStable(t *testing.T) {
	f := newFixture(t)
	f.expectCLTHost(true)
	f.clt.EXPECT().Source().Return(domain.SourceCLT).Times(1)

	first := f.res.Locator()
	second := f.res.Locator()

	require.Same(t, f.clt, first)
	require.Same(t, first, second)
}

func TestResolver_Locator_FallsBackToXcode(t *testing.T) {
	f := newFixture(t)

	f.probe.EXPECT().CLTInstalled().Return(true).Times(1)
	f.probe.EXPECT().CLTProvidesSDK().Return(false).Times(1)
	f.probe.EXPECT().CLTHeadersSeparate().Return(true).Times(1)
	f.probe.EXPECT().XcodeInstalled().Return(true).Times(1)
	f.probe.EXPECT().XcodeSDKPath().Return("", false).Times(1)
	f.xcode.EXPECT().Source().Return(domain.SourceXcode).Times(1)

	require.Same(t, f.xcode, f.res.Locator())
}

func TestResolver_SDK_Found(t *testing.T) {
	f := newFixture(t)
	f.expectCLTHost(true)
	f.clt.EXPECT().Source().Return(domain.SourceCLT).AnyTimes()

	want := domain.SDK{
		Version: domain.ParseVersion("14.4"),
		Path:    "/Library/Developer/CommandLineTools/SDKs/MacOSX14.4.sdk",
		Source:  domain.SourceCLT,
	}
	f.clt.EXPECT().SDKIfApplicable(domain.NullVersion()).Return(want, true).Times(1)

	got, ok := f.res.SDK(domain.NullVersion())
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestResolver_SDK_AbsenceIsNotAnError(t *testing.T) {
	f := newFixture(t)
	f.expectCLTHost(true)
	f.clt.EXPECT().Source().Return(domain.SourceCLT).AnyTimes()
	f.clt.EXPECT().SDKIfApplicable(gomock.Any()).Return(domain.SDK{}, false).Times(1)

	_, ok := f.res.SDK(domain.ParseVersion("99.0"))
	assert.False(t, ok)
}

func TestResolver_SDKForRequirement_ForcedXcodeBypassesMemo(t *testing.T) {
	f := newFixture(t)
	f.expectCLTHost(true)
	f.clt.EXPECT().Source().Return(domain.SourceCLT).AnyTimes()

	// Populate the memoized locator choice with the CLT locator first.
	require.Same(t, f.clt, f.res.Locator())

	want := domain.SDK{
		Version: domain.ParseVersion("15.0"),
		Path:    "/Applications/Xcode.app/Contents/Developer/Platforms/MacOSX.platform/Developer/SDKs/MacOSX15.0.sdk",
		Source:  domain.SourceXcode,
	}
	f.xcode.EXPECT().SDKIfApplicable(domain.NullVersion()).Return(want, true).Times(1)

	got, ok := f.res.SDKForRequirement(true, domain.NullVersion())
	require.True(t, ok)
	assert.Equal(t, want, got)

	// The memoized choice is untouched by the bypass.
	require.Same(t, f.clt, f.res.Locator())
}

func TestResolver_SDKForRequirement_Unforced(t *testing.T) {
	f := newFixture(t)
	f.expectCLTHost(true)
	f.clt.EXPECT().Source().Return(domain.SourceCLT).AnyTimes()
	f.clt.EXPECT().SDKIfApplicable(gomock.Any()).Return(domain.SDK{}, false).Times(1)

	_, ok := f.res.SDKForRequirement(false, domain.NullVersion())
	assert.False(t, ok)
}

func TestResolver_SDKPathIfNeeded_NoRootNeeded(t *testing.T) {
	f := newFixture(t)

	// CLT installed with bundled headers: no SDK root is needed, and the
	// locators must never be consulted.
	f.expectCLTHost(false)

	path, ok := f.res.SDKPathIfNeeded(domain.NullVersion())
	assert.False(t, ok)
	assert.Empty(t, path)
}

func TestResolver_SDKPathIfNeeded_RootNeeded(t *testing.T) {
	f := newFixture(t)
	f.expectCLTHost(true)
	f.clt.EXPECT().Source().Return(domain.SourceCLT).AnyTimes()

	want := domain.SDK{
		Version: domain.ParseVersion("14.4"),
		Path:    "/Library/Developer/CommandLineTools/SDKs/MacOSX14.4.sdk",
		Source:  domain.SourceCLT,
	}
	f.clt.EXPECT().SDKIfApplicable(gomock.Any()).Return(want, true).Times(1)

	path, ok := f.res.SDKPathIfNeeded(domain.NullVersion())
	require.True(t, ok)
	assert.Equal(t, want.Path, path)
}

func TestResolver_DeveloperDirectory_Memoized(t *testing.T) {
	f := newFixture(t)
	f.system.EXPECT().
		DeveloperDirectory(gomock.Any()).
		Return("/Library/Developer/CommandLineTools", nil).
		Times(1)

	first := f.res.DeveloperDirectory(t.Context())
	second := f.res.DeveloperDirectory(t.Context())
	assert.Equal(t, "/Library/Developer/CommandLineTools", first)
	assert.Equal(t, first, second)
}

func TestResolver_DeveloperDirectory_FailureAbsorbed(t *testing.T) {
	f := newFixture(t)
	f.system.EXPECT().
		DeveloperDirectory(gomock.Any()).
		Return("", errors.New("xcode-select: error")).
		Times(1)

	assert.Empty(t, f.res.DeveloperDirectory(t.Context()))
	// The failure is memoized too, not retried.
	assert.Empty(t, f.res.DeveloperDirectory(t.Context()))
}

func TestResolver_PackageInfo_MemoizedPerID(t *testing.T) {
	f := newFixture(t)
	f.system.EXPECT().
		PackageInfo(gomock.Any(), domain.CLTPackageID).
		Return("version: 15.3", nil).
		Times(1)
	f.system.EXPECT().
		PackageInfo(gomock.Any(), domain.CLTHeadersPackageID).
		Return("", errors.New("No receipt found")).
		Times(1)

	assert.Equal(t, "version: 15.3", f.res.PackageInfo(t.Context(), domain.CLTPackageID))
	assert.Equal(t, "version: 15.3", f.res.PackageInfo(t.Context(), domain.CLTPackageID))

	assert.Empty(t, f.res.PackageInfo(t.Context(), domain.CLTHeadersPackageID))
	assert.Empty(t, f.res.PackageInfo(t.Context(), domain.CLTHeadersPackageID))
}

func TestResolver_AppsWithBundleID_Memoized(t *testing.T) {
	f := newFixture(t)
	f.system.EXPECT().
		BundlePaths(gomock.Any(), domain.XcodeBundleID).
		Return([]string{"/Applications/Xcode.app"}, nil).
		Times(1)

	first := f.res.AppsWithBundleID(t.Context(), domain.XcodeBundleID)
	second := f.res.AppsWithBundleID(t.Context(), domain.XcodeBundleID)
	assert.Equal(t, []string{"/Applications/Xcode.app"}, first)
	assert.Equal(t, first, second)
}

func TestResolver_AppsWithBundleID_DistinctSets(t *testing.T) {
	f := newFixture(t)
	f.system.EXPECT().
		BundlePaths(gomock.Any(), "com.apple.dt.Xcode").
		Return([]string{"/Applications/Xcode.app"}, nil).
		Times(1)
	f.system.EXPECT().
		BundlePaths(gomock.Any(), "com.apple.dt.Xcode", "com.apple.dt.Xcode-beta").
		Return(nil, errors.New("mdfind failed")).
		Times(1)

	assert.NotNil(t, f.res.AppsWithBundleID(t.Context(), "com.apple.dt.Xcode"))
	assert.Nil(t, f.res.AppsWithBundleID(t.Context(), "com.apple.dt.Xcode", "com.apple.dt.Xcode-beta"))
}
