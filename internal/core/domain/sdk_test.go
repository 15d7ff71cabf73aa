package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/macsdk/internal/core/domain"
)

func inventory(source domain.SDKSource, versions ...string) []domain.SDK {
	sdks := make([]domain.SDK, len(versions))
	for i, v := range versions {
		sdks[i] = domain.SDK{
			Version: domain.ParseVersion(v),
			Path:    "/SDKs/MacOSX" + v + ".sdk",
			Source:  source,
		}
	}
	return sdks
}

func TestSelectSDK_ExactRequestedMatch(t *testing.T) {
	inv := inventory(domain.SourceCLT, "10.14", "10.15")

	sdk, ok := domain.SelectSDK(inv, domain.ParseVersion("10.14"), domain.ParseVersion("10.15"))
	require.True(t, ok)
	require.Equal(t, "10.14", sdk.Version.String())
}

func TestSelectSDK_RequestedAbsentFallsBackToHighest(t *testing.T) {
	inv := inventory(domain.SourceCLT, "10.14", "10.15")

	// 10.13 is not installed, so the best-effort answer is 10.15, not none.
	sdk, ok := domain.SelectSDK(inv, domain.ParseVersion("10.13"), domain.ParseVersion("10.15"))
	require.True(t, ok)
	require.Equal(t, "10.15", sdk.Version.String())
}

func TestSelectSDK_NoRequestPrefersHostSeries(t *testing.T) {
	inv := inventory(domain.SourceXcode, "10.14", "10.15", "11")

	sdk, ok := domain.SelectSDK(inv, domain.NullVersion(), domain.ParseVersion("10.15"))
	require.True(t, ok)
	require.Equal(t, "10.15", sdk.Version.String())

	// Host series absent from the inventory degrades to the highest SDK.
	sdk, ok = domain.SelectSDK(inv, domain.NullVersion(), domain.ParseVersion("12.6"))
	require.True(t, ok)
	require.Equal(t, "11", sdk.Version.String())
}

func TestSelectSDK_HostSeriesMatchIgnoresPatch(t *testing.T) {
	inv := inventory(domain.SourceXcode, "10.14", "10.15")

	// Host 10.15.7 still matches the 10.15 SDK.
	sdk, ok := domain.SelectSDK(inv, domain.NullVersion(), domain.ParseVersion("10.15.7"))
	require.True(t, ok)
	require.Equal(t, "10.15", sdk.Version.String())
}

func TestSelectSDK_EmptyInventory(t *testing.T) {
	_, ok := domain.SelectSDK(nil, domain.ParseVersion("10.15"), domain.ParseVersion("10.15"))
	require.False(t, ok)

	_, ok = domain.SelectSDK([]domain.SDK{}, domain.NullVersion(), domain.ParseVersion("10.15"))
	require.False(t, ok)
}

func TestSelectSDK_DoesNotMutateInventory(t *testing.T) {
	inv := inventory(domain.SourceCLT, "10.13", "10.15", "10.14")

	_, ok := domain.SelectSDK(inv, domain.NullVersion(), domain.ParseVersion("12"))
	require.True(t, ok)
	require.Equal(t, "10.13", inv[0].Version.String())
	require.Equal(t, "10.15", inv[1].Version.String())
	require.Equal(t, "10.14", inv[2].Version.String())
}

func TestSDKDirPattern(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"MacOSX10.15.sdk", "10.15"},
		{"MacOSX14.sdk", "14"},
		{"MacOSX11.1.sdk", "11.1"},
		{"MacOSX.sdk", ""},
		{"iPhoneOS17.0.sdk", ""},
		{"MacOSX10.15.sdk.bak", ""},
	}

	for _, tc := range tests {
		m := domain.SDKDirPattern.FindStringSubmatch(tc.name)
		if tc.version == "" {
			require.Nil(t, m, "name=%q", tc.name)
			continue
		}
		require.NotNil(t, m, "name=%q", tc.name)
		require.Equal(t, tc.version, m[1], "name=%q", tc.name)
	}
}

func TestSDKSource_String(t *testing.T) {
	require.Equal(t, "command-line-tools", domain.SourceCLT.String())
	require.Equal(t, "xcode", domain.SourceXcode.String())
	require.Equal(t, "unknown", domain.SDKSource(99).String())
}
