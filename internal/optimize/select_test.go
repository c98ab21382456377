package optimize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMenuSelectionSingle(t *testing.T) {
	require.Equal(t, []ID{CleanTemp}, ParseMenuSelection("1"))
	require.Equal(t, []ID{CreateGodMode}, ParseMenuSelection("7"))
}

func TestParseMenuSelectionMultiple(t *testing.T) {
	require.Equal(t, []ID{CleanTemp, EmptyRecycle}, ParseMenuSelection("1,2"))
	require.Equal(t, []ID{EmptyRecycle, CleanTemp}, ParseMenuSelection("2, 1"))
}

func TestParseMenuSelectionRunAllShortCircuits(t *testing.T) {
	require.Equal(t, CanonicalOrder, ParseMenuSelection("6"))
	require.Equal(t, CanonicalOrder, ParseMenuSelection("1,6,2"))
}

func TestParseMenuSelectionIgnoresUnknownTokens(t *testing.T) {
	require.Equal(t, []ID{OptimizeTCP}, ParseMenuSelection("x, 3, 99"))
	require.Empty(t, ParseMenuSelection(""))
	require.Empty(t, ParseMenuSelection("0,8,abc"))
}

func TestResolveAdapterSelectionAll(t *testing.T) {
	adapters := []string{"Ethernet", "Wi-Fi", "vEthernet (WSL)"}
	got := ResolveAdapterSelection("all", adapters)
	require.Equal(t, adapters, got)
	require.Equal(t, adapters, ResolveAdapterSelection(" ALL ", adapters))
}

func TestResolveAdapterSelectionIndices(t *testing.T) {
	adapters := []string{"Ethernet", "Wi-Fi"}
	require.Equal(t, []string{"Wi-Fi"}, ResolveAdapterSelection("2", adapters))
	require.Equal(t, []string{"Ethernet", "Wi-Fi"}, ResolveAdapterSelection("1,2", adapters))
}

func TestResolveAdapterSelectionOutOfRange(t *testing.T) {
	adapters := []string{"Ethernet"}
	require.Empty(t, ResolveAdapterSelection("0", adapters))
	require.Empty(t, ResolveAdapterSelection("2", adapters))
	require.Empty(t, ResolveAdapterSelection("-1", adapters))
}

func TestResolveAdapterSelectionByName(t *testing.T) {
	adapters := []string{"Ethernet", "Wi-Fi"}
	require.Equal(t, []string{"Wi-Fi"}, ResolveAdapterSelection("Wi-Fi", adapters))
	require.Empty(t, ResolveAdapterSelection("Bluetooth", adapters))
}

func TestResolveAdapterSelectionMixed(t *testing.T) {
	adapters := []string{"Ethernet", "Wi-Fi", "vEthernet (WSL)"}
	got := ResolveAdapterSelection("1, Wi-Fi, 9, , nope", adapters)
	require.Equal(t, []string{"Ethernet", "Wi-Fi"}, got)
}
