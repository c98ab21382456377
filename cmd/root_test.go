package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/wintune/internal/optimize"
)

func TestSelectedActionsNoFlagsMeansInteractive(t *testing.T) {
	opts := &rootOptions{}
	ids, ok := opts.selectedActions()
	require.False(t, ok)
	require.Empty(t, ids)
}

func TestSelectedActionsConfigFlagsAloneStayInteractive(t *testing.T) {
	// --dry-run / --yes are not action flags; alone they still open the menu.
	opts := &rootOptions{dryRun: true, yes: true}
	_, ok := opts.selectedActions()
	require.False(t, ok)
}

func TestSelectedActionsIndividualFlags(t *testing.T) {
	opts := &rootOptions{cleanTemp: true, showWifi: true}
	ids, ok := opts.selectedActions()
	require.True(t, ok)
	require.Equal(t, []optimize.ID{optimize.CleanTemp, optimize.ShowWifi}, ids)
}

func TestSelectedActionsAllIncludesGodMode(t *testing.T) {
	opts := &rootOptions{all: true}
	ids, ok := opts.selectedActions()
	require.True(t, ok)
	require.Equal(t, optimize.CanonicalOrder, ids)
	require.Contains(t, ids, optimize.CreateGodMode)
}

func TestSelectedActionsAllWinsOverIndividual(t *testing.T) {
	opts := &rootOptions{all: true, cleanTemp: true}
	ids, _ := opts.selectedActions()
	require.Equal(t, optimize.CanonicalOrder, ids)
}
