package template

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveKnownID(t *testing.T) {
	r := NewRegistry()
	d, ok := r.Get("pulsar")
	require.True(t, ok)
	require.Equal(t, "Pulsar", d.Name)
}

func TestResolveUnknownFallsBackToDefault(t *testing.T) {
	r := NewRegistry()
	d := r.Resolve("no-such-template")
	require.Equal(t, DefaultTemplateID, d.ID)
}

func TestListIsStable(t *testing.T) {
	r := NewRegistry()
	first := r.List()
	second := r.List()
	require.Equal(t, first, second)
	require.Len(t, first, 12)
}

func TestResolvePaletteMonochromeWins(t *testing.T) {
	for _, accent := range AccentColors() {
		mono := ResolvePalette(accent, true)
		require.Equal(t, monochromePalette, mono)
	}
}

func TestResolvePaletteUnknownAccent(t *testing.T) {
	require.Equal(t, accentPalettes[DefaultAccent], ResolvePalette("chartreuse", false))
}
