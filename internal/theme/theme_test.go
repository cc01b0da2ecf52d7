package theme_test

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/prefs"
	"taskboard/internal/theme"
)

func openStore(t *testing.T) (*prefs.SQLite, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.sqlite")
	s, err := prefs.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestParse(t *testing.T) {
	assert.Equal(t, theme.Dark, theme.Parse("dark"))
	assert.Equal(t, theme.Light, theme.Parse("light"))
	assert.Equal(t, theme.Light, theme.Parse(""))
	assert.Equal(t, theme.Light, theme.Parse("Dark"))
	assert.Equal(t, theme.Light, theme.Parse(" dark"))
}

func TestLoad_DefaultsToLight(t *testing.T) {
	store, _ := openStore(t)
	r := lipgloss.NewRenderer(io.Discard)

	sw, err := theme.Load(context.Background(), store, r)
	require.NoError(t, err)
	assert.Equal(t, theme.Light, sw.Mode())
	assert.False(t, r.HasDarkBackground())
}

func TestLoad_UnknownValueIsLight(t *testing.T) {
	ctx := context.Background()
	store, _ := openStore(t)
	require.NoError(t, store.Set(ctx, theme.Key, "solarized"))

	sw, err := theme.Load(ctx, store, nil)
	require.NoError(t, err)
	assert.Equal(t, theme.Light, sw.Mode())
}

func TestToggle_AppliesAndPersists(t *testing.T) {
	ctx := context.Background()
	store, _ := openStore(t)
	r := lipgloss.NewRenderer(io.Discard)

	sw, err := theme.Load(ctx, store, r)
	require.NoError(t, err)

	m, err := sw.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, m)
	assert.True(t, r.HasDarkBackground())

	v, ok, err := store.Get(ctx, theme.Key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestToggle_TwiceRestoresOriginal(t *testing.T) {
	ctx := context.Background()
	store, _ := openStore(t)

	sw, err := theme.Load(ctx, store, nil)
	require.NoError(t, err)
	start := sw.Mode()

	_, err = sw.Toggle(ctx)
	require.NoError(t, err)
	_, err = sw.Toggle(ctx)
	require.NoError(t, err)

	assert.Equal(t, start, sw.Mode())
	v, _, err := store.Get(ctx, theme.Key)
	require.NoError(t, err)
	assert.Equal(t, start.String(), v)
}

func TestToggle_SurvivesReload(t *testing.T) {
	ctx := context.Background()
	store, path := openStore(t)

	sw, err := theme.Load(ctx, store, nil)
	require.NoError(t, err)
	_, err = sw.Toggle(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := prefs.Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	sw2, err := theme.Load(ctx, reopened, nil)
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, sw2.Mode())
}
