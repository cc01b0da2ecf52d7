// Package theme keeps the light/dark flag, applies it to a lipgloss renderer
// and persists it in the preferences store.
package theme

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/prefs"
)

// Key is the preferences key the theme is stored under.
const Key = "theme"

// Mode is the presentation theme.
type Mode int

const (
	Light Mode = iota
	Dark
)

// String returns the stored marker: "dark" or "light".
func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Flip returns the other mode.
func (m Mode) Flip() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Parse maps a stored value to a mode. Only the exact marker "dark" is
// dark; anything else, including an empty value, is light.
func Parse(v string) Mode {
	if v == "dark" {
		return Dark
	}
	return Light
}

// Apply points every adaptive colour rendered by r at the mode's palette.
func Apply(r *lipgloss.Renderer, m Mode) {
	if r == nil {
		return
	}
	r.SetHasDarkBackground(m == Dark)
}

// Switch is the toggle: current mode plus where it lives.
type Switch struct {
	store    prefs.Store
	renderer *lipgloss.Renderer
	mode     Mode
}

// Load reads the persisted mode and applies it. A read failure still
// returns a usable light Switch alongside the error.
func Load(ctx context.Context, store prefs.Store, r *lipgloss.Renderer) (*Switch, error) {
	s := &Switch{store: store, renderer: r, mode: Light}
	var err error
	if store != nil {
		var v string
		v, _, err = store.Get(ctx, Key)
		if err == nil {
			s.mode = Parse(v)
		}
	}
	Apply(r, s.mode)
	return s, err
}

// Mode returns the current mode.
func (s *Switch) Mode() Mode { return s.mode }

// Toggle flips the mode, applies it and writes it back. The in-memory flip
// stands even if the write fails.
func (s *Switch) Toggle(ctx context.Context) (Mode, error) {
	return s.Set(ctx, s.mode.Flip())
}

// Set applies and persists m.
func (s *Switch) Set(ctx context.Context, m Mode) (Mode, error) {
	s.mode = m
	Apply(s.renderer, m)
	if s.store == nil {
		return m, nil
	}
	return m, s.store.Set(ctx, Key, m.String())
}
