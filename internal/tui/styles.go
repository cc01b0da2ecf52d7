package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// ac picks a colour for light and dark backgrounds. The renderer's dark
// flag, set by the theme toggle, decides which one is drawn.
func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorText    = ac("235", "252")
	colorMuted   = ac("244", "240")
	colorAccent  = ac("27", "86")
	colorKey     = ac("25", "39")
	colorDone    = ac("28", "82")
	colorTabFg   = ac("25", "39")
	colorTabBg   = ac("254", "236")
	colorActiveF = ac("255", "229")
	colorActiveB = ac("62", "57")
)

type styles struct {
	header    lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	label     lipgloss.Style
	status    lipgloss.Style
	muted     lipgloss.Style
	panel     lipgloss.Style
	done      lipgloss.Style
	app       lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().
			Bold(true).
			Foreground(colorAccent),
		tab: r.NewStyle().
			Bold(true).
			Foreground(colorTabFg).
			Background(colorTabBg).
			PaddingLeft(1).
			PaddingRight(1),
		activeTab: r.NewStyle().
			Bold(true).
			Foreground(colorActiveF).
			Background(colorActiveB).
			PaddingLeft(1).
			PaddingRight(1),
		label:  r.NewStyle().Bold(true).Foreground(colorAccent),
		status: r.NewStyle().Foreground(colorDone),
		muted:  r.NewStyle().Foreground(colorMuted),
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1),
		done: r.NewStyle().Foreground(colorDone),
		app:  r.NewStyle().Foreground(colorText).Padding(0, 1),
	}
}

func tableStyles(r *lipgloss.Renderer) table.Styles {
	return table.Styles{
		Header: r.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorMuted).
			BorderBottom(true).
			Bold(true).
			Foreground(colorAccent),
		Cell: r.NewStyle().Padding(0, 1),
		Selected: r.NewStyle().
			Foreground(colorActiveF).
			Background(colorActiveB),
	}
}

func styleInput(in *textinput.Model, r *lipgloss.Renderer) {
	in.PromptStyle = r.NewStyle().Foreground(colorKey)
	in.TextStyle = r.NewStyle().Foreground(colorText)
	in.PlaceholderStyle = r.NewStyle().Foreground(colorMuted)
}

func helpStyles(r *lipgloss.Renderer) help.Styles {
	return help.Styles{
		Ellipsis:       r.NewStyle().Foreground(colorMuted),
		ShortKey:       r.NewStyle().Foreground(colorKey),
		ShortDesc:      r.NewStyle().Foreground(colorAccent),
		ShortSeparator: r.NewStyle().Foreground(colorMuted),
		FullKey:        r.NewStyle().Foreground(colorKey),
		FullDesc:       r.NewStyle().Foreground(colorAccent),
		FullSeparator:  r.NewStyle().Foreground(colorMuted),
	}
}
