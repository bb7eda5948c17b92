package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	Indigo      = lipgloss.Color("#4338CA")
	IndigoLight = lipgloss.Color("#E0E7FF")
	Muted       = lipgloss.Color("#6B7280")
	Destructive = lipgloss.Color("#DC2626")
)

// Styles holds the lipgloss styles for the converter form.
type Styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	BaseSelected lipgloss.Style
	BaseIdle     lipgloss.Style
	Table        table.Styles
	Invalid      lipgloss.Style
	Help         lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(Indigo).MarginBottom(1),
		Label:        lipgloss.NewStyle().Foreground(Muted),
		BaseSelected: lipgloss.NewStyle().Bold(true).Foreground(Indigo).Background(IndigoLight).Padding(0, 1),
		BaseIdle:     lipgloss.NewStyle().Foreground(Muted).Padding(0, 1),
		Table: table.Styles{
			Header:   lipgloss.NewStyle().Bold(true).Foreground(Indigo).Padding(0, 1),
			Cell:     lipgloss.NewStyle().Padding(0, 1),
			Selected: lipgloss.NewStyle().Bold(true).Foreground(Indigo),
		},
		Invalid: lipgloss.NewStyle().Bold(true).Foreground(Destructive),
		Help:    lipgloss.NewStyle().Foreground(Muted).MarginTop(1),
	}
}
