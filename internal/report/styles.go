package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Cyclone1070/filesize/internal/config"
)

// Styles holds the lipgloss styles used by the report.
type Styles struct {
	Root    lipgloss.Style
	Path    lipgloss.Style
	Dir     lipgloss.Style
	Size    lipgloss.Style
	Total   lipgloss.Style
	Warning lipgloss.Style
	Faint   lipgloss.Style
}

// NewStyles builds styles from the configured colors. An empty color keeps
// the terminal default.
func NewStyles(cfg config.ReportConfig) Styles {
	return Styles{
		Root:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cfg.ColorPath)),
		Path:    lipgloss.NewStyle(),
		Dir:     lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.ColorPath)),
		Size:    lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.ColorSize)).Align(lipgloss.Right),
		Total:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cfg.ColorTotal)),
		Warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cfg.ColorWarning)),
		Faint:   lipgloss.NewStyle().Faint(true),
	}
}
