package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	styleLink    = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Underline(true)
	styleKey     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
)

func banner() string {
	return styleTitle.Render("markup") + " " + styleDim.Render(version)
}

func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", styleSuccess.Render("✓"), fmt.Sprintf(format, args...))
}

func field(w io.Writer, key, value string) {
	fmt.Fprintf(w, "  %s%s\n", styleKey.Render(key), value)
}
