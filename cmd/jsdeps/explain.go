package main

import (
	"fmt"
	"strings"

	"jsdeps/internal/core/app"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true)

	installStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	skipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Italic(true)

	ignoredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FBBF24"))
)

func renderExplain(res app.Result, builtins int) string {
	ignored := make(map[string]bool, len(res.Ignored))
	for _, pkg := range res.Ignored {
		ignored[pkg] = true
	}

	width := lipgloss.Width("specifier")
	for _, cl := range res.Classifications {
		if w := lipgloss.Width(cl.Specifier); w > width {
			width = w
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  %-14s  %s", padRight("specifier", width), "kind", "package")))
	b.WriteString("\n")
	for _, cl := range res.Classifications {
		row := fmt.Sprintf("%s  %-14s  %s", padRight(cl.Specifier, width), cl.Kind, cl.Package)
		switch {
		case !cl.Kind.Installable():
			row = skipStyle.Render(row)
		case ignored[cl.Package]:
			row = ignoredStyle.Render(row + " (ignored)")
		default:
			row = installStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("%d specifier(s), %d package(s) to install, %d built-in module(s) known\n",
		len(res.Classifications), len(res.Packages), builtins))
	return b.String()
}

// padRight pads s to width terminal cells.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
