package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/saad12354/site-stock-app/pkg/export"
	"github.com/saad12354/site-stock-app/pkg/validation"
	"github.com/saad12354/site-stock-app/pkg/visibility"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	fieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	mutedStyle = lipgloss.NewStyle().Faint(true)
	badgeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
)

func renderNotice(n export.Notice) string {
	style := okStyle
	if n.Failed() {
		style = errorStyle
	}
	return style.Render(n.Title) + " " + mutedStyle.Render(n.Description)
}

func renderIssues(result validation.Result) string {
	if result.Valid {
		return okStyle.Render("✓ inventory is valid")
	}
	var b strings.Builder
	b.WriteString(errorStyle.Render(fmt.Sprintf("✗ %d validation issue(s)", len(result.Issues))))
	for _, issue := range result.Issues {
		b.WriteString("\n  ")
		field := issue.Field
		if field == "" {
			field = "(document)"
		}
		b.WriteString(fieldStyle.Render(field))
		b.WriteString(": ")
		b.WriteString(issue.Message)
	}
	return b.String()
}

func renderCategories(result visibility.Result, q visibility.Query) string {
	var b strings.Builder
	header := "Categories"
	if q.Active() {
		header += " (filtered)"
	}
	b.WriteString(titleStyle.Render(header))
	visible := result.VisibleCategories()
	if len(visible) == 0 {
		b.WriteString("\n  ")
		b.WriteString(mutedStyle.Render("no category matches"))
		return b.String()
	}
	for _, c := range visible {
		b.WriteString("\n  ")
		b.WriteString(c.Label())
		b.WriteString(" ")
		b.WriteString(badgeStyle.Render(fmt.Sprintf("(%d)", result.Counts[c])))
	}
	return b.String()
}
