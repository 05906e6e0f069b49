package main

import (
	"fmt"
	"strings"

	"github.com/kr/text"

	"finboard/internal/core"
	"finboard/internal/dashboard"
	"finboard/internal/insights"
	"finboard/internal/store"
)

const indent = "    "

// Render formats the dashboard for a terminal.
func Render(s store.State, m dashboard.Metrics) string {
	var b strings.Builder

	if u := s.User.User; u != nil {
		fmt.Fprintf(&b, "Welcome back, %s (%s)\n", u.Name, u.Email)
	}
	if !m.Ready {
		b.WriteString("Preparing your financial insights...\n")
		return b.String()
	}

	section(&b, "Summary", fmt.Sprintf(
		"Income:       $%.2f\nExpenses:     $%.2f\nNet:          $%.2f\nSavings rate: %.1f%%\n",
		m.Summary.Income, m.Summary.Expenses, m.Summary.Net, m.Summary.SavingsRate))

	var lines strings.Builder
	for _, l := range m.Budgets {
		marker := ""
		if l.Over() {
			marker = " !"
		}
		fmt.Fprintf(&lines, "%-14s $%.2f / $%.2f (%.1f%%)%s\n",
			l.Budget.Category, l.Status.Spent, l.Budget.Amount, l.Status.Percentage, marker)
	}
	section(&b, "Budgets", lines.String())

	lines.Reset()
	for _, c := range m.ByCategory {
		fmt.Fprintf(&lines, "%-14s $%.2f\n", c.Name, c.Amount)
	}
	section(&b, "Spending by category", lines.String())

	lines.Reset()
	for _, tx := range s.Transactions.Transactions {
		sign := "-"
		if tx.Type == core.Income {
			sign = "+"
		}
		fmt.Fprintf(&lines, "%s  %-14s %s$%.2f", tx.Date, tx.Category, sign, tx.Amount)
		if tx.Note != "" {
			fmt.Fprintf(&lines, "  %s", tx.Note)
		}
		lines.WriteByte('\n')
	}
	section(&b, "Recent transactions", lines.String())

	section(&b, "Insights", renderInsights(m.Insights))
	return b.String()
}

func renderInsights(in []insights.Insight) string {
	var b strings.Builder
	for _, i := range in {
		tag := "tip"
		if i.Kind == insights.Warning {
			tag = "warn"
		}
		fmt.Fprintf(&b, "[%s] %s\n", tag, i.Message)
	}
	return b.String()
}

// RenderActions lists the recorded action log.
func RenderActions(entries []store.Entry) string {
	var lines strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&lines, "#%-4d %s\n", e.Version, e.Action)
	}
	var b strings.Builder
	section(&b, "Actions", lines.String())
	return b.String()
}

func section(b *strings.Builder, title, body string) {
	if body == "" {
		body = "(none)\n"
	}
	fmt.Fprintf(b, "\n%s\n%s", title, text.Indent(body, indent))
}
