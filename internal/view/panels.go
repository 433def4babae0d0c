package view

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"expensetracker/internal/core"
	"expensetracker/internal/presenter"
	"expensetracker/internal/services"
)

const barWidth = 40

// RenderExpenses renders the expense table followed by the total.
func RenderExpenses(v presenter.ListView, currency string) string {
	if len(v.Expenses) == 0 {
		return RenderMuted("No expenses recorded yet.")
	}
	rows := make([][]string, 0, len(v.Expenses)+2)
	for _, e := range v.Expenses {
		rows = append(rows, []string{formatID(e.ID), e.Date, displayCategory(e.Category), FormatMoney(currency, e.Amount), e.Description})
	}
	rows = append(rows, []string{"---"}, []string{"", "", "Total", FormatMoney(currency, v.Total), ""})

	return RenderTable(Table{
		Title:     "Expenses",
		Headers:   []string{"ID", "Date", "Category", "Amount", "Description"},
		Rows:      rows,
		LeftAlign: map[int]bool{1: true, 2: true, 4: true},
	})
}

// RenderTotals renders per-category totals with their share of spending.
func RenderTotals(v presenter.TotalsView, currency string) string {
	if v.NoData {
		return RenderMuted("No expenses to display.")
	}
	rows := make([][]string, 0, len(v.Items)+2)
	for _, s := range v.Items {
		rows = append(rows, []string{displayCategory(s.Category), FormatMoney(currency, s.Total), FormatPercent(s.Percent)})
	}
	rows = append(rows, []string{"---"}, []string{"Total", FormatMoney(currency, v.GrandTotal), FormatPercent(100)})

	return RenderTable(Table{
		Title:     "Totals by Category",
		Headers:   []string{"Category", "Amount", "Share"},
		Rows:      rows,
		LeftAlign: map[int]bool{0: true},
	})
}

// RenderBarChart draws one horizontal bar per category, scaled to the largest total.
func RenderBarChart(v presenter.TotalsView, currency string) string {
	if v.NoData {
		return RenderMuted("No data for bar chart.")
	}

	var maxTotal float64
	labelWidth := 0
	for _, s := range v.Items {
		maxTotal = math.Max(maxTotal, s.Total)
		labelWidth = max(labelWidth, lipgloss.Width(displayCategory(s.Category)))
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(headerStyle.Render("Expenses by Category (Bar Chart)"))
	b.WriteString("\n\n")
	for i, s := range v.Items {
		barLen := 0
		if maxTotal > 0 {
			barLen = int(math.Round(s.Total / maxTotal * barWidth))
		}
		if barLen == 0 && s.Total > 0 {
			barLen = 1
		}
		bar := lipgloss.NewStyle().Foreground(chartPalette[i%len(chartPalette)]).Render(strings.Repeat("█", barLen))
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			valueStyle.Render(pad(displayCategory(s.Category), labelWidth, true)),
			bar,
			moneyStyle.Render(FormatMoney(currency, s.Total))))
	}
	return b.String()
}

// RenderPieChart shows each category's share as a segment of a single
// stacked bar with a legend.
func RenderPieChart(v presenter.TotalsView) string {
	if v.NoData {
		return RenderMuted("No data for pie chart.")
	}

	const width = 50
	var stack, legend strings.Builder
	used := 0
	for i, s := range v.Items {
		style := lipgloss.NewStyle().Foreground(chartPalette[i%len(chartPalette)])
		seg := int(math.Round(s.Percent / 100 * width))
		if i == len(v.Items)-1 {
			seg = max(width-used, 0)
		}
		used += seg
		stack.WriteString(style.Render(strings.Repeat("█", seg)))
		legend.WriteString(fmt.Sprintf("  %s %s %s\n",
			style.Render("■"),
			valueStyle.Render(displayCategory(s.Category)),
			mutedStyle.Render(fmt.Sprintf("%.1f%%", s.Percent))))
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(headerStyle.Render("Expenses Distribution (Pie Chart)"))
	b.WriteString("\n\n  ")
	b.WriteString(stack.String())
	b.WriteString("\n\n")
	b.WriteString(legend.String())
	return b.String()
}

// RenderAdvice renders one line per category; warnings carry the tip below.
func RenderAdvice(v presenter.AdviceView) string {
	if v.NoData {
		return RenderMuted("No data to analyze yet.")
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(headerStyle.Render("Suggestions"))
	b.WriteString("\n\n")
	for _, a := range v.Items {
		line := fmt.Sprintf("%s = %s", capitalize(displayCategory(a.Category)), FormatPercent(a.Percent))
		if a.Status == services.StatusWarn {
			b.WriteString(warnStyle.Render("  " + line + " of total"))
			b.WriteString("\n")
			b.WriteString(valueStyle.Render("    " + a.Message))
			b.WriteString("\n")
			continue
		}
		b.WriteString(okStyle.Render("  " + line + " - OK"))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderSummary renders spending against the budget. A zero budget is shown
// as unset.
func RenderSummary(v presenter.SummaryView, currency string) string {
	budget := "not set"
	remaining := "-"
	remainingStyle := mutedStyle
	if v.Budget > 0 {
		budget = FormatMoney(currency, v.Budget)
		remaining = FormatMoney(currency, v.Remaining)
		remainingStyle = okStyle
		if v.Remaining < 0 {
			remainingStyle = warnStyle
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		summaryCell("Expenses", FormatCount(int64(v.Count)), valueStyle),
		summaryCell("Spent", FormatMoney(currency, v.GrandTotal), moneyStyle),
		summaryCell("Budget", budget, valueStyle),
		summaryCell("Remaining", remaining, remainingStyle),
	)
	return box.Render(content) + "\n"
}

func summaryCell(label, value string, style lipgloss.Style) string {
	return lipgloss.NewStyle().PaddingRight(3).Render(
		mutedStyle.Render(label) + "\n" + style.Bold(true).Render(value),
	)
}

// RenderRules lists the advisor thresholds in effect.
func RenderRules(rules []core.AdvisorRule) string {
	rows := make([][]string, 0, len(rules))
	for _, r := range rules {
		rows = append(rows, []string{r.Key, FormatPercent(r.ThresholdPct), r.Tip})
	}
	return RenderTable(Table{
		Title:     "Advisor Rules",
		Headers:   []string{"Category", "Threshold", "Tip"},
		Rows:      rows,
		LeftAlign: map[int]bool{0: true, 2: true},
	})
}

// displayCategory shows uncategorized expenses with a placeholder.
func displayCategory(c string) string {
	if c == "" {
		return "(none)"
	}
	return c
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
