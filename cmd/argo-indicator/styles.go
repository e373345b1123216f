package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rxtech-lab/argo-indicator/internal/ratings"
	"github.com/rxtech-lab/argo-indicator/internal/solver"
	"github.com/rxtech-lab/argo-indicator/internal/types"
)

// Style definitions.
var (
	// TitleStyle for headers.
	TitleStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)

	// HelpStyle for secondary text.
	HelpStyle = lipgloss.NewStyle().Faint(true)

	// ErrorStyle for error messages.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	buyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	sellStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	neutralStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

const timeLayout = "2006-01-02 15:04"

// FormatAction colors an action green for buys and red for sells.
func FormatAction(a types.Action) string {
	switch {
	case a > types.ActionNeutral:
		return buyStyle.Render(a.String())
	case a < types.ActionNeutral:
		return sellStyle.Render(a.String())
	default:
		return neutralStyle.Render(a.String())
	}
}

// FormatScore prints a score with four decimals, or "-" when absent.
func FormatScore(v types.Value) string {
	d, ok := v.Decimal()
	if !ok {
		return "-"
	}

	return d.StringFixed(4)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})
}

func renderRatings(r *ratings.TechnicalRatings, from int) string {
	t := newTable("Time", "Close", "MA", "Oscillators", "Summary", "Action")

	for i := from; i < r.Len(); i++ {
		bar, err := r.SourceAt(i)
		if err != nil {
			continue
		}

		rating := r.Rating(i)
		t.Row(
			bar.Time.Format(timeLayout),
			bar.Close.String(),
			FormatScore(rating.MovingAverages),
			FormatScore(rating.Oscillators),
			FormatScore(rating.Summary),
			FormatAction(rating.Action),
		)
	}

	return t.String()
}

func renderVotes(votes []ratings.Vote) string {
	t := newTable("Indicator", "Group", "Vote")

	for _, vote := range votes {
		t.Row(string(vote.Indicator), string(vote.Group), FormatScore(vote.Value))
	}

	return t.String()
}

func renderSolution(goal string, last types.Bar, result solver.Result) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Solve " + goal))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Last close: %s\n", last.Close)

	switch {
	case !result.Found:
		b.WriteString(neutralStyle.Render("No price in range reaches the target"))
	case result.Exact:
		fmt.Fprintf(&b, "Exact price: %s", buyStyle.Render(result.Price.StringFixed(6)))
	default:
		fmt.Fprintf(&b, "Price: %s", buyStyle.Render(result.Price.StringFixed(6)))
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(fmt.Sprintf("%d iterations", result.Iterations)))

	return b.String()
}
