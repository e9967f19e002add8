package stats

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typedrill/internal/model"
)

const weakTop = 5

var (
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Summary returns a one-line styled summary of m.
func Summary(m model.Metrics) string {
	line := fmt.Sprintf("%.1f WPM · %.1f%% · %.1fs", m.WordsPerMinute, m.AccuracyPercent, m.ElapsedSeconds)
	return summaryStyle.Render(line)
}

// RenderReport writes the post-round report for p.
func RenderReport(w io.Writer, m model.Metrics, p Progress) error {
	if _, err := fmt.Fprintln(w, Summary(m)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}

	aggs := CharAggregates(p)
	correct := 0
	for _, agg := range aggs {
		correct += agg.Correct
	}
	rows := [][]string{
		{"Words per minute", fmt.Sprintf("%.2f", m.WordsPerMinute)},
		{"Accuracy", fmt.Sprintf("%.2f%%", m.AccuracyPercent)},
		{"Elapsed", fmt.Sprintf("%.2fs", m.ElapsedSeconds)},
		{"Characters", fmt.Sprintf("%d/%d", p.TypedLength(), p.Len())},
		{"Correct", fmt.Sprintf("%d", correct)},
		{"Words", fmt.Sprintf("%d", WordsTyped(p))},
	}
	if err := writeLines(w, formatTable([]string{"Metric", "Value"}, rows, map[int]bool{1: true})); err != nil {
		return err
	}

	if spark := Sparkline(WordAccuracy(p)); spark != "" {
		if _, err := fmt.Fprintf(w, "\n%s %s\n", labelStyle.Render("Per-word accuracy"), spark); err != nil {
			return err
		}
	}

	if weak := SelectWeakChars(aggs, weakTop); len(weak) > 0 {
		if _, err := fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Weakest characters"), strings.Join(charLabels(weak), " ")); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return RenderCharTable(w, aggs)
}

// RenderCharTable prints per-character accuracy for the round, lowest first.
func RenderCharTable(w io.Writer, aggs []model.CharAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No characters typed.")
		return err
	}
	sorted := make([]model.CharAggregate, len(aggs))
	copy(sorted, aggs)
	sort.Slice(sorted, func(i, j int) bool { return weaker(sorted[i], sorted[j]) })

	rows := make([][]string, 0, len(sorted))
	for _, agg := range sorted {
		rows = append(rows, []string{
			charLabel(agg.Char),
			fmt.Sprintf("%.2f%%", accuracy(agg)*100),
			fmt.Sprintf("%d", agg.Correct),
			fmt.Sprintf("%d", agg.Incorrect),
		})
	}
	headers := []string{"Char", "Accuracy", "Correct", "Incorrect"}
	return writeLines(w, formatTable(headers, rows, map[int]bool{1: true, 2: true, 3: true}))
}

func charLabels(chars []string) []string {
	out := make([]string, len(chars))
	for i, ch := range chars {
		out[i] = charLabel(ch)
	}
	return out
}

func charLabel(ch string) string {
	if ch == " " {
		return "<space>"
	}
	return ch
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
