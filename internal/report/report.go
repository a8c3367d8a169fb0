package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	json "github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"benefits-engine/internal/model"
	"benefits-engine/internal/programs"
)

// Format selects how results are written.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// ParseFormat accepts json, yaml or table, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatTable:
		return f, nil
	}
	return "", eris.Errorf("report: unknown output format %q", s)
}

var (
	headerColor  = lipgloss.Color("#5B8DEF")
	yesColor     = lipgloss.Color("#4CAF50")
	noColor      = lipgloss.Color("#FF6B6B")
	unknownColor = lipgloss.Color("#F7B801")
	mutedColor   = lipgloss.Color("#999999")
)

var printer = message.NewPrinter(language.English)

// Currency formats a monthly amount as dollars with thousands separators.
func Currency(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

// Evaluation writes one evaluation response.
func Evaluation(w io.Writer, f Format, resp *model.EvaluationResponse) error {
	if f != FormatTable {
		return encode(w, f, resp)
	}

	r := lipgloss.NewRenderer(w)
	meta := resp.EvaluationMetadata
	title := r.NewStyle().Bold(true).Foreground(headerColor)
	muted := r.NewStyle().Foreground(mutedColor)

	var b strings.Builder
	b.WriteString(title.Render("Evaluation " + meta.EvaluationID))
	b.WriteString("\n")
	if meta.RequestID != "" {
		b.WriteString(muted.Render("request " + meta.RequestID))
		b.WriteString("\n")
	}
	b.WriteString(outcomeStyle(r, meta.EvaluationOutcome).Render(meta.EvaluationOutcome))
	b.WriteString("\n")

	for _, m := range resp.EvaluationResult.Messages {
		style := r.NewStyle().Foreground(unknownColor)
		if m.Level == model.LevelCritical {
			style = r.NewStyle().Foreground(noColor)
		}
		b.WriteString(style.Render(fmt.Sprintf("[%s] %s: %s", m.Level, m.Code, m.Message)))
		b.WriteString("\n")
	}

	if len(resp.EvaluationResult.Results) > 0 {
		results := resp.EvaluationResult.Results
		rows := make([][]string, 0, len(results))
		for _, res := range results {
			benefit := ""
			if res.EstimatedBenefit != nil {
				benefit = Currency(*res.EstimatedBenefit)
			}
			rows = append(rows, []string{res.Name, res.Program, res.Eligible.String(), benefit})
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(r.NewStyle().Foreground(mutedColor)).
			Headers("PROGRAM", "ID", "ELIGIBLE", "MONTHLY").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return r.NewStyle().Bold(true).Foreground(headerColor).Padding(0, 1)
				}
				s := r.NewStyle().Padding(0, 1)
				if col == 2 && row >= 0 && row < len(results) {
					s = s.Foreground(verdictColor(results[row].Eligible))
				}
				return s
			})
		b.WriteString(t.Render())
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return eris.Wrap(err, "report: write table")
	}
	return nil
}

// Programs writes the program catalogue.
func Programs(w io.Writer, f Format, list []programs.Program) error {
	if f != FormatTable {
		return encode(w, f, list)
	}

	r := lipgloss.NewRenderer(w)
	rows := make([][]string, 0, len(list))
	for _, p := range list {
		rows = append(rows, []string{p.ID, p.Name, string(p.Category)})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(mutedColor)).
		Headers("ID", "NAME", "CATEGORY").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.NewStyle().Bold(true).Foreground(headerColor).Padding(0, 1)
			}
			return r.NewStyle().Padding(0, 1)
		})
	if _, err := io.WriteString(w, t.Render()+"\n"); err != nil {
		return eris.Wrap(err, "report: write table")
	}
	return nil
}

func encode(w io.Writer, f Format, v interface{}) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return eris.Wrap(err, "report: encode json")
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return eris.Wrap(err, "report: encode yaml")
		}
		if err := enc.Close(); err != nil {
			return eris.Wrap(err, "report: encode yaml")
		}
		return nil
	}
	return eris.Errorf("report: unknown output format %q", f)
}

func verdictColor(t model.Tristate) lipgloss.Color {
	switch t {
	case model.Yes:
		return yesColor
	case model.No:
		return noColor
	}
	return unknownColor
}

func outcomeStyle(r *lipgloss.Renderer, outcome string) lipgloss.Style {
	if outcome == model.OutcomeSuccess {
		return r.NewStyle().Bold(true).Foreground(yesColor)
	}
	return r.NewStyle().Bold(true).Foreground(noColor)
}
