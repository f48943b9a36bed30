package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/metaboclass/metaboclass/pkg/classify"
	"github.com/metaboclass/metaboclass/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary accents
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleBar     = lipgloss.NewStyle().Foreground(colorCyan)
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleSuccess.Render("✓")+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleError.Render("✗")+" "+fmt.Sprintf(format, args...))
}

// =============================================================================
// Progress Bar
// =============================================================================

// progressBar renders a single-line progress bar to w, redrawn in place.
// It consumes the pipeline's observational progress callback; rendering has
// no control effect on the run.
type progressBar struct {
	w       io.Writer
	width   int
	lastLen int
}

func newProgressBar(w io.Writer) *progressBar {
	return &progressBar{w: w, width: 30}
}

// Update redraws the bar for the given fraction and current item.
func (p *progressBar) Update(frac float64, source, name string) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(p.width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", p.width-filled)

	label := fmt.Sprintf("%3.0f%% %s %s", frac*100, source, truncate(name, 32))
	line := fmt.Sprintf("\r%s %s", styleBar.Render(bar), styleDim.Render(label))

	// Pad over the previous draw so shorter lines fully overwrite longer ones.
	plain := p.width + 1 + len(label)
	if pad := p.lastLen - plain; pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	p.lastLen = plain
	fmt.Fprint(p.w, line)
}

// Finish clears the bar line.
func (p *progressBar) Finish() {
	if p.lastLen > 0 {
		fmt.Fprintf(p.w, "\r%s\r", strings.Repeat(" ", p.lastLen))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return "…"
	}
	return s[:n-1] + "…"
}

// =============================================================================
// Run Summary
// =============================================================================

// renderSummary writes a post-run summary table: row count, per-source hit
// counts, and the final-type tally.
func renderSummary(w io.Writer, res *pipeline.Result) {
	tally := map[string]int{}
	for _, row := range res.Table.Rows() {
		tally[row.FinalType]++
	}

	rows := [][]string{
		{"Metabolites", fmt.Sprintf("%d", res.Stats.Rows)},
		{"HMDB found", fmt.Sprintf("%d / %d", res.Stats.HMDBFound, res.Stats.Rows)},
		{"KEGG found", fmt.Sprintf("%d / %d", res.Stats.KEGGFound, res.Stats.Rows)},
		{"Primary", fmt.Sprintf("%d", tally[classify.Primary])},
		{"Secondary", fmt.Sprintf("%d", tally[classify.Secondary])},
		{"Unknown", fmt.Sprintf("%d", tally[classify.Unknown])},
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorGray).PaddingRight(1)
			}
			return styleValue
		}).
		Rows(rows...)

	fmt.Fprintln(w, styleTitle.Render("Classification summary"))
	fmt.Fprintln(w, t.Render())
}
