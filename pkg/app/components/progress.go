package components

import (
	"fmt"
	"strings"

	"github.com/kerbaras/mangaread/pkg/app/styles"
)

// PageProgress shows the reader position as "n / N" above a bar.
type PageProgress struct {
	current int
	total   int
	width   int
}

func NewPageProgress(width int) *PageProgress {
	return &PageProgress{width: width}
}

// Set takes a zero-based page index.
func (p *PageProgress) Set(page, total int) {
	p.current = page
	p.total = total
}

func (p *PageProgress) SetWidth(width int) {
	p.width = width
}

// Counter is one-based; an empty chapter reads "0 / 0".
func (p *PageProgress) Counter() string {
	if p.total == 0 {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", p.current+1, p.total)
}

func (p *PageProgress) View() string {
	var b strings.Builder
	b.WriteString(styles.TextStyle.Render(p.Counter()))
	if bar := renderProgressBar(p.current+1, p.total, p.width); bar != "" {
		b.WriteString("\n")
		b.WriteString(bar)
	}
	return b.String()
}

func renderProgressBar(current, total, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	return styles.ProgressBarStyle.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// SimpleProgress renders a simple progress bar
func SimpleProgress(current, total, width int) string {
	return renderProgressBar(current, total, width)
}
