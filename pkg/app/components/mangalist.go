package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/mangaread/pkg/app/styles"
	"github.com/kerbaras/mangaread/pkg/data"
)

const (
	cardTags        = 3
	cardDescription = 160
	cardLines       = 7
)

// MangaList renders title cards with a movable selection.
type MangaList struct {
	Items           []data.TitleSummary
	SelectedIndex   int
	Width           int
	Height          int
	ShowDescription bool
	EmptyText       string
	Focused         bool
}

func NewMangaList() *MangaList {
	return &MangaList{
		Items:         []data.TitleSummary{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
		EmptyText:     "No manga found",
		Focused:       true,
	}
}

func (m *MangaList) SetItems(items []data.TitleSummary) {
	m.Items = items
	if m.SelectedIndex >= len(items) && len(items) > 0 {
		m.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		m.SelectedIndex = 0
	}
}

func (m *MangaList) Next() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex++
	if m.SelectedIndex >= len(m.Items) {
		m.SelectedIndex = 0
	}
}

func (m *MangaList) Prev() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex--
	if m.SelectedIndex < 0 {
		m.SelectedIndex = len(m.Items) - 1
	}
}

func (m *MangaList) Selected() *data.TitleSummary {
	if len(m.Items) == 0 || m.SelectedIndex >= len(m.Items) {
		return nil
	}
	return &m.Items[m.SelectedIndex]
}

func (m *MangaList) View() string {
	if len(m.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render(m.EmptyText)
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder

	visible := m.Height / cardLines
	if visible < 1 {
		visible = 1
	}
	start, end := Window(m.SelectedIndex, len(m.Items), visible)

	for i := start; i < end; i++ {
		cardStyle := styles.CardStyle
		if i == m.SelectedIndex && m.Focused {
			cardStyle = styles.ActiveCardStyle
		}
		b.WriteString(cardStyle.Width(m.Width - 4).Render(m.renderCard(m.Items[i])))
		b.WriteString("\n")
	}

	if end-start < len(m.Items) {
		b.WriteString(styles.MutedStyle.Render(
			fmt.Sprintf("Showing %d-%d of %d", start+1, end, len(m.Items)),
		))
	}

	return b.String()
}

func (m *MangaList) renderCard(title data.TitleSummary) string {
	meta := styles.StatusStyle(title.Status).Render(title.Status)
	if title.Year > 0 {
		meta += styles.MutedStyle.Render(fmt.Sprintf(" • %d", title.Year))
	}

	lines := []string{
		styles.CardTitleStyle.Render(Truncate(title.Title, m.Width-10)),
		meta,
	}
	if tags := RenderTags(title.Tags, cardTags); tags != "" {
		lines = append(lines, tags)
	}
	if m.ShowDescription && title.Description != "" {
		desc := strings.Join(strings.Fields(title.Description), " ")
		lines = append(lines, styles.TextStyle.Render(Truncate(desc, cardDescription)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderTags renders up to max tags as chips; max <= 0 renders all.
func RenderTags(tags []string, max int) string {
	if max > 0 && len(tags) > max {
		tags = tags[:max]
	}
	chips := make([]string, len(tags))
	for i, tag := range tags {
		chips[i] = styles.TagStyle.Render(tag)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// Window returns the [start, end) slice of total items of the given size
// that keeps selected roughly centred.
func Window(selected, total, size int) (int, int) {
	if total <= size {
		return 0, total
	}
	start := selected - size/2
	if start < 0 {
		start = 0
	}
	end := start + size
	if end > total {
		end = total
		start = end - size
	}
	return start, end
}

// Truncate shortens s to at most n runes, ending with "...".
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 3 || len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
