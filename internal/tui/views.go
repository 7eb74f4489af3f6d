package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/okatsune/mania/internal/domain"
	"github.com/okatsune/mania/internal/search"
	"github.com/okatsune/mania/internal/tui/styles"
)

// View renders the active screen.
func (m *Model) View() string {
	var body string
	switch m.view {
	case ViewHome:
		body = m.viewHome()
	case ViewSearch:
		body = m.viewSearch()
	case ViewDetail:
		body = m.viewDetail()
	case ViewLibrary:
		body = m.viewLibrary()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		body,
		m.viewStatusBar(),
	)
}

func (m *Model) viewHeader() string {
	title := m.styles.Accent.Render("mania")
	theme := m.styles.Dim.Render(fmt.Sprintf("[%s]", m.state.Theme))
	spin := ""
	if m.loading() {
		spin = " " + m.spin.View()
	}
	return m.styles.Title.Render(title) + " " + theme + spin
}

func (m *Model) viewStatusBar() string {
	if m.status != "" {
		return m.styles.Success.Render(m.status)
	}
	help := "↑/↓ move · ←/→ section · enter open · f fav · w watch · / search · L library · t theme · s sort · q quit"
	return m.styles.StatusBar.Render(truncate(help, maxInt(m.width, 40)))
}

func (m *Model) viewHome() string {
	var b strings.Builder
	for i, cat := range categories {
		page := m.sections[cat]
		heading := cat.String()
		if i == m.sectionIdx {
			heading = "▸ " + heading
		} else {
			heading = "  " + heading
		}
		b.WriteString(m.styles.Section.Render(heading))
		b.WriteString("\n")

		if i != m.sectionIdx {
			b.WriteString(m.styles.Dim.Render(fmt.Sprintf("    %d titles", len(page.Results))))
			b.WriteString("\n")
			continue
		}

		items := m.currentSection()
		if len(items) == 0 {
			b.WriteString(m.styles.Dim.Render("    nothing here"))
			b.WriteString("\n")
			continue
		}

		cursor := m.rowIdx[cat]
		start := 0
		if cursor >= sectionRows {
			start = cursor - sectionRows + 1
		}
		end := minInt(start+sectionRows, len(items))
		for j := start; j < end; j++ {
			b.WriteString(m.renderRow(items[j], j == cursor))
			b.WriteString("\n")
		}
		if page.HasNextPage {
			b.WriteString(m.styles.Dim.Render("    ctrl+n loads more"))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Model) renderRow(item domain.MediaItem, selected bool) string {
	marker := " "
	if m.store.IsFavorite(item.ID) {
		marker = m.styles.Error.Render(styles.FavoriteChar)
	} else if m.store.OnWatchlist(item.ID) {
		marker = m.styles.Accent.Render(styles.WatchlistChar)
	}

	line := fmt.Sprintf("%s %-4s %s", marker, item.FormattedScore(), truncate(item.DisplayTitle(), 60))
	if item.Year > 0 {
		line += m.styles.Dim.Render(fmt.Sprintf(" (%d)", item.Year))
	}
	if selected {
		return "  " + m.styles.Selected.Render("› "+line)
	}
	return "    " + line
}

func (m *Model) viewSearch() string {
	var b strings.Builder
	b.WriteString(m.styles.Panel.Render(m.input.View()))
	b.WriteString("\n")

	typed := m.input.Value()

	// Past queries matching what has been typed so far.
	if len(m.state.SearchHistory) > 0 {
		suggestions := m.state.SearchHistory
		if typed != "" {
			suggestions = fuzzy.FindNormalizedFold(typed, suggestions)
		}
		if len(suggestions) > 0 {
			b.WriteString(m.styles.Subtitle.Render("History: "))
			b.WriteString(m.styles.Dim.Render(strings.Join(limitStrings(suggestions, 5), " · ")))
			b.WriteString(m.styles.Dim.Render("   (ctrl+x clears)"))
			b.WriteString("\n")
		}
	}

	// Instant matches over items already in memory, while the remote
	// query waits out its quiet period.
	if typed != "" && m.searchPending {
		local := search.Rank(typed, m.state.Movies)
		if len(local) > 0 {
			b.WriteString(m.styles.Section.Render("From cache"))
			b.WriteString("\n")
			for i, match := range local {
				if i >= 5 {
					break
				}
				b.WriteString("    " + truncate(match.Item.DisplayTitle(), 60))
				b.WriteString("\n")
			}
		}
	}

	switch {
	case m.searchPending:
		b.WriteString(m.styles.Dim.Render("searching…"))
		b.WriteString("\n")
	case m.searchQuery != "" && len(m.searchResults.Results) == 0:
		b.WriteString(m.styles.Dim.Render(fmt.Sprintf("No results for %q", m.searchQuery)))
		b.WriteString("\n")
	default:
		for i, item := range m.searchResults.Results {
			b.WriteString(m.renderRow(item, i == m.searchCursor))
			b.WriteString("\n")
		}
		if m.searchResults.HasNextPage {
			b.WriteString(m.styles.Dim.Render("    ctrl+n loads more"))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Model) viewDetail() string {
	if m.detail == nil {
		return m.styles.Dim.Render("\n  loading…")
	}
	item := *m.detail

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render("  " + item.DisplayTitle()))
	if item.TitleEnglish != "" && item.TitleEnglish != item.Title {
		b.WriteString(m.styles.Dim.Render("  (" + item.Title + ")"))
	}
	b.WriteString("\n\n")

	meta := []string{}
	if item.Year > 0 {
		meta = append(meta, fmt.Sprintf("%d", item.Year))
	}
	if item.Status != "" {
		meta = append(meta, item.Status)
	}
	meta = append(meta, item.FormattedEpisodes()+" eps")
	if item.Duration != "" {
		meta = append(meta, item.Duration)
	}
	if item.ContentRating != "" {
		meta = append(meta, item.ContentRating)
	}
	b.WriteString("  " + m.styles.Subtitle.Render(strings.Join(meta, " · ")))
	b.WriteString("\n")

	score := fmt.Sprintf("★ %s", item.FormattedScore())
	if item.ScoredBy > 0 {
		score += m.styles.Dim.Render(fmt.Sprintf(" (%d votes)", item.ScoredBy))
	}
	b.WriteString("  " + m.styles.Accent.Render(score))
	b.WriteString("\n")

	if names := m.genreNames(item); len(names) > 0 {
		b.WriteString("  " + m.styles.Badge.Render(strings.Join(names, " / ")))
		b.WriteString("\n")
	}
	if item.Studios != "" {
		b.WriteString(m.styles.Dim.Render("  Studio: " + item.Studios))
		b.WriteString("\n")
	}
	if item.ReleaseDate != "" {
		b.WriteString(m.styles.Dim.Render("  Aired: " + airedLine(item)))
		b.WriteString("\n")
	}
	if item.TrailerURL != "" {
		b.WriteString(m.styles.Dim.Render("  Trailer: " + item.TrailerURL))
		b.WriteString("\n")
	}

	if item.Synopsis != "" {
		width := maxInt(minInt(m.width-4, 100), 40)
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(width).PaddingLeft(2).Render(item.Synopsis))
		b.WriteString("\n")
	}

	if len(m.cast) > 0 {
		b.WriteString(m.styles.Section.Render("  Cast"))
		b.WriteString("\n")
		for i, c := range m.cast {
			if i >= 8 {
				break
			}
			b.WriteString(fmt.Sprintf("    %s %s\n", truncate(c.Name, 30), m.styles.Dim.Render("("+c.Role+")")))
		}
	}

	if len(m.recs) > 0 {
		b.WriteString(m.styles.Section.Render("  Similar"))
		b.WriteString("\n")
		for i, r := range m.recs {
			if i >= 6 {
				break
			}
			b.WriteString("    " + truncate(r.DisplayTitle(), 60) + "\n")
		}
	}

	fav, watch := "f add favorite", "w add watchlist"
	if m.store.IsFavorite(item.ID) {
		fav = "f remove favorite"
	}
	if m.store.OnWatchlist(item.ID) {
		watch = "w remove watchlist"
	}
	b.WriteString("\n" + m.styles.Dim.Render("  "+fav+" · "+watch+" · esc back"))
	return b.String()
}

func (m *Model) viewLibrary() string {
	var b strings.Builder
	tabs := []string{"Favorites", "Watchlist"}
	var rendered []string
	for i, t := range tabs {
		if i == m.libTab {
			rendered = append(rendered, m.styles.Badge.Render(t))
		} else {
			rendered = append(rendered, m.styles.Dim.Render(t))
		}
	}
	b.WriteString("\n  " + strings.Join(rendered, "  ") + "\n\n")

	ids := m.libraryIDs()
	if len(ids) == 0 {
		b.WriteString(m.styles.Dim.Render("  Nothing saved yet."))
		b.WriteString("\n")
		return b.String()
	}

	for i, id := range ids {
		item := m.itemOrStub(id)
		title := item.DisplayTitle()
		if title == "" {
			title = fmt.Sprintf("#%d", id)
		}
		line := fmt.Sprintf("%-4s %s", item.FormattedScore(), truncate(title, 60))
		if i == m.libCursor {
			b.WriteString("  " + m.styles.Selected.Render("› "+line))
		} else {
			b.WriteString("    " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func airedLine(item domain.MediaItem) string {
	if item.Aired != "" {
		return item.Aired
	}
	return formatDate(item.ReleaseDate)
}

func limitStrings(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
