package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// newRankingTable creates the leaderboard table sized to the window.
func (m Model) newRankingTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: max(m.scores.MaxNameLength, 8) + 2},
		{Title: "Score", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.scores.Limit, 1)+1),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// refreshRanking loads the session's leaderboard into the table.
func (m *Model) refreshRanking() {
	board := m.session.HighScores()
	rows := make([]table.Row, len(board))
	for i, e := range board {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
		}
	}
	m.ranking.SetRows(rows)

	// Reset cursor to top
	m.ranking.GotoTop()
}

// rankingView renders the leaderboard.
func (m Model) rankingView() string {
	header := titleStyle.Render("HIGH SCORES")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var body string
	if len(m.session.HighScores()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		body = emptyStyle.Render("No scores recorded yet.\nSurvive a round to set a high score!")
	} else {
		body = m.ranking.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Center, header, tableStyle.Render(body))
	placed := lipgloss.Place(m.config.ScreenW, fieldHeight(m.config.ScreenH), lipgloss.Center, lipgloss.Center, content)
	return placed + "\n" + m.helpView()
}
