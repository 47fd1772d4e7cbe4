package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/killer-emoji/internal/core"
	"github.com/vovakirdan/killer-emoji/internal/game"
)

// Title shown on the start screen.
const title = "💀 K I L L E R   E M O J I 💀"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)
	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	characterStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// menuView renders the start screen: name entry, character choice and the
// best score so far.
func (m Model) menuView() string {
	c := m.session.Character()
	character := characterStyle.Render(fmt.Sprintf("↑  %s  %s  ↓", c.Sprite(game.DirectionIdle, 0), c))

	lines := []string{
		titleStyle.Render(title),
		subtitleStyle.Render("Dodge the falling emoji. One hit and it's over."),
		"",
		m.name.View(),
		character,
	}

	if board := m.session.HighScores(); len(board) > 0 {
		best := board[0]
		lines = append(lines, subtitleStyle.Render(fmt.Sprintf("Best: %s %d", best.Name, best.Score)))
	}
	if m.status != "" {
		lines = append(lines, statusStyle.Render(m.status))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	body := lipgloss.Place(m.config.ScreenW, fieldHeight(m.config.ScreenH), lipgloss.Center, lipgloss.Center, content)
	return body + "\n" + m.helpView()
}

// panelLine is one line of the game over panel.
type panelLine struct {
	text  string
	color core.Color
}

// drawGameOver draws the game over panel over the field.
func (m Model) drawGameOver(dst *core.Screen) {
	st := m.session.State()

	lines := []panelLine{
		{"GAME OVER", core.ColorBrightRed},
		{"", core.ColorDefault},
		{fmt.Sprintf("Score: %d", st.Score()), core.ColorBrightYellow},
	}
	if st.Collision != nil {
		lines = append(lines, panelLine{"Hit by " + st.Collision.Glyph, core.ColorDefault})
	}

	switch {
	case m.session.CanSubmit():
		lines = append(lines,
			panelLine{"New high score!", core.ColorBrightBlue},
			panelLine{m.nameLine(), core.ColorDefault},
			panelLine{"Type your name, Enter saves", core.ColorGray},
		)
	case m.session.Submitted():
		lines = append(lines, panelLine{"On the board as " + m.session.DisplayName(), core.ColorGray})
	}
	if m.status != "" {
		lines = append(lines, panelLine{m.status, core.ColorYellow})
	}

	w := 0
	for _, l := range lines {
		w = max(w, lipgloss.Width(l.text))
	}
	boxW := min(w+6, dst.Width())
	boxH := min(len(lines)+2, dst.Height())
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2
	dst.DrawBox(x, y, boxW, boxH)

	for i, l := range lines {
		if l.text == "" {
			continue
		}
		tx := (dst.Width() - lipgloss.Width(l.text)) / 2
		dst.DrawTextColored(tx, y+1+i, l.text, l.color)
	}
}

// nameLine renders the name field for the game over panel, padded to the
// longest name so the panel keeps its width while typing.
func (m Model) nameLine() string {
	value := m.name.Value()
	if value == "" && !m.name.Focused() {
		value = m.scores.PlaceholderName
	}
	return fmt.Sprintf("Name: %-*s", m.scores.MaxNameLength+1, value+"_")
}
