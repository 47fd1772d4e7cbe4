package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/killer-emoji/internal/config"
	"github.com/vovakirdan/killer-emoji/internal/core"
)

// Visual characters for rendering
const (
	GroundGlyph   = "─"
	BarFullGlyph  = "▮"
	BarEmptyGlyph = "▯"
)

// hudRows is the number of rows above the play field.
const hudRows = 1

// Render draws the session's field and HUD: a status line on top, the
// falling emoji, the character on the bottom row and the ground below it.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() <= 0 || dst.Height() < hudRows+3 {
		return
	}

	st := s.state
	s.renderHUD(dst, st)

	top, bottom := hudRows, dst.Height()-1
	dst.DrawHLine(0, bottom, dst.Width(), GroundGlyph, core.ColorGray)

	for _, e := range st.Emojis {
		if e.Y < 0 {
			continue
		}
		row := fieldRow(e.Y, top, bottom)
		dst.Set(fieldCol(e.X, dst.Width()), row, e.Glyph)
	}

	playerRow := bottom - 1
	if st.Collision != nil {
		col := max(fieldCol(st.Collision.X, dst.Width())-1, 0)
		dst.SetColored(col, playerRow, CollisionGlyph, core.ColorBrightRed)
		dst.Set(col, playerRow-1, st.Collision.Glyph)
		return
	}

	sprite := st.Player.Character.Sprite(st.Player.Direction, st.Now)
	dst.Set(max(fieldCol(st.Player.X, dst.Width())-1, 0), playerRow, sprite)
}

func (s *Session) renderHUD(dst *core.Screen, st State) {
	score := fmt.Sprintf("Score: %d", st.Score())
	dst.DrawTextColored(1, 0, score, core.ColorBrightYellow)

	level := "Level " + bar(st.Difficulty.Level, s.cfg.Difficulty.MaxLevel)
	dst.DrawTextCentered(0, level, core.ColorCyan)

	vol := "Vol " + bar(s.volume, config.MaxVolume)
	dst.DrawTextColored(dst.Width()-len([]rune(vol))-1, 0, vol, core.ColorGray)
}

// bar renders n of total as filled and empty blocks.
func bar(n, total int) string {
	n = core.Clamp(n, 0, total)
	return strings.Repeat(BarFullGlyph, n) + strings.Repeat(BarEmptyGlyph, total-n)
}

// fieldCol maps a horizontal percentage to a screen column.
func fieldCol(x float64, width int) int {
	return core.Clamp(int(x/100*float64(width)), 0, width-1)
}

// fieldRow maps a vertical percentage to a row in [top, bottom).
func fieldRow(y float64, top, bottom int) int {
	rows := bottom - top
	return core.Clamp(top+int(y/100*float64(rows)), top, bottom-1)
}
