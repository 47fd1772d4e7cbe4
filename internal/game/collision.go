package game

import "github.com/vovakirdan/killer-emoji/internal/core"

// PlayerHitbox returns the player's box: Width wide around x, spanning the
// configured band near the bottom of the field.
func (s *Simulator) PlayerHitbox(x float64) core.Rect {
	half := s.player.Width / 2
	return core.RectFromBounds(x-half, s.player.HitboxTop, x+half, s.player.HitboxBottom)
}

// EmojiHitbox returns the square box of an emoji at its current position.
func (s *Simulator) EmojiHitbox(e Emoji) core.Rect {
	return core.NewRect(e.X, e.Y, s.emoji.Size, s.emoji.Size)
}

// Collides reports whether the boxes overlap on both axes.
func Collides(player, emoji core.Rect) bool {
	return player.Intersects(emoji)
}
