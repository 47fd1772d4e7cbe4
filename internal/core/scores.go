package core

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// RankScores returns a new slice with the entries sorted by score descending
// and truncated to limit. Entries with equal scores keep their relative order,
// so ranking an already ranked list is a no-op.
func RankScores(entries []HighScore, limit int) []HighScore {
	ranked := make([]HighScore, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Qualifies reports whether a finished score earns a place on the board.
// board must be ranked as RankScores returns it. The score must be positive
// and either the board has room or the score beats the last entry.
func Qualifies(board []HighScore, score, limit int) bool {
	if score <= 0 {
		return false
	}
	if len(board) < limit {
		return true
	}
	return score > board[len(board)-1].Score
}

// NormalizeName trims a display name, caps it at maxLen runes and falls back
// to placeholder when nothing is left.
func NormalizeName(name, placeholder string, maxLen int) string {
	name = strings.TrimSpace(name)
	if maxLen > 0 && utf8.RuneCountInString(name) > maxLen {
		name = strings.TrimSpace(string([]rune(name)[:maxLen]))
	}
	if name == "" {
		return placeholder
	}
	return name
}
