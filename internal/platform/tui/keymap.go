package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/killer-emoji/internal/core"
	"github.com/vovakirdan/killer-emoji/internal/game"
)

// KeyMap defines the key bindings of every screen.
// Letter keys are not bound while the name field has focus: on the start
// screen and on a game over with an unsaved high score.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Halt       key.Binding
	Start      key.Binding
	Save       key.Binding
	Retry      key.Binding
	Skip       key.Binding
	Share      key.Binding
	Ranking    key.Binding
	Back       key.Binding
	PrevChar   key.Binding
	NextChar   key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Halt: key.NewBinding(
			key.WithKeys("down", " "),
			key.WithHelp("↓/space", "stop"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save score"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Skip: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "skip & retry"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
		Ranking: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "ranking"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		PrevChar: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "prev character"),
		),
		NextChar: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next character"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "louder"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "quieter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// MapKey translates a key message to an action for the given phase.
// naming reports that a game over waits for the name of a new high score.
// Returns ActionNone for keys that have no meaning there.
func (k KeyMap) MapKey(msg tea.KeyMsg, phase game.Phase, naming bool) core.Action {
	switch phase {
	case game.PhaseStart:
		switch {
		case key.Matches(msg, k.ForceQuit):
			return core.ActionQuit
		case key.Matches(msg, k.Start):
			return core.ActionConfirm
		case key.Matches(msg, k.Ranking):
			return core.ActionRanking
		case key.Matches(msg, k.Back):
			return core.ActionBack
		}

	case game.PhasePlaying:
		switch {
		case key.Matches(msg, k.Quit):
			return core.ActionQuit
		case key.Matches(msg, k.Left):
			return core.ActionLeft
		case key.Matches(msg, k.Right):
			return core.ActionRight
		case key.Matches(msg, k.Halt):
			return core.ActionHalt
		case key.Matches(msg, k.Back):
			return core.ActionBack
		case key.Matches(msg, k.VolumeUp):
			return core.ActionVolumeUp
		case key.Matches(msg, k.VolumeDown):
			return core.ActionVolumeDown
		}

	case game.PhaseGameOver:
		if naming {
			switch {
			case key.Matches(msg, k.ForceQuit):
				return core.ActionQuit
			case key.Matches(msg, k.Save):
				return core.ActionConfirm
			case key.Matches(msg, k.Skip):
				return core.ActionRetry
			case key.Matches(msg, k.Ranking):
				return core.ActionRanking
			case key.Matches(msg, k.Back):
				return core.ActionBack
			}
			return core.ActionNone
		}

		switch {
		case key.Matches(msg, k.Quit):
			return core.ActionQuit
		case key.Matches(msg, k.Save):
			return core.ActionConfirm
		case key.Matches(msg, k.Retry):
			return core.ActionRetry
		case key.Matches(msg, k.Share):
			return core.ActionShare
		case key.Matches(msg, k.Ranking):
			return core.ActionRanking
		case key.Matches(msg, k.Back):
			return core.ActionBack
		case key.Matches(msg, k.VolumeUp):
			return core.ActionVolumeUp
		case key.Matches(msg, k.VolumeDown):
			return core.ActionVolumeDown
		}
	}

	return core.ActionNone
}

// bindings adapts a list of key bindings to help.KeyMap.
type bindings []key.Binding

// ShortHelp returns key bindings for the short help view.
func (b bindings) ShortHelp() []key.Binding {
	return b
}

// FullHelp returns key bindings for the full help view.
func (b bindings) FullHelp() [][]key.Binding {
	return [][]key.Binding{b}
}

// helpFor returns the bindings shown on a screen.
func (k KeyMap) helpFor(phase game.Phase, ranking, canSave bool) bindings {
	if ranking {
		return bindings{k.Ranking, k.Back, k.ForceQuit}
	}
	switch phase {
	case game.PhasePlaying:
		return bindings{k.Left, k.Right, k.Halt, k.VolumeDown, k.VolumeUp, k.Back, k.Quit}
	case game.PhaseGameOver:
		if canSave {
			return bindings{k.Save, k.Skip, k.Ranking, k.Back, k.ForceQuit}
		}
		return bindings{k.Retry, k.Share, k.Ranking, k.Back, k.Quit}
	default:
		return bindings{k.Start, k.PrevChar, k.NextChar, k.Ranking, k.ForceQuit}
	}
}
