// Package share publishes a finished score: through a configured share
// command when there is one, otherwise by copying a message to a clipboard.
package share

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/killer-emoji/internal/config"
	"github.com/vovakirdan/killer-emoji/internal/core"
)

// Clipboard receives the share message.
type Clipboard interface {
	WriteText(text string) error
}

// ErrUnsupported is returned by a clipboard that cannot work here.
var ErrUnsupported = errors.New("clipboard unsupported")

// SystemClipboard writes to the clipboard of the local desktop.
type SystemClipboard struct{}

// WriteText copies text to the system clipboard.
func (SystemClipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// OSC52Clipboard asks the terminal on the other end of W to set its
// clipboard. It works over SSH.
type OSC52Clipboard struct {
	W    io.Writer
	Tmux bool // Wrap the sequence for tmux passthrough
}

// WriteText writes the OSC 52 sequence for text.
func (c OSC52Clipboard) WriteText(text string) error {
	if c.W == nil {
		return ErrUnsupported
	}
	seq := osc52.New(text)
	if c.Tmux {
		seq = seq.Tmux()
	}
	_, err := seq.WriteTo(c.W)
	return err
}

// Sharer implements the share action.
type Sharer struct {
	cfg        config.ShareConfig
	clipboards []Clipboard
	logger     *log.Logger
}

// New creates a sharer. Clipboards are tried in order after the share
// command.
func New(cfg config.ShareConfig, logger *log.Logger, clipboards ...Clipboard) *Sharer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Sharer{cfg: cfg, clipboards: clipboards, logger: logger}
}

// Message formats the share text for a score.
func (s *Sharer) Message(score int) string {
	text := s.cfg.Text
	if strings.Contains(text, "%d") {
		text = fmt.Sprintf(text, score)
	}
	if s.cfg.URL != "" {
		text += " " + s.cfg.URL
	}
	return text
}

// Share publishes the score. Every failure is logged, never returned.
func (s *Sharer) Share(ctx context.Context, score int) core.ShareResult {
	msg := s.Message(score)

	if len(s.cfg.Command) > 0 {
		cmd := exec.CommandContext(ctx, s.cfg.Command[0], s.cfg.Command[1:]...)
		cmd.Stdin = strings.NewReader(msg)
		err := cmd.Run()
		if err == nil {
			s.logger.Info("score shared", "score", score, "command", s.cfg.Command[0])
			return core.ShareNative
		}
		s.logger.Warn("share command failed, falling back to clipboard", "command", s.cfg.Command[0], "err", err)
	}

	for _, c := range s.clipboards {
		if err := c.WriteText(msg); err != nil {
			s.logger.Warn("clipboard write failed", "clipboard", fmt.Sprintf("%T", c), "err", err)
			continue
		}
		s.logger.Info("score copied", "score", score)
		return core.ShareCopied
	}

	return core.ShareFailed
}
