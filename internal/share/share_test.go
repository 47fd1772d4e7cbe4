package share

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/vovakirdan/killer-emoji/internal/config"
	"github.com/vovakirdan/killer-emoji/internal/core"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteText(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.ShareConfig
		expected string
	}{
		{
			name:     "default",
			cfg:      config.DefaultGameConfig().Share,
			expected: "I scored 42 points in Killer Emoji! Try to beat me!",
		},
		{
			name:     "no url",
			cfg:      config.ShareConfig{Text: "%d!"},
			expected: "42!",
		},
		{
			name:     "no placeholder",
			cfg:      config.ShareConfig{Text: "Killer Emoji", URL: "x"},
			expected: "Killer Emoji x",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := New(tc.cfg, nil).Message(42); got != tc.expected {
				t.Errorf("Message() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestShareFallsBackThroughClipboards(t *testing.T) {
	broken := &fakeClipboard{err: ErrUnsupported}
	working := &fakeClipboard{}
	s := New(config.ShareConfig{Text: "score %d"}, nil, broken, working)

	if got := s.Share(context.Background(), 7); got != core.ShareCopied {
		t.Fatalf("Share() = %v, expected copied", got)
	}
	if working.text != "score 7" {
		t.Errorf("clipboard holds %q", working.text)
	}
}

func TestShareAllFail(t *testing.T) {
	s := New(config.ShareConfig{Text: "%d"}, nil, &fakeClipboard{err: errors.New("no display")})
	if got := s.Share(context.Background(), 1); got != core.ShareFailed {
		t.Errorf("Share() = %v, expected failed", got)
	}
	if got := New(config.ShareConfig{}, nil).Share(context.Background(), 1); got != core.ShareFailed {
		t.Errorf("Share() without clipboards = %v, expected failed", got)
	}
}

func TestShareCommand(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}
	clip := &fakeClipboard{}
	s := New(config.ShareConfig{Text: "%d", Command: []string{"cat"}}, nil, clip)
	if got := s.Share(context.Background(), 3); got != core.ShareNative {
		t.Errorf("Share() = %v, expected native", got)
	}
	if clip.text != "" {
		t.Error("clipboard should not be used when the command works")
	}

	missing := New(config.ShareConfig{Text: "%d", Command: []string{"/nonexistent/share-tool"}}, nil, clip)
	if got := missing.Share(context.Background(), 3); got != core.ShareCopied {
		t.Errorf("Share() = %v, expected clipboard fallback", got)
	}
}

func TestOSC52Clipboard(t *testing.T) {
	var buf bytes.Buffer
	if err := (OSC52Clipboard{W: &buf}).WriteText("hi"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\x1b]52;") || !strings.Contains(out, "aGk=") {
		t.Errorf("unexpected sequence %q", out)
	}

	if err := (OSC52Clipboard{}).WriteText("hi"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("nil writer: err = %v", err)
	}
}
