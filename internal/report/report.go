// Package report formats end-of-round and end-of-quiz summaries and copies
// them to the system clipboard.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"policy-hero/internal/quiz"
	"policy-hero/internal/system"
)

// ErrNoClipboard is returned when the platform has no clipboard utility.
var ErrNoClipboard = errors.New("clipboard not available")

// Round renders the statistics of a finished round.
func Round(s system.RoundStats) string {
	var b strings.Builder
	b.WriteString("Policy Hero - round summary\n")
	fmt.Fprintf(&b, "Prep tasks done:  %d/4\n", s.TasksDone)
	fmt.Fprintf(&b, "Highest wave:     %d\n", s.HighestWave)
	fmt.Fprintf(&b, "Thieves defeated: %d of %d\n", s.ThievesKilled, s.ThievesSpawned)
	fmt.Fprintf(&b, "Shots fired:      %d (%.0f%% hit)\n", s.ShotsFired, 100*s.Accuracy())
	fmt.Fprintf(&b, "Damage taken:     %d\n", s.DamageTaken)
	if s.Payouts > 0 {
		b.WriteString("Insurance covered your losses.\n")
	}
	return b.String()
}

// Quiz renders a final quiz score with its rating.
func Quiz(score, total int) string {
	return fmt.Sprintf("Policy Hero - insurance quiz\nScore: %d/%d\n%s\n", score, total, quiz.Rating(score))
}

// Writer is where summaries are copied to.
type Writer interface {
	WriteAll(text string) error
}

// Clipboard writes to the system clipboard.
type Clipboard struct{}

func (Clipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrNoClipboard
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// Copy sends text to w.
func Copy(w Writer, text string) error {
	if w == nil {
		return ErrNoClipboard
	}
	return w.WriteAll(text)
}
