package report

import (
	"errors"
	"strings"
	"testing"

	"policy-hero/internal/system"
)

type memWriter struct {
	text string
	err  error
}

func (m *memWriter) WriteAll(text string) error {
	m.text = text
	return m.err
}

func TestRoundSummary(t *testing.T) {
	s := system.RoundStats{
		ShotsFired: 8, Hits: 6, ThievesSpawned: 7, ThievesKilled: 5,
		DamageTaken: 100, HighestWave: 4, Payouts: 1, TasksDone: 3,
	}
	got := Round(s)
	for _, want := range []string{"3/4", "Highest wave:     4", "5 of 7", "(75% hit)", "Damage taken:     100", "Insurance covered"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary lacks %q:\n%s", want, got)
		}
	}
}

func TestQuizSummary(t *testing.T) {
	got := Quiz(9, 10)
	if !strings.Contains(got, "9/10") || !strings.Contains(got, "Insurance Hero") {
		t.Fatalf("quiz summary = %q", got)
	}
}

func TestCopy(t *testing.T) {
	w := &memWriter{}
	if err := Copy(w, "hello"); err != nil || w.text != "hello" {
		t.Fatalf("copy: err=%v text=%q", err, w.text)
	}
	boom := errors.New("boom")
	if err := Copy(&memWriter{err: boom}, "x"); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if err := Copy(nil, "x"); !errors.Is(err, ErrNoClipboard) {
		t.Fatalf("nil writer err = %v", err)
	}
}
