package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"policy-hero/internal/input"
)

type control int

const (
	ctlLeft control = iota
	ctlRight
	ctlUp
	ctlDown
	ctlAction
	numHeld
)

// KeyLatch turns terminal key presses into input.State. Terminals report
// key repeats but never key releases, so a held control stays down for
// hold after its latest press.
type KeyLatch struct {
	hold    time.Duration
	pressed [numHeld]time.Time
	edges   input.State
}

func NewKeyLatch(hold time.Duration) *KeyLatch {
	return &KeyLatch{hold: hold}
}

// Press records one key event.
func (l *KeyLatch) Press(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		l.edges.Quit = true
	case tcell.KeyEnter:
		l.edges.Restart = true
	case tcell.KeyLeft:
		l.pressed[ctlLeft] = now
	case tcell.KeyRight:
		l.pressed[ctlRight] = now
	case tcell.KeyUp:
		l.pressed[ctlUp] = now
	case tcell.KeyDown:
		l.pressed[ctlDown] = now
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			l.edges.Start = true
			l.edges.Restart = true
		case 'r', 'R':
			l.edges.Restart = true
		case 'a', 'A':
			l.pressed[ctlAction] = now
		case 'q', 'Q':
			l.edges.Quit = true
		}
	}
}

// Sample returns the input for this tick and clears the edge-triggered
// controls.
func (l *KeyLatch) Sample(now time.Time) input.State {
	s := l.edges
	l.edges = input.State{}
	s.Left = l.down(ctlLeft, now)
	s.Right = l.down(ctlRight, now)
	s.Up = l.down(ctlUp, now)
	s.Down = l.down(ctlDown, now)
	s.Action = l.down(ctlAction, now)
	return s
}

func (l *KeyLatch) down(c control, now time.Time) bool {
	t := l.pressed[c]
	return !t.IsZero() && now.Sub(t) < l.hold
}
