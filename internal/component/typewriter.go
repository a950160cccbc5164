// internal/component/typewriter.go
package component

// Typewriter reveals a line one character every Delay frames, starting on
// the first frame.
type Typewriter struct {
	Text  []rune
	Delay int

	frame int
	shown int
}

func NewTypewriter(text string, delay int) *Typewriter {
	if delay < 1 {
		delay = 1
	}
	return &Typewriter{Text: []rune(text), Delay: delay}
}

// Update advances one frame.
func (t *Typewriter) Update() {
	if t.shown < len(t.Text) && t.frame%t.Delay == 0 {
		t.shown++
	}
	t.frame++
}

// Visible is the revealed prefix.
func (t *Typewriter) Visible() string {
	return string(t.Text[:t.shown])
}

func (t *Typewriter) Done() bool {
	return t.shown == len(t.Text)
}

// Reset hides the text again.
func (t *Typewriter) Reset() {
	t.frame = 0
	t.shown = 0
}
