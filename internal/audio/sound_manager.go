package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"policy-hero/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager plays a cue for each gameplay event it is subscribed to.
// Until Initialize succeeds every call is a no-op.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close silences the mixer and releases the speaker.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// Subscribe attaches the manager to every event that has a cue.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(sm,
		event.ShotFired,
		event.ThiefHit,
		event.ThiefKilled,
		event.HouseDamaged,
		event.Interacted,
		event.WaveStarted,
		event.PayoutTriggered,
		event.QuizAnswered,
	)
}

func (sm *SoundManager) OnEvent(e event.Event) {
	if tone, ok := ToneFor(e); ok {
		sm.Play(tone)
	}
}

// Play mixes a tone into the output.
func (sm *SoundManager) Play(t Tone) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(t.Streamer(sampleRate))
	speaker.Unlock()
}
