// internal/component/motion.go
package component

import "math"

// SlideBounce moves a title in from the left at Speed px/frame. Once it has
// reached TargetX it bobs vertically between -Limit and +Limit, one pixel
// per frame.
type SlideBounce struct {
	X       float64
	TargetX float64
	Speed   float64
	Limit   float64
	Offset  float64

	dir float64
}

func NewSlideBounce(startX, targetX, speed, limit float64) *SlideBounce {
	return &SlideBounce{X: startX, TargetX: targetX, Speed: speed, Limit: limit, dir: 1}
}

func (s *SlideBounce) Update() {
	if s.X < s.TargetX {
		s.X += s.Speed
		return
	}
	s.Offset += s.dir
	if s.Offset > s.Limit || s.Offset < -s.Limit {
		s.dir = -s.dir
	}
}

// Arrived reports whether the slide-in finished.
func (s *SlideBounce) Arrived() bool {
	return s.X >= s.TargetX
}

// Bob is a sine offset of amplitude amp at the given frame.
func Bob(frame int, freq, amp float64) float64 {
	return math.Trunc(math.Sin(float64(frame)*freq) * amp)
}

// Pulse is the scale of the i-th pulsing item at the given frame.
func Pulse(frame, i int) float64 {
	return 1 + 0.05*math.Sin(float64(frame)*0.2+float64(i))
}

// Fade is an alpha in [0, 254] that breathes in and out.
func Fade(frame int) uint8 {
	return uint8((math.Sin(float64(frame)*0.1) + 1) * 127)
}
