// internal/system/stats.go
package system

import "policy-hero/internal/event"

// RoundStats tallies what happened in one round from gameplay events.
type RoundStats struct {
	ShotsFired     int
	Hits           int
	ThievesSpawned int
	ThievesKilled  int
	DamageTaken    int
	HighestWave    int
	Payouts        int
	TasksDone      int
}

// StatsSystem listens to the dispatcher and keeps RoundStats current.
type StatsSystem struct {
	Stats RoundStats
}

func NewStatsSystem() *StatsSystem {
	return &StatsSystem{}
}

// Subscribe attaches the system to every event it counts.
func (s *StatsSystem) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(s,
		event.ShotFired,
		event.ThiefHit,
		event.ThiefSpawned,
		event.ThiefKilled,
		event.HouseDamaged,
		event.WaveStarted,
		event.PayoutTriggered,
		event.Interacted,
	)
}

// Accuracy is hits per shot in [0, 1].
func (r RoundStats) Accuracy() float64 {
	if r.ShotsFired == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.ShotsFired)
}

func (s *StatsSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.ShotFired:
		s.Stats.ShotsFired++
	case event.ThiefHit:
		s.Stats.Hits++
	case event.ThiefSpawned:
		s.Stats.ThievesSpawned++
	case event.ThiefKilled:
		s.Stats.ThievesKilled++
	case event.HouseDamaged:
		if d, ok := e.Data.(event.Damage); ok {
			s.Stats.DamageTaken += d.Amount
		}
	case event.WaveStarted:
		if w, ok := e.Data.(event.WaveInfo); ok && w.Number > s.Stats.HighestWave {
			s.Stats.HighestWave = w.Number
		}
	case event.PayoutTriggered:
		s.Stats.Payouts++
	case event.Interacted:
		s.Stats.TasksDone++
	}
}
