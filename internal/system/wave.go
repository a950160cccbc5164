// internal/system/wave.go
package system

import (
	"math"

	"policy-hero/internal/config"
	"policy-hero/internal/entity"
	"policy-hero/internal/event"
	"policy-hero/internal/utils"
)

// WaveSystem spawns thieves on a timer according to the difficulty curve.
type WaveSystem struct {
	Wave          int
	ToSpawn       int
	SpawnInterval float64
	SpawnTimer    float64
	Active        bool

	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		SpawnInterval:   config.WaveBaseInterval,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// WaveQuota is the number of thieves spawned in wave w.
func WaveQuota(w int) int {
	return min(w+1, config.WaveMaxQuota)
}

// WaveInterval is the delay in seconds between spawns in wave w.
func WaveInterval(w int) float64 {
	return math.Max(config.WaveMinInterval, config.WaveBaseInterval-float64(w)*config.WaveIntervalStep)
}

// ToughChance is the probability that a thief in wave w has 2 hit points.
func ToughChance(w int) float64 {
	return math.Min(config.ToughThiefBaseChance+float64(w)*config.ToughThiefChanceStep, config.ToughThiefMaxChance)
}

// StartNextWave advances the wave counter and arms the spawner.
func (s *WaveSystem) StartNextWave() {
	s.Wave++
	s.ToSpawn = WaveQuota(s.Wave)
	s.SpawnInterval = WaveInterval(s.Wave)
	s.SpawnTimer = 0
	s.Active = true
}

// Boost adds extra thieves to the current wave's quota.
func (s *WaveSystem) Boost(extra int) {
	s.ToSpawn += extra
}

// Update advances the spawn timer. It returns the thief spawned this frame,
// or nil. Once the quota is used up the wave ends when every tracked thief
// is dead.
func (s *WaveSystem) Update(deltaTime float64, thieves []*entity.Thief) *entity.Thief {
	if !s.Active {
		return nil
	}
	if s.ToSpawn <= 0 {
		for _, t := range thieves {
			if t.Alive {
				return nil
			}
		}
		s.Active = false
		return nil
	}
	s.SpawnTimer += deltaTime
	if s.SpawnTimer < s.SpawnInterval {
		return nil
	}
	s.SpawnTimer = 0
	s.ToSpawn--
	return s.spawnThief()
}

func (s *WaveSystem) spawnThief() *entity.Thief {
	side := entity.Left
	if s.rng.Intn(2) == 1 {
		side = entity.Right
	}
	speed := config.ThiefBaseSpeed +
		math.Min(config.ThiefMaxSpeedBonus, float64(s.Wave)*config.ThiefSpeedPerWave) +
		s.rng.Uniform(config.ThiefSpeedNoiseLow, config.ThiefSpeedNoiseHigh)
	hp := 1
	if s.rng.Chance(ToughChance(s.Wave)) {
		hp = 2
	}
	t := entity.NewThief(side, speed, hp)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ThiefSpawned,
		Data: event.ThiefInfo{Side: side.String(), HP: hp, X: t.X},
	})
	return t
}
