package entity

import "policy-hero/internal/config"

// House is the shared health pool the thieves attack.
type House struct {
	HP    int
	MaxHP int
}

func NewHouse() *House {
	return &House{HP: config.HouseMaxHealth, MaxHP: config.HouseMaxHealth}
}

// TakeDamage lowers HP, never below zero, and returns the amount removed.
func (h *House) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > h.HP {
		amount = h.HP
	}
	h.HP -= amount
	return amount
}

// HealFull restores HP to the maximum.
func (h *House) HealFull() {
	h.HP = h.MaxHP
}

// Destroyed reports whether HP has reached zero.
func (h *House) Destroyed() bool {
	return h.HP <= 0
}

// Coverage is the insurance meter: the share of health lost, in percent.
func (h *House) Coverage() float64 {
	if h.MaxHP <= 0 {
		return 0
	}
	return 100 - 100*float64(h.HP)/float64(h.MaxHP)
}

// HealthFraction is HP/MaxHP in [0, 1].
func (h *House) HealthFraction() float64 {
	if h.MaxHP <= 0 {
		return 0
	}
	return float64(h.HP) / float64(h.MaxHP)
}
