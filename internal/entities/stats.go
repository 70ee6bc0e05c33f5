// Package entities defines the combat domain types: players, monster
// instances, combat sessions, and the pieces they are built from.
package entities

// Pool is a bounded resource pool (health or mana). Current never leaves
// the [0, Max] range.
type Pool struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// NewPool returns a full pool with the given maximum.
func NewPool(max int) Pool {
	return Pool{Current: max, Max: max}
}

// Reduce removes up to amount from the pool, clamping at zero, and returns
// the amount actually removed.
func (p *Pool) Reduce(amount int) int {
	if amount < 0 {
		amount = 0
	}
	removed := amount
	if removed > p.Current {
		removed = p.Current
	}
	p.Current -= removed
	return removed
}

// Restore adds up to amount to the pool, clamping at Max, and returns the
// amount actually restored.
func (p *Pool) Restore(amount int) int {
	if amount < 0 {
		amount = 0
	}
	restored := amount
	if p.Current+restored > p.Max {
		restored = p.Max - p.Current
	}
	p.Current += restored
	return restored
}

// Fill restores the pool to its maximum.
func (p *Pool) Fill() {
	p.Current = p.Max
}

// IsEmpty reports whether the pool is depleted.
func (p *Pool) IsEmpty() bool {
	return p.Current <= 0
}
