package conditions

import (
	"math/rand"

	"github.com/DJLougen/IllusoryLineMotion/core"
)

// Provider hands out trial conditions in run order. The sequence is fixed
// at construction; Next walks it exactly once.
type Provider struct {
	list []core.TrialCondition
	pos  int
}

// NewProvider wraps an ordered condition list
func NewProvider(list []core.TrialCondition) *Provider {
	owned := make([]core.TrialCondition, len(list))
	copy(owned, list)
	return &Provider{list: owned}
}

// Shuffle reorders the remaining sequence with a seeded permutation.
// Deterministic for a given seed so a session order can be reproduced.
// Must be called before the first Next.
func (p *Provider) Shuffle(seed int64) {
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(p.list), func(i, j int) {
		p.list[i], p.list[j] = p.list[j], p.list[i]
	})
}

// Next returns the next condition in run order. The second return is
// false once the sequence is exhausted.
func (p *Provider) Next() (core.TrialCondition, bool) {
	if p.pos >= len(p.list) {
		return core.TrialCondition{}, false
	}
	cond := p.list[p.pos]
	p.pos++
	return cond, true
}

// TotalCount returns the length of the full sequence
func (p *Provider) TotalCount() int {
	return len(p.list)
}

// Conditions returns a copy of the full sequence in run order
func (p *Provider) Conditions() []core.TrialCondition {
	out := make([]core.TrialCondition, len(p.list))
	copy(out, p.list)
	return out
}
