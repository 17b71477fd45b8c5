package battle

import (
	"sort"
	"sync"
)

// Accumulator collects normalized records from many scenes. The first
// record seen for an id wins; later duplicates are dropped. It is safe for
// concurrent use.
type Accumulator struct {
	mu         sync.Mutex
	enemies    map[uint16]Enemy
	attacks    map[uint16]Attack
	formations map[int]Formation
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		enemies:    make(map[uint16]Enemy),
		attacks:    make(map[uint16]Attack),
		formations: make(map[int]Formation),
	}
}

// Merge adds a scene's batch, skipping ids already present.
func (a *Accumulator) Merge(b Batch) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, e := range b.Enemies {
		if _, ok := a.enemies[e.ID]; !ok {
			a.enemies[e.ID] = e
		}
	}
	for _, at := range b.Attacks {
		if _, ok := a.attacks[at.ID]; !ok {
			a.attacks[at.ID] = at
		}
	}
	for _, f := range b.Formations {
		if _, ok := a.formations[f.ID]; !ok {
			a.formations[f.ID] = f
		}
	}
}

// AddScene normalizes s as scene number sceneIndex and merges it.
func (a *Accumulator) AddScene(sceneIndex int, s *Scene) {
	a.Merge(s.Normalize(sceneIndex))
}

// Enemies returns the collected enemies ordered by id.
func (a *Accumulator) Enemies() []Enemy {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Enemy, 0, len(a.enemies))
	for _, e := range a.enemies {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Attacks returns the collected attacks ordered by id.
func (a *Accumulator) Attacks() []Attack {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Attack, 0, len(a.attacks))
	for _, at := range a.attacks {
		out = append(out, at)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Formations returns the collected formations ordered by id.
func (a *Accumulator) Formations() []Formation {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Formation, 0, len(a.formations))
	for _, f := range a.formations {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
