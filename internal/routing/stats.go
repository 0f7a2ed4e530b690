package routing

import "sync"

// Stats aggregates routing decisions. An instance is injected into the
// Router; there is no package-level state. Safe for concurrent use.
type Stats struct {
	mu        sync.Mutex
	byAgent   map[Agent]int
	fallbacks int
	total     int
}

// NewStats returns an empty aggregator.
func NewStats() *Stats {
	return &Stats{byAgent: map[Agent]int{}}
}

func (s *Stats) record(d Decision) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total++
	s.byAgent[d.Agent]++
	if d.FallbackUsed {
		s.fallbacks++
	}
}

// Snapshot is a point-in-time copy of the aggregate counts.
type Snapshot struct {
	Total        int           `json:"total"`
	ByAgent      map[Agent]int `json:"by_agent"`
	Fallbacks    int           `json:"fallbacks"`
	FallbackRate float64       `json:"fallback_rate"`
}

// Snapshot returns the current counts. The returned map is a copy.
func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	byAgent := make(map[Agent]int, len(s.byAgent))
	for k, v := range s.byAgent {
		byAgent[k] = v
	}
	snap := Snapshot{Total: s.total, ByAgent: byAgent, Fallbacks: s.fallbacks}
	if s.total > 0 {
		snap.FallbackRate = float64(s.fallbacks) / float64(s.total)
	}
	return snap
}

// Reset clears all counts.
func (s *Stats) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byAgent = map[Agent]int{}
	s.fallbacks = 0
	s.total = 0
}
