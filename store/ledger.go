package store

// The nutrient progress ledger: nutrient name -> accumulated amount for the
// current day. Values never go below zero.

// Progress returns a copy of the current accumulated amounts. Missing keys
// are implicitly zero.
func (s *Store) Progress() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]float64, len(s.progress))
	for k, v := range s.progress {
		out[k] = v
	}
	return out
}

// AddProgress accumulates amounts into the ledger. A nil or empty map is a
// no-op.
func (s *Store) AddProgress(amounts map[string]float64) {
	if len(amounts) == 0 {
		return
	}
	s.mu.Lock()
	for k, v := range amounts {
		s.progress[k] += v
	}
	s.persist(keyProgress, s.progress)
	s.mu.Unlock()
	s.notify(TopicNutrients)
}

// SubtractProgress removes amounts from the ledger, clamping each key at
// zero. A nil or empty map is a no-op.
func (s *Store) SubtractProgress(amounts map[string]float64) {
	if len(amounts) == 0 {
		return
	}
	s.mu.Lock()
	for k, v := range amounts {
		next := s.progress[k] - v
		if next < 0 {
			next = 0
		}
		s.progress[k] = next
	}
	s.persist(keyProgress, s.progress)
	s.mu.Unlock()
	s.notify(TopicNutrients)
}

// ResetProgress clears the ledger entirely.
func (s *Store) ResetProgress() {
	s.mu.Lock()
	s.progress = map[string]float64{}
	s.persist(keyProgress, s.progress)
	s.mu.Unlock()
	s.notify(TopicNutrients)
}
