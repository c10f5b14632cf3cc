package entities

import "sync"

// EnemySet is the ordered roster of a fight room. IDs are assigned in
// insertion order and never reused, so the lowest ID is always the
// earliest enemy still alive.
type EnemySet struct {
	mu      sync.RWMutex
	enemies []*Enemy
	nextID  int
}

// NewEnemySet creates a set holding enemies in order
func NewEnemySet(enemies ...*Enemy) *EnemySet {
	s := &EnemySet{}
	for _, e := range enemies {
		s.Add(e)
	}
	return s
}

// Add appends e and assigns its ID
func (s *EnemySet) Add(e *Enemy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	e.id = s.nextID
	s.enemies = append(s.enemies, e)
}

// Remove drops the enemy with the given ID
func (s *EnemySet) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.enemies {
		if e.id == id {
			s.enemies = append(s.enemies[:i], s.enemies[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the enemy with the given ID
func (s *EnemySet) Get(id int) (*Enemy, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.enemies {
		if e.id == id {
			return e, true
		}
	}
	return nil, false
}

// All returns a snapshot of the roster in ID order
func (s *EnemySet) All() []*Enemy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Enemy, len(s.enemies))
	copy(out, s.enemies)
	return out
}

// Len returns the number of enemies left
func (s *EnemySet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.enemies)
}

// Empty reports whether every enemy has been removed
func (s *EnemySet) Empty() bool {
	return s.Len() == 0
}
