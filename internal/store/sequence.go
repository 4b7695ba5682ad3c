package store

// Sequence hands out monotonically increasing ids starting at 1.
// It is not safe for concurrent use; callers hold their own lock.
type Sequence struct {
	next uint32
}

// NewSequence returns a Sequence whose first id is 1.
func NewSequence() *Sequence {
	return &Sequence{next: 1}
}

// Peek returns the next id without consuming it.
func (s *Sequence) Peek() uint32 {
	return s.next
}

// Advance consumes the next id and returns it.
func (s *Sequence) Advance() uint32 {
	id := s.next
	s.next++
	return id
}
