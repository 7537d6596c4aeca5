package navigation

// Stack holds the drill-down history of a single tab.
type Stack struct {
	entries []Destination
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{entries: make([]Destination, 0, 4)}
}

// Push appends a destination at the top.
func (s *Stack) Push(d Destination) {
	s.entries = append(s.entries, d)
}

// Pop removes and returns the top entry. ok is false when the stack is empty.
func (s *Stack) Pop() (Destination, bool) {
	if len(s.entries) == 0 {
		return Destination{}, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top, true
}

// Peek returns the top entry without removing it.
func (s *Stack) Peek() (Destination, bool) {
	if len(s.entries) == 0 {
		return Destination{}, false
	}
	return s.entries[len(s.entries)-1], true
}

func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes every entry.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}

// Entries returns a copy of the stack, bottom first.
func (s *Stack) Entries() []Destination {
	if len(s.entries) == 0 {
		return []Destination{}
	}
	dup := make([]Destination, len(s.entries))
	copy(dup, s.entries)
	return dup
}
