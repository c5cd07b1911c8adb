package traverse

// Frontier is the pending-cell collection a search draws from.
type Frontier interface {
	// Empty reports whether no cells are pending.
	Empty() bool
	// Push adds a cell.
	Push(id int)
	// Pop removes and returns the next cell. It must not be called when Empty.
	Pop() int
}

// NewFrontier returns a queue for FIFO or a stack for LIFO.
func NewFrontier(d Discipline) (Frontier, error) {
	switch d {
	case FIFO:
		return &queue{}, nil
	case LIFO:
		return &stack{}, nil
	}
	return nil, ErrUnknownDiscipline
}

// queue is a slice with a moving head, rewound to the start once drained.
type queue struct {
	items []int
	head  int
}

func (q *queue) Empty() bool { return q.head == len(q.items) }

func (q *queue) Push(id int) { q.items = append(q.items, id) }

func (q *queue) Pop() int {
	id := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
	}
	return id
}

type stack struct {
	items []int
}

func (s *stack) Empty() bool { return len(s.items) == 0 }

func (s *stack) Push(id int) { s.items = append(s.items, id) }

func (s *stack) Pop() int {
	last := len(s.items) - 1
	id := s.items[last]
	s.items = s.items[:last]
	return id
}
