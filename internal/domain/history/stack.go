// Package history provides the bounded stack used for the engine's undo and
// redo histories.
package history

import (
	"sync"

	"github.com/jsamuelsen11/command-engine/internal/domain/command"
)

// DefaultCapacity is the number of entries kept per stack when no capacity
// is configured.
const DefaultCapacity = 50

// Stack is a capacity-limited LIFO of commands. Pushing onto a full stack
// evicts the oldest entry. It is safe for concurrent use; reads take a
// shared lock so history listings never wait on a writer for long.
//
// Entries live in a ring buffer: push, pop and eviction are O(1) and evicted
// slots are cleared so the command can be collected.
type Stack struct {
	mu    sync.RWMutex
	buf   []command.Command
	head  int // index of the oldest entry
	count int
}

// NewStack creates an empty stack holding at most capacity entries.
// A capacity <= 0 falls back to DefaultCapacity.
func NewStack(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack{buf: make([]command.Command, capacity)}
}

// Push places cmd on top. If the stack was full, the oldest entry is
// removed first and returned with evicted=true.
func (s *Stack) Push(cmd command.Command) (oldest command.Command, evicted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.count == len(s.buf) {
		oldest = s.buf[s.head]
		s.buf[s.head] = nil
		s.head = (s.head + 1) % len(s.buf)
		s.count--
		evicted = true
	}

	s.buf[s.slot(s.count)] = cmd
	s.count++
	return oldest, evicted
}

// Pop removes and returns the most recently pushed entry. ok is false when
// the stack is empty.
func (s *Stack) Pop() (cmd command.Command, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.count == 0 {
		return nil, false
	}
	i := s.slot(s.count - 1)
	cmd = s.buf[i]
	s.buf[i] = nil
	s.count--
	return cmd, true
}

// Peek returns the top entry without removing it.
func (s *Stack) Peek() (cmd command.Command, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.count == 0 {
		return nil, false
	}
	return s.buf[s.slot(s.count-1)], true
}

// Clear removes every entry.
func (s *Stack) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.buf)
	s.head = 0
	s.count = 0
}

// Size returns the number of entries.
func (s *Stack) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}

// Capacity returns the maximum number of entries.
func (s *Stack) Capacity() int {
	return len(s.buf)
}

// Descriptors lists the entries most recent first.
func (s *Stack) Descriptors() []command.Descriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]command.Descriptor, 0, s.count)
	for i := s.count - 1; i >= 0; i-- {
		out = append(out, command.Describe(s.buf[s.slot(i)]))
	}
	return out
}

// slot maps a logical position (0 = oldest) to a buffer index.
func (s *Stack) slot(pos int) int {
	return (s.head + pos) % len(s.buf)
}
