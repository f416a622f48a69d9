// Package store holds the per-chat task lists.
//
// Every chat gets its own independent ordered list, created lazily on
// first access. Operations on different chats run concurrently;
// operations on the same chat are serialized by a per-chat lock, so
// position semantics stay well-defined under concurrent commands.
package store

import (
	"errors"
	"sync"
)

// ErrOutOfRange is returned by RemoveAt when the position is outside
// [1, len], including any position on an empty or unknown chat.
var ErrOutOfRange = errors.New("position out of range")

// Task is a single to-do item.
type Task struct {
	// Text is the task description, trimmed of surrounding whitespace.
	Text string

	// MessageID identifies the message that created the task, so the
	// bot can reply-thread back to it.
	MessageID int

	// AddedBy is the sender's display name at creation time.
	AddedBy string
}

// chatList is one chat's ordered task list plus its lock.
type chatList struct {
	mu    sync.Mutex
	tasks []Task
}

// Store maps chat IDs to task lists. The zero value is not usable;
// call New.
type Store struct {
	mu    sync.RWMutex
	chats map[int64]*chatList
}

// New creates an empty store.
func New() *Store {
	return &Store{chats: make(map[int64]*chatList)}
}

// chat returns the list for chatID, creating it if absent. Creation is
// double-checked so a concurrent first access from the same chat
// resolves to a single entry.
func (s *Store) chat(chatID int64) *chatList {
	s.mu.RLock()
	cl, ok := s.chats[chatID]
	s.mu.RUnlock()
	if ok {
		return cl
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cl, ok := s.chats[chatID]; ok {
		return cl
	}
	cl = &chatList{}
	s.chats[chatID] = cl
	return cl
}

// Snapshot returns a copy of the chat's tasks in insertion order.
// Unknown chats yield an empty slice.
func (s *Store) Snapshot(chatID int64) []Task {
	cl := s.chat(chatID)
	cl.mu.Lock()
	defer cl.mu.Unlock()

	out := make([]Task, len(cl.tasks))
	copy(out, cl.tasks)
	return out
}

// Append adds task to the end of the chat's list and returns its
// 1-based position, which equals the list length after insertion.
func (s *Store) Append(chatID int64, task Task) int {
	cl := s.chat(chatID)
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.tasks = append(cl.tasks, task)
	return len(cl.tasks)
}

// RemoveAt removes and returns the task at 1-based pos. Tasks after it
// shift down by one. The list is left untouched on error.
func (s *Store) RemoveAt(chatID int64, pos int) (Task, error) {
	cl := s.chat(chatID)
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if pos < 1 || pos > len(cl.tasks) {
		return Task{}, ErrOutOfRange
	}
	i := pos - 1
	removed := cl.tasks[i]
	cl.tasks = append(cl.tasks[:i], cl.tasks[i+1:]...)
	return removed, nil
}

// Clear resets the chat's list to empty. It never fails, even for a
// chat that was never seen or is already empty.
func (s *Store) Clear(chatID int64) {
	cl := s.chat(chatID)
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.tasks = nil
}

// Len returns the current number of tasks in the chat's list.
func (s *Store) Len(chatID int64) int {
	cl := s.chat(chatID)
	cl.mu.Lock()
	defer cl.mu.Unlock()

	return len(cl.tasks)
}
