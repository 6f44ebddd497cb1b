// Package task defines the task record model and its wire format.
package task

import (
	"fmt"
	"strconv"
	"time"
)

// timeLayout is the on-disk timestamp format: local wall-clock time at
// second precision, no offset.
const timeLayout = "2006-01-02 15:04:05"

// Status represents a task status. The constant values are the exact JSON
// tokens written to the store file.
type Status string

const (
	StatusTodo       Status = "Todo"
	StatusInProgress Status = "InProgress"
	StatusDone       Status = "Done"
)

// String returns the lowercase display word for a status.
func (s Status) String() string {
	switch s {
	case StatusTodo:
		return "todo"
	case StatusInProgress:
		return "in progress"
	case StatusDone:
		return "done"
	}
	return string(s)
}

// Valid reports whether s is one of the known status tokens.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// ParseFilter maps a list-filter word to a status. Filter words use a
// hyphen ("in-progress") where the display word uses a space.
func ParseFilter(word string) (Status, bool) {
	switch word {
	case "todo":
		return StatusTodo, true
	case "in-progress":
		return StatusInProgress, true
	case "done":
		return StatusDone, true
	}
	return "", false
}

// Timestamp wraps time.Time with the store's timestamp encoding.
type Timestamp struct {
	time.Time
}

// Now returns the current local time as a Timestamp.
func Now() Timestamp {
	return Timestamp{time.Now()}
}

// MarshalJSON encodes the timestamp as a quoted "YYYY-MM-DD HH:MM:SS"
// string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.Format(timeLayout))), nil
}

// UnmarshalJSON decodes a quoted "YYYY-MM-DD HH:MM:SS" string in local time.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := time.ParseInLocation(timeLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("parse timestamp: %w", err)
	}
	t.Time = parsed
	return nil
}

// Task represents a single tracked work item.
type Task struct {
	ID          uint32     `json:"id"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	CreatedAt   Timestamp  `json:"created_at"`
	UpdatedAt   *Timestamp `json:"updated_at"`
}

// New constructs a task with the given id and description. New tasks start
// as todo with a creation timestamp and no update timestamp.
func New(id uint32, description string) Task {
	return Task{
		ID:          id,
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   Now(),
	}
}

// UpdateStatus sets the status and stamps the update time.
func (t *Task) UpdateStatus(status Status) {
	now := Now()
	t.Status = status
	t.UpdatedAt = &now
}

// UpdateDescription sets the description and stamps the update time.
func (t *Task) UpdateDescription(description string) {
	now := Now()
	t.Description = description
	t.UpdatedAt = &now
}

// NextID returns the id for a new task: the last element's id + 1, or 0 for
// an empty collection. This is positional, not a true max: deleting the
// last task frees its id for reuse. Known limitation.
func NextID(tasks []Task) uint32 {
	if len(tasks) == 0 {
		return 0
	}
	return tasks[len(tasks)-1].ID + 1
}

// String renders the fixed multi-line block used by the list command.
func (t Task) String() string {
	updated := "-"
	if t.UpdatedAt != nil {
		updated = t.UpdatedAt.Format(timeLayout)
	}
	return fmt.Sprintf("------------\nid: %d [%s]\nTask: %s\nCreated at: %s\nLast Update: %s",
		t.ID, t.Status, t.Description, t.CreatedAt.Format(timeLayout), updated)
}
