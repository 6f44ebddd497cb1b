// Package command parses positional CLI arguments into typed commands.
package command

import (
	"errors"
	"fmt"
	"strconv"

	"tasktrack/internal/task"
)

// Kind identifies which command the user requested.
type Kind int

const (
	KindAdd Kind = iota
	KindUpdate
	KindDelete
	KindMark
	KindList
	KindBoard
)

// Command is one parsed user intent ready for execution. Which fields are
// meaningful depends on Kind: Add uses Description, Update uses ID and
// Description, Delete uses ID, Mark uses ID and Status, List uses Filter.
type Command struct {
	Kind        Kind
	Description string
	ID          uint32
	Status      task.Status
	Filter      *task.Status
}

// Contract error strings. These are user-facing messages, hence the
// capitalization.
var (
	errNotEnough  = errors.New("Not enough arguments")
	errTooMany    = errors.New("Too many arguments")
	errInvalidArg = errors.New("Invalid argument")
	errInvalidOpt = errors.New("Invalid option")
)

// Parse maps the raw process argument list (argument 0 is the program name)
// to a Command. At most one command word plus two operands is accepted.
func Parse(args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, errNotEnough
	}
	if len(args) > 4 {
		return Command{}, errTooMany
	}

	switch word := args[1]; word {
	case "add":
		if len(args) < 3 {
			return Command{}, errNotEnough
		}
		return Command{Kind: KindAdd, Description: args[2]}, nil

	case "update", "delete", "mark-todo", "mark-done", "mark-in-progress":
		if len(args) < 3 {
			return Command{}, errNotEnough
		}
		id, err := parseID(args[2])
		if err != nil {
			return Command{}, err
		}
		switch word {
		case "update":
			if len(args) < 4 {
				return Command{}, errNotEnough
			}
			return Command{Kind: KindUpdate, ID: id, Description: args[3]}, nil
		case "delete":
			return Command{Kind: KindDelete, ID: id}, nil
		case "mark-todo":
			return Command{Kind: KindMark, ID: id, Status: task.StatusTodo}, nil
		case "mark-done":
			return Command{Kind: KindMark, ID: id, Status: task.StatusDone}, nil
		default:
			return Command{Kind: KindMark, ID: id, Status: task.StatusInProgress}, nil
		}

	case "list":
		if len(args) == 2 {
			return Command{Kind: KindList}, nil
		}
		status, ok := task.ParseFilter(args[2])
		if !ok {
			return Command{}, errInvalidOpt
		}
		return Command{Kind: KindList, Filter: &status}, nil

	case "tui":
		return Command{Kind: KindBoard}, nil

	default:
		return Command{}, errInvalidArg
	}
}

// parseID parses a non-negative integer task id.
func parseID(tok string) (uint32, error) {
	id, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q: %w", tok, err)
	}
	return uint32(id), nil
}
