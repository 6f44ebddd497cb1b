// Package cmd implements the CLI command structure for tasktrack.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"tasktrack/internal/command"
	"tasktrack/internal/config"
	"tasktrack/internal/logging"
	"tasktrack/internal/store"
	"tasktrack/internal/task"
	"tasktrack/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes one tasktrack invocation over the raw process argument list
// (argument 0 is the program name). Human output goes to stdout; any
// returned error aborts the run.
func Run(ctx context.Context, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return run(ctx, cfg, args, os.Stdout)
}

// run is the executor: ensure the store exists, load the collection, parse
// the arguments, apply one command, persist on successful mutation.
func run(ctx context.Context, cfg *config.Config, args []string, out io.Writer) error {
	logger := logging.New(cfg)

	st := store.Open(cfg.StoreFile)
	if err := st.Ensure(); err != nil {
		return err
	}
	tasks, err := st.Load()
	if err != nil {
		return err
	}
	logger.Debug("store loaded", "path", st.Path, "tasks", len(tasks))

	result := store.Validate(tasks, store.ValidationOptions{SchemaPath: cfg.SchemaFile})
	for _, w := range result.Warnings {
		logger.Warn(w)
	}
	if !result.Valid {
		if cfg.StrictValidate {
			return fmt.Errorf("invalid store file %s: %v", st.Path, result.Errors[0])
		}
		for _, e := range result.Errors {
			logger.Warn("store validation", "err", e)
		}
	}

	cmd, err := command.Parse(args)
	if err != nil {
		return err
	}

	switch cmd.Kind {
	case command.KindAdd:
		t := task.New(task.NextID(tasks), cmd.Description)
		tasks = append(tasks, t)
		if err := st.Save(tasks); err != nil {
			return err
		}
		logger.Debug("task added", "id", t.ID)
		fmt.Fprintln(out, "Successfully added task.")

	case command.KindUpdate:
		idx := findTask(tasks, cmd.ID)
		if idx < 0 {
			fmt.Fprintln(out, "Error: ID not found.")
			return nil
		}
		tasks[idx].UpdateDescription(cmd.Description)
		if err := st.Save(tasks); err != nil {
			return err
		}
		logger.Debug("task updated", "id", cmd.ID)
		fmt.Fprintf(out, "Successfully updated task %d.\n", cmd.ID)

	case command.KindMark:
		idx := findTask(tasks, cmd.ID)
		if idx < 0 {
			fmt.Fprintln(out, "Error: ID not found.")
			return nil
		}
		tasks[idx].UpdateStatus(cmd.Status)
		if err := st.Save(tasks); err != nil {
			return err
		}
		logger.Debug("task marked", "id", cmd.ID, "status", cmd.Status)
		fmt.Fprintf(out, "Successfully updated task %d.\n", cmd.ID)

	case command.KindDelete:
		idx := findTask(tasks, cmd.ID)
		if idx < 0 {
			// Deleting an unknown id is a silent no-op, unlike update and
			// mark. Kept for compatibility with existing store scripts.
			logger.Debug("delete ignored, id not found", "id", cmd.ID)
			return nil
		}
		tasks = append(tasks[:idx], tasks[idx+1:]...)
		if err := st.Save(tasks); err != nil {
			return err
		}
		logger.Debug("task deleted", "id", cmd.ID)
		fmt.Fprintf(out, "Successfully deleted task %d.\n", cmd.ID)

	case command.KindList:
		listTasks(out, tasks, cmd.Filter)

	case command.KindBoard:
		return ui.RunBoard(ctx, st)
	}

	return nil
}

// findTask returns the index of the task with the given id, or -1.
func findTask(tasks []task.Task, id uint32) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// listTasks prints tasks in collection order, optionally filtered by
// status. A filter that matches nothing prints a notice instead of nothing.
func listTasks(out io.Writer, tasks []task.Task, filter *task.Status) {
	if filter == nil {
		for _, t := range tasks {
			fmt.Fprintln(out, t)
		}
		return
	}

	matched := false
	for _, t := range tasks {
		if t.Status == *filter {
			fmt.Fprintln(out, t)
			matched = true
		}
	}
	if !matched {
		fmt.Fprintf(out, "No tasks with the status %s\n", *filter)
	}
}
