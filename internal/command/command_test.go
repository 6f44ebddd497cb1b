package command

import (
	"testing"

	"tasktrack/internal/task"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Command
	}{
		{
			name: "add",
			args: []string{"tasktrack", "add", "New Task"},
			want: Command{Kind: KindAdd, Description: "New Task"},
		},
		{
			name: "update",
			args: []string{"tasktrack", "update", "1", "Updated Task"},
			want: Command{Kind: KindUpdate, ID: 1, Description: "Updated Task"},
		},
		{
			name: "delete",
			args: []string{"tasktrack", "delete", "1"},
			want: Command{Kind: KindDelete, ID: 1},
		},
		{
			name: "mark-todo",
			args: []string{"tasktrack", "mark-todo", "2"},
			want: Command{Kind: KindMark, ID: 2, Status: task.StatusTodo},
		},
		{
			name: "mark-done",
			args: []string{"tasktrack", "mark-done", "1"},
			want: Command{Kind: KindMark, ID: 1, Status: task.StatusDone},
		},
		{
			name: "mark-in-progress",
			args: []string{"tasktrack", "mark-in-progress", "7"},
			want: Command{Kind: KindMark, ID: 7, Status: task.StatusInProgress},
		},
		{
			name: "list all",
			args: []string{"tasktrack", "list"},
			want: Command{Kind: KindList},
		},
		{
			name: "tui",
			args: []string{"tasktrack", "tui"},
			want: Command{Kind: KindBoard},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse(%v): unexpected error %v", tt.args, err)
			}
			if got.Kind != tt.want.Kind || got.ID != tt.want.ID ||
				got.Description != tt.want.Description || got.Status != tt.want.Status {
				t.Errorf("Parse(%v): got %+v, want %+v", tt.args, got, tt.want)
			}
			if got.Filter != nil {
				t.Errorf("Parse(%v): got filter %v, want nil", tt.args, *got.Filter)
			}
		})
	}
}

func TestParseListFilter(t *testing.T) {
	tests := []struct {
		word string
		want task.Status
	}{
		{"todo", task.StatusTodo},
		{"in-progress", task.StatusInProgress},
		{"done", task.StatusDone},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, err := Parse([]string{"tasktrack", "list", tt.word})
			if err != nil {
				t.Fatalf("Parse: unexpected error %v", err)
			}
			if got.Kind != KindList {
				t.Fatalf("Kind: got %v, want KindList", got.Kind)
			}
			if got.Filter == nil || *got.Filter != tt.want {
				t.Errorf("Filter: got %v, want %v", got.Filter, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"no tokens", []string{}, "Not enough arguments"},
		{"program name only", []string{"tasktrack"}, "Not enough arguments"},
		{"five tokens", []string{"tasktrack", "update", "1", "desc", "extra"}, "Too many arguments"},
		{"add without description", []string{"tasktrack", "add"}, "Not enough arguments"},
		{"update without id", []string{"tasktrack", "update"}, "Not enough arguments"},
		{"update without description", []string{"tasktrack", "update", "1"}, "Not enough arguments"},
		{"delete without id", []string{"tasktrack", "delete"}, "Not enough arguments"},
		{"mark without id", []string{"tasktrack", "mark-done"}, "Not enough arguments"},
		{"list with unknown filter", []string{"tasktrack", "list", "doing"}, "Invalid option"},
		{"unknown command word", []string{"tasktrack", "frobnicate"}, "Invalid argument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args)
			if err == nil {
				t.Fatalf("Parse(%v): expected error", tt.args)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Parse(%v): got error %q, want %q", tt.args, err, tt.wantMsg)
			}
		})
	}
}

func TestParseBadID(t *testing.T) {
	for _, tok := range []string{"abc", "-1", "1.5", ""} {
		t.Run(tok, func(t *testing.T) {
			if _, err := Parse([]string{"tasktrack", "delete", tok}); err == nil {
				t.Errorf("Parse with id %q: expected error", tok)
			}
		})
	}
}
