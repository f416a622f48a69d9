package commands

import (
	"context"
	"errors"
	"fmt"

	"taskbot/internal/store"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the /done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string     { return "done" }
func (c *DoneCmd) Synopsis() string { return "Complete and remove a task" }
func (c *DoneCmd) Usage() string    { return "/done <number>" }

func (c *DoneCmd) Run(ctx context.Context, s *store.Store, req Request) Response {
	if s.Len(req.ChatID) == 0 {
		return Response{Text: "There are no tasks to complete. Add one with /add."}
	}

	pos, err := ParsePosition(req.Args)
	if err != nil {
		return Response{Text: "Please provide a valid number, e.g. /done 1"}
	}

	// RemoveAt re-validates the position under the chat lock, so a
	// concurrent removal between the length check and here surfaces
	// as ErrOutOfRange rather than removing the wrong task.
	task, err := s.RemoveAt(req.ChatID, pos)
	if errors.Is(err, store.ErrOutOfRange) {
		return Response{Text: "That task number doesn’t exist. Use /list to check."}
	}

	return Response{Text: fmt.Sprintf("✅ Completed and removed: %s (added by %s)", task.Text, task.AddedBy)}
}
