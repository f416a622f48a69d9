package commands

import (
	"context"

	"taskbot/internal/store"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the /list command.
type ListCmd struct{}

func (c *ListCmd) Name() string     { return "list" }
func (c *ListCmd) Synopsis() string { return "Show all current tasks" }
func (c *ListCmd) Usage() string    { return "/list" }

func (c *ListCmd) Run(ctx context.Context, s *store.Store, req Request) Response {
	tasks := s.Snapshot(req.ChatID)
	if len(tasks) == 0 {
		return Response{Text: "📭 No tasks yet."}
	}
	return Response{Text: renderList(tasks)}
}
