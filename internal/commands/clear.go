package commands

import (
	"context"

	"taskbot/internal/store"
)

func init() {
	Register(&ClearCmd{})
}

// ClearCmd implements the /clear command.
type ClearCmd struct{}

func (c *ClearCmd) Name() string     { return "clear" }
func (c *ClearCmd) Synopsis() string { return "Remove every task in this chat" }
func (c *ClearCmd) Usage() string    { return "/clear" }

func (c *ClearCmd) Run(ctx context.Context, s *store.Store, req Request) Response {
	s.Clear(req.ChatID)
	return Response{Text: "🧹 All tasks in this chat have been cleared."}
}
