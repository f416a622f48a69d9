package commands

import (
	"context"

	"taskbot/internal/store"
)

func init() {
	Register(&StartCmd{})
}

// StartCmd implements the /start command.
type StartCmd struct{}

func (c *StartCmd) Name() string     { return "start" }
func (c *StartCmd) Synopsis() string { return "Show the welcome message" }
func (c *StartCmd) Usage() string    { return "/start" }

func (c *StartCmd) Run(ctx context.Context, s *store.Store, req Request) Response {
	return Response{Text: startText}
}

const startText = "👋 Welcome to the Task Bot!\n" +
	"Each group or chat has its own independent task list.\n\n" +
	"Use /add <task> to add a task.\n" +
	"Use /list to view tasks.\n" +
	"Use /goto <number> to jump (reply) to the original task message.\n" +
	"Use /done <number> to mark a task as completed and remove it.\n" +
	"Use /clear to clear all tasks in this chat.\n" +
	"Use /help to view all commands."
