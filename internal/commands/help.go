package commands

import (
	"context"

	"taskbot/internal/store"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the /help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string     { return "help" }
func (c *HelpCmd) Synopsis() string { return "Show the command reference" }
func (c *HelpCmd) Usage() string    { return "/help" }

func (c *HelpCmd) Run(ctx context.Context, s *store.Store, req Request) Response {
	return Response{Text: helpText}
}

const helpText = "📋 Task Bot Commands\n\n" +
	"🆕 /add <task> — Add a new task\n" +
	"📄 /list — Show all current tasks\n" +
	"🔎 /goto <number> — Reply to the original /add message for that task\n" +
	"✅ /done <number> — Mark a task as completed and remove it\n" +
	"🧹 /clear — Clear all tasks in this chat\n" +
	"ℹ️ /help — Show this help message"
