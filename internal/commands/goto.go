package commands

import (
	"context"
	"fmt"

	"taskbot/internal/store"
)

func init() {
	Register(&GotoCmd{})
}

// GotoCmd implements the /goto command. It replies threaded onto the
// message that created the task, and never mutates the list.
type GotoCmd struct{}

func (c *GotoCmd) Name() string     { return "goto" }
func (c *GotoCmd) Synopsis() string { return "Reply to the message that created a task" }
func (c *GotoCmd) Usage() string    { return "/goto <number>" }

func (c *GotoCmd) Run(ctx context.Context, s *store.Store, req Request) Response {
	tasks := s.Snapshot(req.ChatID)
	if len(tasks) == 0 {
		return Response{Text: "📭 No tasks yet."}
	}

	pos, err := ParsePosition(req.Args)
	if err != nil {
		return Response{Text: "Please enter a task number, e.g. /goto 1"}
	}
	if pos < 1 || pos > len(tasks) {
		return Response{Text: "❌ Invalid number. Use /list to check the task index."}
	}

	task := tasks[pos-1]
	return Response{
		Text:    fmt.Sprintf("📎 Original task (by %s) 👇", task.AddedBy),
		ReplyTo: task.MessageID,
	}
}
