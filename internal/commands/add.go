package commands

import (
	"context"
	"fmt"
	"strings"

	"taskbot/internal/store"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the /add command.
type AddCmd struct{}

func (c *AddCmd) Name() string     { return "add" }
func (c *AddCmd) Synopsis() string { return "Add a task to this chat's list" }
func (c *AddCmd) Usage() string    { return "/add <task>" }

func (c *AddCmd) Run(ctx context.Context, s *store.Store, req Request) Response {
	text := strings.TrimSpace(req.Args)
	if text == "" {
		return Response{Text: "Please enter a task after the command, e.g. /add Buy milk"}
	}

	task := store.Task{
		Text:      text,
		MessageID: req.MessageID,
		AddedBy:   req.Sender,
	}
	s.Append(req.ChatID, task)

	return Response{Text: fmt.Sprintf("✅ Task added: %s (by %s)", text, req.Sender)}
}
