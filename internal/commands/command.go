// Package commands provides the bot command interface and implementations.
package commands

import (
	"context"

	"taskbot/internal/store"
)

// Request is a decoded command event delivered by the transport.
type Request struct {
	// ChatID identifies the conversation the command was sent from.
	ChatID int64

	// Command is the command name without the leading slash.
	Command string

	// Args is the raw text after the command token, possibly empty.
	Args string

	// MessageID identifies the message that carried the command.
	MessageID int

	// Sender is the resolved display name of the sender.
	Sender string
}

// Response is what the transport sends back into the chat.
type Response struct {
	// Text is the reply body.
	Text string

	// ReplyTo, when non-zero, is the message ID the reply should be
	// threaded onto.
	ReplyTo int
}

// Command defines the interface for bot commands.
type Command interface {
	// Name returns the command name as typed by the user, without
	// the leading slash.
	Name() string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// Run executes the command against the store. It never fails:
	// every error condition is resolved into a reply text.
	Run(ctx context.Context, s *store.Store, req Request) Response
}
