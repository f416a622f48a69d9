// Package router dispatches decoded command events to their handlers.
package router

import (
	"context"

	"taskbot/internal/commands"
	"taskbot/internal/store"
)

// Router routes command events to registered commands. It is the
// core's entire inbound surface: it never fails and never panics, it
// only produces replies.
type Router struct {
	registry *commands.Registry
	store    *store.Store
}

// New creates a router over the given registry and store.
func New(registry *commands.Registry, s *store.Store) *Router {
	return &Router{
		registry: registry,
		store:    s,
	}
}

// Handle looks up the command named in req and runs it. The second
// return is false for unrecognized command names, which the transport
// silently drops.
func (r *Router) Handle(ctx context.Context, req commands.Request) (commands.Response, bool) {
	cmd, ok := r.registry.Find(req.Command)
	if !ok {
		return commands.Response{}, false
	}
	return cmd.Run(ctx, r.store, req), true
}
