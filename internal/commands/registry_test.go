package commands_test

import (
	"testing"

	"taskbot/internal/commands"
)

func TestRegistry_DuplicateRegistration(t *testing.T) {
	r := commands.NewRegistry()

	if err := r.Register(&commands.AddCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(&commands.AddCmd{}); err == nil {
		t.Error("expected error registering duplicate command name")
	}
}

func TestRegistry_FindUnknown(t *testing.T) {
	r := commands.NewRegistry()

	if _, ok := r.Find("nope"); ok {
		t.Error("expected unknown command to not be found")
	}
}

func TestDefaultRegistry_HasAllBotCommands(t *testing.T) {
	for _, name := range []string{"start", "help", "add", "list", "goto", "done", "clear"} {
		cmd, ok := commands.DefaultRegistry.Find(name)
		if !ok {
			t.Errorf("command %q not registered", name)
			continue
		}
		if cmd.Name() != name {
			t.Errorf("command registered under %q reports name %q", name, cmd.Name())
		}
		if cmd.Usage() == "" || cmd.Synopsis() == "" {
			t.Errorf("command %q is missing usage or synopsis", name)
		}
	}
}

func TestRegistry_AllSorted(t *testing.T) {
	all := commands.DefaultRegistry.All()
	if len(all) != 7 {
		t.Fatalf("expected 7 commands, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name() >= all[i].Name() {
			t.Errorf("All() not sorted: %q before %q", all[i-1].Name(), all[i].Name())
		}
	}
}
