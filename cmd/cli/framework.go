// Package cli provides a small command-line interface framework built
// around a pluggable Command/CommandRegistry pair, the same shape the
// teacher framework's CLI layer uses, trimmed down to the one command
// this module actually ships: dumping a demonstration graph's node
// metadata.
package cli

import (
	"context"
	"fmt"
)

// Command represents a generic CLI command with pluggable functionality.
type Command interface {
	// Name returns the command name.
	Name() string

	// Description returns the command description.
	Description() string

	// Run executes the command with the given arguments.
	Run(ctx context.Context, args []string) error

	// Usage returns usage information.
	Usage() string
}

// CommandRegistry manages available CLI commands.
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry.
func (r *CommandRegistry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// Get retrieves a command by name.
func (r *CommandRegistry) Get(name string) (Command, bool) {
	cmd, exists := r.commands[name]

	return cmd, exists
}

// List returns all registered command names.
func (r *CommandRegistry) List() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}

	return names
}

// CLI provides the main command-line interface.
type CLI struct {
	registry *CommandRegistry
}

// NewCLI creates a new CLI instance.
func NewCLI() *CLI {
	return &CLI{
		registry: NewCommandRegistry(),
	}
}

// RegisterCommand adds a command to the CLI.
func (c *CLI) RegisterCommand(cmd Command) {
	c.registry.Register(cmd)
}

// Run executes a command based on arguments.
func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.printUsage()
	}

	cmdName := args[0]

	cmd, exists := c.registry.Get(cmdName)
	if !exists {
		return fmt.Errorf("unknown command: %s\n\nRun without arguments to see available commands", cmdName)
	}

	return cmd.Run(ctx, args[1:])
}

func (c *CLI) printUsage() error {
	fmt.Printf("gigagrad CLI\n\n")
	fmt.Printf("USAGE:\n")
	fmt.Printf("  graphdump <command> [options]\n\n")
	fmt.Printf("AVAILABLE COMMANDS:\n")

	for _, name := range c.registry.List() {
		cmd, _ := c.registry.Get(name)
		fmt.Printf("  %-12s %s\n", name, cmd.Description())
	}

	return nil
}
