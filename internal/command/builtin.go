package command

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// HelpCommand displays help information for commands.
type HelpCommand struct {
	*BaseCommand
	registry *Registry
}

// NewHelpCommand creates a new help command.
func NewHelpCommand(registry *Registry) *HelpCommand {
	return &HelpCommand{
		BaseCommand: NewBaseCommand(
			"help",
			"Display help information for commands",
			"help [command]",
		),
		registry: registry,
	}
}

// Execute displays help information.
func (c *HelpCommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintln(stdout, "quickapp - compile declarative scripts into runnable mobile apps")
		fmt.Fprintln(stdout, "")
		fmt.Fprintln(stdout, "Usage: quickapp <command> [args...]")
		fmt.Fprintln(stdout, "")
		fmt.Fprintln(stdout, "Available commands:")

		w := tabwriter.NewWriter(stdout, 0, 8, 2, ' ', 0)
		for _, name := range c.registry.List() {
			if cmd, err := c.registry.Get(name); err == nil {
				fmt.Fprintf(w, "  %s\t%s\n", name, cmd.Description())
			}
		}
		w.Flush()

		fmt.Fprintln(stdout, "")
		fmt.Fprintln(stdout, "Use 'quickapp help <command>' for more information about a specific command.")
		return nil
	}

	cmd, err := c.registry.Get(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n", args[0])
		return err
	}

	fmt.Fprintf(stdout, "Command: %s\n", cmd.Name())
	fmt.Fprintf(stdout, "Description: %s\n", cmd.Description())
	fmt.Fprintf(stdout, "Usage: quickapp %s\n", cmd.Usage())
	return nil
}

// VersionCommand displays version information.
type VersionCommand struct {
	*BaseCommand
	version string
}

// NewVersionCommand creates a new version command.
func NewVersionCommand(version string) *VersionCommand {
	return &VersionCommand{
		BaseCommand: NewBaseCommand(
			"version",
			"Display version information",
			"version",
		),
		version: version,
	}
}

// Execute displays version information.
func (c *VersionCommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", args)
		return fmt.Errorf("unexpected arguments")
	}
	fmt.Fprintf(stdout, "quickapp version %s\n", c.version)
	return nil
}
