package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/quickapp/quickapp/internal/command"
	"github.com/quickapp/quickapp/internal/config"
	"github.com/quickapp/quickapp/internal/logging"
)

const version = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.LoadOrDefault()

	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		log = logging.NewDefault()
	}
	defer func() { _ = log.Sync() }()

	registry := command.NewRegistry()
	helpCmd := command.NewHelpCommand(registry)
	registry.Register(helpCmd)
	registry.Register(command.NewVersionCommand(version))
	registry.Register(command.NewBuildCommand(cfg, log))
	registry.Register(command.NewRunCommand(cfg, log))

	if len(os.Args) < 2 {
		_ = helpCmd.Execute(nil, os.Stdout, os.Stderr)
		return 0
	}

	cmdName := os.Args[1]
	if cmdName == "-h" || cmdName == "--help" {
		_ = helpCmd.Execute(nil, os.Stdout, os.Stderr)
		return 0
	}

	cmd, err := registry.Get(cmdName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmdName)
		fmt.Fprintln(os.Stderr, "Use 'quickapp help' to see available commands.")
		return 1
	}

	fs := flag.NewFlagSet(cmd.Name(), flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: quickapp %s\n", cmd.Usage())
		fmt.Fprintf(os.Stderr, "\n%s\n", cmd.Description())
	}
	cmd.SetupFlags(fs)
	if err := fs.Parse(os.Args[2:]); err != nil {
		return 1
	}

	if err := cmd.Execute(fs.Args(), os.Stdout, os.Stderr); err != nil {
		return 1
	}
	return 0
}
