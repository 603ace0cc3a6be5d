package command

import (
	"context"
	"fmt"
	"io"

	"github.com/quickapp/quickapp/internal/config"
	"github.com/quickapp/quickapp/internal/logging"
	"github.com/quickapp/quickapp/internal/orchestrator"
	"github.com/quickapp/quickapp/internal/toolchain"
)

// RunCommand builds (if needed), installs, and launches a script's package
// on the single connected device.
type RunCommand struct {
	*BaseCommand
	cfg *config.Config
	log *logging.Logger
}

// NewRunCommand creates the run command.
func NewRunCommand(cfg *config.Config, log *logging.Logger) *RunCommand {
	return &RunCommand{
		BaseCommand: NewBaseCommand(
			"run",
			"Build, install, and launch a QuickApp script on a connected device",
			"run <script>",
		),
		cfg: cfg,
		log: log,
	}
}

// Execute runs the deploy flow for the given script.
func (c *RunCommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) != 1 {
		fmt.Fprintf(stderr, "usage: quickapp %s\n", c.Usage())
		return fmt.Errorf("run requires exactly one script path")
	}

	deployer := orchestrator.NewDeployer(c.cfg, toolchain.ExecRunner{}, c.log, stdout, stderr)
	if err := deployer.Run(context.Background(), args[0]); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return err
	}
	return nil
}
