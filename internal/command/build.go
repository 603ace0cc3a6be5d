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

// BuildCommand compiles a script into an installable package.
type BuildCommand struct {
	*BaseCommand
	cfg *config.Config
	log *logging.Logger
}

// NewBuildCommand creates the build command.
func NewBuildCommand(cfg *config.Config, log *logging.Logger) *BuildCommand {
	return &BuildCommand{
		BaseCommand: NewBaseCommand(
			"build",
			"Compile a QuickApp script into an installable package",
			"build <script>",
		),
		cfg: cfg,
		log: log,
	}
}

// Execute runs the build pipeline for the given script.
func (c *BuildCommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) != 1 {
		fmt.Fprintf(stderr, "usage: quickapp %s\n", c.Usage())
		return fmt.Errorf("build requires exactly one script path")
	}

	builder := orchestrator.NewBuilder(c.cfg, toolchain.ExecRunner{}, c.log, stdout, stderr)
	apkPath, err := builder.Build(context.Background(), args[0])
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return err
	}

	fmt.Fprintf(stdout, "Package ready: %s\n", apkPath)
	return nil
}
