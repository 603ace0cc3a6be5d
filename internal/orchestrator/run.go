package orchestrator

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/quickapp/quickapp/internal/config"
	"github.com/quickapp/quickapp/internal/logging"
	"github.com/quickapp/quickapp/internal/model"
	"github.com/quickapp/quickapp/internal/toolchain"
)

// DeviceCountError reports a device topology that cannot be deployed to:
// zero targets, or more than one.
type DeviceCountError struct {
	Count int
}

func (e *DeviceCountError) Error() string {
	return fmt.Sprintf("exactly one connected device or emulator is required. Found: %d.", e.Count)
}

// packageBuilder builds a script into a package.
type packageBuilder interface {
	Build(ctx context.Context, scriptPath string) (string, error)
}

// deviceBridge is the external bridge tool surface the deployer needs.
type deviceBridge interface {
	Devices(ctx context.Context) ([]string, error)
	Install(ctx context.Context, apkPath string, stdout, stderr io.Writer) error
	Launch(ctx context.Context, packageName string, stdout, stderr io.Writer) error
}

// Deployer orchestrates `run`: ensure a fresh package, check the device
// topology, install, and launch.
type Deployer struct {
	builder packageBuilder
	bridge  deviceBridge
	log     *logging.Logger
	stdout  io.Writer
	stderr  io.Writer
	workDir string
}

// NewDeployer wires a deployer against the real builder and bridge.
func NewDeployer(cfg *config.Config, runner toolchain.Runner, log *logging.Logger, stdout, stderr io.Writer) *Deployer {
	return &Deployer{
		builder: NewBuilder(cfg, runner, log, stdout, stderr),
		bridge:  toolchain.NewADB(cfg.Tools.ADB, runner),
		log:     log.Named("run"),
		stdout:  stdout,
		stderr:  stderr,
		workDir: ".",
	}
}

// Run deploys the script's package to the single connected target and
// launches it. Build failures propagate unchanged.
func (d *Deployer) Run(ctx context.Context, scriptPath string) error {
	identity := model.NewPackageIdentity(scriptPath)
	apkPath := filepath.Join(d.workDir, identity.CleanedName+"-debug"+toolchain.PackageExt)

	if stale(scriptPath, apkPath) {
		built, err := d.builder.Build(ctx, scriptPath)
		if err != nil {
			return err
		}
		apkPath = built
	}

	devices, err := d.bridge.Devices(ctx)
	if err != nil {
		return err
	}
	if len(devices) != 1 {
		return &DeviceCountError{Count: len(devices)}
	}

	d.log.Info("installing package",
		zap.String("device", devices[0]),
		zap.String("package", apkPath))
	if err := d.bridge.Install(ctx, apkPath, d.stdout, d.stderr); err != nil {
		return err
	}

	d.log.Info("launching", zap.String("component", identity.PackageName+"/.MainActivity"))
	return d.bridge.Launch(ctx, identity.PackageName, d.stdout, d.stderr)
}

// stale reports whether the package must be rebuilt: it does not exist, or
// the script was modified after it was built.
func stale(scriptPath, apkPath string) bool {
	apkInfo, err := os.Stat(apkPath)
	if err != nil {
		return true
	}
	scriptInfo, err := os.Stat(scriptPath)
	if err != nil {
		return true
	}
	return scriptInfo.ModTime().After(apkInfo.ModTime())
}
