package toolchain

import (
	"context"
	"errors"
	"io"
)

// OutputAPK is the fixed, tool-defined location of the built package
// relative to the project root.
const OutputAPK = "build/outputs/apk/debug/app-debug.apk"

// PackageExt is the package artifact extension.
const PackageExt = ".apk"

// Gradle drives the external build tool. It is a black box: exit code and
// captured output are the sole success signal, and its diagnostics pass
// through without reinterpretation.
type Gradle struct {
	executable string
	sdkRoot    string
	runner     Runner
}

// NewGradle creates a Gradle driver. sdkRoot may be empty; the error is
// raised at the first invocation, not here.
func NewGradle(executable, sdkRoot string, runner Runner) *Gradle {
	return &Gradle{executable: executable, sdkRoot: sdkRoot, runner: runner}
}

// Assemble builds the debug package for the project at projectDir,
// streaming tool output to stdout and stderr as it is produced.
func (g *Gradle) Assemble(ctx context.Context, projectDir string, stdout, stderr io.Writer) error {
	if g.sdkRoot == "" {
		return &ExternalToolError{
			Tool: g.executable,
			Err:  errors.New("ANDROID_HOME is not set; cannot locate the platform SDK"),
		}
	}

	env := []string{"ANDROID_HOME=" + g.sdkRoot}
	out, err := g.runner.Run(ctx, projectDir, g.executable, []string{"assembleDebug"}, env, stdout, stderr)
	if err != nil {
		return &ExternalToolError{Tool: g.executable, Output: out, Err: err}
	}
	return nil
}
