package orchestrator

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickapp/quickapp/internal/logging"
	"github.com/quickapp/quickapp/internal/script"
	"github.com/quickapp/quickapp/internal/toolchain"
	"github.com/quickapp/quickapp/internal/validator"
)

const demoScript = `
app("Demo App", () => {
	screen("main", () => {
		text("Hello");
		button("Details", () => {
			goTo("details");
		});
	});
	screen("details", () => {
		text("There");
	});
});
`

// assembleRunner stands in for the build tool. It drops the package at the
// tool-defined output path so collection can proceed.
type assembleRunner struct {
	calls int
	err   error
}

func (r *assembleRunner) Run(ctx context.Context, dir, name string, args, env []string, stdout, stderr io.Writer) (string, error) {
	r.calls++
	if r.err != nil {
		return "assemble failed", r.err
	}
	out := filepath.Join(dir, filepath.FromSlash(toolchain.OutputAPK))
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(out, []byte("PK"), 0o644); err != nil {
		return "", err
	}
	return "BUILD SUCCESSFUL", nil
}

func newTestBuilder(t *testing.T, runner toolchain.Runner) *Builder {
	t.Helper()
	return &Builder{
		engine:  script.New(),
		gradle:  toolchain.NewGradle("gradle", "/opt/android-sdk", runner),
		log:     logging.NewDefault().Named("build"),
		stdout:  io.Discard,
		stderr:  io.Discard,
		workDir: t.TempDir(),
	}
}

func writeScript(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestBuildProducesPackage(t *testing.T) {
	runner := &assembleRunner{}
	b := newTestBuilder(t, runner)
	scriptPath := writeScript(t, "DemoApp.js", demoScript)

	apkPath, err := b.Build(context.Background(), scriptPath)
	require.NoError(t, err)
	assert.Equal(t, 1, runner.calls)
	assert.Equal(t, filepath.Join(b.workDir, "demoapp-debug.apk"), apkPath)

	data, err := os.ReadFile(apkPath)
	require.NoError(t, err)
	assert.Equal(t, "PK", string(data))
}

func TestBuildMaterializesProjectTree(t *testing.T) {
	b := newTestBuilder(t, &assembleRunner{})
	scriptPath := writeScript(t, "DemoApp.js", demoScript)

	_, err := b.Build(context.Background(), scriptPath)
	require.NoError(t, err)

	projectDir := filepath.Join(b.workDir, "build", "demoapp")
	for _, rel := range []string{
		"build.gradle",
		filepath.Join("src", "main", "AndroidManifest.xml"),
		filepath.Join("src", "main", "java", "com", "quickapp", "generated", "demoapp", "MainActivity.kt"),
		"DemoApp.js",
	} {
		_, err := os.Stat(filepath.Join(projectDir, rel))
		assert.NoError(t, err, "expected %s in the project tree", rel)
	}

	copied, err := os.ReadFile(filepath.Join(projectDir, "DemoApp.js"))
	require.NoError(t, err)
	assert.Equal(t, demoScript, string(copied))
}

func TestBuildCopiesAssets(t *testing.T) {
	b := newTestBuilder(t, &assembleRunner{})

	scriptDir := t.TempDir()
	scriptPath := filepath.Join(scriptDir, "DemoApp.js")
	require.NoError(t, os.WriteFile(scriptPath, []byte(demoScript), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(scriptDir, "assets", "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(scriptDir, "assets", "img", "logo.png"), []byte{0x89}, 0o644))

	_, err := b.Build(context.Background(), scriptPath)
	require.NoError(t, err)

	copied := filepath.Join(b.workDir, "build", "demoapp", "src", "main", "assets", "img", "logo.png")
	_, err = os.Stat(copied)
	assert.NoError(t, err)
}

func TestBuildStructuralErrorStopsBeforeTool(t *testing.T) {
	runner := &assembleRunner{}
	b := newTestBuilder(t, runner)
	scriptPath := writeScript(t, "Dup.js", `
app("Dup", () => {
	screen("home", () => { text("a"); });
	screen("home", () => { text("b"); });
});
`)

	_, err := b.Build(context.Background(), scriptPath)
	require.Error(t, err)
	assert.Equal(t, 0, runner.calls, "build tool must not run for an invalid script")

	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Contains(t, err.Error(), "QuickApp Build Error: ")

	var dup *validator.DuplicateScreenError
	assert.ErrorAs(t, err, &dup)
}

func TestBuildMissingScriptFile(t *testing.T) {
	b := newTestBuilder(t, &assembleRunner{})

	_, err := b.Build(context.Background(), filepath.Join(t.TempDir(), "absent.js"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QuickApp Build Error: ")
}

func TestBuildToolFailureIsReported(t *testing.T) {
	runner := &assembleRunner{err: errors.New("exit status 1")}
	b := newTestBuilder(t, runner)
	scriptPath := writeScript(t, "DemoApp.js", demoScript)

	_, err := b.Build(context.Background(), scriptPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QuickApp Build Error: ")

	var toolErr *toolchain.ExternalToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Contains(t, toolErr.Error(), "assemble failed")
}
