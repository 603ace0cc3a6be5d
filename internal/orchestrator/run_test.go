package orchestrator

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickapp/quickapp/internal/logging"
)

type fakeBuilder struct {
	calls   int
	apkPath string
	err     error
}

func (f *fakeBuilder) Build(ctx context.Context, scriptPath string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if err := os.WriteFile(f.apkPath, []byte("PK"), 0o644); err != nil {
		return "", err
	}
	return f.apkPath, nil
}

type fakeBridge struct {
	devices    []string
	devicesErr error

	installed []string
	launched  []string
}

func (f *fakeBridge) Devices(ctx context.Context) ([]string, error) {
	return f.devices, f.devicesErr
}

func (f *fakeBridge) Install(ctx context.Context, apkPath string, stdout, stderr io.Writer) error {
	f.installed = append(f.installed, apkPath)
	return nil
}

func (f *fakeBridge) Launch(ctx context.Context, packageName string, stdout, stderr io.Writer) error {
	f.launched = append(f.launched, packageName)
	return nil
}

func newTestDeployer(t *testing.T, builder *fakeBuilder, bridge *fakeBridge) *Deployer {
	t.Helper()
	workDir := t.TempDir()
	if builder.apkPath == "" {
		builder.apkPath = filepath.Join(workDir, "demoapp-debug.apk")
	}
	return &Deployer{
		builder: builder,
		bridge:  bridge,
		log:     logging.NewDefault().Named("run"),
		stdout:  io.Discard,
		stderr:  io.Discard,
		workDir: workDir,
	}
}

func TestRunBuildsInstallsAndLaunches(t *testing.T) {
	builder := &fakeBuilder{}
	bridge := &fakeBridge{devices: []string{"emulator-5554"}}
	d := newTestDeployer(t, builder, bridge)
	scriptPath := writeScript(t, "DemoApp.js", demoScript)

	require.NoError(t, d.Run(context.Background(), scriptPath))
	assert.Equal(t, 1, builder.calls)
	assert.Equal(t, []string{builder.apkPath}, bridge.installed)
	assert.Equal(t, []string{"com.quickapp.generated.demoapp"}, bridge.launched)
}

func TestRunRequiresExactlyOneDevice(t *testing.T) {
	for _, devices := range [][]string{nil, {"emulator-5554", "R58M123ABC"}} {
		builder := &fakeBuilder{}
		bridge := &fakeBridge{devices: devices}
		d := newTestDeployer(t, builder, bridge)
		scriptPath := writeScript(t, "DemoApp.js", demoScript)

		err := d.Run(context.Background(), scriptPath)
		var countErr *DeviceCountError
		require.ErrorAs(t, err, &countErr)
		assert.Equal(t, len(devices), countErr.Count)
		assert.Empty(t, bridge.installed)
		assert.Empty(t, bridge.launched)
	}
}

func TestDeviceCountErrorMessage(t *testing.T) {
	err := &DeviceCountError{Count: 2}
	assert.Equal(t, "exactly one connected device or emulator is required. Found: 2.", err.Error())
}

func TestRunSkipsBuildWhenPackageIsFresh(t *testing.T) {
	builder := &fakeBuilder{}
	bridge := &fakeBridge{devices: []string{"emulator-5554"}}
	d := newTestDeployer(t, builder, bridge)
	scriptPath := writeScript(t, "DemoApp.js", demoScript)

	// existing package newer than the script
	require.NoError(t, os.WriteFile(builder.apkPath, []byte("PK"), 0o644))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(scriptPath, old, old))

	require.NoError(t, d.Run(context.Background(), scriptPath))
	assert.Equal(t, 0, builder.calls)
	assert.Equal(t, []string{builder.apkPath}, bridge.installed)
}

func TestRunRebuildsWhenScriptIsNewer(t *testing.T) {
	builder := &fakeBuilder{}
	bridge := &fakeBridge{devices: []string{"emulator-5554"}}
	d := newTestDeployer(t, builder, bridge)
	scriptPath := writeScript(t, "DemoApp.js", demoScript)

	require.NoError(t, os.WriteFile(builder.apkPath, []byte("PK"), 0o644))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(builder.apkPath, old, old))

	require.NoError(t, d.Run(context.Background(), scriptPath))
	assert.Equal(t, 1, builder.calls)
}

func TestRunPropagatesBuildErrorUnchanged(t *testing.T) {
	buildErr := &BuildError{Err: errors.New("boom")}
	builder := &fakeBuilder{err: buildErr}
	bridge := &fakeBridge{devices: []string{"emulator-5554"}}
	d := newTestDeployer(t, builder, bridge)
	scriptPath := writeScript(t, "DemoApp.js", demoScript)

	err := d.Run(context.Background(), scriptPath)
	assert.Same(t, buildErr, err)
	assert.Empty(t, bridge.installed)
}

func TestRunSurfacesBridgeFailure(t *testing.T) {
	builder := &fakeBuilder{}
	bridge := &fakeBridge{devicesErr: errors.New("adb: no server")}
	d := newTestDeployer(t, builder, bridge)
	scriptPath := writeScript(t, "DemoApp.js", demoScript)

	err := d.Run(context.Background(), scriptPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no server")
}

func TestStale(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "app.js")
	apkPath := filepath.Join(dir, "app-debug.apk")

	assert.True(t, stale(scriptPath, apkPath), "missing package is stale")

	require.NoError(t, os.WriteFile(scriptPath, []byte("x"), 0o644))
	assert.True(t, stale(scriptPath, apkPath))

	require.NoError(t, os.WriteFile(apkPath, []byte("PK"), 0o644))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(scriptPath, old, old))
	assert.False(t, stale(scriptPath, apkPath))

	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(scriptPath, future, future))
	assert.True(t, stale(scriptPath, apkPath))
}
