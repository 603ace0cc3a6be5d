package toolchain

import (
	"context"
	"io"
	"strings"
)

// ADB drives the external device bridge.
type ADB struct {
	executable string
	runner     Runner
}

// NewADB creates a device bridge driver.
func NewADB(executable string, runner Runner) *ADB {
	return &ADB{executable: executable, runner: runner}
}

// Devices queries the bridge for connected targets and returns their
// serials. Only targets in the "device" state count: offline or
// unauthorized entries are not usable targets.
func (a *ADB) Devices(ctx context.Context) ([]string, error) {
	out, err := a.runner.Run(ctx, "", a.executable, []string{"devices"}, nil, io.Discard, io.Discard)
	if err != nil {
		return nil, &ExternalToolError{Tool: a.executable, Output: out, Err: err}
	}
	return parseDevices(out), nil
}

// Install installs the package with reinstall semantics, passing tool
// output through to the caller.
func (a *ADB) Install(ctx context.Context, apkPath string, stdout, stderr io.Writer) error {
	out, err := a.runner.Run(ctx, "", a.executable, []string{"install", "-r", apkPath}, nil, stdout, stderr)
	if err != nil {
		return &ExternalToolError{Tool: a.executable, Output: out, Err: err}
	}
	return nil
}

// Launch starts the installed package's main activity.
func (a *ADB) Launch(ctx context.Context, packageName string, stdout, stderr io.Writer) error {
	component := packageName + "/.MainActivity"
	out, err := a.runner.Run(ctx, "", a.executable, []string{"shell", "am", "start", "-n", component}, nil, stdout, stderr)
	if err != nil {
		return &ExternalToolError{Tool: a.executable, Output: out, Err: err}
	}
	return nil
}

// parseDevices extracts serials from `adb devices` output:
//
//	List of devices attached
//	emulator-5554	device
//	0a3b8e71	unauthorized
func parseDevices(out string) []string {
	var serials []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "List of devices") || strings.HasPrefix(line, "*") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[1] == "device" {
			serials = append(serials, fields[0])
		}
	}
	return serials
}
