package toolchain

import (
	"fmt"
	"strings"
)

// ExternalToolError reports a subprocess exit code other than zero, or a
// tool that could not be started at all. Output is the tool's captured
// stdout and stderr, surfaced verbatim.
type ExternalToolError struct {
	Tool   string
	Output string
	Err    error
}

func (e *ExternalToolError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Tool, e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *ExternalToolError) Unwrap() error { return e.Err }
