// Package toolchain wraps the external build tool and device bridge as
// black-box subprocesses.
//
// Both tools are invoked through a Runner so orchestration can be tested
// with fakes. Exit codes are the only success signal; captured output is
// surfaced verbatim inside ExternalToolError. No timeouts, no retries.
package toolchain
