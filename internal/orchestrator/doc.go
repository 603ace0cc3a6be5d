// Package orchestrator drives the CLI build and run flows.
//
// Builder runs the compile pipeline (script evaluation, front-end,
// validator, generator), materializes the generated project tree, invokes
// the external build tool, and collects the package artifact. Deployer
// rebuilds stale packages, enforces the exactly-one-device rule, and
// installs and launches through the device bridge.
//
// Both block while subprocesses run and stream their output incrementally.
// Failures surface once, immediately; nothing is retried.
package orchestrator
