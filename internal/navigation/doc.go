// Package navigation implements the screen backstack state machine that
// the generated application embeds at runtime.
//
// Controller is the state machine: goTo pushes the current screen and
// transitions to a known target (unknown targets only notify), back pops to
// the previous screen and exits on an empty backstack. Loop is the single
// UI-serialized execution context every transition must run on.
//
// The activity-source artifact emitted by the generator mirrors exactly
// this machine in Kotlin; this package is its testable reference.
package navigation
