package navigation

import (
	"fmt"
)

// State is the coarse lifecycle of the runtime: one logical state per
// screen while running, plus the terminal exited state.
type State string

const (
	StateRunning State = "running"
	StateExited  State = "exited"
)

// Notifier delivers non-fatal, user-visible notifications (a toast on
// device; a log line in tests).
type Notifier interface {
	Notify(message string)
}

// Controller owns the backstack for one application lifetime. The backstack
// holds previously visited screens; the current screen is tracked
// separately, so the first entry ever pushed is the home screen, pushed
// when navigating away from it.
//
// All methods must run on the single UI-serialized context (Loop); the
// controller itself does no locking.
type Controller struct {
	known    map[string]struct{}
	current  string
	stack    []string
	state    State
	notifier Notifier
}

// NewController creates a controller positioned on the home screen (the
// first registered name) with an empty backstack.
func NewController(screens []string, notifier Notifier) (*Controller, error) {
	if len(screens) == 0 {
		return nil, fmt.Errorf("no screens registered")
	}
	known := make(map[string]struct{}, len(screens))
	for _, name := range screens {
		known[name] = struct{}{}
	}
	return &Controller{
		known:    known,
		current:  screens[0],
		state:    StateRunning,
		notifier: notifier,
	}, nil
}

// Current returns the currently visible screen name.
func (c *Controller) Current() string { return c.current }

// Depth returns the backstack depth.
func (c *Controller) Depth() int { return len(c.stack) }

// State returns the runtime state.
func (c *Controller) State() State { return c.state }

// GoTo navigates to a registered screen, pushing the current screen onto
// the backstack. An unknown target changes nothing; the user is notified
// with the missing name.
func (c *Controller) GoTo(target string) {
	if c.state == StateExited {
		return
	}
	if _, ok := c.known[target]; !ok {
		if c.notifier != nil {
			c.notifier.Notify("screen not found: " + target)
		}
		return
	}
	c.stack = append(c.stack, c.current)
	c.current = target
}

// Back pops the most recent backstack entry and transitions to it. On an
// empty backstack the runtime transitions to exited.
func (c *Controller) Back() {
	if c.state == StateExited {
		return
	}
	if len(c.stack) == 0 {
		c.state = StateExited
		return
	}
	c.current = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}
