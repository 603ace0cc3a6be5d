// Package command implements the quickapp CLI commands and their registry.
package command
