package frontend

import "fmt"

// MissingEntryError reports a script with no top-level app declaration.
type MissingEntryError struct{}

func (e *MissingEntryError) Error() string {
	return "no app declaration found; a script must declare exactly one app"
}

// MultipleEntryError reports a script with more than one top-level app
// declaration.
type MultipleEntryError struct {
	Count int
}

func (e *MultipleEntryError) Error() string {
	return fmt.Sprintf("found %d app declarations; a script must declare exactly one app", e.Count)
}

// ScopeViolationError reports a declaration made outside its allowed scope,
// naming the offending primitive.
type ScopeViolationError struct {
	Primitive string
	Scope     string
}

func (e *ScopeViolationError) Error() string {
	return fmt.Sprintf("%q is only allowed %s", e.Primitive, e.Scope)
}
