// Package validator enforces cross-cutting invariants on a compiled app
// before generation: at least one screen, unique screen names, unique input
// ids per screen. Validation is total, side-effect free, and never mutates
// the model.
package validator

import (
	"fmt"

	"github.com/quickapp/quickapp/internal/model"
)

// EmptyAppError reports an app with zero screens. An app must have a home
// screen.
type EmptyAppError struct{}

func (e *EmptyAppError) Error() string {
	return "app declares no screens; an app must have a home screen"
}

// DuplicateScreenError reports two screens sharing a name (case-sensitive
// exact match).
type DuplicateScreenError struct {
	Name string
}

func (e *DuplicateScreenError) Error() string {
	return fmt.Sprintf("duplicate screen %q", e.Name)
}

// DuplicateInputIDError reports two inputs on the same screen sharing an id.
type DuplicateInputIDError struct {
	Screen string
	ID     string
}

func (e *DuplicateInputIDError) Error() string {
	return fmt.Sprintf("duplicate input id %q on screen %q", e.ID, e.Screen)
}

// Validate confirms structural soundness of a front-end-produced app.
// On success the app is returned to the caller unchanged.
func Validate(app *model.AppDeclaration) error {
	if len(app.Screens) == 0 {
		return &EmptyAppError{}
	}

	seen := make(map[string]struct{}, len(app.Screens))
	for _, scr := range app.Screens {
		if _, dup := seen[scr.Name]; dup {
			return &DuplicateScreenError{Name: scr.Name}
		}
		seen[scr.Name] = struct{}{}

		if err := checkInputIDs(scr); err != nil {
			return err
		}
	}
	return nil
}

// checkInputIDs walks one screen's widget tree and rejects repeated input
// identifiers.
func checkInputIDs(scr model.ScreenDeclaration) error {
	ids := make(map[string]struct{})
	var walk func(node *model.WidgetNode) error
	walk = func(node *model.WidgetNode) error {
		if node == nil {
			return nil
		}
		if node.Kind == model.KindInput {
			if _, dup := ids[node.ID]; dup {
				return &DuplicateInputIDError{Screen: scr.Name, ID: node.ID}
			}
			ids[node.ID] = struct{}{}
		}
		for _, child := range node.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(scr.Root)
}
