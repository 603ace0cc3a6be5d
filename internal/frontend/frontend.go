package frontend

import (
	"github.com/quickapp/quickapp/internal/model"
	"github.com/quickapp/quickapp/internal/script"
)

// Allowed scopes, used in scope violation messages.
const (
	scopeApp    = "inside the app block"
	scopeScreen = "inside a screen declaration"
	scopeTop    = "at the top level of the script"
)

var widgetKinds = map[string]model.WidgetKind{
	"column": model.KindColumn,
	"row":    model.KindRow,
	"text":   model.KindText,
	"button": model.KindButton,
	"input":  model.KindInput,
	"image":  model.KindImage,
}

var actionKinds = map[string]model.ActionKind{
	"goTo":      model.ActionGoTo,
	"toast":     model.ActionToast,
	"log":       model.ActionLog,
	"readFile":  model.ActionReadFile,
	"writeFile": model.ActionWriteFile,
	"httpGet":   model.ActionHTTPGet,
}

// Parse turns the raw declaration tree of one script into an
// AppDeclaration. It enforces the single-entry rule and rejects any
// declaration found outside its allowed scope. It has no side effects and
// writes nothing.
func Parse(decls []*script.Decl) (*model.AppDeclaration, error) {
	var entry *script.Decl
	entries := 0
	for _, d := range decls {
		if d.Name == "app" {
			entries++
			entry = d
		}
	}
	if entries == 0 {
		return nil, &MissingEntryError{}
	}
	if entries > 1 {
		return nil, &MultipleEntryError{Count: entries}
	}

	for _, d := range decls {
		if d.Name == "app" {
			continue
		}
		if d.Name == "screen" {
			return nil, &ScopeViolationError{Primitive: "screen", Scope: scopeApp}
		}
		return nil, &ScopeViolationError{Primitive: d.Name, Scope: scopeScreen}
	}

	app := &model.AppDeclaration{Name: entry.Arg}
	for _, child := range entry.Children {
		if child.Name != "screen" {
			return nil, &ScopeViolationError{Primitive: child.Name, Scope: scopeScreen}
		}
		scr, err := buildScreen(child)
		if err != nil {
			return nil, err
		}
		app.Screens = append(app.Screens, scr)
	}
	return app, nil
}

// buildScreen assembles one screen: widget declarations form the tree,
// action declarations recorded directly in the screen block become OnShow
// actions.
func buildScreen(d *script.Decl) (model.ScreenDeclaration, error) {
	scr := model.ScreenDeclaration{Name: d.Arg}

	var widgets []*model.WidgetNode
	for _, child := range d.Children {
		if action, ok := actionFromDecl(child); ok {
			scr.OnShow = append(scr.OnShow, action)
			continue
		}
		node, err := buildWidget(child, &scr.OnShow)
		if err != nil {
			return model.ScreenDeclaration{}, err
		}
		widgets = append(widgets, node)
	}

	scr.Root = rootFor(widgets)
	return scr, nil
}

// rootFor picks the screen root: a sole container is used directly, any
// other shape is wrapped in an implicit default column.
func rootFor(widgets []*model.WidgetNode) *model.WidgetNode {
	if len(widgets) == 1 && widgets[0].IsContainer() {
		return widgets[0]
	}
	root := model.NewContainer(model.KindColumn)
	root.Children = widgets
	return root
}

// buildWidget converts one widget declaration, recursing into containers
// and collecting tap actions on buttons. Action declarations recorded
// inside a container (but not on a button) run on screen show and are
// appended to onShow.
func buildWidget(d *script.Decl, onShow *[]model.Action) (*model.WidgetNode, error) {
	kind, ok := widgetKinds[d.Name]
	if !ok {
		// app or screen nested inside a widget tree
		scope := scopeTop
		if d.Name == "screen" {
			scope = scopeApp
		}
		return nil, &ScopeViolationError{Primitive: d.Name, Scope: scope}
	}

	var node *model.WidgetNode
	switch kind {
	case model.KindColumn, model.KindRow:
		node = model.NewContainer(kind)
		if padding, ok := d.IntOption("padding"); ok {
			node.Padding = padding
		}
		if spacing, ok := d.IntOption("spacing"); ok {
			node.Spacing = spacing
		}
		for _, child := range d.Children {
			if action, ok := actionFromDecl(child); ok {
				*onShow = append(*onShow, action)
				continue
			}
			childNode, err := buildWidget(child, onShow)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, childNode)
		}

	case model.KindText:
		node = &model.WidgetNode{Kind: kind, Content: d.Arg}
		if size, ok := d.IntOption("fontSize"); ok {
			node.FontSize = size
		}

	case model.KindButton:
		node = &model.WidgetNode{Kind: kind, Content: d.Arg}
		for _, child := range d.Children {
			action, ok := actionFromDecl(child)
			if !ok {
				return nil, &ScopeViolationError{Primitive: child.Name, Scope: scopeScreen}
			}
			node.Actions = append(node.Actions, action)
		}

	case model.KindInput:
		node = &model.WidgetNode{Kind: kind, ID: d.Arg}
		if hint, ok := d.Option("hint"); ok {
			node.Hint = hint
		}

	case model.KindImage:
		node = &model.WidgetNode{Kind: kind, Source: d.Arg}
	}

	return node, nil
}

func actionFromDecl(d *script.Decl) (model.Action, bool) {
	kind, ok := actionKinds[d.Name]
	if !ok {
		return model.Action{}, false
	}
	action := model.Action{Kind: kind}
	switch kind {
	case model.ActionToast, model.ActionLog:
		action.Payload = d.Arg
	case model.ActionWriteFile:
		action.Target = d.Arg
		action.Payload = d.Payload
	default:
		action.Target = d.Arg
	}
	return action, true
}
