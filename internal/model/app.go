package model

// WidgetKind discriminates the variants of a WidgetNode.
type WidgetKind string

const (
	KindColumn WidgetKind = "column"
	KindRow    WidgetKind = "row"
	KindText   WidgetKind = "text"
	KindButton WidgetKind = "button"
	KindInput  WidgetKind = "input"
	KindImage  WidgetKind = "image"
)

// Container layout defaults, in density-independent units.
const (
	DefaultPadding = 16
	DefaultSpacing = 8
)

// ActionKind discriminates runtime actions attached to widgets and screens.
type ActionKind string

const (
	ActionGoTo      ActionKind = "goTo"
	ActionToast     ActionKind = "toast"
	ActionLog       ActionKind = "log"
	ActionReadFile  ActionKind = "readFile"
	ActionWriteFile ActionKind = "writeFile"
	ActionHTTPGet   ActionKind = "httpGet"
)

// Action is one runtime effect triggered by a tap or a screen lifecycle hook.
// Target carries the screen name (goTo), path (readFile/writeFile), or URL
// (httpGet). Payload carries the message (toast/log) or file contents
// (writeFile).
type Action struct {
	Kind    ActionKind `json:"kind"`
	Target  string     `json:"target,omitempty"`
	Payload string     `json:"payload,omitempty"`
}

// WidgetNode is one node of a screen's widget tree, a tagged variant over
// {Column, Row, Text, Button, Input, Image}. Only the fields relevant to
// Kind are populated. The tree is strictly parent-owned: no node appears
// under two parents.
type WidgetNode struct {
	Kind WidgetKind `json:"kind"`

	// Text and Button
	Content  string `json:"content,omitempty"`
	FontSize int    `json:"font_size,omitempty"`

	// Input
	ID   string `json:"id,omitempty"`
	Hint string `json:"hint,omitempty"`

	// Image
	Source string `json:"source,omitempty"`

	// Column and Row
	Padding  int           `json:"padding,omitempty"`
	Spacing  int           `json:"spacing,omitempty"`
	Children []*WidgetNode `json:"children,omitempty"`

	// Button tap handlers
	Actions []Action `json:"actions,omitempty"`
}

// IsContainer reports whether the node kind carries children.
func (w *WidgetNode) IsContainer() bool {
	return w.Kind == KindColumn || w.Kind == KindRow
}

// NewContainer creates a Column or Row with the structural defaults applied.
func NewContainer(kind WidgetKind) *WidgetNode {
	return &WidgetNode{
		Kind:    kind,
		Padding: DefaultPadding,
		Spacing: DefaultSpacing,
	}
}

// ScreenDeclaration is one named, independently addressable view.
type ScreenDeclaration struct {
	Name string      `json:"name"`
	Root *WidgetNode `json:"root"`

	// OnShow actions run when the screen becomes visible.
	OnShow []Action `json:"on_show,omitempty"`
}

// AppDeclaration is the compiled form of one QuickApp script: exactly one
// per compilation unit, immutable after validation. Screen order is
// declaration order; the first screen is the home screen.
type AppDeclaration struct {
	Name    string              `json:"name"`
	Screens []ScreenDeclaration `json:"screens"`
}

// Home returns the home screen (index 0). Callers must only use this after
// validation has established that at least one screen exists.
func (a *AppDeclaration) Home() ScreenDeclaration {
	return a.Screens[0]
}

// ScreenNames returns the screen names in declaration order.
func (a *AppDeclaration) ScreenNames() []string {
	names := make([]string, len(a.Screens))
	for i, s := range a.Screens {
		names[i] = s.Name
	}
	return names
}
