package generator

import (
	"fmt"
	"strings"

	"github.com/quickapp/quickapp/internal/model"
)

// kotlinWriter emits the body of one buildScreenN function. Variable names
// are assigned from a per-screen counter in tree order, so output depends
// only on the widget tree.
type kotlinWriter struct {
	b    strings.Builder
	next int
}

const bodyIndent = "        "

func (w *kotlinWriter) line(format string, args ...interface{}) {
	w.b.WriteString(bodyIndent)
	fmt.Fprintf(&w.b, format, args...)
	w.b.WriteByte('\n')
}

func (w *kotlinWriter) fresh() string {
	name := fmt.Sprintf("v%d", w.next)
	w.next++
	return name
}

// renderScreenBody emits the Kotlin statements that build one screen's view
// tree, preceded by its on-show actions.
func renderScreenBody(scr model.ScreenDeclaration) string {
	w := &kotlinWriter{}
	for _, action := range scr.OnShow {
		w.line("%s", actionKotlin(action))
	}
	root := w.widget(scr.Root)
	w.line("return %s", root)
	return w.b.String()
}

// widget emits construction code for one node and returns its variable.
func (w *kotlinWriter) widget(node *model.WidgetNode) string {
	name := w.fresh()

	switch node.Kind {
	case model.KindColumn, model.KindRow:
		orientation := "VERTICAL"
		margin := "bottomMargin"
		if node.Kind == model.KindRow {
			orientation = "HORIZONTAL"
			margin = "rightMargin"
		}
		w.line("val %s = LinearLayout(this)", name)
		w.line("%s.orientation = LinearLayout.%s", name, orientation)
		w.line("%s.setPadding(dp(%d), dp(%d), dp(%d), dp(%d))", name, node.Padding, node.Padding, node.Padding, node.Padding)
		for i, child := range node.Children {
			childName := w.widget(child)
			if i == len(node.Children)-1 || node.Spacing == 0 {
				w.line("%s.addView(%s)", name, childName)
				continue
			}
			lp := "lp" + strings.TrimPrefix(childName, "v")
			w.line("val %s = LinearLayout.LayoutParams(LinearLayout.LayoutParams.WRAP_CONTENT, LinearLayout.LayoutParams.WRAP_CONTENT)", lp)
			w.line("%s.%s = dp(%d)", lp, margin, node.Spacing)
			w.line("%s.addView(%s, %s)", name, childName, lp)
		}

	case model.KindText:
		w.line("val %s = TextView(this)", name)
		w.line("%s.text = %s", name, kotlinString(node.Content))
		if node.FontSize > 0 {
			w.line("%s.textSize = %df", name, node.FontSize)
		}

	case model.KindButton:
		w.line("val %s = Button(this)", name)
		w.line("%s.text = %s", name, kotlinString(node.Content))
		if len(node.Actions) > 0 {
			w.line("%s.setOnClickListener {", name)
			for _, action := range node.Actions {
				w.line("    %s", actionKotlin(action))
			}
			w.line("}")
		}

	case model.KindInput:
		w.line("val %s = EditText(this)", name)
		w.line("%s.tag = %s", name, kotlinString(node.ID))
		if node.Hint != "" {
			w.line("%s.hint = %s", name, kotlinString(node.Hint))
		}

	case model.KindImage:
		w.line("val %s = ImageView(this)", name)
		w.line("%s.setImageBitmap(BitmapFactory.decodeStream(assets.open(%s)))", name, kotlinString(node.Source))
	}

	return name
}

func actionKotlin(action model.Action) string {
	switch action.Kind {
	case model.ActionGoTo:
		return fmt.Sprintf("navigator.goTo(%s)", kotlinString(action.Target))
	case model.ActionToast:
		return fmt.Sprintf("notify(%s)", kotlinString(action.Payload))
	case model.ActionLog:
		return fmt.Sprintf("Log.i(\"QuickApp\", %s)", kotlinString(action.Payload))
	case model.ActionReadFile:
		return fmt.Sprintf("readFileAsync(%s)", kotlinString(action.Target))
	case model.ActionWriteFile:
		return fmt.Sprintf("writeFileAsync(%s, %s)", kotlinString(action.Target), kotlinString(action.Payload))
	case model.ActionHTTPGet:
		return fmt.Sprintf("httpGetAsync(%s)", kotlinString(action.Target))
	}
	return ""
}

// kotlinString renders s as a quoted Kotlin string literal.
func kotlinString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '$':
			b.WriteString(`\$`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// xmlEscape renders s safely inside an XML attribute value.
func xmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}
