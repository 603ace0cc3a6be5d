package script

// Decl is one raw declaration recorded while the script runs. The evaluator
// records shape only; it does not decide which nestings are legal. The
// front-end's scope checker rejects illegal shapes afterwards.
type Decl struct {
	// Name is the builder that produced the declaration: app, screen,
	// column, row, text, button, input, image, goTo, toast, log,
	// readFile, writeFile, httpGet.
	Name string

	// Arg is the first string argument (app name, screen name, text
	// content, button label, input id, image source, goTo target, path,
	// URL) or empty when the builder takes none.
	Arg string

	// Payload is the second string argument where the builder takes one
	// (writeFile contents).
	Payload string

	// Options holds the trailing options object, if the call supplied one.
	Options map[string]interface{}

	// Children are the declarations recorded while the call's block ran.
	Children []*Decl
}

// Option returns a string option by key, with ok reporting presence.
func (d *Decl) Option(key string) (string, bool) {
	v, ok := d.Options[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// IntOption returns a numeric option by key. goja exports whole numbers as
// int64 and everything else as float64; both are accepted.
func (d *Decl) IntOption(key string) (int, bool) {
	v, ok := d.Options[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
