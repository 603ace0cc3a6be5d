// Package script evaluates QuickApp source scripts.
//
// Scripts are JavaScript. The engine installs one recording global per DSL
// builder (app, screen, column, row, text, button, input, image, goTo,
// toast, log, readFile, writeFile, httpGet) and runs the script inside a
// stripped-down goja VM. Each builder call records a raw Decl; block
// arguments nest their recordings under the call.
//
// The result is the raw declaration tree only. Entry discovery and scope
// checking belong to the front-end, which consumes the tree.
package script
