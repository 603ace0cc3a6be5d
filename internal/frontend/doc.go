// Package frontend turns the raw declaration tree of a QuickApp script
// into the compiled model.
//
// It locates the single app entry declaration, rejects scripts with zero or
// multiple entries, and runs a scope-checking pass over the tree: screens
// must sit directly inside the app block, widgets and I/O primitives only
// inside a screen. The result is an AppDeclaration ready for validation.
package frontend
