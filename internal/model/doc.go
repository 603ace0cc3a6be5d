// Package model provides the immutable value types for one compiled
// QuickApp application.
//
// Core Types:
//   - AppDeclaration: one compiled app, ordered screens, first = home
//   - ScreenDeclaration: one named view with its widget tree
//   - WidgetNode: tagged variant over the six widget kinds
//   - Action: runtime effect attached to taps and lifecycle hooks
//   - PackageIdentity: naming derived from the script file name
//   - BuildArtifact: generator output, artifact name to text
//
// An AppDeclaration is owned by the compilation that produced it and must
// not be mutated after the validator accepts it.
package model
