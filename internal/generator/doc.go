// Package generator deterministically turns a validated app declaration
// into the text artifacts of an Android project.
//
// Artifacts:
//   - manifest: AndroidManifest.xml with the fixed network permission,
//     portrait-locked single launcher activity, label = app name
//   - activity-source: MainActivity.kt with the screen registry, per-screen
//     view builders, and the embedded ScreenNavigator back-navigation hook
//   - build-descriptor: build.gradle with fixed SDK levels and dependencies
//
// Generation reads no clocks, no globals, and iterates nothing unordered:
// the same model and script path reproduce every artifact byte for byte.
package generator
