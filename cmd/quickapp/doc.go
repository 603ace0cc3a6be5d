// Package main is the entry point for the quickapp CLI.
//
// quickapp turns a single declarative script describing an app's screens
// and widgets into an installable package, and deploys it to a connected
// device:
//
//	quickapp build ShoppingList.js
//	quickapp run ShoppingList.js
//
// Configuration:
//   - Environment variables (ANDROID_HOME, QUICKAPP_GRADLE, QUICKAPP_ADB,
//     LOG_LEVEL, LOG_DEV)
//   - Optional quickapp.yaml in the working directory
//
// Exit status is zero on success and non-zero on any reported failure.
package main
