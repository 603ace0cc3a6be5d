// Package config provides configuration for the QuickApp CLI.
//
// Configuration is layered: built-in defaults, then an optional
// quickapp.yaml in the working directory, then environment variables.
//
// Environment Variables:
//   - ANDROID_HOME: platform SDK root
//   - QUICKAPP_GRADLE, QUICKAPP_ADB: external tool executables
//   - LOG_LEVEL, LOG_DEV: logging
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Println(cfg.Tools.ADB)
package config
