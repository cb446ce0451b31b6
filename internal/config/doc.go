// Package config provides configuration management for coverfix.
//
// This package handles:
//   - Loading and saving settings as JSON, TOML or YAML
//   - Default configuration values
//   - Range validation
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// 400x400 JPEG covers at quality 90
//	// .mp3 files, 4 workers, 2 second duplicate window
//	// iTunes artwork at 600x600 with a 5 second timeout
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.toml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//	if err := settings.Validate(); errors.Is(err, config.ErrInvalid) {
//	    // reject
//	}
//
// # Saving Settings
//
//	settings.TargetSize = 500
//	err := settings.Save("/path/to/config.yaml")
package config
