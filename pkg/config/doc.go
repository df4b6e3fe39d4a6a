// Package config loads and validates export configurations.
//
// A configuration names the target platform, the output directory, the locales to
// export and the Loco API key, plus optional export parameters that are passed on to
// the Loco API:
//
//	{
//	  "platform": "android",
//	  "directory": "app/src/main/res",
//	  "locales": ["en", "fr", "de"],
//	  "key": "loco-export-key",
//	  "filter": ["android"],
//	  "no_comments": "true"
//	}
//
// The same keys can be written in YAML. Files are handled in three steps:
//   - the extension must be .json, .yaml or .yml (UnsupportedFormatError)
//   - the document is checked against an embedded JSON Schema; unknown keys and
//     values of the wrong type are rejected (ErrUnknownKey, ErrInvalidValue)
//   - New checks the required fields, reporting all missing ones together
//     (ValidationError), and selects the platform adapter (UnsupportedPlatformError)
//
// Usage:
//
//	cfg, err := config.LoadFromFile("fastlane/Loco.platform.json")
//	if err != nil {
//	    return err
//	}
//	for _, ext := range cfg.Adapter().AllowedExtensions() {
//	    ...
//	}
package config
