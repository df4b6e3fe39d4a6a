// Package cli provides the command-line interface for simpleloco.
//
// Commands:
//   - export: download every configured locale from Loco and write the platform files
//     (also run when no command is given)
//   - validate: check a configuration file and list the files an export would write
//   - version: show version information
//
// Global flags (each overridable by an environment variable):
//   - --conf-file-path (LOCO_CONF_FILE_PATH, default fastlane/Loco.platform.json)
//   - --base-url (LOCO_BASE_URL, default https://localise.biz)
//   - --log-level (LOCO_LOG_LEVEL), --log-format (LOCO_LOG_FORMAT)
//   - --no-color (NO_COLOR), --json
//
// Usage:
//
//	simpleloco
//	simpleloco export --conf-file-path fastlane/Loco.ios.yml
//	simpleloco validate --json
package cli
