package version

// Current defines the application version.
// Update this single line to propagate version changes everywhere.
const Current = "v0.3.0"

// AppName is the display name used in the TUI title and help output.
const AppName = "ProtHub"
