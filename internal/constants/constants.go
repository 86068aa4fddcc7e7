package constants

// File names
const (
	SeedFileName = "contacts.jsonc"
)

// Application identifiers
const (
	AppID           = "io.github.contact-editor"
	MainWindowTitle = "Contact Editor"
)

// Application version
// Can be overridden at build time using -ldflags="-X contact-editor/internal/constants.AppVersion=..."
var (
	AppVersion = "v0.1.0" // Default version, overridden by build scripts from git tag
)

// UI Theme settings
const (
	// Theme options: "dark", "light", or "default" (follows system theme)
	AppTheme = "default" // Set to "dark", "light", or "default"
)
