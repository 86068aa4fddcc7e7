package core

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"

	"contact-editor/internal/constants"
	"contact-editor/internal/debuglog"
	"contact-editor/ui/editor/models"
)

// AppController - the main structure encapsulating application state.
type AppController struct {
	// --- Fyne Components ---
	Application fyne.App
	MainWindow  fyne.Window

	// --- Data layer ---
	Store *ContactStore

	// --- UI callbacks ---
	// RefreshContactList перерисовывает список контактов после
	// добавления/изменения/удаления. Устанавливается при сборке UI.
	RefreshContactList func()
}

// NewAppController creates the application, main window and contact store,
// and loads the seed contacts. A contacts.jsonc placed next to the
// executable overrides the embedded seed.
func NewAppController(seedData []byte) (*AppController, error) {
	application := app.NewWithID(constants.AppID)

	// Set theme based on constants
	switch constants.AppTheme {
	case "dark":
		application.Settings().SetTheme(theme.DarkTheme())
	case "light":
		application.Settings().SetTheme(theme.LightTheme())
	default:
		application.Settings().SetTheme(theme.DefaultTheme())
	}

	mainWindow := application.NewWindow(constants.MainWindowTitle)

	store := NewContactStore()

	contacts, err := loadSeedContacts(readSeedOverride(), seedData)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed contacts: %w", err)
	}
	for _, c := range contacts {
		store.Add(c)
	}

	debuglog.InfoLog("NewAppController: initialized with %d contacts (%s)", store.Len(), constants.AppVersion)

	return &AppController{
		Application: application,
		MainWindow:  mainWindow,
		Store:       store,
	}, nil
}

// loadSeedContacts parses the override seed when present, falling back to
// the embedded seed if the override is missing or malformed.
func loadSeedContacts(override, embedded []byte) ([]models.Contact, error) {
	if override != nil {
		contacts, err := ParseSeedContacts(override)
		if err == nil {
			debuglog.InfoLog("loadSeedContacts: using %s next to the executable", constants.SeedFileName)
			return contacts, nil
		}
		debuglog.WarnLog("loadSeedContacts: override %s is malformed, falling back to embedded seed: %v", constants.SeedFileName, err)
	}
	return ParseSeedContacts(embedded)
}

// readSeedOverride reads contacts.jsonc from the executable's directory.
// Returns nil when the file is absent or unreadable.
func readSeedOverride() []byte {
	execPath, err := os.Executable()
	if err != nil {
		debuglog.DebugLog("readSeedOverride: cannot determine executable path: %v", err)
		return nil
	}
	data, err := os.ReadFile(filepath.Join(filepath.Dir(execPath), constants.SeedFileName))
	if err != nil {
		return nil
	}
	return data
}
