package main

import (
	_ "embed" // For embedding the seed contacts file
	"log"

	"fyne.io/fyne/v2"

	"contact-editor/core"
	"contact-editor/ui"
)

// Embedded resources
//
//go:embed assets/contacts.jsonc
var seedContactsData []byte // Initial contacts shown on first launch

// main is the application's entry point. It creates the AppController,
// builds the main window content and runs the Fyne event loop.
func main() {
	controller, err := core.NewAppController(seedContactsData)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	controller.MainWindow.SetContent(ui.CreateMainContent(controller))
	controller.MainWindow.Resize(fyne.NewSize(640, 420))
	controller.MainWindow.CenterOnScreen()

	controller.MainWindow.ShowAndRun()
}
