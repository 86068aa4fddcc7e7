package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"contact-editor/core"
	"contact-editor/internal/debuglog"
	"contact-editor/ui/editor"
)

// CreateMainContent creates the master-detail content of the main window:
// the contact list on the left, the editor form on the right.
func CreateMainContent(ac *core.AppController) fyne.CanvasObject {
	editorContent, presenter := editor.BuildEditor(ac.MainWindow, ac)

	contactList := widget.NewList(
		func() int {
			return ac.Store.Len()
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("contact name")
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			c, ok := ac.Store.At(id)
			if !ok {
				return
			}
			item.(*widget.Label).SetText(c.Name)
		},
	)
	presenter.GUIState().ContactList = contactList

	contactList.OnSelected = func(id widget.ListItemID) {
		c, ok := ac.Store.At(id)
		if !ok {
			debuglog.WarnLog("CreateMainContent: selected row %d out of range", id)
			return
		}
		// Выбор строки списка — это событие выбора сущности:
		// форма загружает контакт, правки предыдущего пропадают.
		presenter.LoadContact(c)
	}

	newButton := widget.NewButton("New Contact", func() {
		contactList.UnselectAll()
		presenter.NewContact()
	})

	ac.RefreshContactList = func() {
		contactList.Refresh()
	}

	left := container.NewBorder(nil, newButton, nil, nil, contactList)

	split := container.NewHSplit(left, editorContent)
	split.Offset = 0.35
	return split
}
