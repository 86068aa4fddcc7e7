// Package editor содержит точку входа и координацию компонентов редактора контактов.
//
// Файл editor.go содержит функцию BuildEditor - сборку формы редактирования:
//   - Создание виджетов формы и кнопок действий (GUIState)
//   - Создание презентера (EditorPresenter), связывающего GUI и трекер
//   - Привязку виджетов к презентеру через binding.AttachField
//     (текстовые поля — по способности text-change, Select — по value-change)
//   - Начальное состояние: ничего не выбрано, все кнопки выключены
//
// Редактор следует архитектуре MVP (Model-View-Presenter):
//   - Model (business.FormTracker + core.ContactStore) - бизнес-состояние без GUI
//   - View (GUIState) - только Fyne виджеты и их компоновка
//   - Presenter (EditorPresenter) - связывает модель и представление
//
// Используется в:
//   - ui/main_ui.go - вызывается при сборке главного окна приложения
package editor

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"contact-editor/core"
	"contact-editor/internal/debuglog"
	editorbinding "contact-editor/ui/editor/binding"
	editormodels "contact-editor/ui/editor/models"
	editorpresentation "contact-editor/ui/editor/presentation"
)

// BuildEditor собирает форму редактирования контакта и возвращает её
// вместе с презентером.
func BuildEditor(window fyne.Window, controller *core.AppController) (fyne.CanvasObject, *editorpresentation.EditorPresenter) {
	guiState := &editorpresentation.GUIState{Window: window}

	guiState.NameEntry = widget.NewEntry()
	guiState.NameEntry.SetPlaceHolder("Full name")
	guiState.EmailEntry = widget.NewEntry()
	guiState.EmailEntry.SetPlaceHolder("name@example.com")
	guiState.PhoneEntry = widget.NewEntry()
	guiState.PhoneEntry.SetPlaceHolder("+1 202 456 1111")
	guiState.GroupSelect = widget.NewSelect(editormodels.Groups, nil)
	guiState.FavoriteCheck = widget.NewCheck("", nil)

	guiState.StatusLabel = widget.NewLabel("")
	guiState.StatusLabel.Wrapping = fyne.TextWrapWord

	presenter := editorpresentation.NewEditorPresenter(guiState, controller)

	guiState.SaveButton = widget.NewButton("Save", presenter.SaveContact)
	guiState.RevertButton = widget.NewButton("Revert", presenter.RevertEdits)
	guiState.DeleteButton = widget.NewButton("Delete", presenter.DeleteContact)

	attachFields(presenter)

	form := widget.NewForm(
		widget.NewFormItem("Name", guiState.NameEntry),
		widget.NewFormItem("Email", guiState.EmailEntry),
		widget.NewFormItem("Phone", guiState.PhoneEntry),
		widget.NewFormItem("Group", guiState.GroupSelect),
		widget.NewFormItem("Favorite", guiState.FavoriteCheck),
	)

	buttons := container.NewHBox(
		guiState.SaveButton,
		guiState.RevertButton,
		guiState.DeleteButton,
	)

	// Начальное состояние: ничего не выбрано
	presenter.ClearForm()

	content := container.NewVBox(
		form,
		buttons,
		guiState.StatusLabel,
	)
	return content, presenter
}

// attachFields привязывает виджеты формы к презентеру.
// Подписка выбирается слоем binding по способности виджета.
func attachFields(presenter *editorpresentation.EditorPresenter) {
	guiState := presenter.GUIState()

	fields := map[string]interface{}{
		editormodels.FieldName:     &editorbinding.EntryField{Entry: guiState.NameEntry},
		editormodels.FieldEmail:    &editorbinding.EntryField{Entry: guiState.EmailEntry},
		editormodels.FieldPhone:    &editorbinding.EntryField{Entry: guiState.PhoneEntry},
		editormodels.FieldGroup:    &editorbinding.SelectField{Select: guiState.GroupSelect},
		editormodels.FieldFavorite: &editorbinding.CheckField{Check: guiState.FavoriteCheck},
	}

	for fieldID, field := range fields {
		if err := editorbinding.AttachField(fieldID, field, presenter.OnFieldEdited); err != nil {
			// Адаптеры выше реализуют нужные способности; ошибка здесь
			// означает рассинхронизацию binding и editor при рефакторинге.
			debuglog.ErrorLog("BuildEditor: failed to attach field %s: %v", fieldID, err)
		}
	}
}
